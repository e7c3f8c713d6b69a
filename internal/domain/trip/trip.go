package trip

import (
	"fmt"

	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/account"
	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/fleet"
	"github.com/DriveSync-Logistics/service-dispatch/internal/geo"
)

// Trip is a single costed movement from a start to an end coordinate using a
// specific vehicle and driver. Distance and total cost are computed once at
// construction and never recomputed; changed inputs require a new Trip.
type Trip struct {
	start             geo.Point
	end               geo.Point
	fuelPricePerLitre float64
	vehicle           *fleet.Vehicle
	driver            *account.Driver
	clientID          string
	distanceKm        float64
	totalCost         float64
}

// New builds a costed trip. The total cost is
//
//	distance × vehicle fuel rate × fuel price
//	  + driver day allowance + driver night allowance
//	  + vehicle daily charges
//
// Day and night allowances are charged flat on every trip regardless of
// distance or duration.
//
// If the distance between start and end cannot be computed, the trip is still
// returned with distance zero — the cost floor of allowances plus daily
// charges — alongside a non-nil error describing the failure, so the caller
// can log the degradation. A nil vehicle or driver is a hard error with no
// trip returned.
func New(start, end geo.Point, fuelPricePerLitre float64, vehicle *fleet.Vehicle, driver *account.Driver, clientID string) (*Trip, error) {
	if vehicle == nil || driver == nil {
		return nil, fmt.Errorf("trip requires a vehicle and a driver")
	}

	var degraded error
	distance, err := geo.DistanceKm(start, end)
	if err != nil {
		distance = 0
		degraded = fmt.Errorf("distance computation failed, trip costed without fuel expense: %w", err)
	}

	fuelExpense := distance * vehicle.FuelLitresPerKm() * fuelPricePerLitre
	total := fuelExpense +
		driver.DayAllowance() +
		driver.NightAllowance() +
		vehicle.DailyCharges()

	return &Trip{
		start:             start,
		end:               end,
		fuelPricePerLitre: fuelPricePerLitre,
		vehicle:           vehicle,
		driver:            driver,
		clientID:          clientID,
		distanceKm:        distance,
		totalCost:         total,
	}, degraded
}

// Start returns the trip's start coordinates.
func (t *Trip) Start() geo.Point { return t.start }

// End returns the trip's end coordinates.
func (t *Trip) End() geo.Point { return t.end }

// FuelPricePerLitre returns the fuel price used for costing.
func (t *Trip) FuelPricePerLitre() float64 { return t.fuelPricePerLitre }

// Vehicle returns the vehicle used for this trip.
func (t *Trip) Vehicle() *fleet.Vehicle { return t.vehicle }

// Driver returns the driver assigned to this trip.
func (t *Trip) Driver() *account.Driver { return t.driver }

// ClientID returns the requesting client's account id, or "" for estimates.
func (t *Trip) ClientID() string { return t.clientID }

// DistanceKm returns the great-circle distance computed at construction.
func (t *Trip) DistanceKm() float64 { return t.distanceKm }

// TotalCost returns the total cost computed at construction.
func (t *Trip) TotalCost() float64 { return t.totalCost }
