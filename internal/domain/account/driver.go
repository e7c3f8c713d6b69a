package account

import (
	"fmt"

	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/fleet"
	"github.com/DriveSync-Logistics/service-dispatch/internal/geo"
)

// Driver is a driver account. The vehicle type and registration fields are
// informational, captured at onboarding; the actual costing vehicle is the
// one linked through AssignVehicle.
type Driver struct {
	accountID      string
	name           string
	email          string
	contact        string
	vehicleType    string
	vehicleRegNo   string
	dayAllowance   float64
	nightAllowance float64
	vehicle        *fleet.Vehicle
}

// NewDriver creates a driver account from already-validated inputs. The
// driver starts without a linked vehicle.
func NewDriver(accountID, name, email, contact, vehicleType, vehicleRegNo string, dayAllowance, nightAllowance float64) *Driver {
	return &Driver{
		accountID:      accountID,
		name:           name,
		email:          email,
		contact:        contact,
		vehicleType:    vehicleType,
		vehicleRegNo:   vehicleRegNo,
		dayAllowance:   dayAllowance,
		nightAllowance: nightAllowance,
	}
}

// AccountID returns the driver's unique account identifier.
func (d *Driver) AccountID() string { return d.accountID }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// Email returns the driver's email address.
func (d *Driver) Email() string { return d.email }

// Contact returns the driver's contact number.
func (d *Driver) Contact() string { return d.contact }

// VehicleType returns the informational vehicle type captured at onboarding.
func (d *Driver) VehicleType() string { return d.vehicleType }

// VehicleRegNo returns the informational vehicle registration captured at onboarding.
func (d *Driver) VehicleRegNo() string { return d.vehicleRegNo }

// DayAllowance returns the flat per-trip day allowance.
func (d *Driver) DayAllowance() float64 { return d.dayAllowance }

// NightAllowance returns the flat per-trip night allowance.
func (d *Driver) NightAllowance() float64 { return d.nightAllowance }

// Vehicle returns the linked vehicle, or nil if none is assigned.
func (d *Driver) Vehicle() *fleet.Vehicle { return d.vehicle }

// AssignVehicle links the driver to a vehicle. A driver holds at most one
// active vehicle; assigning again replaces the previous link.
func (d *Driver) AssignVehicle(v *fleet.Vehicle) error {
	if v == nil {
		return fmt.Errorf("cannot assign a nil vehicle to driver %s", d.accountID)
	}
	d.vehicle = v
	return nil
}

// AcknowledgeTrip returns the driver-facing assignment message for a trip
// between the given coordinates.
func (d *Driver) AcknowledgeTrip(start, end geo.Point) string {
	return fmt.Sprintf("🚚 Driver %s assigned to trip from (%g, %g) to (%g, %g)",
		d.name, start.Lat, start.Lon, end.Lat, end.Lon)
}

// Details returns a one-line summary of the driver account.
func (d *Driver) Details() string {
	vehicleInfo := "No Vehicle Assigned"
	if d.vehicle != nil {
		vehicleInfo = fmt.Sprintf("Vehicle Reg: %s", d.vehicle.RegNo())
	}
	return fmt.Sprintf("Driver ID: %s, Name: %s, %s, Day Allowance: UGX %v, Night Allowance: UGX %v",
		d.accountID, d.name, vehicleInfo, d.dayAllowance, d.nightAllowance)
}

// Kind returns KindDriver.
func (d *Driver) Kind() Kind { return KindDriver }
