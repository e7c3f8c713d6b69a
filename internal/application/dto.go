package application

import (
	"context"
	"time"

	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/fleet"
	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/request"
	tripDomain "github.com/DriveSync-Logistics/service-dispatch/internal/domain/trip"
	"github.com/DriveSync-Logistics/service-dispatch/internal/geo"
	"github.com/google/uuid"
)

// VehicleDTO is the API representation of a fleet vehicle.
type VehicleDTO struct {
	Type            string  `json:"vehicle_type"`
	RegNo           string  `json:"vehicle_reg_no"`
	FuelLitresPerKm float64 `json:"fuel_litres_per_km"`
	DailyCharges    float64 `json:"daily_vehicle_charges"`
}

// TripDTO is the API representation of a recorded trip.
type TripDTO struct {
	Start             geo.Point `json:"start"`
	End               geo.Point `json:"end"`
	FuelPricePerLitre float64   `json:"fuel_price_per_litre"`
	VehicleRegNo      string    `json:"vehicle_reg_no"`
	DriverID          string    `json:"driver_id"`
	ClientID          string    `json:"client_id,omitempty"`
	DistanceKm        float64   `json:"distance_km"`
	TotalCost         float64   `json:"total_cost"`
}

// RequestDTO is the API representation of a pending client request.
type RequestDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Contact          string    `json:"contact"`
	GoodsDescription string    `json:"goods_description"`
	Pickup           geo.Point `json:"pick_up_point"`
	Dropoff          geo.Point `json:"drop_off_point"`
	PickupName       string    `json:"pick_up_name,omitempty"`
	DropoffName      string    `json:"drop_off_name,omitempty"`
	Comments         string    `json:"comments,omitempty"`
	EstimatedCost    float64   `json:"estimated_cost"`
	ClientID         string    `json:"client_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func toVehicleDTO(v *fleet.Vehicle) VehicleDTO {
	return VehicleDTO{
		Type:            v.Type().String(),
		RegNo:           v.RegNo(),
		FuelLitresPerKm: v.FuelLitresPerKm(),
		DailyCharges:    v.DailyCharges(),
	}
}

func toTripDTO(t *tripDomain.Trip) TripDTO {
	return TripDTO{
		Start:             t.Start(),
		End:               t.End(),
		FuelPricePerLitre: t.FuelPricePerLitre(),
		VehicleRegNo:      t.Vehicle().RegNo(),
		DriverID:          t.Driver().AccountID(),
		ClientID:          t.ClientID(),
		DistanceKm:        t.DistanceKm(),
		TotalCost:         t.TotalCost(),
	}
}

func toRequestDTO(r *request.ClientRequest) RequestDTO {
	return RequestDTO{
		ID:               r.ID(),
		Name:             r.Name(),
		Email:            r.Email(),
		Contact:          r.Contact(),
		GoodsDescription: r.GoodsDescription(),
		Pickup:           r.Pickup(),
		Dropoff:          r.Dropoff(),
		PickupName:       r.PickupName(),
		DropoffName:      r.DropoffName(),
		Comments:         r.Comments(),
		EstimatedCost:    r.EstimatedCost(),
		ClientID:         r.ClientID(),
		CreatedAt:        r.CreatedAt(),
	}
}

// ToRequestDTO exposes the request conversion for callers that hold the
// domain object, such as the intake handler building its response.
func ToRequestDTO(r *request.ClientRequest) RequestDTO {
	return toRequestDTO(r)
}

// ListVehicles returns the fleet in onboarding order.
func (s *DispatchService) ListVehicles(ctx context.Context) []VehicleDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]VehicleDTO, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, toVehicleDTO(v))
	}
	return out
}

// ListTrips returns recorded trips in processing order.
func (s *DispatchService) ListTrips(ctx context.Context) []TripDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]TripDTO, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, toTripDTO(t))
	}
	return out
}

// ListRequests returns pending requests in submission order.
func (s *DispatchService) ListRequests(ctx context.Context) []RequestDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RequestDTO, 0, len(s.requests))
	for _, r := range s.requests {
		out = append(out, toRequestDTO(r))
	}
	return out
}
