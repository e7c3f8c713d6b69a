package fleet

import "fmt"

// VehicleType represents the class of a fleet vehicle.
type VehicleType string

const (
	VehicleTypeVan   VehicleType = "Van"
	VehicleTypeTruck VehicleType = "Truck"
	VehicleTypeCar   VehicleType = "Car"
	VehicleTypeBus   VehicleType = "Bus"
)

// IsValid returns true if the vehicle type is recognized.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleTypeVan, VehicleTypeTruck, VehicleTypeCar, VehicleTypeBus:
		return true
	}
	return false
}

// String returns the string representation of the vehicle type.
func (v VehicleType) String() string {
	return string(v)
}

// ParseVehicleType converts a string to a VehicleType, returning an error if invalid.
func ParseVehicleType(s string) (VehicleType, error) {
	vt := VehicleType(s)
	if !vt.IsValid() {
		return "", fmt.Errorf("invalid vehicle type: %s", s)
	}
	return vt, nil
}

// Vehicle is an immutable fleet vehicle identified by its registration number.
// Inputs are assumed validated by the caller; the constructor does not check
// them and registration uniqueness is the ledger caller's responsibility.
type Vehicle struct {
	vehicleType     VehicleType
	regNo           string
	fuelLitresPerKm float64
	dailyCharges    float64
}

// NewVehicle creates a vehicle from already-validated inputs.
func NewVehicle(vehicleType VehicleType, regNo string, fuelLitresPerKm, dailyCharges float64) *Vehicle {
	return &Vehicle{
		vehicleType:     vehicleType,
		regNo:           regNo,
		fuelLitresPerKm: fuelLitresPerKm,
		dailyCharges:    dailyCharges,
	}
}

// Type returns the vehicle's class.
func (v *Vehicle) Type() VehicleType { return v.vehicleType }

// RegNo returns the vehicle's registration number.
func (v *Vehicle) RegNo() string { return v.regNo }

// FuelLitresPerKm returns the fuel consumption rate in litres per kilometer.
func (v *Vehicle) FuelLitresPerKm() float64 { return v.fuelLitresPerKm }

// DailyCharges returns the fixed daily vehicle charge.
func (v *Vehicle) DailyCharges() float64 { return v.dailyCharges }

// CostProfile holds the two vehicle inputs to the trip cost formula.
type CostProfile struct {
	FuelLitresPerKm float64 `json:"fuel_litres_per_km"`
	DailyCharges    float64 `json:"daily_vehicle_charges"`
}

// CostProfile returns the vehicle's contribution to trip costing.
func (v *Vehicle) CostProfile() CostProfile {
	return CostProfile{
		FuelLitresPerKm: v.fuelLitresPerKm,
		DailyCharges:    v.dailyCharges,
	}
}
