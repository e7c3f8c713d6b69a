package account

import (
	"testing"

	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/fleet"
	"github.com/DriveSync-Logistics/service-dispatch/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver() *Driver {
	return NewDriver("D001", "Okello James", "okello@example.com", "0700111222",
		"Van", "UAX111A", 10000, 15000)
}

func TestDriver_Kind(t *testing.T) {
	var acc Account = newTestDriver()
	assert.Equal(t, KindDriver, acc.Kind())
}

func TestDriver_DetailsWithoutVehicle(t *testing.T) {
	d := newTestDriver()

	details := d.Details()
	assert.Contains(t, details, "Driver ID: D001")
	assert.Contains(t, details, "No Vehicle Assigned")
	assert.Contains(t, details, "Day Allowance: UGX 10000")
	assert.Contains(t, details, "Night Allowance: UGX 15000")
}

func TestDriver_AssignVehicle(t *testing.T) {
	d := newTestDriver()
	require.Nil(t, d.Vehicle())

	v := fleet.NewVehicle(fleet.VehicleTypeVan, "UAX111A", 0.1, 50000)
	require.NoError(t, d.AssignVehicle(v))
	assert.Same(t, v, d.Vehicle())
	assert.Contains(t, d.Details(), "Vehicle Reg: UAX111A")

	// Re-assignment replaces the previous link.
	v2 := fleet.NewVehicle(fleet.VehicleTypeTruck, "UBB202C", 0.3, 80000)
	require.NoError(t, d.AssignVehicle(v2))
	assert.Same(t, v2, d.Vehicle())
}

func TestDriver_AssignVehicleNil(t *testing.T) {
	d := newTestDriver()
	assert.Error(t, d.AssignVehicle(nil))
	assert.Nil(t, d.Vehicle())
}

func TestDriver_AcknowledgeTrip(t *testing.T) {
	d := newTestDriver()

	msg := d.AcknowledgeTrip(geo.Point{Lat: 0.3476, Lon: 32.5825}, geo.Point{Lat: 0.3163, Lon: 32.3892})
	assert.Contains(t, msg, "🚚 Driver Okello James assigned to trip")
	assert.Contains(t, msg, "(0.3476, 32.5825)")
	assert.Contains(t, msg, "(0.3163, 32.3892)")
}

func TestClient_Kind(t *testing.T) {
	var acc Account = NewClient("C001", "Namuli Grace", "grace@example.com", "0755000111")
	assert.Equal(t, KindClient, acc.Kind())
}

func TestClient_Details(t *testing.T) {
	c := NewClient("C001", "Namuli Grace", "grace@example.com", "0755000111")
	assert.Equal(t, "Client ID: C001, Name: Namuli Grace", c.Details())
}

func TestClient_RecordTrip(t *testing.T) {
	c := NewClient("C001", "Namuli Grace", "grace@example.com", "0755000111")
	require.Zero(t, c.TripCost())

	msg := c.RecordTrip(77050)
	assert.Equal(t, 77050.0, c.TripCost())
	assert.Contains(t, msg, "🛣️ Client Namuli Grace requested trip")
	assert.Contains(t, msg, "UGX 77,050.00")

	// Each trip overwrites the last-known cost.
	c.RecordTrip(125000.5)
	assert.Equal(t, 125000.5, c.TripCost())
}
