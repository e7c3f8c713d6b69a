package trip

import (
	"math"
	"testing"

	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/account"
	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/fleet"
	"github.com/DriveSync-Logistics/service-dispatch/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	kampala = geo.Point{Lat: 0.3476, Lon: 32.5825}
	entebbe = geo.Point{Lat: 0.3163, Lon: 32.3892}
)

func testVehicle() *fleet.Vehicle {
	return fleet.NewVehicle(fleet.VehicleTypeVan, "UAX111A", 0.1, 50000)
}

func testDriver() *account.Driver {
	return account.NewDriver("D001", "Okello James", "okello@example.com", "0700111222",
		"Van", "UAX111A", 10000, 15000)
}

func TestNew_CostFormula(t *testing.T) {
	tr, err := New(kampala, entebbe, 5000, testVehicle(), testDriver(), "C001")
	require.NoError(t, err)

	wantDistance, err := geo.DistanceKm(kampala, entebbe)
	require.NoError(t, err)
	assert.Equal(t, wantDistance, tr.DistanceKm())

	wantTotal := wantDistance*0.1*5000 + 10000 + 15000 + 50000
	assert.InDelta(t, wantTotal, tr.TotalCost(), 1e-9)
	assert.Equal(t, "C001", tr.ClientID())
}

func TestNew_CostFloor(t *testing.T) {
	// Cost can never drop below allowances plus daily charges.
	tests := []struct {
		name      string
		start     geo.Point
		end       geo.Point
		fuelPrice float64
	}{
		{"same point", kampala, kampala, 5000},
		{"free fuel", kampala, entebbe, 0},
		{"long haul", geo.Point{Lat: 3.0201, Lon: 30.9111}, geo.Point{Lat: -0.6072, Lon: 30.6545}, 5500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(tt.start, tt.end, tt.fuelPrice, testVehicle(), testDriver(), "")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, tr.TotalCost(), 50000.0+10000+15000)
		})
	}
}

func TestNew_DegradedDistanceFallsBackToZero(t *testing.T) {
	bad := geo.Point{Lat: math.NaN(), Lon: 32.5825}

	tr, err := New(bad, entebbe, 5000, testVehicle(), testDriver(), "C001")
	assert.Error(t, err)
	require.NotNil(t, tr, "degraded trip is still usable")

	assert.Zero(t, tr.DistanceKm())
	assert.Equal(t, 50000.0+10000+15000, tr.TotalCost())
}

func TestNew_RequiresVehicleAndDriver(t *testing.T) {
	tr, err := New(kampala, entebbe, 5000, nil, testDriver(), "")
	assert.Error(t, err)
	assert.Nil(t, tr)

	tr, err = New(kampala, entebbe, 5000, testVehicle(), nil, "")
	assert.Error(t, err)
	assert.Nil(t, tr)
}

func TestNew_Deterministic(t *testing.T) {
	// Costing is a pure function of its inputs.
	first, err := New(kampala, entebbe, 5000, testVehicle(), testDriver(), "")
	require.NoError(t, err)
	second, err := New(kampala, entebbe, 5000, testVehicle(), testDriver(), "")
	require.NoError(t, err)

	assert.Equal(t, first.DistanceKm(), second.DistanceKm())
	assert.Equal(t, first.TotalCost(), second.TotalCost())
}
