package geo

import (
	"fmt"
	"math"
)

// Point is a geographic coordinate in decimal degrees (WGS 84).
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsFinite returns true if both coordinates are real numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) &&
		!math.IsNaN(p.Lon) && !math.IsInf(p.Lon, 0)
}

// mean earth radius (IUGG)
const earthRadiusKm = 6371.0088

// DistanceKm returns the great-circle distance between two points in
// kilometers, using the haversine formula on a spherical earth.
//
// Callers are expected to supply latitudes in [-90, 90] and longitudes in
// [-180, 180]; the only hard requirement is that both coordinates are finite.
func DistanceKm(p1, p2 Point) (float64, error) {
	if !p1.IsFinite() || !p2.IsFinite() {
		return 0, fmt.Errorf("coordinates must be finite numbers: %v, %v", p1, p2)
	}

	dLat := degreesToRadians(p2.Lat - p1.Lat)
	dLon := degreesToRadians(p2.Lon - p1.Lon)

	lat1Rad := degreesToRadians(p1.Lat)
	lat2Rad := degreesToRadians(p2.Lat)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	distance := earthRadiusKm * c
	if distance < 0 || math.IsNaN(distance) {
		// Should be unreachable for finite inputs.
		return 0, fmt.Errorf("computed distance is not a valid length: %f", distance)
	}
	return distance, nil
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
