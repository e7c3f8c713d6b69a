package handler

import "github.com/DriveSync-Logistics/service-dispatch/internal/geo"

// NamedLocation pairs a human-readable place name with its coordinates.
type NamedLocation struct {
	Name  string    `json:"name"`
	Point geo.Point `json:"point"`
}

// namedLocations is the static lookup table offered to callers. The engine
// itself only ever sees coordinates.
var namedLocations = []NamedLocation{
	{Name: "Kampala", Point: geo.Point{Lat: 0.3476, Lon: 32.5825}},
	{Name: "Entebbe", Point: geo.Point{Lat: 0.3163, Lon: 32.3892}},
	{Name: "Jinja", Point: geo.Point{Lat: 0.4244, Lon: 33.2041}},
	{Name: "Gulu", Point: geo.Point{Lat: 2.7746, Lon: 32.2990}},
	{Name: "Mbarara", Point: geo.Point{Lat: -0.6072, Lon: 30.6545}},
	{Name: "Fort Portal", Point: geo.Point{Lat: 0.6710, Lon: 30.2750}},
	{Name: "Arua", Point: geo.Point{Lat: 3.0201, Lon: 30.9111}},
	{Name: "Mbale", Point: geo.Point{Lat: 1.0784, Lon: 34.1750}},
}

// resolveLocation returns the coordinates for a named location.
func resolveLocation(name string) (geo.Point, bool) {
	for _, loc := range namedLocations {
		if loc.Name == name {
			return loc.Point, true
		}
	}
	return geo.Point{}, false
}
