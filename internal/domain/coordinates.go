package domain

import (
	"landmark-route-service/internal/geo"

	"github.com/paulmach/orb"
)

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Return coordinates as [lng, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lng, c.Lat} }

// Point returns the coordinates as an orb point (x=lng, y=lat).
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lng, c.Lat} }

// Geo returns the coordinates in the form used by the geo package.
func (c Coordinates) Geo() geo.Point { return geo.Point{Lat: c.Lat, Lng: c.Lng} }

// CoordinatesFromPoint converts an orb point (x=lng, y=lat) to Coordinates.
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{Lat: p.Lat(), Lng: p.Lon()}
}

// CoordinatesFromLineString converts every vertex of ls, in order.
func CoordinatesFromLineString(ls orb.LineString) []Coordinates {
	out := make([]Coordinates, 0, len(ls))
	for _, p := range ls {
		out = append(out, CoordinatesFromPoint(p))
	}
	return out
}

// LineString converts an ordered coordinate list to an orb line string.
func LineString(coords []Coordinates) orb.LineString {
	ls := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		ls = append(ls, c.Point())
	}
	return ls
}
