package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrMalformedLandmark marks a landmark whose coordinates are missing or
// unusable. Such landmarks are excluded from routing, never fatal.
var ErrMalformedLandmark = errors.New("malformed landmark")

// Represents a landmark as supplied by the landmark feed.
// Only Name, Lat and Lng matter to routing; Lat/Lng are nil when the feed
// had no usable numeric value.
type LandmarkRecord struct {
	ID   string
	Name string
	Lat  *float64
	Lng  *float64
}

// Location validates the record's coordinates.
func (r LandmarkRecord) Location() (Coordinates, error) {
	if r.Name == "" {
		return Coordinates{}, fmt.Errorf("%w: id=%q has no name", ErrMalformedLandmark, r.ID)
	}
	if r.Lat == nil || r.Lng == nil {
		return Coordinates{}, fmt.Errorf("%w: %q has no coordinates", ErrMalformedLandmark, r.Name)
	}

	lat, lng := *r.Lat, *r.Lng
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return Coordinates{}, fmt.Errorf("%w: %q has non-finite coordinates", ErrMalformedLandmark, r.Name)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, fmt.Errorf("%w: %q coordinates out of range (%f, %f)", ErrMalformedLandmark, r.Name, lat, lng)
	}

	return Coordinates{Lat: lat, Lng: lng}, nil
}

// NewLandmark builds a record with valid coordinates.
func NewLandmark(id, name string, lat, lng float64) LandmarkRecord {
	return LandmarkRecord{ID: id, Name: name, Lat: &lat, Lng: &lng}
}
