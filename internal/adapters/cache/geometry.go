package cache

import (
	"fmt"
	"landmark-route-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Geometry is stored as a GeoJSON LineString so cached rows stay readable
// by GIS tooling.
func encodeGeometry(coords []domain.Coordinates) ([]byte, error) {
	b, err := geojson.NewGeometry(domain.LineString(coords)).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode geometry: %w", err)
	}
	return b, nil
}

func decodeGeometry(data []byte) ([]domain.Coordinates, error) {
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, fmt.Errorf("decode geometry: %w", err)
	}

	ls, ok := g.Geometry().(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("decode geometry: unexpected type %q", g.Type)
	}
	return domain.CoordinatesFromLineString(ls), nil
}
