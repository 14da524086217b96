package dto

import "landmark-route-service/internal/domain"

type PathRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type RoadPointResponse struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}

type PathResponse struct {
	Path         []string                 `json:"path"`
	DistanceKm   float64                  `json:"distance_km"`
	RouteCostKm  float64                  `json:"route_cost_km"`
	Coordinates  []RoadPointResponse      `json:"coordinates"`
	PathLength   int                      `json:"path_length"`
	UsedFallback bool                     `json:"used_fallback"`
	Nearby       []NearbyLandmarkResponse `json:"nearby"`
}

// NewPathResponse maps a route result onto its wire shape.
func NewPathResponse(r domain.RouteResult) PathResponse {
	coords := make([]RoadPointResponse, 0, len(r.Coordinates))
	for _, p := range r.Coordinates {
		coords = append(coords, RoadPointResponse{Lat: p.Lat, Lng: p.Lng, Label: p.Label})
	}

	return PathResponse{
		Path:         r.Path,
		DistanceKm:   r.DistanceKm,
		RouteCostKm:  r.RouteCostKm,
		Coordinates:  coords,
		PathLength:   r.PathLength,
		UsedFallback: r.UsedFallback,
		Nearby:       NewNearbyLandmarks(r.Nearby),
	}
}

func NewNearbyLandmarks(in []domain.NearbyLandmark) []NearbyLandmarkResponse {
	out := make([]NearbyLandmarkResponse, 0, len(in))
	for _, n := range in {
		out = append(out, NearbyLandmarkResponse{
			Name:       n.Name,
			DistanceKm: n.DistanceKm,
			Lat:        n.Location.Lat,
			Lng:        n.Location.Lng,
		})
	}
	return out
}
