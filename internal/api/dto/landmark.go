package dto

type LandmarkResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type ListLandmarkResponse struct {
	Landmarks []LandmarkResponse `json:"landmarks"`
}

type NearbyLandmarkResponse struct {
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

type NearbyResponse struct {
	Anchor    string                   `json:"anchor"`
	RadiusKm  float64                  `json:"radius_km"`
	Landmarks []NearbyLandmarkResponse `json:"landmarks"`
}
