package domain

// Represents one point of a road-level route.
// Label is the landmark name when the point coincides with a landmark,
// otherwise a synthetic waypoint tag.
type RoadPoint struct {
	Lat   float64
	Lng   float64
	Label string
}

// Represents a landmark found near a path.
type NearbyLandmark struct {
	Name       string
	DistanceKm float64
	Location   Coordinates
}

// Represents a named landmark node exposed to callers.
type LandmarkNode struct {
	Name     string
	Location Coordinates
}

// Represents the complete answer to a path query between two landmarks.
// Path is the landmark-level route after augmentation; Coordinates is the
// road-level geometry. DistanceKm is measured along Coordinates, while
// RouteCostKm is the graph cost of the unaugmented search result.
type RouteResult struct {
	Path         []string
	DistanceKm   float64
	RouteCostKm  float64
	Coordinates  []RoadPoint
	PathLength   int
	UsedFallback bool
	Nearby       []NearbyLandmark
}
