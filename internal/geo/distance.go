// Package geo provides the distance primitives used by the routing engine.
//
// All distances are great-circle (haversine) distances in kilometers on a
// sphere of radius EarthRadiusKm.
package geo

import "math"

// EarthRadiusKm is the mean radius of Earth in kilometers.
const EarthRadiusKm = 6371.0

func degToRad(d float64) float64 { return d * math.Pi / 180.0 }

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	a := sinLat*sinLat +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*sinLng*sinLng

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// DistanceKm returns the haversine distance between p and q.
func (p Point) DistanceKm(q Point) float64 {
	return HaversineKm(p.Lat, p.Lng, q.Lat, q.Lng)
}

// SegmentDistanceKm approximates the distance from point to the segment
// [segStart, segEnd] as the distance to the nearer endpoint.
//
// This is not a perpendicular projection: a point abeam the middle of a long
// segment is reported as far as its nearest endpoint. Augmentation and nearby
// results depend on this exact behavior.
func SegmentDistanceKm(point, segStart, segEnd Point) float64 {
	return math.Min(point.DistanceKm(segStart), point.DistanceKm(segEnd))
}

// RoadFactor converts a straight-line distance into an estimated road
// distance multiplier. Short hops are nearly straight; longer hops accrue
// more curvature. The factor is never below 1.
func RoadFactor(straightKm float64) float64 {
	switch {
	case straightKm < 0.5:
		return 1.1
	case straightKm < 1.0:
		return 1.2
	case straightKm < 2.0:
		return 1.3
	default:
		return 1.4
	}
}

// RoadDistanceKm estimates the road distance between p and q.
func RoadDistanceKm(p, q Point) float64 {
	d := p.DistanceKm(q)
	return d * RoadFactor(d)
}
