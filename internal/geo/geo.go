// Package geo provides the pure geospatial functions used by the request
// query engine: great-circle distance, radius conversion and the approximate
// bounding box used to pre-narrow storage queries.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	// metersPerDegree approximates the length of one degree of latitude.
	// Only used for the storage-level bounding pre-filter; exact haversine
	// filtering always runs on the candidates afterwards, so the error of
	// the approximation never reaches final results.
	metersPerDegree = 111000.0
)

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLon := lon2Rad - lon1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceMeters calculates the great-circle distance in meters.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return DistanceKm(lat1, lon1, lat2, lon2) * 1000
}

// DegreeRadius converts a radius in meters to an approximate radius in
// degrees for bounding queries.
func DegreeRadius(meters float64) float64 {
	return meters / metersPerDegree
}

// BoundingBox returns the bounding box spanning degreeRadius degrees in each
// direction around the given point.
func BoundingBox(lat, lon, degreeRadius float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{lon - degreeRadius, lat - degreeRadius},
		Max: orb.Point{lon + degreeRadius, lat + degreeRadius},
	}
}

// ValidCoordinate reports whether the pair is a usable Earth coordinate.
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
