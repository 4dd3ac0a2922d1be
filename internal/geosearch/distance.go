// Package geosearch finds facilities within a radius of a coordinate
// using great-circle distance, with a bounding-box approximation when
// the reference store cannot evaluate trigonometry in-query.
package geosearch

import "math"

// earthRadiusMiles is the spherical-Earth radius used by the
// great-circle formula.
const earthRadiusMiles = 3959.0

// Degrees-per-mile factors for the bounding-box approximation. One
// degree of latitude is ~69 miles everywhere; a degree of longitude
// shrinks with the cosine of the latitude.
const milesPerDegree = 69.0

// DistanceMiles computes the great-circle distance between two points
// via the spherical law of cosines.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	arg := math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Cos(toRadians(lon2-lon1)) +
		math.Sin(toRadians(lat1))*math.Sin(toRadians(lat2))
	// Floating-point error can push the argument just past ±1 for
	// identical or antipodal points.
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	return earthRadiusMiles * math.Acos(arg)
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
