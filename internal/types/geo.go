package types

// GeoResult is a directory record augmented with its computed distance
// from the query point. Results from the bounding-box fallback carry
// Approximate=true and no exact distance; callers must treat them as
// "within the bounding region", not a ranked distance list.
type GeoResult struct {
	Facility      FacilityRecord `json:"facility"`
	DistanceMiles float64        `json:"distance_miles"`
	Approximate   bool           `json:"approximate,omitempty"`
}

// GeoBounds is a rectangular latitude/longitude region used as a cheap
// substitute for a circular radius query.
type GeoBounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// Contains reports whether the point falls inside the bounds.
func (b GeoBounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}
