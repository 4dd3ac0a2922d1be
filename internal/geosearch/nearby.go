package geosearch

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jonathan/facility-resolver/internal/store"
	"github.com/jonathan/facility-resolver/internal/types"
)

// Defaults applied when the caller omits radius or limit.
const (
	DefaultRadiusMiles = 25.0
	DefaultLimit       = 50
)

// InvalidCoordinateError reports a nearby call rejected before any
// store access because a coordinate or radius was non-finite or out of
// range.
type InvalidCoordinateError struct {
	Field string
	Value float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: %s=%v", e.Field, e.Value)
}

// Store is the slice of the reference store geo search needs.
type Store interface {
	QueryNearby(ctx context.Context, lat, lon, radiusMiles float64, limit int) ([]types.GeoResult, error)
	QueryWithCoordinates(ctx context.Context) ([]types.FacilityRecord, error)
}

// Service runs radius lookups against the directory. Stateless; safe
// for concurrent use.
type Service struct {
	store Store
}

// NewService creates a Service over the given store handle.
func NewService(s Store) *Service {
	return &Service{store: s}
}

// Nearby returns facilities within radiusMiles of the point, ordered
// ascending by distance and truncated to limit. Radius defaults to 25
// miles and limit to 50. When the store cannot evaluate trigonometry
// in-query the result comes from a bounding-box approximation: records
// carry Approximate=true, no exact distance, and may sit slightly
// outside the true circular radius.
func (s *Service) Nearby(ctx context.Context, lat, lon, radiusMiles float64, limit int) ([]types.GeoResult, error) {
	if radiusMiles == 0 {
		radiusMiles = DefaultRadiusMiles
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if err := validatePoint(lat, lon, radiusMiles); err != nil {
		return nil, err
	}

	results, err := s.store.QueryNearby(ctx, lat, lon, radiusMiles, limit)
	if err == nil {
		return results, nil
	}
	if !errors.Is(err, store.ErrTrigUnsupported) {
		return nil, fmt.Errorf("failed to query nearby facilities: %w", err)
	}

	return s.nearbyBounded(ctx, lat, lon, radiusMiles, limit)
}

// nearbyBounded is the approximate fallback: filter every record with
// coordinates against a bounding box around the query point.
func (s *Service) nearbyBounded(ctx context.Context, lat, lon, radiusMiles float64, limit int) ([]types.GeoResult, error) {
	records, err := s.store.QueryWithCoordinates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query facility coordinates: %w", err)
	}

	bounds := BoundsAround(lat, lon, radiusMiles)
	results := make([]types.GeoResult, 0)
	for _, record := range records {
		if !record.HasCoordinates() {
			continue
		}
		if !bounds.Contains(*record.Latitude, *record.Longitude) {
			continue
		}
		results = append(results, types.GeoResult{Facility: record, Approximate: true})
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

// BoundsAround computes the bounding box for the fallback path. The box
// circumscribes the circular radius, so its corners reach past it.
func BoundsAround(lat, lon, radiusMiles float64) types.GeoBounds {
	latDelta := radiusMiles / milesPerDegree
	lonDelta := radiusMiles / (milesPerDegree * math.Cos(toRadians(lat)))
	if lonDelta < 0 {
		lonDelta = -lonDelta
	}
	return types.GeoBounds{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLon: lon - lonDelta,
		MaxLon: lon + lonDelta,
	}
}

func validatePoint(lat, lon, radiusMiles float64) error {
	switch {
	case math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90:
		return &InvalidCoordinateError{Field: "latitude", Value: lat}
	case math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180:
		return &InvalidCoordinateError{Field: "longitude", Value: lon}
	case math.IsNaN(radiusMiles) || math.IsInf(radiusMiles, 0) || radiusMiles <= 0:
		return &InvalidCoordinateError{Field: "radius_miles", Value: radiusMiles}
	}
	return nil
}
