// Package store defines the read-only reference-store contract the
// resolution engine consumes. The engine never mutates directory data
// and holds no connection lifecycle logic; implementations are injected
// as pooled handles at construction.
package store

import (
	"context"
	"errors"

	"github.com/jonathan/facility-resolver/internal/types"
)

// ErrTrigUnsupported is returned by QueryNearby when the underlying
// store cannot evaluate trigonometric functions in-query. The geo search
// falls back to a bounding-box approximation.
var ErrTrigUnsupported = errors.New("store cannot evaluate trigonometric functions in-query")

// FacilityStore is the full query surface of the reference directory.
// Individual engine components depend only on the subset they use.
type FacilityStore interface {
	// QueryByStateCity returns up to limit records filtered by state
	// (case-insensitive exact) and city (exact) when non-empty.
	QueryByStateCity(ctx context.Context, state, city string, limit int) ([]types.FacilityRecord, error)

	// QueryByCriteria returns records matching every populated
	// criterion, ordered ascending by facility name, capped at
	// criteria.Limit.
	QueryByCriteria(ctx context.Context, criteria types.SearchCriteria) ([]types.FacilityRecord, error)

	// QueryNearby returns records within radiusMiles of the point,
	// ordered ascending by store-computed great-circle distance. May
	// return ErrTrigUnsupported.
	QueryNearby(ctx context.Context, lat, lon, radiusMiles float64, limit int) ([]types.GeoResult, error)

	// QueryWithCoordinates returns every record with non-null
	// coordinates.
	QueryWithCoordinates(ctx context.Context) ([]types.FacilityRecord, error)
}
