// Package search provides multi-criteria structured search over the
// facility reference directory.
package search

import (
	"context"
	"fmt"

	"github.com/jonathan/facility-resolver/internal/types"
)

// Store is the slice of the reference store criteria search needs.
type Store interface {
	QueryByCriteria(ctx context.Context, criteria types.SearchCriteria) ([]types.FacilityRecord, error)
}

// Service runs structured directory searches. Stateless; safe for
// concurrent use.
type Service struct {
	store Store
}

// NewService creates a Service over the given store handle.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Search returns directory records matching every populated criterion,
// ordered ascending by facility name and capped at criteria.Limit
// (default 50). No criteria at all returns the first limit records in
// name order. Validation errors are raised before any store access.
func (s *Service) Search(ctx context.Context, criteria types.SearchCriteria) ([]types.FacilityRecord, error) {
	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search criteria: %w", err)
	}

	records, err := s.store.QueryByCriteria(ctx, criteria.Normalized())
	if err != nil {
		return nil, fmt.Errorf("failed to search facilities: %w", err)
	}
	return records, nil
}
