// Package matcher resolves free-text facility names to canonical
// directory records by normalizing both sides and ranking candidates by
// edit-distance similarity.
package matcher

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/facility-resolver/internal/normalize"
	"github.com/jonathan/facility-resolver/internal/similarity"
	"github.com/jonathan/facility-resolver/internal/types"
)

// Store is the slice of the reference store the matcher needs.
type Store interface {
	QueryByStateCity(ctx context.Context, state, city string, limit int) ([]types.FacilityRecord, error)
}

// Config holds the matcher's tunable thresholds. The defaults mirror
// long-standing production values; they are configuration, not truths.
type Config struct {
	// MinSimilarity is the floor applied when a call does not supply
	// its own threshold.
	MinSimilarity float64
	// CandidatePoolCap bounds how many records a single match call
	// scores. Without a city hint this caps recall in large states;
	// callers wanting full recall should narrow by locality instead.
	CandidatePoolCap int
	// HighConfidenceMin and MediumConfidenceMin are the confidence
	// tier floors.
	HighConfidenceMin   float64
	MediumConfidenceMin float64
	// DefaultTopN is the result count when MatchTopN is called with
	// n <= 0.
	DefaultTopN int
}

// DefaultConfig returns the default matching configuration.
func DefaultConfig() Config {
	return Config{
		MinSimilarity:       0.7,
		CandidatePoolCap:    1000,
		HighConfidenceMin:   0.90,
		MediumConfidenceMin: 0.80,
		DefaultTopN:         5,
	}
}

// Matcher orchestrates normalization and scoring against a bounded
// candidate pool. Stateless between calls; safe for concurrent use.
type Matcher struct {
	store      Store
	normalizer *normalize.Normalizer
	cfg        Config
}

// New creates a Matcher over the given store handle.
func New(store Store, normalizer *normalize.Normalizer, cfg Config) *Matcher {
	if normalizer == nil {
		normalizer = normalize.Default()
	}
	if cfg.CandidatePoolCap <= 0 {
		cfg.CandidatePoolCap = DefaultConfig().CandidatePoolCap
	}
	if cfg.MinSimilarity <= 0 {
		cfg.MinSimilarity = DefaultConfig().MinSimilarity
	}
	if cfg.HighConfidenceMin <= 0 {
		cfg.HighConfidenceMin = DefaultConfig().HighConfidenceMin
	}
	if cfg.MediumConfidenceMin <= 0 {
		cfg.MediumConfidenceMin = DefaultConfig().MediumConfidenceMin
	}
	if cfg.DefaultTopN <= 0 {
		cfg.DefaultTopN = DefaultConfig().DefaultTopN
	}
	return &Matcher{store: store, normalizer: normalizer, cfg: cfg}
}

// MatchBest returns the highest-scoring candidate at or above
// minSimilarity, or nil when nothing clears the threshold. City and
// state narrow the candidate pool when non-empty. An empty pool is not
// an error; a store failure is.
func (m *Matcher) MatchBest(ctx context.Context, name, city, state string, minSimilarity float64) (*types.MatchCandidate, error) {
	candidates, err := m.score(ctx, name, city, state, minSimilarity)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	best := candidates[0]
	return &best, nil
}

// MatchTopN returns up to n candidates at or above minSimilarity,
// ordered descending by score with ties broken by facility ID so
// repeated calls are deterministic.
func (m *Matcher) MatchTopN(ctx context.Context, name, city, state string, minSimilarity float64, n int) ([]types.MatchCandidate, error) {
	if n <= 0 {
		n = m.cfg.DefaultTopN
	}
	candidates, err := m.score(ctx, name, city, state, minSimilarity)
	if err != nil {
		return nil, err
	}
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates, nil
}

// score builds the candidate pool, scores every record against the
// normalized query, and returns the candidates clearing the threshold
// in deterministic order.
func (m *Matcher) score(ctx context.Context, name, city, state string, minSimilarity float64) ([]types.MatchCandidate, error) {
	if minSimilarity <= 0 {
		minSimilarity = m.cfg.MinSimilarity
	}

	pool, err := m.store.QueryByStateCity(ctx, state, city, m.cfg.CandidatePoolCap)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}
	if len(pool) == 0 {
		return nil, nil
	}

	query := m.normalizer.Normalize(name)

	candidates := make([]types.MatchCandidate, 0)
	for _, record := range pool {
		score := similarity.Score(query, m.normalizer.Normalize(record.FacilityName))
		if score < minSimilarity {
			continue
		}
		candidates = append(candidates, types.MatchCandidate{
			Facility:   record,
			Score:      score,
			Confidence: types.ConfidenceForScore(score, m.cfg.HighConfidenceMin, m.cfg.MediumConfidenceMin),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Facility.ID.String() < candidates[j].Facility.ID.String()
	})
	return candidates, nil
}
