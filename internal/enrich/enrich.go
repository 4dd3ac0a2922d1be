// Package enrich is the document-extraction collaborator over the
// matching engine: extracted facility-name fields are resolved to
// directory candidates that are attached for human review, never
// auto-applied.
package enrich

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/facility-resolver/internal/matcher"
	"github.com/jonathan/facility-resolver/internal/types"
)

// Relaxed matching defaults for review workflows: recall matters more
// than precision because a human picks the final answer.
const (
	ReviewMinSimilarity = 0.70
	ReviewTopN          = 5
	maxConcurrentFields = 4
)

// ExtractedField is one facility-name field pulled out of a deal
// document, with whatever locality hints the extraction produced.
type ExtractedField struct {
	Field   string `json:"field"`
	RawName string `json:"raw_name"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
}

// FieldResult carries the candidates for one field. Error is the
// per-field failure message; a failed field never aborts the others.
type FieldResult struct {
	Field      string                 `json:"field"`
	RawName    string                 `json:"raw_name"`
	Candidates []types.MatchCandidate `json:"candidates,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// Enricher resolves extracted fields against the directory.
type Enricher struct {
	matcher       *matcher.Matcher
	minSimilarity float64
	topN          int
}

// NewEnricher creates an Enricher with the review-workflow defaults.
func NewEnricher(m *matcher.Matcher) *Enricher {
	return &Enricher{matcher: m, minSimilarity: ReviewMinSimilarity, topN: ReviewTopN}
}

// EnrichFields resolves every field concurrently and returns one result
// per field in input order. Store failures are recorded on the failing
// field only; the returned slice always has len(fields) entries.
func (e *Enricher) EnrichFields(ctx context.Context, fields []ExtractedField) []FieldResult {
	results := make([]FieldResult, len(fields))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFields)

	for i, field := range fields {
		i, field := i, field
		g.Go(func() error {
			results[i] = e.enrichField(gCtx, field)
			return nil
		})
	}

	// Goroutines never return errors; failures live on their field.
	_ = g.Wait()
	return results
}

func (e *Enricher) enrichField(ctx context.Context, field ExtractedField) FieldResult {
	result := FieldResult{Field: field.Field, RawName: field.RawName}

	candidates, err := e.matcher.MatchTopN(ctx, field.RawName, field.City, field.State, e.minSimilarity, e.topN)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Candidates = candidates
	return result
}
