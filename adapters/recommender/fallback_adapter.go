package recommender

import (
	"context"

	"rushd/domain/assessment"
	"rushd/domain/career"
)

// FallbackAdapter exposes the deterministic compatibility engine through
// the recommender port. It is always available and never errors, so it is
// the system of record whenever the external AI recommender is down or
// unconfigured.
type FallbackAdapter struct{}

// NewFallbackAdapter creates the deterministic recommender
func NewFallbackAdapter() *FallbackAdapter {
	return &FallbackAdapter{}
}

// Recommend scores the catalog against the answers. Sparse answers still
// produce a full ranked list for any non-empty catalog.
func (a *FallbackAdapter) Recommend(ctx context.Context, answers assessment.Answers, catalog []career.Profile) ([]career.Recommendation, error) {
	return career.Score(answers, catalog), nil
}
