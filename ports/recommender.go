package ports

import (
	"context"

	"rushd/domain/assessment"
	"rushd/domain/career"
)

// RecommenderPort produces ranked career recommendations for an
// assessment. Two implementations exist: an external AI recommender (may
// be unavailable) and the deterministic compatibility engine, which is the
// always-available fallback and the system of record when the AI source is
// down.
type RecommenderPort interface {
	Recommend(ctx context.Context, answers assessment.Answers, catalog []career.Profile) ([]career.Recommendation, error)
}

// RecommenderAudit records which source produced a recommendation set
type RecommenderAudit struct {
	Source   string `json:"source"` // "ai" | "fallback"
	Fallback bool   `json:"fallback"`
}
