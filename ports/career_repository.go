package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rushd/domain/assessment"
	"rushd/domain/career"
)

// CatalogRepository supplies the read-only career profile catalog
type CatalogRepository interface {
	ListProfiles(ctx context.Context) ([]career.Profile, error)
	GetProfile(ctx context.Context, profileID int) (*career.Profile, error)
}

// AssessmentRepository persists a user's latest self-assessment answers
type AssessmentRepository interface {
	SaveAnswers(ctx context.Context, userID uuid.UUID, answers assessment.Answers) error
	GetAnswers(ctx context.Context, userID uuid.UUID) (assessment.Answers, error)
}

// SavedCareer records one bookmarked recommendation
type SavedCareer struct {
	ProfileID int       `json:"profile_id"`
	SavedAt   time.Time `json:"saved_at"`
}

// SavedCareerRepository tracks which recommendations a user bookmarked.
// The saved-id set feeds the saved-only filter and savedDate sort.
type SavedCareerRepository interface {
	Save(ctx context.Context, userID uuid.UUID, profileID int) error
	Unsave(ctx context.Context, userID uuid.UUID, profileID int) error
	ListSaved(ctx context.Context, userID uuid.UUID) ([]SavedCareer, error)
}
