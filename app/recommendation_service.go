package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rushd/domain/assessment"
	"rushd/domain/career"
	"rushd/internal"
	"rushd/internal/errors"
	"rushd/ports"
)

// RecommendationService orchestrates assessment scoring: it loads the
// answers and catalog, asks the AI recommender when one is configured, and
// falls back to the deterministic compatibility engine otherwise. The
// engines stay storage-free; all persistence runs through ports here.
type RecommendationService struct {
	catalog     ports.CatalogRepository
	assessments ports.AssessmentRepository
	saved       ports.SavedCareerRepository
	primary     ports.RecommenderPort // external AI source, may be nil
	fallback    ports.RecommenderPort
	logger      *internal.Logger
}

// NewRecommendationService creates a recommendation service. primary may
// be nil when no AI recommender is configured.
func NewRecommendationService(
	catalog ports.CatalogRepository,
	assessments ports.AssessmentRepository,
	saved ports.SavedCareerRepository,
	primary ports.RecommenderPort,
	fallback ports.RecommenderPort,
	logger *internal.Logger,
) *RecommendationService {
	return &RecommendationService{
		catalog:     catalog,
		assessments: assessments,
		saved:       saved,
		primary:     primary,
		fallback:    fallback,
		logger:      logger,
	}
}

// SubmitAssessment stores the user's answers and returns a fresh ranking
func (s *RecommendationService) SubmitAssessment(ctx context.Context, userID uuid.UUID, answers assessment.Answers) ([]career.Recommendation, ports.RecommenderAudit, error) {
	if err := s.assessments.SaveAnswers(ctx, userID, answers); err != nil {
		return nil, ports.RecommenderAudit{}, errors.Wrap(err, "failed to save assessment answers")
	}
	return s.recommend(ctx, userID, answers)
}

// Recommend ranks the catalog against the user's stored answers
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID) ([]career.Recommendation, ports.RecommenderAudit, error) {
	answers, err := s.assessments.GetAnswers(ctx, userID)
	if err != nil {
		return nil, ports.RecommenderAudit{}, errors.Wrap(err, "failed to load assessment answers")
	}
	return s.recommend(ctx, userID, answers)
}

func (s *RecommendationService) recommend(ctx context.Context, userID uuid.UUID, answers assessment.Answers) ([]career.Recommendation, ports.RecommenderAudit, error) {
	profiles, err := s.catalog.ListProfiles(ctx)
	if err != nil {
		return nil, ports.RecommenderAudit{}, errors.Wrap(err, "failed to load career catalog")
	}

	audit := ports.RecommenderAudit{Source: "fallback", Fallback: true}
	var recs []career.Recommendation

	if s.primary != nil {
		recs, err = s.primary.Recommend(ctx, answers, profiles)
		if err != nil {
			s.logger.Warn("AI recommender unavailable, using deterministic scoring: %v", err)
		} else {
			audit = ports.RecommenderAudit{Source: "ai"}
		}
	}
	if recs == nil {
		recs, err = s.fallback.Recommend(ctx, answers, profiles)
		if err != nil {
			return nil, audit, errors.Wrap(err, "fallback recommender failed")
		}
	}

	if err := s.attachSavedDates(ctx, userID, recs); err != nil {
		// Saved metadata is decorative; a failure here must not break the ranking.
		s.logger.Warn("failed to load saved careers: %v", err)
	}
	return recs, audit, nil
}

// ListRecommendations ranks, then filters and sorts, the user's
// recommendations. The saved-only filter resolves against the user's
// bookmarks automatically.
func (s *RecommendationService) ListRecommendations(ctx context.Context, userID uuid.UUID, filters career.Filters, key career.SortKey) ([]career.Recommendation, ports.RecommenderAudit, error) {
	recs, audit, err := s.Recommend(ctx, userID)
	if err != nil {
		return nil, audit, err
	}

	if filters.SavedOnly && filters.SavedIDs == nil {
		saved, err := s.saved.ListSaved(ctx, userID)
		if err != nil {
			return nil, audit, errors.Wrap(err, "failed to load saved careers")
		}
		filters.SavedIDs = savedIDSet(saved)
	}
	return career.FilterAndSort(recs, filters, key), audit, nil
}

// GetProfile loads one catalog entry, or nil when it does not exist
func (s *RecommendationService) GetProfile(ctx context.Context, profileID int) (*career.Profile, error) {
	profile, err := s.catalog.GetProfile(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load career profile")
	}
	return profile, nil
}

// SaveCareer bookmarks a profile for the user
func (s *RecommendationService) SaveCareer(ctx context.Context, userID uuid.UUID, profileID int) error {
	profile, err := s.catalog.GetProfile(ctx, profileID)
	if err != nil {
		return errors.Wrap(err, "failed to load career profile")
	}
	if profile == nil {
		return errors.NotFound("career profile")
	}
	return s.saved.Save(ctx, userID, profileID)
}

// UnsaveCareer removes a bookmark
func (s *RecommendationService) UnsaveCareer(ctx context.Context, userID uuid.UUID, profileID int) error {
	return s.saved.Unsave(ctx, userID, profileID)
}

func (s *RecommendationService) attachSavedDates(ctx context.Context, userID uuid.UUID, recs []career.Recommendation) error {
	saved, err := s.saved.ListSaved(ctx, userID)
	if err != nil {
		return err
	}

	savedAt := make(map[int]time.Time, len(saved))
	for _, sc := range saved {
		savedAt[sc.ProfileID] = sc.SavedAt
	}
	for i := range recs {
		if at, ok := savedAt[recs[i].ID]; ok {
			t := at
			recs[i].SavedAt = &t
		}
	}
	return nil
}

func savedIDSet(saved []ports.SavedCareer) map[int]bool {
	ids := make(map[int]bool, len(saved))
	for _, sc := range saved {
		ids[sc.ProfileID] = true
	}
	return ids
}
