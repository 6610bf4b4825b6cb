package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rushd/adapters/recommender"
	"rushd/domain/assessment"
	"rushd/domain/career"
	"rushd/internal"
	"rushd/internal/testkit"
	"rushd/ports"
)

type failingRecommender struct{}

func (failingRecommender) Recommend(context.Context, assessment.Answers, []career.Profile) ([]career.Recommendation, error) {
	return nil, assert.AnError
}

func newRecommendationFixture(primary ports.RecommenderPort) (*RecommendationService, *testkit.TestKit, uuid.UUID) {
	kit := testkit.NewTestKit(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	service := NewRecommendationService(
		testkit.NewInMemoryCatalogRepository(kit.SampleCatalog()),
		testkit.NewInMemoryAssessmentRepository(),
		testkit.NewInMemorySavedCareerRepository(),
		primary,
		recommender.NewFallbackAdapter(),
		internal.NewLogger(internal.LogLevelError),
	)
	return service, kit, uuid.New()
}

func engineerAnswers() assessment.Answers {
	return assessment.Answers{
		assessment.QuestionTechnicalSkills: assessment.MultiSelectAnswer{Values: []string{"programming", "data analysis"}},
		assessment.QuestionWorkAreas:       assessment.MultiSelectAnswer{Values: []string{"technology"}},
		assessment.QuestionWorkStyle:       assessment.SelectAnswer{Value: "collaborative"},
		assessment.QuestionHalalImportance: assessment.ScaleAnswer{Value: 4},
	}
}

func TestRecommendationService_SubmitAssessment(t *testing.T) {
	service, kit, userID := newRecommendationFixture(nil)
	ctx := context.Background()

	recs, audit, err := service.SubmitAssessment(ctx, userID, engineerAnswers())
	require.NoError(t, err)

	assert.Len(t, recs, len(kit.SampleCatalog()))
	assert.Equal(t, "fallback", audit.Source)
	assert.True(t, audit.Fallback)
	assert.Equal(t, "Software Engineer", recs[0].Title, "engineer answers should rank the engineer profile first")

	// Answers were persisted: a later Recommend call reproduces the ranking.
	again, _, err := service.Recommend(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, recs[0].Compatibility, again[0].Compatibility)
}

func TestRecommendationService_FallsBackWhenPrimaryFails(t *testing.T) {
	service, _, userID := newRecommendationFixture(failingRecommender{})
	ctx := context.Background()

	recs, audit, err := service.SubmitAssessment(ctx, userID, engineerAnswers())
	require.NoError(t, err)

	assert.NotEmpty(t, recs, "fallback must still produce a ranking")
	assert.True(t, audit.Fallback)
}

func TestRecommendationService_SavedOnlyFilter(t *testing.T) {
	service, _, userID := newRecommendationFixture(nil)
	ctx := context.Background()

	_, _, err := service.SubmitAssessment(ctx, userID, engineerAnswers())
	require.NoError(t, err)
	require.NoError(t, service.SaveCareer(ctx, userID, 2))

	recs, _, err := service.ListRecommendations(ctx, userID, career.Filters{SavedOnly: true}, career.SortCompatibility)
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].ID)
	assert.NotNil(t, recs[0].SavedAt, "saved recommendations carry their saved date")
}

func TestRecommendationService_SaveUnknownProfile(t *testing.T) {
	service, _, userID := newRecommendationFixture(nil)

	err := service.SaveCareer(context.Background(), userID, 999)
	assert.Error(t, err)
}
