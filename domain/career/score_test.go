package career

import (
	"reflect"
	"testing"
	"time"

	"rushd/domain/assessment"
)

func fullAnswers() assessment.Answers {
	return assessment.Answers{
		assessment.QuestionTechnicalSkills: assessment.MultiSelectAnswer{Values: []string{"programming", "data analysis"}},
		assessment.QuestionWorkAreas:       assessment.MultiSelectAnswer{Values: []string{"technology", "finance"}},
		assessment.QuestionWorkValues:      assessment.MultiSelectAnswer{Values: []string{"impact", "growth"}},
		assessment.QuestionWorkStyle:       assessment.SelectAnswer{Value: "collaborative"},
		assessment.QuestionHalalImportance: assessment.ScaleAnswer{Value: 5},
	}
}

func fullProfile() Profile {
	return Profile{
		ID:       1,
		Title:    "Software Engineer",
		Industry: "Technology",
		Growth:   "Very High",
		Requirements: Requirements{
			RequiredSkills:   []string{"programming", "data analysis"},
			Industries:       []string{"technology", "finance"},
			Values:           []string{"impact", "growth"},
			WorkStyle:        "collaborative",
			IslamicAlignment: 5,
		},
	}
}

// TestScore_FullMatchScores100 verifies a complete match across every band
func TestScore_FullMatchScores100(t *testing.T) {
	recs := Score(fullAnswers(), []Profile{fullProfile()})

	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Compatibility != 100 {
		t.Errorf("Expected compatibility 100, got %d", recs[0].Compatibility)
	}
}

// TestScore_RenormalizesOverApplicableBands verifies a profile declaring only
// required skills scores 100 on a full skills match, not 30
func TestScore_RenormalizesOverApplicableBands(t *testing.T) {
	profile := Profile{
		ID:    2,
		Title: "Skills Only",
		Requirements: Requirements{
			RequiredSkills: []string{"writing"},
		},
	}
	answers := assessment.Answers{
		assessment.QuestionTechnicalSkills: assessment.MultiSelectAnswer{Values: []string{"writing"}},
	}

	recs := Score(answers, []Profile{profile})

	// Applicable bands: skills (30) and the always-on work style (15).
	// Skills fully matched, work style unanswered: 30/45 -> 67.
	if recs[0].Compatibility != 67 {
		t.Errorf("Expected compatibility 67, got %d", recs[0].Compatibility)
	}
}

// TestScore_SkillsOnlyFullMatchWithStyle covers the pure renormalization case:
// every applicable band fully matched on an under-specified profile
func TestScore_SkillsOnlyFullMatchWithStyle(t *testing.T) {
	profile := Profile{
		ID:    3,
		Title: "Skills And Style",
		Requirements: Requirements{
			RequiredSkills: []string{"writing"},
			WorkStyle:      "independent",
		},
	}
	answers := assessment.Answers{
		assessment.QuestionTechnicalSkills: assessment.MultiSelectAnswer{Values: []string{"writing"}},
		assessment.QuestionWorkStyle:       assessment.SelectAnswer{Value: "independent"},
	}

	recs := Score(answers, []Profile{profile})

	if recs[0].Compatibility != 100 {
		t.Errorf("Expected compatibility 100 after renormalization, got %d", recs[0].Compatibility)
	}
}

// TestScore_EmptyCatalog verifies an empty catalog yields an empty list
func TestScore_EmptyCatalog(t *testing.T) {
	recs := Score(fullAnswers(), nil)
	if len(recs) != 0 {
		t.Fatalf("Expected empty result for empty catalog, got %d", len(recs))
	}
}

// TestScore_SparseAnswers verifies empty answers still produce a full,
// bounded, sorted ranking
func TestScore_SparseAnswers(t *testing.T) {
	catalog := []Profile{fullProfile(), {ID: 2, Title: "Other"}}
	recs := Score(assessment.Answers{}, catalog)

	if len(recs) != len(catalog) {
		t.Fatalf("Expected %d recommendations, got %d", len(catalog), len(recs))
	}
	for _, rec := range recs {
		if rec.Compatibility < 0 || rec.Compatibility > 100 {
			t.Errorf("Compatibility out of range for %q: %d", rec.Title, rec.Compatibility)
		}
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Compatibility > recs[i-1].Compatibility {
			t.Errorf("Result not sorted descending at index %d", i)
		}
	}
}

// TestScore_TiesKeepCatalogOrder verifies the sort is stable
func TestScore_TiesKeepCatalogOrder(t *testing.T) {
	catalog := []Profile{
		{ID: 10, Title: "First"},
		{ID: 20, Title: "Second"},
		{ID: 30, Title: "Third"},
	}
	recs := Score(assessment.Answers{}, catalog)

	for i, rec := range recs {
		if rec.ID != catalog[i].ID {
			t.Errorf("Tie broke catalog order: position %d has ID %d", i, rec.ID)
		}
	}
}

// TestScore_Idempotent verifies scoring is a pure function of its inputs
func TestScore_Idempotent(t *testing.T) {
	answers := fullAnswers()
	catalog := []Profile{fullProfile(), {ID: 2, Title: "Other"}}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first := ScoreAt(answers, catalog, now)
	second := ScoreAt(answers, catalog, now)

	if !reflect.DeepEqual(first, second) {
		t.Error("Scoring the same inputs twice produced different output")
	}
}

// TestScore_MatchReasonsCappedInBandOrder verifies reasons come out in band
// priority order, at most four, starting with the first matching skill
func TestScore_MatchReasonsCappedInBandOrder(t *testing.T) {
	recs := Score(fullAnswers(), []Profile{fullProfile()})
	reasons := recs[0].MatchReasons

	if len(reasons) > 4 {
		t.Fatalf("Expected at most 4 match reasons, got %d", len(reasons))
	}
	if len(reasons) == 0 {
		t.Fatal("Expected match reasons for a full match")
	}
	if want := "Your programming skills are directly relevant to this career"; reasons[0] != want {
		t.Errorf("Expected first reason %q, got %q", want, reasons[0])
	}
}

// TestScore_SpiritualBandSkippedWithoutImportance verifies the spiritual
// band needs both the profile alignment and the halal importance answer
func TestScore_SpiritualBandSkippedWithoutImportance(t *testing.T) {
	profile := Profile{
		ID: 4,
		Requirements: Requirements{
			IslamicAlignment: 5,
		},
	}

	// No halal_importance answer: only the work-style band applies.
	recs := Score(assessment.Answers{}, []Profile{profile})
	if recs[0].Compatibility != 0 {
		t.Errorf("Expected 0 without halal importance answer, got %d", recs[0].Compatibility)
	}

	// With the answer the band applies: (5/5)*3*2 = 6 of 25 applicable -> 24.
	answers := assessment.Answers{
		assessment.QuestionHalalImportance: assessment.ScaleAnswer{Value: 3},
	}
	recs = Score(answers, []Profile{profile})
	if recs[0].Compatibility != 24 {
		t.Errorf("Expected 24 with halal importance 3, got %d", recs[0].Compatibility)
	}
}

// TestScore_PartialSkillOverlap verifies proportional band scoring
func TestScore_PartialSkillOverlap(t *testing.T) {
	profile := Profile{
		ID: 5,
		Requirements: Requirements{
			RequiredSkills: []string{"programming", "design", "teaching", "research"},
		},
	}
	answers := assessment.Answers{
		assessment.QuestionTechnicalSkills: assessment.MultiSelectAnswer{Values: []string{"programming", "design"}},
	}

	recs := Score(answers, []Profile{profile})

	// 2 of 4 skills: 15 of 30 band points; applicable 45 -> 15/45 -> 33.
	if recs[0].Compatibility != 33 {
		t.Errorf("Expected 33 for half skills overlap, got %d", recs[0].Compatibility)
	}
}
