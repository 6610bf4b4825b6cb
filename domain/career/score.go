package career

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"rushd/domain/assessment"
)

const maxMatchReasons = 4

// scoringBand is one weighted comparison criterion. A band only counts
// toward the renormalization denominator when applicable returns true, so
// profiles that under-specify their requirements are not penalized for
// criteria they never declared.
type scoringBand struct {
	name       string
	weight     float64
	applicable func(Profile, assessment.Answers) bool
	score      func(Profile, assessment.Answers) (points float64, reason string)
}

// scoringBands is the declarative band table, in reason-priority order:
// skills, interests, values, work style, spiritual alignment.
var scoringBands = []scoringBand{
	{
		name:   "skills",
		weight: 30,
		applicable: func(p Profile, _ assessment.Answers) bool {
			return len(p.Requirements.RequiredSkills) > 0
		},
		score: func(p Profile, a assessment.Answers) (float64, string) {
			matched := intersect(a.MultiSelect(assessment.QuestionTechnicalSkills), p.Requirements.RequiredSkills)
			if len(matched) == 0 {
				return 0, ""
			}
			ratio := float64(len(matched)) / float64(len(p.Requirements.RequiredSkills))
			return ratio * 30, fmt.Sprintf("Your %s skills are directly relevant to this career", matched[0])
		},
	},
	{
		name:   "interests",
		weight: 25,
		applicable: func(p Profile, _ assessment.Answers) bool {
			return len(p.Requirements.Industries) > 0
		},
		score: func(p Profile, a assessment.Answers) (float64, string) {
			matched := intersect(a.MultiSelect(assessment.QuestionWorkAreas), p.Requirements.Industries)
			if len(matched) == 0 {
				return 0, ""
			}
			ratio := float64(len(matched)) / float64(len(p.Requirements.Industries))
			return ratio * 25, fmt.Sprintf("Matches your interest in %s", matched[0])
		},
	},
	{
		name:   "values",
		weight: 20,
		applicable: func(p Profile, _ assessment.Answers) bool {
			return len(p.Requirements.Values) > 0
		},
		score: func(p Profile, a assessment.Answers) (float64, string) {
			matched := intersect(a.MultiSelect(assessment.QuestionWorkValues), p.Requirements.Values)
			if len(matched) == 0 {
				return 0, ""
			}
			ratio := float64(len(matched)) / float64(len(p.Requirements.Values))
			return ratio * 20, fmt.Sprintf("Aligns with your value of %s", matched[0])
		},
	},
	{
		name:   "work_style",
		weight: 15,
		applicable: func(Profile, assessment.Answers) bool {
			return true
		},
		score: func(p Profile, a assessment.Answers) (float64, string) {
			style, ok := a.Select(assessment.QuestionWorkStyle)
			if !ok || p.Requirements.WorkStyle == "" || !strings.EqualFold(style, p.Requirements.WorkStyle) {
				return 0, ""
			}
			return 15, fmt.Sprintf("Suits your %s work style", style)
		},
	},
	{
		name:   "spiritual",
		weight: 10,
		applicable: func(p Profile, a assessment.Answers) bool {
			if p.Requirements.IslamicAlignment < 1 {
				return false
			}
			_, ok := a.Scale(assessment.QuestionHalalImportance)
			return ok
		},
		score: func(p Profile, a assessment.Answers) (float64, string) {
			importance, _ := a.Scale(assessment.QuestionHalalImportance)
			points := float64(p.Requirements.IslamicAlignment) / 5 * float64(importance) * 2
			points = math.Min(math.Max(points, 0), 10)
			if points == 0 {
				return 0, ""
			}
			return points, "Strong alignment with Islamic values"
		},
	},
}

// Score ranks every profile in the catalog against the given assessment.
//
// Each applicable band contributes 0..weight points; the final score is the
// earned total renormalized against the sum of applicable weights only and
// expressed as an integer percentage, so a profile that fully matches the
// criteria it declares scores 100 even when it declares only some of them.
//
// The result is sorted by compatibility descending with catalog order
// preserved on ties. Sparse or empty answers never fail: unmatched bands
// contribute zero and the ranking is still produced.
func Score(answers assessment.Answers, catalog []Profile) []Recommendation {
	return ScoreAt(answers, catalog, time.Now())
}

// ScoreAt is Score with an explicit generation timestamp.
func ScoreAt(answers assessment.Answers, catalog []Profile, now time.Time) []Recommendation {
	recs := make([]Recommendation, 0, len(catalog))
	for _, profile := range catalog {
		compatibility, reasons := scoreProfile(answers, profile)
		recs = append(recs, Recommendation{
			Profile:       profile,
			Compatibility: compatibility,
			MatchReasons:  reasons,
			GeneratedAt:   now,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Compatibility > recs[j].Compatibility
	})
	return recs
}

func scoreProfile(answers assessment.Answers, profile Profile) (int, []string) {
	var earned, applicableWeight float64
	var reasons []string

	for _, band := range scoringBands {
		if !band.applicable(profile, answers) {
			continue
		}
		applicableWeight += band.weight

		points, reason := band.score(profile, answers)
		earned += points
		if points > 0 && reason != "" && len(reasons) < maxMatchReasons {
			reasons = append(reasons, reason)
		}
	}

	if applicableWeight == 0 {
		return 0, reasons
	}

	compatibility := int(math.Round(100 * earned / applicableWeight))
	if compatibility < 0 {
		compatibility = 0
	} else if compatibility > 100 {
		compatibility = 100
	}
	return compatibility, reasons
}

// intersect returns the elements of selected that appear in required,
// preserving the user's selection order. Comparison is case-insensitive.
func intersect(selected, required []string) []string {
	if len(selected) == 0 || len(required) == 0 {
		return nil
	}
	requiredSet := make(map[string]bool, len(required))
	for _, r := range required {
		requiredSet[strings.ToLower(strings.TrimSpace(r))] = true
	}

	var matched []string
	for _, s := range selected {
		if requiredSet[strings.ToLower(strings.TrimSpace(s))] {
			matched = append(matched, s)
		}
	}
	return matched
}
