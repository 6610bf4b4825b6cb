package testkit

import (
	"time"

	"rushd/domain/career"
	"rushd/domain/journal"
)

// TestKit provides deterministic fixtures for the career catalog and
// journal series. Everything is seeded data, not random: tests and the
// demo mode need reproducible analytics.
type TestKit struct {
	now time.Time
}

// NewTestKit creates a test kit anchored at a fixed reference time
func NewTestKit(now time.Time) *TestKit {
	return &TestKit{now: now}
}

// Now returns the kit's reference time
func (k *TestKit) Now() time.Time { return k.now }

// SampleCatalog returns a small catalog spanning the scoring edge cases:
// fully specified requirements, a skills-only profile, and one with no
// requirements at all.
func (k *TestKit) SampleCatalog() []career.Profile {
	return []career.Profile{
		{
			ID:          1,
			Title:       "Software Engineer",
			Description: "Designs and builds software systems.",
			Industry:    "Technology",
			SalaryRange: "$70k - $150k",
			Growth:      "Very High",
			IslamicPerspective: career.IslamicPerspective{
				Alignment: "good",
				Notes:     "Generally permissible; avoid haram product domains.",
			},
			Requirements: career.Requirements{
				RequiredSkills:   []string{"programming", "problem solving", "data analysis"},
				SoftSkills:       []string{"communication", "teamwork"},
				Industries:       []string{"technology", "finance"},
				Values:           []string{"growth", "impact"},
				WorkStyle:        "collaborative",
				IslamicAlignment: 4,
			},
		},
		{
			ID:          2,
			Title:       "Islamic Finance Advisor",
			Description: "Guides clients through shariah-compliant investment.",
			Industry:    "Finance",
			SalaryRange: "$60k - $120k",
			Growth:      "High",
			IslamicPerspective: career.IslamicPerspective{
				Alignment: "excellent",
				Notes:     "Directly serves the halal economy.",
			},
			Requirements: career.Requirements{
				RequiredSkills:   []string{"financial analysis", "communication"},
				Industries:       []string{"finance"},
				Values:           []string{"service", "integrity"},
				WorkStyle:        "structured",
				IslamicAlignment: 5,
			},
		},
		{
			ID:          3,
			Title:       "Technical Writer",
			Description: "Explains complex systems in plain language.",
			Industry:    "Technology",
			SalaryRange: "$50k - $90k",
			Growth:      "Medium",
			IslamicPerspective: career.IslamicPerspective{
				Alignment: "good",
			},
			Requirements: career.Requirements{
				RequiredSkills: []string{"writing", "research"},
			},
		},
		{
			ID:          4,
			Title:       "Community Coordinator",
			Description: "Runs local programs and volunteer networks.",
			Industry:    "Nonprofit",
			SalaryRange: "$40,000 - $65,000",
			Growth:      "Low",
			IslamicPerspective: career.IslamicPerspective{
				Alignment: "excellent",
				Notes:     "Service-centered work.",
			},
		},
	}
}

// JournalSeries returns days of consecutive entries ending at the kit's
// reference day. Moods follow a gentle upward ramp so trend detection has
// signal; every third entry carries gratitude text.
func (k *TestKit) JournalSeries(days int) []journal.Entry {
	entries := make([]journal.Entry, 0, days)
	for i := days - 1; i >= 0; i-- {
		mood := 3 + (days-1-i)%3 - 1 // cycles 2,3,4
		energy := 2 + (days-1-i)%4   // cycles 2..5
		entry := journal.Entry{
			Date:       k.now.AddDate(0, 0, -i),
			Mood:       &mood,
			Energy:     &energy,
			Note:       "fixture entry",
			Activities: []string{"prayer", "walking"},
		}
		if i%3 == 0 {
			entry.Gratitude = "health and family"
		}
		if mood <= 2 {
			entry.Triggers = []string{"poor sleep"}
		}
		entries = append(entries, entry)
	}
	return entries
}
