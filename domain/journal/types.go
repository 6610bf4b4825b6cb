package journal

import (
	"time"
)

// Entry is one mood-journal record. Mood and energy are optional 1-5
// ratings; nil means the user skipped the field, which the analytics
// treat as "not contributing" rather than zero.
type Entry struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Mood       *int      `json:"mood,omitempty"`
	Energy     *int      `json:"energy,omitempty"`
	Note       string    `json:"note"`
	Gratitude  string    `json:"gratitude"`
	Activities []string  `json:"activities"`
	Triggers   []string  `json:"triggers"`
}

// HasMood reports whether the entry carries a mood rating
func (e Entry) HasMood() bool { return e.Mood != nil }

// HasEnergy reports whether the entry carries an energy rating
func (e Entry) HasEnergy() bool { return e.Energy != nil }

// HasGratitude reports whether the entry carries gratitude text
func (e Entry) HasGratitude() bool { return e.Gratitude != "" }

// TrendDirection classifies the recent mood trajectory
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// Trend compares the mean mood of the most recent entries against the
// window preceding them. Change is recent minus prior.
type Trend struct {
	Direction TrendDirection `json:"direction"`
	Change    float64        `json:"change"`
}

// DistributionBucket is one fixed rating bucket (1-5). Zero-count buckets
// are always reported so chart consumers see a stable key set.
type DistributionBucket struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// DailyPoint is one plotted entry. Absent mood/energy surface as 0 here
// for plotting continuity, unlike the averages which exclude them.
type DailyPoint struct {
	Date          time.Time `json:"date"`
	Mood          int       `json:"mood"`
	Energy        int       `json:"energy"`
	HasGratitude  bool      `json:"has_gratitude"`
	ActivityCount int       `json:"activity_count"`
}

// WeeklyPoint aggregates one Sunday-aligned week
type WeeklyPoint struct {
	WeekStart time.Time `json:"week_start"`
	AvgMood   float64   `json:"avg_mood"`
	AvgEnergy float64   `json:"avg_energy"`
	Entries   int       `json:"entries"`
}

// TagCorrelation relates an activity or trigger tag to the mean mood of
// the entries carrying it
type TagCorrelation struct {
	Tag     string  `json:"tag"`
	AvgMood float64 `json:"avg_mood"`
	Entries int     `json:"entries"`
}

// GratitudeImpact compares mean mood between entries with and without
// gratitude text. Difference is with minus without.
type GratitudeImpact struct {
	WithGratitude    float64 `json:"with_gratitude"`
	WithoutGratitude float64 `json:"without_gratitude"`
	Difference       float64 `json:"difference"`
}

// Analytics is the full derived view over a filtered entry list. Optional
// sections are nil when there is nothing to compute; callers render those
// as empty states, never as errors.
type Analytics struct {
	TotalEntries     int     `json:"total_entries"`
	GratitudeEntries int     `json:"gratitude_entries"`
	AvgMood          float64 `json:"avg_mood"`
	AvgEnergy        float64 `json:"avg_energy"`

	MoodDistribution   []DistributionBucket `json:"mood_distribution"`   // always 5 buckets
	EnergyDistribution []DistributionBucket `json:"energy_distribution"` // always 5 buckets

	Daily  []DailyPoint  `json:"daily"`
	Weekly []WeeklyPoint `json:"weekly"` // most recent 12 weeks, ascending

	ActivityCorrelation []TagCorrelation `json:"activity_correlation"` // best mood first
	TriggerCorrelation  []TagCorrelation `json:"trigger_correlation"`  // worst mood first

	GratitudeImpact *GratitudeImpact `json:"gratitude_impact,omitempty"`
	Trend           *Trend           `json:"trend,omitempty"`

	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`

	// Pearson correlation between mood and energy over entries carrying
	// both; nil under 3 paired samples.
	MoodEnergyCorrelation *float64 `json:"mood_energy_correlation,omitempty"`
}
