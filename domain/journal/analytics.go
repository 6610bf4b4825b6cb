package journal

import (
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

const (
	weeklyWindowWeeks  = 12
	trendWindowEntries = 7
	trendMinEntries    = 4
	// trendHysteresis keeps the direction from flip-flopping on noise:
	// deltas within ±0.2 classify as stable.
	trendHysteresis = 0.2
	// correlationMinEntries guards tag correlations against single-entry
	// statistical noise.
	correlationMinEntries = 2
	ratingMin             = 1
	ratingMax             = 5
)

// Analyze computes the full analytics view over a journal entry list,
// with now anchoring the streak walk. It returns nil when there are no
// entries; callers render that as a "not enough data" state, not an error.
//
// The input is treated as immutable: entries are copied before sorting and
// every output is freshly allocated, so a caller may share one snapshot
// across concurrent Analyze calls.
func Analyze(entries []Entry, now time.Time) *Analytics {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	result := &Analytics{
		TotalEntries:        len(sorted),
		GratitudeEntries:    countGratitude(sorted),
		AvgMood:             averageRating(sorted, Entry.HasMood, moodOf),
		AvgEnergy:           averageRating(sorted, Entry.HasEnergy, energyOf),
		MoodDistribution:    distribution(sorted, Entry.HasMood, moodOf),
		EnergyDistribution:  distribution(sorted, Entry.HasEnergy, energyOf),
		Daily:               dailySeries(sorted),
		Weekly:              weeklySeries(sorted),
		ActivityCorrelation: tagCorrelations(sorted, Entry.activities, false),
		TriggerCorrelation:  tagCorrelations(sorted, Entry.triggers, true),
		GratitudeImpact:     gratitudeImpact(sorted),
		Trend:               moodTrend(sorted),
	}
	result.CurrentStreak, result.LongestStreak = streaks(sorted, now)
	result.MoodEnergyCorrelation = moodEnergyCorrelation(sorted)
	return result
}

func moodOf(e Entry) int   { return *e.Mood }
func energyOf(e Entry) int { return *e.Energy }

func (e Entry) activities() []string { return e.Activities }
func (e Entry) triggers() []string   { return e.Triggers }

func countGratitude(entries []Entry) int {
	count := 0
	for _, e := range entries {
		if e.HasGratitude() {
			count++
		}
	}
	return count
}

// averageRating computes the arithmetic mean over entries where the field
// is present. Absent fields are excluded from numerator and denominator.
func averageRating(entries []Entry, has func(Entry) bool, value func(Entry) int) float64 {
	var values []float64
	for _, e := range entries {
		if has(e) {
			values = append(values, float64(value(e)))
		}
	}
	return mean(values)
}

// distribution buckets present ratings into the five fixed values. Empty
// buckets are reported with count 0 so chart consumers get a stable key set.
func distribution(entries []Entry, has func(Entry) bool, value func(Entry) int) []DistributionBucket {
	counts := make(map[int]int)
	for _, e := range entries {
		if has(e) {
			counts[value(e)]++
		}
	}

	buckets := make([]DistributionBucket, 0, ratingMax)
	for v := ratingMin; v <= ratingMax; v++ {
		buckets = append(buckets, DistributionBucket{Value: v, Count: counts[v]})
	}
	return buckets
}

// dailySeries emits one point per entry in date order. Absent ratings
// surface as 0 here so plots keep a continuous point set.
func dailySeries(entries []Entry) []DailyPoint {
	points := make([]DailyPoint, 0, len(entries))
	for _, e := range entries {
		point := DailyPoint{
			Date:          e.Date,
			HasGratitude:  e.HasGratitude(),
			ActivityCount: len(e.Activities),
		}
		if e.HasMood() {
			point.Mood = *e.Mood
		}
		if e.HasEnergy() {
			point.Energy = *e.Energy
		}
		points = append(points, point)
	}
	return points
}

// weeklySeries groups entries by the Sunday-aligned start of their week
// and keeps the most recent 12 weeks, chronologically ascending.
func weeklySeries(entries []Entry) []WeeklyPoint {
	byWeek := make(map[time.Time][]Entry)
	for _, e := range entries {
		byWeek[weekStart(e.Date)] = append(byWeek[weekStart(e.Date)], e)
	}

	starts := make([]time.Time, 0, len(byWeek))
	for start := range byWeek {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	if len(starts) > weeklyWindowWeeks {
		starts = starts[len(starts)-weeklyWindowWeeks:]
	}

	points := make([]WeeklyPoint, 0, len(starts))
	for _, start := range starts {
		group := byWeek[start]
		points = append(points, WeeklyPoint{
			WeekStart: start,
			AvgMood:   averageRating(group, Entry.HasMood, moodOf),
			AvgEnergy: averageRating(group, Entry.HasEnergy, energyOf),
			Entries:   len(group),
		})
	}
	return points
}

// tagCorrelations maps each tag to the mean mood of the mood-bearing
// entries carrying it, dropping tags with fewer than two contributing
// entries. Activities sort best mood first; triggers (ascending) sort
// worst mood first since they are the ones to watch out for.
func tagCorrelations(entries []Entry, tags func(Entry) []string, ascending bool) []TagCorrelation {
	moodsByTag := make(map[string][]float64)
	for _, e := range entries {
		if !e.HasMood() {
			continue
		}
		for _, tag := range tags(e) {
			moodsByTag[tag] = append(moodsByTag[tag], float64(*e.Mood))
		}
	}

	var correlations []TagCorrelation
	for tag, moods := range moodsByTag {
		if len(moods) < correlationMinEntries {
			continue
		}
		correlations = append(correlations, TagCorrelation{
			Tag:     tag,
			AvgMood: mean(moods),
			Entries: len(moods),
		})
	}

	sort.Slice(correlations, func(i, j int) bool {
		if correlations[i].AvgMood != correlations[j].AvgMood {
			if ascending {
				return correlations[i].AvgMood < correlations[j].AvgMood
			}
			return correlations[i].AvgMood > correlations[j].AvgMood
		}
		return correlations[i].Tag < correlations[j].Tag
	})
	return correlations
}

// gratitudeImpact compares mean mood between mood-bearing entries with and
// without gratitude text. With either partition empty there is nothing to
// compare and the result is nil.
func gratitudeImpact(entries []Entry) *GratitudeImpact {
	var with, without []float64
	for _, e := range entries {
		if !e.HasMood() {
			continue
		}
		if e.HasGratitude() {
			with = append(with, float64(*e.Mood))
		} else {
			without = append(without, float64(*e.Mood))
		}
	}
	if len(with) == 0 || len(without) == 0 {
		return nil
	}

	withMean := mean(with)
	withoutMean := mean(without)
	return &GratitudeImpact{
		WithGratitude:    withMean,
		WithoutGratitude: withoutMean,
		Difference:       withMean - withoutMean,
	}
}

// moodTrend compares the mean mood of the most recent 7 mood-bearing
// entries against the 7 preceding them. Under 4 entries, or with an empty
// prior window, there is no trend to report.
func moodTrend(entries []Entry) *Trend {
	var moods []float64
	for _, e := range entries {
		if e.HasMood() {
			moods = append(moods, float64(*e.Mood))
		}
	}
	if len(moods) < trendMinEntries {
		return nil
	}

	recentStart := len(moods) - trendWindowEntries
	if recentStart < 0 {
		recentStart = 0
	}
	recent := moods[recentStart:]

	priorStart := recentStart - trendWindowEntries
	if priorStart < 0 {
		priorStart = 0
	}
	prior := moods[priorStart:recentStart]
	if len(prior) == 0 {
		return nil
	}

	change := mean(recent) - mean(prior)
	direction := TrendStable
	switch {
	case change > trendHysteresis:
		direction = TrendImproving
	case change < -trendHysteresis:
		direction = TrendDeclining
	}
	return &Trend{Direction: direction, Change: change}
}

// streaks walks distinct entry days and returns the current streak ending
// today (or yesterday) and the longest run anywhere in the list. Multiple
// entries on one day count once.
func streaks(entries []Entry, now time.Time) (current, longest int) {
	daySet := make(map[time.Time]bool)
	for _, e := range entries {
		daySet[dayKey(e.Date)] = true
	}

	days := make([]time.Time, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	// Longest: scan ascending for consecutive-day runs.
	run := 0
	for i, day := range days {
		if i > 0 && daysBetween(days[i-1], day) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// Current: walk backwards from today, stopping at the first gap of
	// more than one day.
	prev := dayKey(now)
	for i := len(days) - 1; i >= 0; i-- {
		if daysBetween(days[i], prev) > 1 {
			break
		}
		current++
		prev = days[i]
	}
	return current, longest
}

// moodEnergyCorrelation computes the Pearson correlation over entries
// carrying both ratings; nil under 3 paired samples or with zero variance.
func moodEnergyCorrelation(entries []Entry) *float64 {
	var moods, energies []float64
	for _, e := range entries {
		if e.HasMood() && e.HasEnergy() {
			moods = append(moods, float64(*e.Mood))
			energies = append(energies, float64(*e.Energy))
		}
	}
	if len(moods) < 3 {
		return nil
	}

	r := stat.Correlation(moods, energies, nil)
	if math.IsNaN(r) {
		return nil
	}
	return &r
}

// dayKey collapses a timestamp to its calendar day. Days are rebuilt in
// UTC so consecutive keys are exactly 24h apart regardless of DST.
func dayKey(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from earlier to later day keys
func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

// weekStart returns the Sunday-aligned start of the week containing t
func weekStart(t time.Time) time.Time {
	day := dayKey(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// mean is a nil-safe arithmetic mean; empty input means 0.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}
