package journal

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC) // a Sunday

func intp(v int) *int { return &v }

func entryOn(daysAgo int, mood int) Entry {
	return Entry{
		ID:   "e",
		Date: testNow.AddDate(0, 0, -daysAgo),
		Mood: intp(mood),
	}
}

// TestAnalyze_EmptyInput verifies no data yields nil, not an error state
func TestAnalyze_EmptyInput(t *testing.T) {
	if got := Analyze(nil, testNow); got != nil {
		t.Fatalf("Expected nil analytics for empty input, got %+v", got)
	}
}

// TestAnalyze_SingleEntry verifies the minimal-input shape: averages present,
// trend and gratitude impact absent
func TestAnalyze_SingleEntry(t *testing.T) {
	result := Analyze([]Entry{entryOn(0, 4)}, testNow)

	if result == nil {
		t.Fatal("Expected analytics for one entry")
	}
	if result.AvgMood != 4 {
		t.Errorf("Expected avg mood 4, got %f", result.AvgMood)
	}
	if result.Trend != nil {
		t.Error("Expected no trend with a single entry")
	}
	if result.GratitudeImpact != nil {
		t.Error("Expected no gratitude impact with a single partition")
	}
	if result.TotalEntries != 1 {
		t.Errorf("Expected 1 total entry, got %d", result.TotalEntries)
	}
}

// TestAnalyze_AveragesExcludeAbsentRatings verifies entries missing a field
// are excluded from numerator and denominator
func TestAnalyze_AveragesExcludeAbsentRatings(t *testing.T) {
	entries := []Entry{
		{Date: testNow.AddDate(0, 0, -2), Mood: intp(2)},
		{Date: testNow.AddDate(0, 0, -1), Mood: intp(4)},
		{Date: testNow, Energy: intp(5)}, // no mood
	}
	result := Analyze(entries, testNow)

	if result.AvgMood != 3 {
		t.Errorf("Expected avg mood 3 over mood-bearing entries, got %f", result.AvgMood)
	}
	if result.AvgEnergy != 5 {
		t.Errorf("Expected avg energy 5, got %f", result.AvgEnergy)
	}
}

// TestAnalyze_DistributionAlwaysFiveBuckets verifies zero-count buckets are
// reported and counts sum to the mood-bearing entries
func TestAnalyze_DistributionAlwaysFiveBuckets(t *testing.T) {
	entries := []Entry{
		entryOn(0, 4),
		entryOn(1, 4),
		entryOn(2, 1),
		{Date: testNow.AddDate(0, 0, -3)}, // no mood
	}
	result := Analyze(entries, testNow)

	if len(result.MoodDistribution) != 5 {
		t.Fatalf("Expected 5 mood buckets, got %d", len(result.MoodDistribution))
	}
	total := 0
	for i, bucket := range result.MoodDistribution {
		if bucket.Value != i+1 {
			t.Errorf("Bucket %d has value %d, want %d", i, bucket.Value, i+1)
		}
		total += bucket.Count
	}
	if total != 3 {
		t.Errorf("Bucket counts sum to %d, want 3", total)
	}
	if result.MoodDistribution[3].Count != 2 {
		t.Errorf("Expected 2 entries with mood 4, got %d", result.MoodDistribution[3].Count)
	}
	if result.MoodDistribution[1].Count != 0 {
		t.Errorf("Expected empty bucket for mood 2, got %d", result.MoodDistribution[1].Count)
	}
}

// TestAnalyze_DailySeriesSurfacesAbsenceAsZero verifies the per-point series
// plots absent ratings as 0 for continuity
func TestAnalyze_DailySeriesSurfacesAbsenceAsZero(t *testing.T) {
	entries := []Entry{
		{Date: testNow.AddDate(0, 0, -1), Mood: intp(3), Activities: []string{"walk", "reading"}},
		{Date: testNow, Gratitude: "family"},
	}
	result := Analyze(entries, testNow)

	if len(result.Daily) != 2 {
		t.Fatalf("Expected 2 daily points, got %d", len(result.Daily))
	}
	if result.Daily[0].Mood != 3 || result.Daily[0].ActivityCount != 2 {
		t.Errorf("Unexpected first point: %+v", result.Daily[0])
	}
	if result.Daily[1].Mood != 0 || result.Daily[1].Energy != 0 {
		t.Errorf("Absent ratings should plot as 0, got %+v", result.Daily[1])
	}
	if !result.Daily[1].HasGratitude {
		t.Error("Expected gratitude flag on second point")
	}
}

// TestAnalyze_TrendImproving reproduces the 7-vs-7 window comparison
func TestAnalyze_TrendImproving(t *testing.T) {
	var entries []Entry
	// Prior window: seven entries averaging 4.0.
	for i := 0; i < 7; i++ {
		entries = append(entries, entryOn(13-i, 4))
	}
	// Recent window: four 5s and three 4s, averaging 32/7.
	recent := []int{5, 5, 5, 5, 4, 4, 4}
	for i, mood := range recent {
		entries = append(entries, entryOn(6-i, mood))
	}

	result := Analyze(entries, testNow)
	if result.Trend == nil {
		t.Fatal("Expected a trend with 14 entries")
	}
	if result.Trend.Direction != TrendImproving {
		t.Errorf("Expected improving trend, got %s", result.Trend.Direction)
	}
	want := (5.0*4 + 4.0*3) / 7.0 - 4.0
	if math.Abs(result.Trend.Change-want) > 1e-9 {
		t.Errorf("Expected change %f, got %f", want, result.Trend.Change)
	}
}

// TestAnalyze_TrendDecliningAndStable covers the hysteresis band
func TestAnalyze_TrendDecliningAndStable(t *testing.T) {
	var declining []Entry
	for i := 0; i < 7; i++ {
		declining = append(declining, entryOn(13-i, 5))
	}
	for i := 0; i < 7; i++ {
		declining = append(declining, entryOn(6-i, 3))
	}
	result := Analyze(declining, testNow)
	if result.Trend == nil || result.Trend.Direction != TrendDeclining {
		t.Fatalf("Expected declining trend, got %+v", result.Trend)
	}

	var stable []Entry
	for i := 0; i < 14; i++ {
		stable = append(stable, entryOn(13-i, 4))
	}
	result = Analyze(stable, testNow)
	if result.Trend == nil || result.Trend.Direction != TrendStable {
		t.Fatalf("Expected stable trend, got %+v", result.Trend)
	}
}

// TestAnalyze_TrendAbsentUnderFourEntries verifies the minimum-history guard
func TestAnalyze_TrendAbsentUnderFourEntries(t *testing.T) {
	entries := []Entry{entryOn(2, 3), entryOn(1, 4), entryOn(0, 5)}
	result := Analyze(entries, testNow)

	if result.Trend != nil {
		t.Errorf("Expected no trend under 4 entries, got %+v", result.Trend)
	}
}

// TestAnalyze_StreakStopsAtGap reproduces today, yesterday, gap, three days
// ago -> current streak 2
func TestAnalyze_StreakStopsAtGap(t *testing.T) {
	entries := []Entry{entryOn(0, 4), entryOn(1, 3), entryOn(3, 5)}
	result := Analyze(entries, testNow)

	if result.CurrentStreak != 2 {
		t.Errorf("Expected current streak 2, got %d", result.CurrentStreak)
	}
}

// TestAnalyze_StreakCountsEachDayOnce verifies duplicate same-day entries do
// not extend the streak
func TestAnalyze_StreakCountsEachDayOnce(t *testing.T) {
	entries := []Entry{
		entryOn(0, 4),
		{Date: testNow.Add(-2 * time.Hour), Mood: intp(5)}, // same calendar day
		entryOn(1, 3),
	}
	result := Analyze(entries, testNow)

	if result.CurrentStreak != 2 {
		t.Errorf("Expected current streak 2, got %d", result.CurrentStreak)
	}
}

// TestAnalyze_StreakStartsYesterdayWithoutTodayEntry verifies a missing
// today entry is not a streak-breaking gap
func TestAnalyze_StreakStartsYesterdayWithoutTodayEntry(t *testing.T) {
	entries := []Entry{entryOn(1, 4), entryOn(2, 3)}
	result := Analyze(entries, testNow)

	if result.CurrentStreak != 2 {
		t.Errorf("Expected current streak 2 starting yesterday, got %d", result.CurrentStreak)
	}
}

// TestAnalyze_LongestStreakCoversWholeWindow verifies the longest run is
// found even when the current streak is shorter
func TestAnalyze_LongestStreakCoversWholeWindow(t *testing.T) {
	entries := []Entry{
		entryOn(0, 4),
		entryOn(5, 3), entryOn(6, 3), entryOn(7, 4), entryOn(8, 5),
	}
	result := Analyze(entries, testNow)

	if result.CurrentStreak != 1 {
		t.Errorf("Expected current streak 1, got %d", result.CurrentStreak)
	}
	if result.LongestStreak != 4 {
		t.Errorf("Expected longest streak 4, got %d", result.LongestStreak)
	}
}

// TestAnalyze_ActivityCorrelationNeedsTwoEntries verifies the noise guard
func TestAnalyze_ActivityCorrelationNeedsTwoEntries(t *testing.T) {
	entries := []Entry{
		{Date: testNow.AddDate(0, 0, -3), Mood: intp(5), Activities: []string{"exercise", "rare"}},
		{Date: testNow.AddDate(0, 0, -2), Mood: intp(4), Activities: []string{"exercise"}},
		{Date: testNow.AddDate(0, 0, -1), Mood: intp(2), Activities: []string{"reading"}},
		{Date: testNow, Mood: intp(3), Activities: []string{"reading"}},
	}
	result := Analyze(entries, testNow)

	if len(result.ActivityCorrelation) != 2 {
		t.Fatalf("Expected 2 correlated activities, got %d", len(result.ActivityCorrelation))
	}
	for _, c := range result.ActivityCorrelation {
		if c.Tag == "rare" {
			t.Error("Single-entry activity should be excluded even with mood 5")
		}
	}
	if result.ActivityCorrelation[0].Tag != "exercise" {
		t.Errorf("Expected exercise first (best mood), got %q", result.ActivityCorrelation[0].Tag)
	}
	if result.ActivityCorrelation[0].AvgMood != 4.5 {
		t.Errorf("Expected exercise avg mood 4.5, got %f", result.ActivityCorrelation[0].AvgMood)
	}
}

// TestAnalyze_TriggerCorrelationWorstFirst verifies triggers sort ascending
func TestAnalyze_TriggerCorrelationWorstFirst(t *testing.T) {
	entries := []Entry{
		{Date: testNow.AddDate(0, 0, -3), Mood: intp(1), Triggers: []string{"deadlines"}},
		{Date: testNow.AddDate(0, 0, -2), Mood: intp(2), Triggers: []string{"deadlines"}},
		{Date: testNow.AddDate(0, 0, -1), Mood: intp(4), Triggers: []string{"traffic"}},
		{Date: testNow, Mood: intp(4), Triggers: []string{"traffic"}},
	}
	result := Analyze(entries, testNow)

	if len(result.TriggerCorrelation) != 2 {
		t.Fatalf("Expected 2 correlated triggers, got %d", len(result.TriggerCorrelation))
	}
	if result.TriggerCorrelation[0].Tag != "deadlines" {
		t.Errorf("Expected worst trigger first, got %q", result.TriggerCorrelation[0].Tag)
	}
}

// TestAnalyze_GratitudeImpact verifies the partition comparison and its
// absent case
func TestAnalyze_GratitudeImpact(t *testing.T) {
	entries := []Entry{
		{Date: testNow.AddDate(0, 0, -2), Mood: intp(5), Gratitude: "health"},
		{Date: testNow.AddDate(0, 0, -1), Mood: intp(4), Gratitude: "family"},
		{Date: testNow, Mood: intp(3)},
	}
	result := Analyze(entries, testNow)

	if result.GratitudeImpact == nil {
		t.Fatal("Expected gratitude impact with both partitions populated")
	}
	if result.GratitudeImpact.WithGratitude != 4.5 {
		t.Errorf("Expected gratitude mean 4.5, got %f", result.GratitudeImpact.WithGratitude)
	}
	if result.GratitudeImpact.Difference != 1.5 {
		t.Errorf("Expected difference 1.5, got %f", result.GratitudeImpact.Difference)
	}

	// All entries grateful: nothing to compare against.
	allGrateful := []Entry{
		{Date: testNow.AddDate(0, 0, -1), Mood: intp(5), Gratitude: "a"},
		{Date: testNow, Mood: intp(4), Gratitude: "b"},
	}
	if got := Analyze(allGrateful, testNow).GratitudeImpact; got != nil {
		t.Errorf("Expected nil impact with an empty partition, got %+v", got)
	}
}

// TestAnalyze_WeeklySeries verifies Sunday alignment and the 12-week cap
func TestAnalyze_WeeklySeries(t *testing.T) {
	var entries []Entry
	// One entry per week for 15 weeks, all on Mondays.
	for week := 0; week < 15; week++ {
		entries = append(entries, Entry{
			Date: testNow.AddDate(0, 0, -7*week+1),
			Mood: intp(3),
		})
	}
	result := Analyze(entries, testNow)

	if len(result.Weekly) != 12 {
		t.Fatalf("Expected 12 weekly points, got %d", len(result.Weekly))
	}
	for i, point := range result.Weekly {
		if point.WeekStart.Weekday() != time.Sunday {
			t.Errorf("Week %d not Sunday-aligned: %s", i, point.WeekStart.Weekday())
		}
		if i > 0 && !result.Weekly[i-1].WeekStart.Before(point.WeekStart) {
			t.Errorf("Weekly series not ascending at index %d", i)
		}
	}
}

// TestAnalyze_MoodEnergyCorrelation verifies the paired-sample Pearson
// supplement and its minimum-sample guard
func TestAnalyze_MoodEnergyCorrelation(t *testing.T) {
	entries := []Entry{
		{Date: testNow.AddDate(0, 0, -3), Mood: intp(1), Energy: intp(1)},
		{Date: testNow.AddDate(0, 0, -2), Mood: intp(3), Energy: intp(3)},
		{Date: testNow.AddDate(0, 0, -1), Mood: intp(5), Energy: intp(5)},
	}
	result := Analyze(entries, testNow)

	if result.MoodEnergyCorrelation == nil {
		t.Fatal("Expected a correlation with 3 paired samples")
	}
	if math.Abs(*result.MoodEnergyCorrelation-1.0) > 1e-9 {
		t.Errorf("Expected perfect correlation, got %f", *result.MoodEnergyCorrelation)
	}

	tooFew := entries[:2]
	if got := Analyze(tooFew, testNow).MoodEnergyCorrelation; got != nil {
		t.Errorf("Expected nil correlation under 3 pairs, got %f", *got)
	}
}

// TestFilterRange verifies the lookback cutoff and ascending sort
func TestFilterRange(t *testing.T) {
	entries := []Entry{
		{ID: "old", Date: testNow.AddDate(0, 0, -40)},
		{ID: "recent", Date: testNow.AddDate(0, 0, -2)},
		{ID: "mid", Date: testNow.AddDate(0, 0, -10)},
	}

	out := FilterRange(entries, Range30Days, testNow)
	if len(out) != 2 {
		t.Fatalf("Expected 2 entries within 30 days, got %d", len(out))
	}
	if out[0].ID != "mid" || out[1].ID != "recent" {
		t.Errorf("Expected ascending date order, got %s then %s", out[0].ID, out[1].ID)
	}

	if got := FilterRange(entries, Range1Year, testNow); len(got) != 3 {
		t.Errorf("Expected all entries within a year, got %d", len(got))
	}

	// Input order must survive.
	if entries[0].ID != "old" {
		t.Error("FilterRange mutated its input slice")
	}
}
