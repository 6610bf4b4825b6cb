package journal

import (
	"sort"
	"time"
)

// Range is a symbolic lookback window for analytics
type Range string

const (
	Range7Days  Range = "7days"
	Range30Days Range = "30days"
	Range90Days Range = "90days"
	Range1Year  Range = "1year"
)

// Ranges lists every supported lookback window
func Ranges() []Range {
	return []Range{Range7Days, Range30Days, Range90Days, Range1Year}
}

// Duration returns the lookback length for the range; ok is false for
// unrecognized values.
func (r Range) Duration() (time.Duration, bool) {
	switch r {
	case Range7Days:
		return 7 * 24 * time.Hour, true
	case Range30Days:
		return 30 * 24 * time.Hour, true
	case Range90Days:
		return 90 * 24 * time.Hour, true
	case Range1Year:
		return 365 * 24 * time.Hour, true
	}
	return 0, false
}

// FilterRange returns a new slice of the entries dated within the lookback
// window ending at now, sorted ascending by date. An unrecognized range
// keeps every entry. The input slice is never modified.
func FilterRange(entries []Entry, r Range, now time.Time) []Entry {
	lookback, bounded := r.Duration()
	cutoff := time.Time{}
	if bounded {
		cutoff = now.Add(-lookback)
	}

	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if !bounded || !entry.Date.Before(cutoff) {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
