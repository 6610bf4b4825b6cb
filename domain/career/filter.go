package career

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// SortKey selects the ordering applied by FilterAndSort
type SortKey string

const (
	SortCompatibility SortKey = "compatibility" // descending
	SortTitle         SortKey = "title"         // lexicographic
	SortSalary        SortKey = "salary"        // descending by parsed max salary
	SortGrowth        SortKey = "growth"        // descending by growth tier
	SortIndustry      SortKey = "industry"      // lexicographic
	SortSavedDate     SortKey = "savedDate"     // descending, unsaved last
)

// growthRank orders growth tiers for sorting; unknown tiers rank lowest.
var growthRank = map[string]int{
	"Very High": 4,
	"High":      3,
	"Medium":    2,
	"Low":       1,
}

// Filters narrows a recommendation list. Zero values disable a filter;
// all active filters must pass (AND-combined).
type Filters struct {
	MinCompatibility int
	Industry         string // substring match, case-insensitive
	MinSalary        int    // against the parsed top of the salary range
	Growth           string // exact growth tier
	IslamicAlignment string // exact perspective tier
	SavedOnly        bool
	SavedIDs         map[int]bool // membership set for SavedOnly
}

// FilterAndSort returns a new slice of the recommendations passing every
// active filter, ordered by the given sort key. The input slice is never
// modified.
func FilterAndSort(recs []Recommendation, filters Filters, key SortKey) []Recommendation {
	out := make([]Recommendation, 0, len(recs))
	for _, rec := range recs {
		if matchesFilters(rec, filters) {
			out = append(out, rec)
		}
	}
	sortRecommendations(out, key)
	return out
}

func matchesFilters(rec Recommendation, f Filters) bool {
	if f.MinCompatibility > 0 && rec.Compatibility < f.MinCompatibility {
		return false
	}
	if f.Industry != "" && !strings.Contains(strings.ToLower(rec.Industry), strings.ToLower(f.Industry)) {
		return false
	}
	if f.MinSalary > 0 && MaxSalary(rec.SalaryRange) < f.MinSalary {
		return false
	}
	if f.Growth != "" && rec.Growth != f.Growth {
		return false
	}
	if f.IslamicAlignment != "" && !strings.EqualFold(rec.IslamicPerspective.Alignment, f.IslamicAlignment) {
		return false
	}
	if f.SavedOnly && !f.SavedIDs[rec.ID] {
		return false
	}
	return true
}

func sortRecommendations(recs []Recommendation, key SortKey) {
	switch key {
	case SortTitle:
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Title < recs[j].Title
		})
	case SortSalary:
		sort.SliceStable(recs, func(i, j int) bool {
			return MaxSalary(recs[i].SalaryRange) > MaxSalary(recs[j].SalaryRange)
		})
	case SortGrowth:
		sort.SliceStable(recs, func(i, j int) bool {
			return growthRank[recs[i].Growth] > growthRank[recs[j].Growth]
		})
	case SortIndustry:
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Industry < recs[j].Industry
		})
	case SortSavedDate:
		sort.SliceStable(recs, func(i, j int) bool {
			ti, tj := recs[i].SavedAt, recs[j].SavedAt
			switch {
			case ti == nil:
				return false
			case tj == nil:
				return true
			default:
				return ti.After(*tj)
			}
		})
	default: // SortCompatibility
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Compatibility > recs[j].Compatibility
		})
	}
}

var salaryGroupPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([kK])?`)

// MaxSalary extracts the top of a free-text salary range such as
// "$50k - $100k" or "$40,000 - $80,000" by taking the second numeric
// group, applying a k suffix as a thousands multiplier. Malformed or
// missing ranges parse to 0 rather than failing.
func MaxSalary(salaryRange string) int {
	// Strip thousands separators so "80,000" reads as one group.
	cleaned := strings.ReplaceAll(salaryRange, ",", "")
	groups := salaryGroupPattern.FindAllStringSubmatch(cleaned, -1)
	if len(groups) < 2 {
		return 0
	}

	value, err := strconv.ParseFloat(groups[1][1], 64)
	if err != nil {
		return 0
	}
	if groups[1][2] != "" {
		value *= 1000
	}
	return int(value)
}
