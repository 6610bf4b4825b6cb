package career

import (
	"time"
)

// IslamicPerspective captures how a career relates to Islamic values
type IslamicPerspective struct {
	Alignment string `json:"alignment"` // "excellent" | "good" | "acceptable" | "caution"
	Notes     string `json:"notes"`
}

// Requirements is the slice of a profile the compatibility scorer reads.
// Empty sets mean the profile does not specify that criterion; the scorer
// skips the band entirely rather than scoring it zero.
type Requirements struct {
	RequiredSkills   []string `json:"required_skills"`
	SoftSkills       []string `json:"soft_skills"`
	Industries       []string `json:"industries"`
	Values           []string `json:"values"`
	WorkStyle        string   `json:"work_style"`
	IslamicAlignment int      `json:"islamic_alignment"` // 1-5, 0 = unspecified
}

// Profile is a read-only career catalog entry. The engine never mutates it.
type Profile struct {
	ID                 int                `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Industry           string             `json:"industry"`
	SalaryRange        string             `json:"salary_range"` // free text, e.g. "$50k - $100k"
	Growth             string             `json:"growth"`       // "Very High" | "High" | "Medium" | "Low"
	WorkEnvironment    string             `json:"work_environment"`
	EducationRequired  string             `json:"education_required"`
	IslamicPerspective IslamicPerspective `json:"islamic_perspective"`
	Requirements       Requirements       `json:"requirements"`
}

// Recommendation is a profile ranked against one user's assessment.
// Recommendations are always recomputed whole, never patched in place.
type Recommendation struct {
	Profile
	Compatibility int        `json:"compatibility"` // 0-100
	MatchReasons  []string   `json:"match_reasons"` // at most 4, band-priority order
	GeneratedAt   time.Time  `json:"generated_at"`
	SavedAt       *time.Time `json:"saved_at,omitempty"` // set by callers tracking saves
}
