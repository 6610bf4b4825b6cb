package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rushd/domain/career"
)

// RequirementsJSON stores a profile's scoring requirements as a JSONB
// column while exposing the typed domain struct.
type RequirementsJSON career.Requirements

// Value implements driver.Valuer
func (r RequirementsJSON) Value() (driver.Value, error) {
	return json.Marshal(career.Requirements(r))
}

// Scan implements sql.Scanner
func (r *RequirementsJSON) Scan(value interface{}) error {
	if value == nil {
		*r = RequirementsJSON{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported requirements column type %T", value)
	}
	if len(raw) == 0 {
		*r = RequirementsJSON{}
		return nil
	}
	var req career.Requirements
	if err := json.Unmarshal(raw, &req); err != nil {
		return err
	}
	*r = RequirementsJSON(req)
	return nil
}

// CareerProfile is the PostgreSQL row shape for one catalog entry
type CareerProfile struct {
	ID                int              `json:"id" db:"id"`
	Title             string           `json:"title" db:"title"`
	Description       string           `json:"description" db:"description"`
	Industry          string           `json:"industry" db:"industry"`
	SalaryRange       string           `json:"salary_range" db:"salary_range"`
	Growth            string           `json:"growth" db:"growth"`
	WorkEnvironment   string           `json:"work_environment" db:"work_environment"`
	EducationRequired string           `json:"education_required" db:"education_required"`
	IslamicAlignment  string           `json:"islamic_alignment" db:"islamic_alignment"`
	IslamicNotes      string           `json:"islamic_notes" db:"islamic_notes"`
	Requirements      RequirementsJSON `json:"requirements" db:"requirements"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
}

// Domain converts the row to the engine's value type
func (m CareerProfile) Domain() career.Profile {
	return career.Profile{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		Industry:          m.Industry,
		SalaryRange:       m.SalaryRange,
		Growth:            m.Growth,
		WorkEnvironment:   m.WorkEnvironment,
		EducationRequired: m.EducationRequired,
		IslamicPerspective: career.IslamicPerspective{
			Alignment: m.IslamicAlignment,
			Notes:     m.IslamicNotes,
		},
		Requirements: career.Requirements(m.Requirements),
	}
}

// AssessmentRecord is the stored form of a user's latest answers, kept as
// the raw JSONB payload the decoder understands.
type AssessmentRecord struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Answers   []byte    `json:"answers" db:"answers"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SavedCareerRecord is one bookmarked profile
type SavedCareerRecord struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ProfileID int       `json:"profile_id" db:"profile_id"`
	SavedAt   time.Time `json:"saved_at" db:"saved_at"`
}
