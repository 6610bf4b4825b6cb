package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"rushd/domain/assessment"
	"rushd/models"
	"rushd/ports"
)

// AssessmentRepositoryImpl implements AssessmentRepository for PostgreSQL
type AssessmentRepositoryImpl struct {
	db *sqlx.DB
}

// NewAssessmentRepository creates a new PostgreSQL assessment repository
func NewAssessmentRepository(db *sqlx.DB) ports.AssessmentRepository {
	return &AssessmentRepositoryImpl{db: db}
}

// SaveAnswers upserts the user's latest assessment answers as JSONB
func (r *AssessmentRepositoryImpl) SaveAnswers(ctx context.Context, userID uuid.UUID, answers assessment.Answers) error {
	raw, err := assessment.Encode(answers)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO assessments (user_id, answers, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET answers = EXCLUDED.answers, updated_at = NOW()
	`, userID, raw)
	return err
}

// GetAnswers loads the user's stored answers; a missing row decodes to an
// empty answer set, which the scorer handles as all-unmatched.
func (r *AssessmentRepositoryImpl) GetAnswers(ctx context.Context, userID uuid.UUID) (assessment.Answers, error) {
	var record models.AssessmentRecord
	err := r.db.GetContext(ctx, &record, `
		SELECT user_id, answers, updated_at
		FROM assessments
		WHERE user_id = $1
	`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return assessment.Answers{}, nil
	}
	if err != nil {
		return nil, err
	}
	return assessment.Decode(record.Answers), nil
}
