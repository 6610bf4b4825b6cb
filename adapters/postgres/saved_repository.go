package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"rushd/models"
	"rushd/ports"
)

// SavedCareerRepositoryImpl implements SavedCareerRepository for PostgreSQL
type SavedCareerRepositoryImpl struct {
	db *sqlx.DB
}

// NewSavedCareerRepository creates a new PostgreSQL saved-career repository
func NewSavedCareerRepository(db *sqlx.DB) ports.SavedCareerRepository {
	return &SavedCareerRepositoryImpl{db: db}
}

// Save bookmarks a profile for the user. Saving twice is a no-op that
// keeps the original saved date.
func (r *SavedCareerRepositoryImpl) Save(ctx context.Context, userID uuid.UUID, profileID int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saved_careers (user_id, profile_id, saved_at)
		VALUES ($1, $2, NOW())
	`, userID, profileID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return nil
		}
		return err
	}
	return nil
}

// Unsave removes a bookmark; removing a missing bookmark is a no-op
func (r *SavedCareerRepositoryImpl) Unsave(ctx context.Context, userID uuid.UUID, profileID int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM saved_careers WHERE user_id = $1 AND profile_id = $2
	`, userID, profileID)
	return err
}

// ListSaved returns the user's bookmarks, newest first
func (r *SavedCareerRepositoryImpl) ListSaved(ctx context.Context, userID uuid.UUID) ([]ports.SavedCareer, error) {
	var rows []models.SavedCareerRecord
	err := r.db.SelectContext(ctx, &rows, `
		SELECT user_id, profile_id, saved_at
		FROM saved_careers
		WHERE user_id = $1
		ORDER BY saved_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}

	saved := make([]ports.SavedCareer, 0, len(rows))
	for _, row := range rows {
		saved = append(saved, ports.SavedCareer{ProfileID: row.ProfileID, SavedAt: row.SavedAt})
	}
	return saved, nil
}
