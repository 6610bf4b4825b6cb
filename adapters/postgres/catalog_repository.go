package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"rushd/domain/career"
	"rushd/models"
	"rushd/ports"
)

// CatalogRepositoryImpl implements CatalogRepository for PostgreSQL
type CatalogRepositoryImpl struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new PostgreSQL career catalog repository
func NewCatalogRepository(db *sqlx.DB) ports.CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

// ListProfiles returns the whole catalog in stable ID order. Catalog order
// is the tie-break for equal compatibility scores, so it must be
// deterministic.
func (r *CatalogRepositoryImpl) ListProfiles(ctx context.Context) ([]career.Profile, error) {
	var rows []models.CareerProfile
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, title, description, industry, salary_range, growth,
		       work_environment, education_required, islamic_alignment,
		       islamic_notes, requirements, created_at
		FROM career_profiles
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}

	profiles := make([]career.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, row.Domain())
	}
	return profiles, nil
}

// GetProfile retrieves one catalog entry, or nil when it does not exist
func (r *CatalogRepositoryImpl) GetProfile(ctx context.Context, profileID int) (*career.Profile, error) {
	var row models.CareerProfile
	err := r.db.GetContext(ctx, &row, `
		SELECT id, title, description, industry, salary_range, growth,
		       work_environment, education_required, islamic_alignment,
		       islamic_notes, requirements, created_at
		FROM career_profiles
		WHERE id = $1
	`, profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	profile := row.Domain()
	return &profile, nil
}
