package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"rushd/domain/journal"
	"rushd/models"
	"rushd/ports"
)

// JournalRepositoryImpl implements JournalRepository for PostgreSQL
type JournalRepositoryImpl struct {
	db *sqlx.DB
}

// NewJournalRepository creates a new PostgreSQL journal repository
func NewJournalRepository(db *sqlx.DB) ports.JournalRepository {
	return &JournalRepositoryImpl{db: db}
}

// CreateEntry inserts a journal entry and returns it with its minted ID
func (r *JournalRepositoryImpl) CreateEntry(ctx context.Context, userID uuid.UUID, entry journal.Entry) (journal.Entry, error) {
	row, err := models.NewJournalEntry(userID, entry)
	if err != nil {
		return journal.Entry{}, err
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO journal_entries (id, user_id, entry_date, mood, energy, note, gratitude, activities, triggers, created_at, updated_at)
		VALUES (:id, :user_id, :entry_date, :mood, :energy, :note, :gratitude, :activities, :triggers, NOW(), NOW())
	`, row)
	if err != nil {
		return journal.Entry{}, err
	}
	return row.Domain(), nil
}

// UpdateEntry rewrites a journal entry's mutable fields
func (r *JournalRepositoryImpl) UpdateEntry(ctx context.Context, userID uuid.UUID, entry journal.Entry) error {
	row, err := models.NewJournalEntry(userID, entry)
	if err != nil {
		return err
	}

	result, err := r.db.NamedExecContext(ctx, `
		UPDATE journal_entries
		SET entry_date = :entry_date, mood = :mood, energy = :energy,
		    note = :note, gratitude = :gratitude,
		    activities = :activities, triggers = :triggers, updated_at = NOW()
		WHERE id = :id AND user_id = :user_id
	`, row)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteEntry removes a journal entry owned by the user
func (r *JournalRepositoryImpl) DeleteEntry(ctx context.Context, userID uuid.UUID, entryID string) error {
	id, err := uuid.Parse(entryID)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		DELETE FROM journal_entries WHERE id = $1 AND user_id = $2
	`, id, userID)
	return err
}

// GetEntry retrieves one journal entry, or nil when it does not exist
func (r *JournalRepositoryImpl) GetEntry(ctx context.Context, userID uuid.UUID, entryID string) (*journal.Entry, error) {
	id, err := uuid.Parse(entryID)
	if err != nil {
		return nil, err
	}

	var row models.JournalEntry
	err = r.db.GetContext(ctx, &row, `
		SELECT id, user_id, entry_date, mood, energy, note, gratitude, activities, triggers, created_at, updated_at
		FROM journal_entries
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entry := row.Domain()
	return &entry, nil
}

// ListEntries returns every journal entry for a user, newest first
func (r *JournalRepositoryImpl) ListEntries(ctx context.Context, userID uuid.UUID) ([]journal.Entry, error) {
	var rows []models.JournalEntry
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, user_id, entry_date, mood, energy, note, gratitude, activities, triggers, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]journal.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.Domain())
	}
	return entries, nil
}
