package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"rushd/domain/journal"
)

// JournalEntry is the PostgreSQL row shape for one journal entry. Mood and
// energy are nullable to preserve the domain's "absent rating" semantics.
type JournalEntry struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	UserID     uuid.UUID      `json:"user_id" db:"user_id"`
	EntryDate  time.Time      `json:"entry_date" db:"entry_date"`
	Mood       *int           `json:"mood,omitempty" db:"mood"`
	Energy     *int           `json:"energy,omitempty" db:"energy"`
	Note       string         `json:"note" db:"note"`
	Gratitude  string         `json:"gratitude" db:"gratitude"`
	Activities pq.StringArray `json:"activities" db:"activities"`
	Triggers   pq.StringArray `json:"triggers" db:"triggers"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}

// NewJournalEntry builds a row from a domain entry, minting an ID when the
// entry has none.
func NewJournalEntry(userID uuid.UUID, entry journal.Entry) (JournalEntry, error) {
	id := uuid.New()
	if entry.ID != "" {
		parsed, err := uuid.Parse(entry.ID)
		if err != nil {
			return JournalEntry{}, err
		}
		id = parsed
	}
	return JournalEntry{
		ID:         id,
		UserID:     userID,
		EntryDate:  entry.Date,
		Mood:       entry.Mood,
		Energy:     entry.Energy,
		Note:       entry.Note,
		Gratitude:  entry.Gratitude,
		Activities: pq.StringArray(entry.Activities),
		Triggers:   pq.StringArray(entry.Triggers),
	}, nil
}

// Domain converts the row back to the engine's value type
func (m JournalEntry) Domain() journal.Entry {
	return journal.Entry{
		ID:         m.ID.String(),
		Date:       m.EntryDate,
		Mood:       m.Mood,
		Energy:     m.Energy,
		Note:       m.Note,
		Gratitude:  m.Gratitude,
		Activities: []string(m.Activities),
		Triggers:   []string(m.Triggers),
	}
}
