package ports

import (
	"context"

	"github.com/google/uuid"

	"rushd/domain/journal"
)

// JournalRepository persists mood-journal entries. The analytics engine
// never touches storage; services load a snapshot here and hand it to the
// engine as an immutable value.
type JournalRepository interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, entry journal.Entry) (journal.Entry, error)
	UpdateEntry(ctx context.Context, userID uuid.UUID, entry journal.Entry) error
	DeleteEntry(ctx context.Context, userID uuid.UUID, entryID string) error
	GetEntry(ctx context.Context, userID uuid.UUID, entryID string) (*journal.Entry, error)
	ListEntries(ctx context.Context, userID uuid.UUID) ([]journal.Entry, error)
}
