package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"rushd/domain/journal"
	"rushd/internal/errors"
	"rushd/ports"
)

// AnalyticsService loads journal snapshots and runs the pure analytics
// engine over them. A nil analytics result means "not enough data" and is
// passed through as-is for callers to render as an empty state.
type AnalyticsService struct {
	journal ports.JournalRepository
	now     func() time.Time
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(journalRepo ports.JournalRepository) *AnalyticsService {
	return &AnalyticsService{journal: journalRepo, now: time.Now}
}

// Analyze computes analytics for one lookback range
func (s *AnalyticsService) Analyze(ctx context.Context, userID uuid.UUID, rng journal.Range) (*journal.Analytics, error) {
	entries, err := s.journal.ListEntries(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load journal entries")
	}

	now := s.now()
	return journal.Analyze(journal.FilterRange(entries, rng, now), now), nil
}

// Overview computes analytics for every supported range over a single
// entry snapshot. The engine is pure over immutable inputs, so the four
// computations share the snapshot and run concurrently.
func (s *AnalyticsService) Overview(ctx context.Context, userID uuid.UUID) (map[journal.Range]*journal.Analytics, error) {
	entries, err := s.journal.ListEntries(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load journal entries")
	}

	now := s.now()
	results := make(map[journal.Range]*journal.Analytics, len(journal.Ranges()))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	for _, rng := range journal.Ranges() {
		rng := rng
		g.Go(func() error {
			result := journal.Analyze(journal.FilterRange(entries, rng, now), now)
			mu.Lock()
			results[rng] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CreateEntry stores a new journal entry. Out-of-range mood or energy
// ratings are degraded to absent rather than rejected.
func (s *AnalyticsService) CreateEntry(ctx context.Context, userID uuid.UUID, entry journal.Entry) (journal.Entry, error) {
	sanitizeRatings(&entry)
	if entry.Date.IsZero() {
		entry.Date = s.now()
	}
	return s.journal.CreateEntry(ctx, userID, entry)
}

// UpdateEntry rewrites an existing journal entry
func (s *AnalyticsService) UpdateEntry(ctx context.Context, userID uuid.UUID, entry journal.Entry) error {
	sanitizeRatings(&entry)
	return s.journal.UpdateEntry(ctx, userID, entry)
}

// DeleteEntry removes a journal entry
func (s *AnalyticsService) DeleteEntry(ctx context.Context, userID uuid.UUID, entryID string) error {
	return s.journal.DeleteEntry(ctx, userID, entryID)
}

// ListEntries returns the user's entries, newest first
func (s *AnalyticsService) ListEntries(ctx context.Context, userID uuid.UUID) ([]journal.Entry, error) {
	return s.journal.ListEntries(ctx, userID)
}

func sanitizeRatings(entry *journal.Entry) {
	if entry.Mood != nil && (*entry.Mood < 1 || *entry.Mood > 5) {
		entry.Mood = nil
	}
	if entry.Energy != nil && (*entry.Energy < 1 || *entry.Energy > 5) {
		entry.Energy = nil
	}
}
