package testkit

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"rushd/domain/assessment"
	"rushd/domain/career"
	"rushd/domain/journal"
	"rushd/ports"
)

// InMemoryJournalRepository is a map-backed JournalRepository for tests
// and demo mode.
type InMemoryJournalRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]map[string]journal.Entry
}

// NewInMemoryJournalRepository creates an empty in-memory journal store
func NewInMemoryJournalRepository() *InMemoryJournalRepository {
	return &InMemoryJournalRepository{entries: make(map[uuid.UUID]map[string]journal.Entry)}
}

// Seed loads fixture entries for a user, minting IDs as needed
func (r *InMemoryJournalRepository) Seed(userID uuid.UUID, entries []journal.Entry) {
	for _, entry := range entries {
		_, _ = r.CreateEntry(context.Background(), userID, entry)
	}
}

// CreateEntry stores a new entry
func (r *InMemoryJournalRepository) CreateEntry(_ context.Context, userID uuid.UUID, entry journal.Entry) (journal.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if r.entries[userID] == nil {
		r.entries[userID] = make(map[string]journal.Entry)
	}
	r.entries[userID][entry.ID] = entry
	return entry, nil
}

// UpdateEntry rewrites an existing entry
func (r *InMemoryJournalRepository) UpdateEntry(_ context.Context, userID uuid.UUID, entry journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[userID][entry.ID]; !ok {
		return fmt.Errorf("entry %s not found", entry.ID)
	}
	r.entries[userID][entry.ID] = entry
	return nil
}

// DeleteEntry removes an entry
func (r *InMemoryJournalRepository) DeleteEntry(_ context.Context, userID uuid.UUID, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries[userID], entryID)
	return nil
}

// GetEntry retrieves one entry, or nil when absent
func (r *InMemoryJournalRepository) GetEntry(_ context.Context, userID uuid.UUID, entryID string) (*journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[userID][entryID]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// ListEntries returns the user's entries, newest first
func (r *InMemoryJournalRepository) ListEntries(_ context.Context, userID uuid.UUID) ([]journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]journal.Entry, 0, len(r.entries[userID]))
	for _, entry := range r.entries[userID] {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}

// InMemoryCatalogRepository serves a fixed profile catalog
type InMemoryCatalogRepository struct {
	profiles []career.Profile
}

// NewInMemoryCatalogRepository creates a catalog store over fixed profiles
func NewInMemoryCatalogRepository(profiles []career.Profile) *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{profiles: profiles}
}

// ListProfiles returns the catalog in seeded order
func (r *InMemoryCatalogRepository) ListProfiles(_ context.Context) ([]career.Profile, error) {
	out := make([]career.Profile, len(r.profiles))
	copy(out, r.profiles)
	return out, nil
}

// GetProfile retrieves one profile, or nil when absent
func (r *InMemoryCatalogRepository) GetProfile(_ context.Context, profileID int) (*career.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == profileID {
			profile := p
			return &profile, nil
		}
	}
	return nil, nil
}

// InMemoryAssessmentRepository holds one answer set per user
type InMemoryAssessmentRepository struct {
	mu      sync.RWMutex
	answers map[uuid.UUID]assessment.Answers
}

// NewInMemoryAssessmentRepository creates an empty assessment store
func NewInMemoryAssessmentRepository() *InMemoryAssessmentRepository {
	return &InMemoryAssessmentRepository{answers: make(map[uuid.UUID]assessment.Answers)}
}

// SaveAnswers stores the user's latest answers
func (r *InMemoryAssessmentRepository) SaveAnswers(_ context.Context, userID uuid.UUID, answers assessment.Answers) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers[userID] = answers
	return nil
}

// GetAnswers loads the user's answers; missing users get an empty set
func (r *InMemoryAssessmentRepository) GetAnswers(_ context.Context, userID uuid.UUID) (assessment.Answers, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	answers, ok := r.answers[userID]
	if !ok {
		return assessment.Answers{}, nil
	}
	return answers, nil
}

// InMemorySavedCareerRepository tracks bookmarks per user
type InMemorySavedCareerRepository struct {
	mu    sync.RWMutex
	saved map[uuid.UUID]map[int]time.Time
	now   func() time.Time
}

// NewInMemorySavedCareerRepository creates an empty bookmark store
func NewInMemorySavedCareerRepository() *InMemorySavedCareerRepository {
	return &InMemorySavedCareerRepository{
		saved: make(map[uuid.UUID]map[int]time.Time),
		now:   time.Now,
	}
}

// Save bookmarks a profile; re-saving keeps the original saved date
func (r *InMemorySavedCareerRepository) Save(_ context.Context, userID uuid.UUID, profileID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saved[userID] == nil {
		r.saved[userID] = make(map[int]time.Time)
	}
	if _, ok := r.saved[userID][profileID]; !ok {
		r.saved[userID][profileID] = r.now()
	}
	return nil
}

// Unsave removes a bookmark
func (r *InMemorySavedCareerRepository) Unsave(_ context.Context, userID uuid.UUID, profileID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.saved[userID], profileID)
	return nil
}

// ListSaved returns the user's bookmarks, newest first
func (r *InMemorySavedCareerRepository) ListSaved(_ context.Context, userID uuid.UUID) ([]ports.SavedCareer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	saved := make([]ports.SavedCareer, 0, len(r.saved[userID]))
	for profileID, at := range r.saved[userID] {
		saved = append(saved, ports.SavedCareer{ProfileID: profileID, SavedAt: at})
	}
	sort.Slice(saved, func(i, j int) bool { return saved[i].SavedAt.After(saved[j].SavedAt) })
	return saved, nil
}
