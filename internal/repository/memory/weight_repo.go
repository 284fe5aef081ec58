package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
)

// WeightRepository implements repository.WeightRepository in memory.
type WeightRepository struct {
	mu    sync.RWMutex
	items map[string]domain.WeightEntry
	order []string
}

func NewWeightRepository() *WeightRepository {
	return &WeightRepository{items: make(map[string]domain.WeightEntry)}
}

func (r *WeightRepository) Create(ctx context.Context, entry *domain.WeightEntry) (string, error) {
	if entry.UserID == "" {
		return "", errors.New("weight entry requires a user")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = newID()
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = now()
	}
	r.items[entry.ID] = *entry
	r.order = append(r.order, entry.ID)
	return entry.ID, nil
}

func (r *WeightRepository) GetByID(ctx context.Context, id string) (*domain.WeightEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &entry, nil
}

// GetByUser returns the user's entries, most recent first. Entries sharing a
// RecordedAt come back newest-recorded first.
func (r *WeightRepository) GetByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []domain.WeightEntry{}
	for i := len(r.order) - 1; i >= 0; i-- {
		entry := r.items[r.order[i]]
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].RecordedAt.After(entries[j].RecordedAt)
	})
	return entries, nil
}

func (r *WeightRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
