package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
)

// ExerciseRepository implements repository.ExerciseRepository in memory.
type ExerciseRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Exercise
	order []string
}

// NewExerciseRepository creates an empty exercise catalog.
func NewExerciseRepository() *ExerciseRepository {
	return &ExerciseRepository{items: make(map[string]domain.Exercise)}
}

// Create stores the exercise under a freshly generated ID.
func (r *ExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (string, error) {
	if exercise.Name == "" {
		return "", errors.New("exercise name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Mirrors the unique index of the persistent backends.
	for _, existing := range r.items {
		if existing.Code == exercise.Code {
			return "", repository.ErrConflict
		}
	}

	exercise.ID = newID()
	exercise.CreatedAt = now()
	r.items[exercise.ID] = *exercise
	r.order = append(r.order, exercise.ID)
	return exercise.ID, nil
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exercise, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &exercise, nil
}

// GetAll returns the catalog in insertion order.
func (r *ExerciseRepository) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exercises := make([]domain.Exercise, 0, len(r.order))
	for _, id := range r.order {
		exercises = append(exercises, r.items[id])
	}
	return exercises, nil
}

func (r *ExerciseRepository) HasCode(ctx context.Context, code int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, exercise := range r.items {
		if exercise.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *ExerciseRepository) SetMediaKey(ctx context.Context, id, mediaKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercise, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	exercise.MediaKey = mediaKey
	r.items[id] = exercise
	return nil
}
