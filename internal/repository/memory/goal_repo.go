package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
)

// GoalRepository implements repository.GoalRepository in memory.
type GoalRepository struct {
	mu    sync.RWMutex
	items map[string]domain.FitnessGoal
	order []string
}

func NewGoalRepository() *GoalRepository {
	return &GoalRepository{items: make(map[string]domain.FitnessGoal)}
}

func copyGoal(g domain.FitnessGoal) domain.FitnessGoal {
	if g.DueDate != nil {
		due := *g.DueDate
		g.DueDate = &due
	}
	if g.ExerciseID != nil {
		exerciseID := *g.ExerciseID
		g.ExerciseID = &exerciseID
	}
	return g
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.FitnessGoal) (string, error) {
	if goal.UserID == "" {
		return "", errors.New("goal requires a user")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	goal.ID = newID()
	goal.CreatedAt = now()
	r.items[goal.ID] = copyGoal(*goal)
	r.order = append(r.order, goal.ID)
	return goal.ID, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id string) (*domain.FitnessGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := copyGoal(goal)
	return &out, nil
}

// GetByUser returns the user's goals in creation order.
func (r *GoalRepository) GetByUser(ctx context.Context, userID string) ([]domain.FitnessGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []domain.FitnessGoal{}
	for _, id := range r.order {
		if goal := r.items[id]; goal.UserID == userID {
			goals = append(goals, copyGoal(goal))
		}
	}
	return goals, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *domain.FitnessGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[goal.ID]
	if !ok {
		return repository.ErrNotFound
	}
	updated := copyGoal(*goal)
	// Ownership and creation time are fixed at Create.
	updated.UserID = stored.UserID
	updated.CreatedAt = stored.CreatedAt
	r.items[goal.ID] = updated
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
