package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
)

// PlanRepository implements repository.PlanRepository in memory.
// Plans are stored as snapshots; callers never share slices with the store.
type PlanRepository struct {
	mu    sync.RWMutex
	items map[string]domain.WorkoutPlan
	order []string
}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{items: make(map[string]domain.WorkoutPlan)}
}

func snapshot(plan *domain.WorkoutPlan) domain.WorkoutPlan {
	return domain.NewWorkoutPlan(domain.PlanSpec{
		ID:              plan.ID,
		OwnerID:         plan.OwnerID,
		Name:            plan.Name,
		GoalDescription: plan.GoalDescription,
		Exercises:       plan.Exercises,
		CreatedAt:       plan.CreatedAt,
		UpdatedAt:       plan.UpdatedAt,
	})
}

func (r *PlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (string, error) {
	if plan.OwnerID == "" {
		return "", errors.New("plan requires an owner")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	plan.ID = newID()
	plan.CreatedAt = now()
	plan.UpdatedAt = plan.CreatedAt
	r.items[plan.ID] = snapshot(plan)
	r.order = append(r.order, plan.ID)
	return plan.ID, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := snapshot(&plan)
	return &out, nil
}

func (r *PlanRepository) GetByOwner(ctx context.Context, ownerID string) ([]domain.WorkoutPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plans := []domain.WorkoutPlan{}
	for _, id := range r.order {
		plan := r.items[id]
		if plan.OwnerID == ownerID {
			plans = append(plans, snapshot(&plan))
		}
	}
	return plans, nil
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}

// AddExercise overwrites the stored exercise list with plan's.
func (r *PlanRepository) AddExercise(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	return r.replaceExercises(plan)
}

// DeleteExercise overwrites the stored exercise list with plan's.
func (r *PlanRepository) DeleteExercise(ctx context.Context, plan *domain.WorkoutPlan) error {
	_, err := r.replaceExercises(plan)
	return err
}

func (r *PlanRepository) replaceExercises(plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[plan.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored.Exercises = plan.Exercises
	stored.UpdatedAt = now()
	stored = snapshot(&stored)
	r.items[plan.ID] = stored

	out := snapshot(&stored)
	return &out, nil
}
