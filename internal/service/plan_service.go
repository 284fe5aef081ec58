package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
)

var (
	// ErrPlanNotFound covers both a missing plan and a plan owned by someone else.
	ErrPlanNotFound           = errors.New("workout plan not found")
	ErrExerciseNotFoundInPlan = errors.New("exercise not found in plan")
)

// ExerciseNotFoundInPlanError names the plan and exercise of a failed removal.
type ExerciseNotFoundInPlanError struct {
	PlanID     string
	ExerciseID string
}

func (e *ExerciseNotFoundInPlanError) Error() string {
	return fmt.Sprintf("exercise %s not found in plan %s", e.ExerciseID, e.PlanID)
}

func (e *ExerciseNotFoundInPlanError) Unwrap() error {
	return ErrExerciseNotFoundInPlan
}

// PlanService composes workout plans. Every plan read is owner-scoped.
//
// AddExerciseToPlan and RemoveExerciseFromPlan persist the complete exercise
// list; two concurrent mutations of the same plan race and the last write wins.
type PlanService interface {
	CreatePlan(ctx context.Context, ownerID, name, goalDescription string) (*domain.WorkoutPlan, error)
	GetPlan(ctx context.Context, ownerID, planID string) (*domain.WorkoutPlan, error)
	ListPlans(ctx context.Context, ownerID string) ([]domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, ownerID, planID string) error
	AddExerciseToPlan(ctx context.Context, plan *domain.WorkoutPlan, usage domain.ExerciseUsage) (*domain.WorkoutPlan, error)
	RemoveExerciseFromPlan(ctx context.Context, plan *domain.WorkoutPlan, exerciseID string) error
}

type planService struct {
	planRepo repository.PlanRepository
}

func NewPlanService(planRepo repository.PlanRepository) PlanService {
	return &planService{planRepo: planRepo}
}

func (s *planService) CreatePlan(ctx context.Context, ownerID, name, goalDescription string) (*domain.WorkoutPlan, error) {
	if ownerID == "" {
		return nil, errors.New("owner ID is required to create a plan")
	}

	plan := domain.NewWorkoutPlan(domain.PlanSpec{
		OwnerID:         ownerID,
		Name:            name,
		GoalDescription: goalDescription,
	})
	if _, err := s.planRepo.Create(ctx, &plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return &plan, nil
}

func (s *planService) GetPlan(ctx context.Context, ownerID, planID string) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if !plan.OwnedBy(ownerID) {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *planService) ListPlans(ctx context.Context, ownerID string) ([]domain.WorkoutPlan, error) {
	plans, err := s.planRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []domain.WorkoutPlan{}
	}
	return plans, nil
}

func (s *planService) DeletePlan(ctx context.Context, ownerID, planID string) error {
	plan, err := s.GetPlan(ctx, ownerID, planID)
	if err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, plan.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

// AddExerciseToPlan persists a new snapshot of plan with usage appended and
// returns it. plan itself is left untouched.
func (s *planService) AddExerciseToPlan(ctx context.Context, plan *domain.WorkoutPlan, usage domain.ExerciseUsage) (*domain.WorkoutPlan, error) {
	next := plan.WithExercise(usage)
	saved, err := s.planRepo.AddExercise(ctx, &next)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return saved, nil
}

// RemoveExerciseFromPlan drops the most recently added usage of exerciseID,
// persists the reduced list and updates *plan on success. Nothing is written
// when the exercise is not in the plan.
//
// The last match is removed, not the first: an add followed by a remove of the
// same exercise must restore the prior list exactly, duplicates included.
func (s *planService) RemoveExerciseFromPlan(ctx context.Context, plan *domain.WorkoutPlan, exerciseID string) error {
	next, ok := plan.WithoutExercise(exerciseID)
	if !ok {
		return &ExerciseNotFoundInPlanError{PlanID: plan.ID, ExerciseID: exerciseID}
	}

	if err := s.planRepo.DeleteExercise(ctx, &next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	*plan = next
	return nil
}
