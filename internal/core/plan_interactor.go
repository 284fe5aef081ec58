package core

import (
	"context"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/metrics"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
)

// PlanInteractor composes the plan service with the exercise catalog and the
// usage dispatcher.
type PlanInteractor struct {
	plans      service.PlanService
	exercises  service.ExerciseService
	dispatcher *service.UsageDispatcher
	metrics    metrics.Recorder
}

func NewPlanInteractor(plans service.PlanService, exercises service.ExerciseService, dispatcher *service.UsageDispatcher, rec metrics.Recorder) *PlanInteractor {
	if dispatcher == nil {
		dispatcher = service.NewUsageDispatcher()
	}
	return &PlanInteractor{
		plans:      plans,
		exercises:  exercises,
		dispatcher: dispatcher,
		metrics:    rec,
	}
}

func (i *PlanInteractor) Create(ctx context.Context, ownerID string, req CreatePlanRequest) (*domain.WorkoutPlan, error) {
	plan, err := i.plans.CreatePlan(ctx, ownerID, req.Name, req.GoalDescription)
	if err != nil {
		return nil, err
	}
	i.metrics.RecordPlanMutation(metrics.PlanCreated)
	return plan, nil
}

func (i *PlanInteractor) GetOne(ctx context.Context, ownerID, planID string) (*domain.WorkoutPlan, error) {
	return i.plans.GetPlan(ctx, ownerID, planID)
}

func (i *PlanInteractor) GetAll(ctx context.Context, ownerID string) ([]domain.WorkoutPlan, error) {
	return i.plans.ListPlans(ctx, ownerID)
}

func (i *PlanInteractor) Delete(ctx context.Context, ownerID, planID string) error {
	if err := i.plans.DeletePlan(ctx, ownerID, planID); err != nil {
		return err
	}
	i.metrics.RecordPlanMutation(metrics.PlanDeleted)
	return nil
}

// AddExercise resolves the exercise, builds the usage for tag and appends it
// to the owner's plan. Nothing is written when any step fails.
func (i *PlanInteractor) AddExercise(ctx context.Context, ownerID, planID, exerciseID, tag string, payload service.UsagePayload) (*domain.WorkoutPlan, error) {
	exercise, err := i.exercises.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	usage, err := i.dispatcher.Dispatch(tag, exercise.ID, payload)
	if err != nil {
		return nil, err
	}

	plan, err := i.plans.GetPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	updated, err := i.plans.AddExerciseToPlan(ctx, plan, usage)
	if err != nil {
		return nil, err
	}
	i.metrics.RecordPlanMutation(metrics.PlanExerciseAdded)
	return updated, nil
}

// RemoveExercise drops the most recent usage of exerciseID from the owner's plan.
func (i *PlanInteractor) RemoveExercise(ctx context.Context, ownerID, planID, exerciseID string) error {
	plan, err := i.plans.GetPlan(ctx, ownerID, planID)
	if err != nil {
		return err
	}

	exercise, err := i.exercises.GetExercise(ctx, exerciseID)
	if err != nil {
		return err
	}

	if err := i.plans.RemoveExerciseFromPlan(ctx, plan, exercise.ID); err != nil {
		return err
	}
	i.metrics.RecordPlanMutation(metrics.PlanExerciseRemoved)
	return nil
}
