package core

import (
	"context"
	"fmt"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
)

// TrackingInteractor shapes weight and goal requests.
type TrackingInteractor struct {
	tracking  service.TrackingService
	exercises service.ExerciseService
}

func NewTrackingInteractor(tracking service.TrackingService, exercises service.ExerciseService) *TrackingInteractor {
	return &TrackingInteractor{tracking: tracking, exercises: exercises}
}

func (i *TrackingInteractor) RecordWeight(ctx context.Context, userID string, req RecordWeightRequest) (*domain.WeightEntry, error) {
	return i.tracking.RecordWeight(ctx, userID, req.Value, req.RecordedAt)
}

func (i *TrackingInteractor) WeightHistory(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	return i.tracking.WeightHistory(ctx, userID)
}

func (i *TrackingInteractor) LatestWeight(ctx context.Context, userID string) (*domain.WeightEntry, error) {
	return i.tracking.LatestWeight(ctx, userID)
}

func (i *TrackingInteractor) DeleteWeight(ctx context.Context, userID, entryID string) error {
	return i.tracking.DeleteWeight(ctx, userID, entryID)
}

// CreateGoal checks that a linked exercise exists in the catalog.
func (i *TrackingInteractor) CreateGoal(ctx context.Context, userID string, req CreateGoalRequest) (*domain.FitnessGoal, error) {
	if req.ExerciseID != nil {
		if _, err := i.exercises.GetExercise(ctx, *req.ExerciseID); err != nil {
			return nil, err
		}
	}
	return i.tracking.CreateGoal(ctx, userID, service.NewGoal{
		Name:        req.Name,
		Type:        req.Type,
		TargetValue: req.TargetValue,
		ExerciseID:  req.ExerciseID,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
}

func (i *TrackingInteractor) ListGoals(ctx context.Context, userID string) ([]domain.FitnessGoal, error) {
	return i.tracking.ListGoals(ctx, userID)
}

func (i *TrackingInteractor) ActiveGoals(ctx context.Context, userID string) ([]domain.FitnessGoal, error) {
	return i.tracking.ActiveGoals(ctx, userID)
}

func (i *TrackingInteractor) Achievements(ctx context.Context, userID string) ([]domain.FitnessGoal, error) {
	return i.tracking.Achievements(ctx, userID)
}

func (i *TrackingInteractor) UpdateGoal(ctx context.Context, userID, goalID string, req UpdateGoalRequest) (*domain.FitnessGoal, error) {
	return i.tracking.UpdateGoal(ctx, userID, goalID, service.GoalUpdate{
		Name:        req.Name,
		TargetValue: req.TargetValue,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
}

func (i *TrackingInteractor) SetGoalStatus(ctx context.Context, userID, goalID string, req GoalStatusRequest) (*domain.FitnessGoal, error) {
	var completed bool
	switch req.Status {
	case GoalStatusCompleted:
		completed = true
	case GoalStatusActive:
	default:
		return nil, fmt.Errorf("%w: status must be %q or %q", service.ErrTrackingValidation, GoalStatusCompleted, GoalStatusActive)
	}
	return i.tracking.SetGoalStatus(ctx, userID, goalID, completed)
}

func (i *TrackingInteractor) UpdateGoalProgress(ctx context.Context, userID, goalID string, req GoalProgressRequest) (*domain.FitnessGoal, error) {
	if req.CurrentValue == nil {
		return nil, fmt.Errorf("%w: currentValue is required", service.ErrTrackingValidation)
	}
	return i.tracking.UpdateGoalProgress(ctx, userID, goalID, *req.CurrentValue)
}

func (i *TrackingInteractor) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return i.tracking.DeleteGoal(ctx, userID, goalID)
}

func (i *TrackingInteractor) Summary(ctx context.Context, userID string) (*service.Summary, error) {
	return i.tracking.Summary(ctx, userID)
}
