package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
)

var (
	ErrWeightEntryNotFound = errors.New("weight entry not found")
	ErrGoalNotFound        = errors.New("fitness goal not found")
	ErrTrackingValidation  = errors.New("tracking validation failed")
)

// NewGoal carries the fields of a goal to create.
type NewGoal struct {
	Name        string
	Type        string
	TargetValue float64
	ExerciseID  *string
	DueDate     *time.Time
	Description string
}

// GoalUpdate is a partial update; nil fields are left unchanged.
type GoalUpdate struct {
	Name        *string
	TargetValue *float64
	DueDate     *time.Time
	Description *string
}

// Summary aggregates a user's tracking state.
type Summary struct {
	CurrentWeight  *float64   `json:"currentWeight,omitempty"`
	TotalGoals     int        `json:"totalGoals"`
	CompletedGoals int        `json:"completedGoals"`
	ActiveGoals    int        `json:"activeGoals"`
	NearestGoalDue *time.Time `json:"nearestGoalDue,omitempty"`
}

type TrackingService interface {
	RecordWeight(ctx context.Context, userID string, value float64, recordedAt *time.Time) (*domain.WeightEntry, error)
	WeightHistory(ctx context.Context, userID string) ([]domain.WeightEntry, error)
	LatestWeight(ctx context.Context, userID string) (*domain.WeightEntry, error)
	DeleteWeight(ctx context.Context, userID, entryID string) error

	CreateGoal(ctx context.Context, userID string, input NewGoal) (*domain.FitnessGoal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.FitnessGoal, error)
	ActiveGoals(ctx context.Context, userID string) ([]domain.FitnessGoal, error)
	Achievements(ctx context.Context, userID string) ([]domain.FitnessGoal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, update GoalUpdate) (*domain.FitnessGoal, error)
	SetGoalStatus(ctx context.Context, userID, goalID string, completed bool) (*domain.FitnessGoal, error)
	UpdateGoalProgress(ctx context.Context, userID, goalID string, current float64) (*domain.FitnessGoal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error

	Summary(ctx context.Context, userID string) (*Summary, error)
}

type trackingService struct {
	weightRepo repository.WeightRepository
	goalRepo   repository.GoalRepository
}

func NewTrackingService(weightRepo repository.WeightRepository, goalRepo repository.GoalRepository) TrackingService {
	return &trackingService{weightRepo: weightRepo, goalRepo: goalRepo}
}

// --- Weight ---

func (s *trackingService) RecordWeight(ctx context.Context, userID string, value float64, recordedAt *time.Time) (*domain.WeightEntry, error) {
	if value <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrTrackingValidation)
	}

	entry := &domain.WeightEntry{UserID: userID, Value: value}
	if recordedAt != nil {
		entry.RecordedAt = recordedAt.UTC()
	}
	if _, err := s.weightRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("record weight: %w", err)
	}
	return entry, nil
}

// WeightHistory returns the user's entries, newest first.
func (s *trackingService) WeightHistory(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	entries, err := s.weightRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.WeightEntry{}
	}
	return entries, nil
}

func (s *trackingService) LatestWeight(ctx context.Context, userID string) (*domain.WeightEntry, error) {
	entries, err := s.weightRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrWeightEntryNotFound
	}
	return &entries[0], nil
}

func (s *trackingService) DeleteWeight(ctx context.Context, userID, entryID string) error {
	entry, err := s.weightRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWeightEntryNotFound
		}
		return err
	}
	if entry.UserID != userID {
		return ErrWeightEntryNotFound
	}
	if err := s.weightRepo.Delete(ctx, entryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWeightEntryNotFound
		}
		return err
	}
	return nil
}

// --- Goals ---

func (s *trackingService) CreateGoal(ctx context.Context, userID string, input NewGoal) (*domain.FitnessGoal, error) {
	if input.Name == "" || input.Type == "" {
		return nil, fmt.Errorf("%w: goal name and type are required", ErrTrackingValidation)
	}
	if input.TargetValue <= 0 {
		return nil, fmt.Errorf("%w: target value must be positive", ErrTrackingValidation)
	}

	goal := &domain.FitnessGoal{
		UserID:      userID,
		Name:        input.Name,
		Type:        input.Type,
		TargetValue: input.TargetValue,
		ExerciseID:  input.ExerciseID,
		DueDate:     input.DueDate,
		Description: input.Description,
	}
	if _, err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

func (s *trackingService) ListGoals(ctx context.Context, userID string) ([]domain.FitnessGoal, error) {
	return s.filterGoals(ctx, userID, func(domain.FitnessGoal) bool { return true })
}

func (s *trackingService) ActiveGoals(ctx context.Context, userID string) ([]domain.FitnessGoal, error) {
	return s.filterGoals(ctx, userID, func(g domain.FitnessGoal) bool { return !g.IsCompleted })
}

// Achievements are the completed goals.
func (s *trackingService) Achievements(ctx context.Context, userID string) ([]domain.FitnessGoal, error) {
	return s.filterGoals(ctx, userID, func(g domain.FitnessGoal) bool { return g.IsCompleted })
}

func (s *trackingService) filterGoals(ctx context.Context, userID string, keep func(domain.FitnessGoal) bool) ([]domain.FitnessGoal, error) {
	goals, err := s.goalRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []domain.FitnessGoal{}
	for _, g := range goals {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *trackingService) UpdateGoal(ctx context.Context, userID, goalID string, update GoalUpdate) (*domain.FitnessGoal, error) {
	return s.mutateGoal(ctx, userID, goalID, func(g *domain.FitnessGoal) error {
		if update.Name != nil {
			if *update.Name == "" {
				return fmt.Errorf("%w: goal name cannot be empty", ErrTrackingValidation)
			}
			g.Name = *update.Name
		}
		if update.TargetValue != nil {
			if *update.TargetValue <= 0 {
				return fmt.Errorf("%w: target value must be positive", ErrTrackingValidation)
			}
			g.TargetValue = *update.TargetValue
			g.ApplyProgress(g.CurrentValue)
		}
		if update.DueDate != nil {
			g.DueDate = update.DueDate
		}
		if update.Description != nil {
			g.Description = *update.Description
		}
		return nil
	})
}

// SetGoalStatus marks the goal completed or reopens it.
func (s *trackingService) SetGoalStatus(ctx context.Context, userID, goalID string, completed bool) (*domain.FitnessGoal, error) {
	return s.mutateGoal(ctx, userID, goalID, func(g *domain.FitnessGoal) error {
		g.IsCompleted = completed
		return nil
	})
}

func (s *trackingService) UpdateGoalProgress(ctx context.Context, userID, goalID string, current float64) (*domain.FitnessGoal, error) {
	if current < 0 {
		return nil, fmt.Errorf("%w: progress cannot be negative", ErrTrackingValidation)
	}
	return s.mutateGoal(ctx, userID, goalID, func(g *domain.FitnessGoal) error {
		g.ApplyProgress(current)
		return nil
	})
}

func (s *trackingService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if _, err := s.ownedGoal(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.goalRepo.Delete(ctx, goalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	return nil
}

// ownedGoal loads a goal, reporting another user's goal as not found.
func (s *trackingService) ownedGoal(ctx context.Context, userID, goalID string) (*domain.FitnessGoal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrGoalNotFound
	}
	return goal, nil
}

func (s *trackingService) mutateGoal(ctx context.Context, userID, goalID string, apply func(*domain.FitnessGoal) error) (*domain.FitnessGoal, error) {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if err := apply(goal); err != nil {
		return nil, err
	}
	if err := s.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// --- Summary ---

func (s *trackingService) Summary(ctx context.Context, userID string) (*Summary, error) {
	summary := &Summary{}

	latest, err := s.LatestWeight(ctx, userID)
	switch {
	case err == nil:
		value := latest.Value
		summary.CurrentWeight = &value
	case !errors.Is(err, ErrWeightEntryNotFound):
		return nil, err
	}

	goals, err := s.goalRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.TotalGoals = len(goals)
	for _, g := range goals {
		if g.IsCompleted {
			summary.CompletedGoals++
			continue
		}
		summary.ActiveGoals++
		if g.DueDate != nil && (summary.NearestGoalDue == nil || g.DueDate.Before(*summary.NearestGoalDue)) {
			due := *g.DueDate
			summary.NearestGoalDue = &due
		}
	}
	return summary, nil
}
