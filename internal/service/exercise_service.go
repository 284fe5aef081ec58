package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseCodeConflict = errors.New("exercise with this code already exists")
	ErrValidationFailed     = errors.New("exercise validation failed")
)

// NewExercise carries the fields of a catalog entry to create.
type NewExercise struct {
	Name         string
	Code         int
	TargetMuscle domain.Muscle
	Description  string
	Instruction  string
}

type ExerciseService interface {
	CreateExercise(ctx context.Context, input NewExercise) (*domain.Exercise, error)
	GetExercise(ctx context.Context, exerciseID string) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// CreateExercise adds an exercise to the catalog. Codes are unique: the check
// runs before the insert, and a store-level conflict maps to the same error.
func (s *exerciseService) CreateExercise(ctx context.Context, input NewExercise) (*domain.Exercise, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if input.Code <= 0 {
		return nil, fmt.Errorf("%w: code must be positive", ErrValidationFailed)
	}
	if _, ok := domain.ParseMuscle(string(input.TargetMuscle)); !ok {
		return nil, fmt.Errorf("%w: unknown target muscle %q", ErrValidationFailed, input.TargetMuscle)
	}

	exists, err := s.exerciseRepo.HasCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("check exercise code: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: code %d", ErrExerciseCodeConflict, input.Code)
	}

	exercise := &domain.Exercise{
		Name:         input.Name,
		Code:         input.Code,
		TargetMuscle: input.TargetMuscle,
		Description:  input.Description,
		Instruction:  input.Instruction,
	}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: code %d", ErrExerciseCodeConflict, input.Code)
		}
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return exercise, nil
}

// GetExercise retrieves a single exercise.
func (s *exerciseService) GetExercise(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return exercises, nil
}
