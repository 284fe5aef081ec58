package repository

import (
	"context" // Standard for request-scoped deadlines, cancellation signals, etc.

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("conflict")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository defines the interface for interacting with the exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (string, error) // Assigns ID and CreatedAt
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	HasCode(ctx context.Context, code int) (bool, error)
	SetMediaKey(ctx context.Context, id, mediaKey string) error
}

// PlanRepository defines the interface for interacting with workout plans.
// AddExercise and DeleteExercise both replace the stored exercise list with
// the one carried by plan; neither performs a targeted insert or delete.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (string, error)
	GetByID(ctx context.Context, id string) (*domain.WorkoutPlan, error)
	GetByOwner(ctx context.Context, ownerID string) ([]domain.WorkoutPlan, error)
	Delete(ctx context.Context, id string) error
	AddExercise(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	DeleteExercise(ctx context.Context, plan *domain.WorkoutPlan) error
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// WeightRepository stores body-weight history.
type WeightRepository interface {
	Create(ctx context.Context, entry *domain.WeightEntry) (string, error)
	GetByID(ctx context.Context, id string) (*domain.WeightEntry, error)
	GetByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) // Newest first
	Delete(ctx context.Context, id string) error
}

// GoalRepository stores fitness goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.FitnessGoal) (string, error)
	GetByID(ctx context.Context, id string) (*domain.FitnessGoal, error)
	GetByUser(ctx context.Context, userID string) ([]domain.FitnessGoal, error) // Oldest first
	Update(ctx context.Context, goal *domain.FitnessGoal) error
	Delete(ctx context.Context, id string) error
}

// Repositories bundles one backend's implementation of every store.
type Repositories struct {
	Exercises ExerciseRepository
	Plans     PlanRepository
	Users     UserRepository
	Weights   WeightRepository
	Goals     GoalRepository
}
