// Package memory provides map-backed repositories for development and tests.
package memory

import (
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"github.com/google/uuid"
)

// NewRepositories returns an empty in-memory implementation of every store.
func NewRepositories() repository.Repositories {
	return repository.Repositories{
		Exercises: NewExerciseRepository(),
		Plans:     NewPlanRepository(),
		Users:     NewUserRepository(),
		Weights:   NewWeightRepository(),
		Goals:     NewGoalRepository(),
	}
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}

// removeID drops id from an insertion-order index.
func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
