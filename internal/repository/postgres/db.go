// Package postgres implements the repositories on PostgreSQL via database/sql.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// Open opens a connection pool and verifies it with a ping.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// NewRepositories wires every store to db.
func NewRepositories(db *sql.DB) repository.Repositories {
	return repository.Repositories{
		Exercises: NewExerciseRepository(db),
		Plans:     NewPlanRepository(db),
		Users:     NewUserRepository(db),
		Weights:   NewWeightRepository(db),
		Goals:     NewGoalRepository(db),
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// requireAffected maps a zero-row write to repository.ErrNotFound.
func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
