package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"github.com/google/uuid"
)

// PlanRepository stores plan headers in workout_plans and their usages in
// workout_plan_exercises, keyed by (plan_id, position).
type PlanRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (string, error) {
	if plan.OwnerID == "" {
		return "", errors.New("plan requires an owner")
	}
	plan.ID = uuid.NewString()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO workout_plans (id, owner_id, name, goal_description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		plan.ID, plan.OwnerID, plan.Name, plan.GoalDescription, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		return "", err
	}
	if err := insertUsages(ctx, tx, plan.ID, plan.Exercises); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return plan.ID, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	var spec domain.PlanSpec
	err := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, goal_description, created_at, updated_at FROM workout_plans WHERE id = $1`, id,
	).Scan(&spec.ID, &spec.OwnerID, &spec.Name, &spec.GoalDescription, &spec.CreatedAt, &spec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if spec.Exercises, err = r.usages(ctx, id); err != nil {
		return nil, err
	}
	plan := domain.NewWorkoutPlan(spec)
	return &plan, nil
}

func (r *PlanRepository) GetByOwner(ctx context.Context, ownerID string) ([]domain.WorkoutPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, name, goal_description, created_at, updated_at FROM workout_plans WHERE owner_id = $1 ORDER BY created_at`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}

	var specs []domain.PlanSpec
	for rows.Next() {
		var spec domain.PlanSpec
		if err := rows.Scan(&spec.ID, &spec.OwnerID, &spec.Name, &spec.GoalDescription, &spec.CreatedAt, &spec.UpdatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		specs = append(specs, spec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	plans := make([]domain.WorkoutPlan, 0, len(specs))
	for _, spec := range specs {
		if spec.Exercises, err = r.usages(ctx, spec.ID); err != nil {
			return nil, err
		}
		plans = append(plans, domain.NewWorkoutPlan(spec))
	}
	return plans, nil
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workout_plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// AddExercise replaces the stored usages with plan's and returns the stored plan.
func (r *PlanRepository) AddExercise(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	if err := r.replaceUsages(ctx, plan); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, plan.ID)
}

// DeleteExercise replaces the stored usages with plan's.
func (r *PlanRepository) DeleteExercise(ctx context.Context, plan *domain.WorkoutPlan) error {
	return r.replaceUsages(ctx, plan)
}

func (r *PlanRepository) replaceUsages(ctx context.Context, plan *domain.WorkoutPlan) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `UPDATE workout_plans SET updated_at = $2 WHERE id = $1`, plan.ID, time.Now().UTC())
	if err != nil {
		return err
	}
	if err := requireAffected(result); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workout_plan_exercises WHERE plan_id = $1`, plan.ID); err != nil {
		return err
	}
	if err := insertUsages(ctx, tx, plan.ID, plan.Exercises); err != nil {
		return err
	}
	return tx.Commit()
}

func insertUsages(ctx context.Context, tx *sql.Tx, planID string, usages []domain.ExerciseUsage) error {
	for i, u := range usages {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO workout_plan_exercises (plan_id, position, exercise_id, usage_type, sets, reps, weight, duration, distance, calories)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			planID, i, u.ExerciseID, u.Type, u.Sets, u.Reps, u.Weight, u.Duration, u.Distance, u.Calories,
		)
		if err != nil {
			return fmt.Errorf("insert usage %d: %w", i, err)
		}
	}
	return nil
}

func (r *PlanRepository) usages(ctx context.Context, planID string) ([]domain.ExerciseUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT exercise_id, usage_type, sets, reps, weight, duration, distance, calories
		 FROM workout_plan_exercises WHERE plan_id = $1 ORDER BY position`,
		planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usages := []domain.ExerciseUsage{}
	for rows.Next() {
		var u domain.ExerciseUsage
		if err := rows.Scan(&u.ExerciseID, &u.Type, &u.Sets, &u.Reps, &u.Weight, &u.Duration, &u.Distance, &u.Calories); err != nil {
			return nil, err
		}
		usages = append(usages, u)
	}
	return usages, rows.Err()
}
