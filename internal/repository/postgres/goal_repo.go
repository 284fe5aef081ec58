package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"github.com/google/uuid"
)

const goalColumns = `id, user_id, name, goal_type, target_value, current_value, is_completed, due_date, exercise_id, description, created_at`

type GoalRepository struct {
	db *sql.DB
}

func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.FitnessGoal) (string, error) {
	if goal.UserID == "" {
		return "", errors.New("goal requires a user")
	}
	goal.ID = uuid.NewString()
	goal.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO fitness_goals (`+goalColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		goal.ID, goal.UserID, goal.Name, goal.Type, goal.TargetValue, goal.CurrentValue,
		goal.IsCompleted, goal.DueDate, goal.ExerciseID, goal.Description, goal.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	return goal.ID, nil
}

func scanGoal(row interface{ Scan(...any) error }) (*domain.FitnessGoal, error) {
	var g domain.FitnessGoal
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.Type, &g.TargetValue, &g.CurrentValue,
		&g.IsCompleted, &g.DueDate, &g.ExerciseID, &g.Description, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id string) (*domain.FitnessGoal, error) {
	goal, err := scanGoal(r.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM fitness_goals WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return goal, err
}

func (r *GoalRepository) GetByUser(ctx context.Context, userID string) ([]domain.FitnessGoal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM fitness_goals WHERE user_id = $1 ORDER BY created_at`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []domain.FitnessGoal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
	}
	return goals, rows.Err()
}

func (r *GoalRepository) Update(ctx context.Context, goal *domain.FitnessGoal) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE fitness_goals
		 SET name = $2, goal_type = $3, target_value = $4, current_value = $5,
		     is_completed = $6, due_date = $7, exercise_id = $8, description = $9
		 WHERE id = $1`,
		goal.ID, goal.Name, goal.Type, goal.TargetValue, goal.CurrentValue,
		goal.IsCompleted, goal.DueDate, goal.ExerciseID, goal.Description,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fitness_goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}
