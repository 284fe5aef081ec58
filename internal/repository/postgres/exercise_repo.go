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

const exerciseColumns = `id, name, code, target_muscle, description, instruction, media_key, created_at`

type ExerciseRepository struct {
	db *sql.DB
}

func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (string, error) {
	if exercise.Name == "" {
		return "", errors.New("exercise name is required")
	}
	exercise.ID = uuid.NewString()
	exercise.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO exercises (`+exerciseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		exercise.ID, exercise.Name, exercise.Code, exercise.TargetMuscle,
		exercise.Description, exercise.Instruction, exercise.MediaKey, exercise.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", repository.ErrConflict
		}
		return "", err
	}
	return exercise.ID, nil
}

func scanExercise(row interface{ Scan(...any) error }) (*domain.Exercise, error) {
	var e domain.Exercise
	err := row.Scan(&e.ID, &e.Name, &e.Code, &e.TargetMuscle, &e.Description, &e.Instruction, &e.MediaKey, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id = $1`, id)
	exercise, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return exercise, err
}

func (r *ExerciseRepository) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY created_at, code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *exercise)
	}
	return exercises, rows.Err()
}

func (r *ExerciseRepository) HasCode(ctx context.Context, code int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM exercises WHERE code = $1)`, code).Scan(&exists)
	return exists, err
}

func (r *ExerciseRepository) SetMediaKey(ctx context.Context, id, mediaKey string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE exercises SET media_key = $2 WHERE id = $1`, id, mediaKey)
	if err != nil {
		return err
	}
	return requireAffected(result)
}
