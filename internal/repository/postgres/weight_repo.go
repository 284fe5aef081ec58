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

type WeightRepository struct {
	db *sql.DB
}

func NewWeightRepository(db *sql.DB) *WeightRepository {
	return &WeightRepository{db: db}
}

func (r *WeightRepository) Create(ctx context.Context, entry *domain.WeightEntry) (string, error) {
	if entry.UserID == "" {
		return "", errors.New("weight entry requires a user")
	}
	entry.ID = uuid.NewString()
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO weight_entries (id, user_id, value, recorded_at) VALUES ($1, $2, $3, $4)`,
		entry.ID, entry.UserID, entry.Value, entry.RecordedAt,
	)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *WeightRepository) GetByID(ctx context.Context, id string) (*domain.WeightEntry, error) {
	var e domain.WeightEntry
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, value, recorded_at FROM weight_entries WHERE id = $1`, id,
	).Scan(&e.ID, &e.UserID, &e.Value, &e.RecordedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *WeightRepository) GetByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, value, recorded_at FROM weight_entries WHERE user_id = $1 ORDER BY recorded_at DESC, seq DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.WeightEntry{}
	for rows.Next() {
		var e domain.WeightEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Value, &e.RecordedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *WeightRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM weight_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}
