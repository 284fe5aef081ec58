package memory

import (
	"context"
	"testing"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestExerciseRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewExerciseRepository()

	squat := &domain.Exercise{Name: "Squat", Code: 1000, TargetMuscle: domain.MuscleQuads}
	id, err := repo.Create(ctx, squat)
	require.NoError(t, err)
	assert.Equal(t, id, squat.ID)
	assert.False(t, squat.CreatedAt.IsZero())

	_, err = repo.Create(ctx, &domain.Exercise{Name: "Other", Code: 1000})
	assert.ErrorIs(t, err, repository.ErrConflict)

	_, err = repo.Create(ctx, &domain.Exercise{Name: "Run", Code: 1001})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Squat", all[0].Name)
	assert.Equal(t, "Run", all[1].Name)

	has, err := repo.HasCode(ctx, 1001)
	require.NoError(t, err)
	assert.True(t, has)
	has, err = repo.HasCode(ctx, 2000)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.SetMediaKey(ctx, id, "exercises/x.png"))
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "exercises/x.png", got.MediaKey)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.SetMediaKey(ctx, "missing", "k"), repository.ErrNotFound)
}

func TestPlanRepository_SnapshotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanRepository()

	plan := domain.NewWorkoutPlan(domain.PlanSpec{OwnerID: "u1", Name: "Leg Day"})
	id, err := repo.Create(ctx, &plan)
	require.NoError(t, err)

	usage, err := domain.NewStrengthUsage(domain.StrengthSpec{ExerciseID: "e1", Sets: intPtr(3), Reps: intPtr(10)})
	require.NoError(t, err)
	next := plan.WithExercise(usage)

	saved, err := repo.AddExercise(ctx, &next)
	require.NoError(t, err)
	require.Len(t, saved.Exercises, 1)

	// Mutating what the caller holds must not reach the store.
	*next.Exercises[0].Sets = 99
	saved.Exercises = nil

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, stored.Exercises, 1)
	assert.Equal(t, 3, *stored.Exercises[0].Sets)
	assert.Equal(t, "Leg Day", stored.Name)
}

func TestPlanRepository_DeleteExerciseReplacesList(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanRepository()

	cardio, err := domain.NewCardioUsage(domain.CardioSpec{ExerciseID: "e2", Duration: floatPtr(20)})
	require.NoError(t, err)
	plan := domain.NewWorkoutPlan(domain.PlanSpec{OwnerID: "u1", Exercises: []domain.ExerciseUsage{cardio}})
	_, err = repo.Create(ctx, &plan)
	require.NoError(t, err)

	reduced, ok := plan.WithoutExercise("e2")
	require.True(t, ok)
	require.NoError(t, repo.DeleteExercise(ctx, &reduced))

	stored, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Exercises)

	ghost := domain.NewWorkoutPlan(domain.PlanSpec{ID: "nope", OwnerID: "u1"})
	assert.ErrorIs(t, repo.DeleteExercise(ctx, &ghost), repository.ErrNotFound)
}

func TestPlanRepository_GetByOwnerAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanRepository()

	for _, owner := range []string{"u1", "u2", "u1"} {
		p := domain.NewWorkoutPlan(domain.PlanSpec{OwnerID: owner})
		_, err := repo.Create(ctx, &p)
		require.NoError(t, err)
	}

	plans, err := repo.GetByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, plans, 2)

	require.NoError(t, repo.Delete(ctx, plans[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, plans[0].ID), repository.ErrNotFound)

	plans, err = repo.GetByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, plans, 1)

	none, err := repo.GetByOwner(ctx, "u3")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Create(ctx, &domain.User{Username: "ana", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.User{Username: "ana", PasswordHash: "h2"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	exists, err := repo.UsernameExists(ctx, "ana")
	require.NoError(t, err)
	assert.True(t, exists)

	user, err := repo.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "h", user.PasswordHash)

	_, err = repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWeightRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewWeightRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, v := range []float64{80, 79, 78} {
		_, err := repo.Create(ctx, &domain.WeightEntry{UserID: "u1", Value: v, RecordedAt: base.AddDate(0, 0, i)})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &domain.WeightEntry{UserID: "u2", Value: 60, RecordedAt: base})
	require.NoError(t, err)

	entries, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 78.0, entries[0].Value)
	assert.Equal(t, 80.0, entries[2].Value)

	require.NoError(t, repo.Delete(ctx, entries[0].ID))
	_, err = repo.GetByID(ctx, entries[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWeightRepository_TiesNewestRecordedFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewWeightRepository()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for _, v := range []float64{70, 71, 72, 73, 74} {
		id, err := repo.Create(ctx, &domain.WeightEntry{UserID: "u1", Value: v, RecordedAt: at})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.NoError(t, repo.Delete(ctx, ids[4]))

	entries, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, ids[3], entries[0].ID)
	assert.Equal(t, ids[0], entries[3].ID)
}

func TestGoalRepository_UpdateKeepsOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository()

	goal := &domain.FitnessGoal{UserID: "u1", Name: "Bench 100", Type: "strength", TargetValue: 100}
	id, err := repo.Create(ctx, goal)
	require.NoError(t, err)

	changed := *goal
	changed.UserID = "intruder"
	changed.ApplyProgress(100)
	require.NoError(t, repo.Update(ctx, &changed))

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "u1", stored.UserID)
	assert.True(t, stored.IsCompleted)
	assert.Equal(t, 100.0, stored.CurrentValue)

	missing := domain.FitnessGoal{ID: "nope"}
	assert.ErrorIs(t, repo.Update(ctx, &missing), repository.ErrNotFound)

	goals, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, goals, 1)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), repository.ErrNotFound)
}
