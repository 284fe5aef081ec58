package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestExerciseRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewMongoExerciseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		exercise := &domain.Exercise{Name: "Squat", Code: 1000, TargetMuscle: domain.MuscleQuads}
		id, err := repo.Create(ctx, exercise)
		require.NoError(mt, err)
		assert.NotEmpty(mt, id)
		assert.Equal(mt, id, exercise.ID)
	})

	mt.Run("duplicate code is a conflict", func(mt *mtest.T) {
		repo := NewMongoExerciseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		_, err := repo.Create(ctx, &domain.Exercise{Name: "Squat", Code: 1000})
		assert.ErrorIs(mt, err, repository.ErrConflict)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		repo := NewMongoExerciseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "fitness.exercises", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "e1"},
			{Key: "name", Value: "Squat"},
			{Key: "code", Value: 1000},
			{Key: "targetMuscle", Value: "quads"},
			{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Now())},
		}))

		exercise, err := repo.GetByID(ctx, "e1")
		require.NoError(mt, err)
		assert.Equal(mt, "Squat", exercise.Name)
		assert.Equal(mt, domain.MuscleQuads, exercise.TargetMuscle)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := NewMongoExerciseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitness.exercises", mtest.FirstBatch))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("set media key on missing exercise", func(mt *mtest.T) {
		repo := NewMongoExerciseRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.SetMediaKey(ctx, "missing", "exercises/missing/a.mp4")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestPlanRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create requires owner", func(mt *mtest.T) {
		repo := NewMongoPlanRepository(mt.DB)
		_, err := repo.Create(ctx, &domain.WorkoutPlan{Name: "Leg Day"})
		assert.Error(mt, err)
	})

	mt.Run("add exercise returns stored plan", func(mt *mtest.T) {
		repo := NewMongoPlanRepository(mt.DB)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: "p1"},
				{Key: "ownerId", Value: "u1"},
				{Key: "name", Value: "Leg Day"},
				{Key: "exercises", Value: bson.A{
					bson.D{
						{Key: "exerciseId", Value: "e1"},
						{Key: "type", Value: "strength"},
						{Key: "sets", Value: 3},
						{Key: "reps", Value: 10},
						{Key: "weight", Value: 40.0},
					},
				}},
			}},
		})

		plan := domain.NewWorkoutPlan(domain.PlanSpec{ID: "p1", OwnerID: "u1", Name: "Leg Day"})
		saved, err := repo.AddExercise(ctx, &plan)
		require.NoError(mt, err)
		require.Len(mt, saved.Exercises, 1)
		assert.Equal(mt, domain.UsageStrength, saved.Exercises[0].Type)
		assert.Equal(mt, 3, *saved.Exercises[0].Sets)
		assert.Nil(mt, saved.Exercises[0].Duration)
	})

	mt.Run("delete exercise on missing plan", func(mt *mtest.T) {
		repo := NewMongoPlanRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		plan := domain.NewWorkoutPlan(domain.PlanSpec{ID: "gone", OwnerID: "u1"})
		assert.ErrorIs(mt, repo.DeleteExercise(ctx, &plan), repository.ErrNotFound)
	})

	mt.Run("get by owner decodes empty exercise list", func(mt *mtest.T) {
		repo := NewMongoPlanRepository(mt.DB)
		first := mtest.CreateCursorResponse(1, "fitness.workout_plans", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "p1"},
			{Key: "ownerId", Value: "u1"},
			{Key: "name", Value: "Empty"},
		})
		last := mtest.CreateCursorResponse(0, "fitness.workout_plans", mtest.NextBatch)
		mt.AddMockResponses(first, last)

		plans, err := repo.GetByOwner(ctx, "u1")
		require.NoError(mt, err)
		require.Len(mt, plans, 1)
		assert.NotNil(mt, plans[0].Exercises)
		assert.Empty(mt, plans[0].Exercises)
	})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("duplicate username is a conflict", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		_, err := repo.Create(ctx, &domain.User{Username: "ana", PasswordHash: "hash"})
		assert.ErrorIs(mt, err, repository.ErrConflict)
	})

	mt.Run("get by username not found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitness.users", mtest.FirstBatch))

		_, err := repo.GetByUsername(ctx, "nobody")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestGoalRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("update missing goal", func(mt *mtest.T) {
		repo := NewMongoGoalRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.Update(ctx, &domain.FitnessGoal{ID: "g1", Name: "Run 5k"})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoGoalRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})

		assert.NoError(mt, repo.Delete(ctx, "g1"))
	})
}

func TestWeightRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing entry", func(mt *mtest.T) {
		repo := NewMongoWeightRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		err := repo.Delete(context.Background(), "w1")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}
