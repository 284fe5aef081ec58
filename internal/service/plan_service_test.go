package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanService() (PlanService, *countingPlanRepo) {
	repo := &countingPlanRepo{PlanRepository: memory.NewPlanRepository()}
	return NewPlanService(repo), repo
}

func strengthUsage(t *testing.T, exerciseID string, sets, reps int, weight float64) domain.ExerciseUsage {
	t.Helper()
	u, err := domain.NewStrengthUsage(domain.StrengthSpec{ExerciseID: exerciseID, Sets: intPtr(sets), Reps: intPtr(reps), Weight: floatPtr(weight)})
	require.NoError(t, err)
	return u
}

func cardioUsage(t *testing.T, exerciseID string, duration float64) domain.ExerciseUsage {
	t.Helper()
	u, err := domain.NewCardioUsage(domain.CardioSpec{ExerciseID: exerciseID, Duration: floatPtr(duration)})
	require.NoError(t, err)
	return u
}

func TestPlanService_CreateDefaults(t *testing.T) {
	svc, _ := newPlanService()

	plan, err := svc.CreatePlan(context.Background(), "u1", "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPlanName, plan.Name)
	assert.Equal(t, "", plan.GoalDescription)
	assert.Empty(t, plan.Exercises)
	assert.NotEmpty(t, plan.ID)
}

func TestPlanService_GetPlanHidesOtherOwners(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPlanService()

	plan, err := svc.CreatePlan(ctx, "owner", "Leg Day", "strength")
	require.NoError(t, err)

	_, errMissing := svc.GetPlan(ctx, "owner", "does-not-exist")
	_, errForeign := svc.GetPlan(ctx, "intruder", plan.ID)

	assert.ErrorIs(t, errMissing, ErrPlanNotFound)
	assert.ErrorIs(t, errForeign, ErrPlanNotFound)
	assert.Equal(t, errMissing.Error(), errForeign.Error())

	got, err := svc.GetPlan(ctx, "owner", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leg Day", got.Name)
}

func TestPlanService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPlanService()

	empty, err := svc.ListPlans(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a, err := svc.CreatePlan(ctx, "u1", "A", "")
	require.NoError(t, err)
	_, err = svc.CreatePlan(ctx, "u2", "B", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePlan(ctx, "u2", a.ID), ErrPlanNotFound)
	require.NoError(t, svc.DeletePlan(ctx, "u1", a.ID))
	assert.ErrorIs(t, svc.DeletePlan(ctx, "u1", a.ID), ErrPlanNotFound)

	plans, err := svc.ListPlans(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestPlanService_LegDayScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPlanService()

	plan, err := svc.CreatePlan(ctx, "U", "Leg Day", "strength")
	require.NoError(t, err)

	plan, err = svc.AddExerciseToPlan(ctx, plan, strengthUsage(t, "E1", 3, 10, 40))
	require.NoError(t, err)
	plan, err = svc.AddExerciseToPlan(ctx, plan, cardioUsage(t, "E2", 20))
	require.NoError(t, err)

	stored, err := svc.GetPlan(ctx, "U", plan.ID)
	require.NoError(t, err)
	require.Len(t, stored.Exercises, 2)

	first, second := stored.Exercises[0], stored.Exercises[1]
	assert.Equal(t, "E1", first.ExerciseID)
	assert.Equal(t, domain.UsageStrength, first.Type)
	assert.Equal(t, 3, *first.Sets)
	assert.Equal(t, 10, *first.Reps)
	assert.Equal(t, 40.0, *first.Weight)

	assert.Equal(t, "E2", second.ExerciseID)
	assert.Equal(t, domain.UsageCardio, second.Type)
	assert.Equal(t, 20.0, *second.Duration)
	assert.Nil(t, second.Distance)
	assert.Nil(t, second.Calories)

	assert.Equal(t, "Leg Day", stored.Name)
	assert.Equal(t, "strength", stored.GoalDescription)
}

func TestPlanService_AddLeavesInputUntouched(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPlanService()

	plan, err := svc.CreatePlan(ctx, "u1", "P", "")
	require.NoError(t, err)

	next, err := svc.AddExerciseToPlan(ctx, plan, cardioUsage(t, "E1", 10))
	require.NoError(t, err)

	assert.Empty(t, plan.Exercises)
	assert.Len(t, next.Exercises, 1)
	assert.Equal(t, plan.ID, next.ID)
	assert.Equal(t, plan.OwnerID, next.OwnerID)
}

func TestPlanService_AddThenRemoveRestoresSequence(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		seeded bool
		added  func(t *testing.T) domain.ExerciseUsage
	}{
		{
			name:  "empty plan",
			added: func(t *testing.T) domain.ExerciseUsage { return cardioUsage(t, "E1", 5) },
		},
		{
			name:   "distinct exercise",
			seeded: true,
			added:  func(t *testing.T) domain.ExerciseUsage { return strengthUsage(t, "E9", 1, 1, 1) },
		},
		{
			name:   "duplicate of an existing exercise",
			seeded: true,
			added:  func(t *testing.T) domain.ExerciseUsage { return strengthUsage(t, "E1", 5, 5, 100) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newPlanService()
			plan, err := svc.CreatePlan(ctx, "u1", "P", "")
			require.NoError(t, err)
			if tt.seeded {
				plan, err = svc.AddExerciseToPlan(ctx, plan, strengthUsage(t, "E1", 3, 10, 40))
				require.NoError(t, err)
				plan, err = svc.AddExerciseToPlan(ctx, plan, cardioUsage(t, "E2", 20))
				require.NoError(t, err)
			}
			original := make([]domain.ExerciseUsage, len(plan.Exercises))
			copy(original, plan.Exercises)

			added := tt.added(t)
			withE, err := svc.AddExerciseToPlan(ctx, plan, added)
			require.NoError(t, err)
			require.NoError(t, svc.RemoveExerciseFromPlan(ctx, withE, added.ExerciseID))

			assert.Equal(t, original, withE.Exercises)

			stored, err := svc.GetPlan(ctx, "u1", plan.ID)
			require.NoError(t, err)
			assert.Equal(t, original, stored.Exercises)
		})
	}
}

func TestPlanService_RemoveMissingExercise(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPlanService()

	plan, err := svc.CreatePlan(ctx, "u1", "P", "")
	require.NoError(t, err)
	plan, err = svc.AddExerciseToPlan(ctx, plan, cardioUsage(t, "E1", 5))
	require.NoError(t, err)
	before := append([]domain.ExerciseUsage(nil), plan.Exercises...)

	err = svc.RemoveExerciseFromPlan(ctx, plan, "E404")
	assert.ErrorIs(t, err, ErrExerciseNotFoundInPlan)

	var typed *ExerciseNotFoundInPlanError
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, "E404", typed.ExerciseID)
	assert.Equal(t, plan.ID, typed.PlanID)

	assert.Equal(t, before, plan.Exercises)
	assert.Equal(t, 0, repo.deletes)

	stored, err := svc.GetPlan(ctx, "u1", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, before, stored.Exercises)
}

func TestPlanService_RemoveFromDeletedPlan(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPlanService()

	plan, err := svc.CreatePlan(ctx, "u1", "P", "")
	require.NoError(t, err)
	plan, err = svc.AddExerciseToPlan(ctx, plan, cardioUsage(t, "E1", 5))
	require.NoError(t, err)
	require.NoError(t, svc.DeletePlan(ctx, "u1", plan.ID))

	err = svc.RemoveExerciseFromPlan(ctx, plan, "E1")
	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.Len(t, plan.Exercises, 1)
}
