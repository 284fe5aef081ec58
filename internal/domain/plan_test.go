package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkoutPlan_Defaults(t *testing.T) {
	plan := NewWorkoutPlan(PlanSpec{OwnerID: "u1"})

	assert.Equal(t, DefaultPlanName, plan.Name)
	assert.Equal(t, "", plan.GoalDescription)
	assert.NotNil(t, plan.Exercises)
	assert.Empty(t, plan.Exercises)
}

func TestWorkoutPlan_WithExercise_KeepsOriginal(t *testing.T) {
	plan := NewWorkoutPlan(PlanSpec{ID: "p1", OwnerID: "u1", Name: "Leg Day", GoalDescription: "strength"})
	usage, err := NewCardioUsage(CardioSpec{ExerciseID: "e2", Duration: floatPtr(20)})
	require.NoError(t, err)

	next := plan.WithExercise(usage)

	assert.Empty(t, plan.Exercises)
	require.Len(t, next.Exercises, 1)
	assert.Equal(t, "p1", next.ID)
	assert.Equal(t, "u1", next.OwnerID)
	assert.Equal(t, "Leg Day", next.Name)
	assert.Equal(t, "strength", next.GoalDescription)
}

func TestWorkoutPlan_WithoutExercise_RemovesLatestMatch(t *testing.T) {
	first, _ := NewStrengthUsage(StrengthSpec{ExerciseID: "e1", Sets: intPtr(3), Reps: intPtr(10)})
	other, _ := NewCardioUsage(CardioSpec{ExerciseID: "e2", Duration: floatPtr(20)})
	second, _ := NewStrengthUsage(StrengthSpec{ExerciseID: "e1", Sets: intPtr(5), Reps: intPtr(5)})

	plan := NewWorkoutPlan(PlanSpec{ID: "p1", OwnerID: "u1", Exercises: []ExerciseUsage{first, other}})
	withSecond := plan.WithExercise(second)

	restored, ok := withSecond.WithoutExercise("e1")
	require.True(t, ok)
	assert.Equal(t, plan.Exercises, restored.Exercises)
}

func TestWorkoutPlan_WithoutExercise_Missing(t *testing.T) {
	usage, _ := NewCardioUsage(CardioSpec{ExerciseID: "e2", Calories: floatPtr(100)})
	plan := NewWorkoutPlan(PlanSpec{ID: "p1", OwnerID: "u1", Exercises: []ExerciseUsage{usage}})

	_, ok := plan.WithoutExercise("missing")
	assert.False(t, ok)
	assert.Len(t, plan.Exercises, 1)
}

func TestWorkoutPlan_OwnedBy(t *testing.T) {
	plan := NewWorkoutPlan(PlanSpec{OwnerID: "u1"})
	assert.True(t, plan.OwnedBy("u1"))
	assert.False(t, plan.OwnedBy("u2"))
	assert.False(t, plan.OwnedBy(""))
}

func TestFitnessGoal_ApplyProgress(t *testing.T) {
	goal := FitnessGoal{TargetValue: 100}

	goal.ApplyProgress(60)
	assert.False(t, goal.IsCompleted)
	assert.Equal(t, 60.0, goal.CurrentValue)

	goal.ApplyProgress(100)
	assert.True(t, goal.IsCompleted)

	goal.ApplyProgress(40)
	assert.True(t, goal.IsCompleted)
}

func TestParseMuscle(t *testing.T) {
	m, ok := ParseMuscle("quads")
	assert.True(t, ok)
	assert.Equal(t, MuscleQuads, m)

	_, ok = ParseMuscle("wings")
	assert.False(t, ok)
	assert.Len(t, Muscles(), 15)
}
