// internal/domain/plan.go
package domain

import (
	"time"
)

// DefaultPlanName is used when a plan is built without a name.
const DefaultPlanName = "Unnamed"

// WorkoutPlan is an ordered list of exercise usages owned by a single user.
type WorkoutPlan struct {
	ID              string          `bson:"_id" json:"id"`
	OwnerID         string          `bson:"ownerId" json:"ownerId"` // Only the owner may read or modify the plan
	Name            string          `bson:"name" json:"name"`
	GoalDescription string          `bson:"goalDescription" json:"goalDescription"`
	Exercises       []ExerciseUsage `bson:"exercises" json:"exercises"` // Insertion order is preserved
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// PlanSpec holds the fields a WorkoutPlan is assembled from.
type PlanSpec struct {
	ID              string
	OwnerID         string
	Name            string
	GoalDescription string
	Exercises       []ExerciseUsage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewWorkoutPlan assembles a plan snapshot from spec. An empty name becomes
// DefaultPlanName. The exercise list is copied, never shared with spec.
func NewWorkoutPlan(spec PlanSpec) WorkoutPlan {
	name := spec.Name
	if name == "" {
		name = DefaultPlanName
	}

	exercises := make([]ExerciseUsage, 0, len(spec.Exercises))
	for _, u := range spec.Exercises {
		exercises = append(exercises, u.clone())
	}

	return WorkoutPlan{
		ID:              spec.ID,
		OwnerID:         spec.OwnerID,
		Name:            name,
		GoalDescription: spec.GoalDescription,
		Exercises:       exercises,
		CreatedAt:       spec.CreatedAt,
		UpdatedAt:       spec.UpdatedAt,
	}
}

// OwnedBy reports whether userID owns the plan.
func (p *WorkoutPlan) OwnedBy(userID string) bool {
	return p.OwnerID != "" && p.OwnerID == userID
}

func (p *WorkoutPlan) spec() PlanSpec {
	return PlanSpec{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Name:            p.Name,
		GoalDescription: p.GoalDescription,
		Exercises:       p.Exercises,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// WithExercise returns a new snapshot with usage appended. p is not modified.
func (p *WorkoutPlan) WithExercise(usage ExerciseUsage) WorkoutPlan {
	spec := p.spec()
	spec.Exercises = append(append([]ExerciseUsage(nil), p.Exercises...), usage)
	return NewWorkoutPlan(spec)
}

// WithoutExercise returns a new snapshot without the most recently added
// usage of exerciseID. The second result is false when no usage matches.
func (p *WorkoutPlan) WithoutExercise(exerciseID string) (WorkoutPlan, bool) {
	for i := len(p.Exercises) - 1; i >= 0; i-- {
		if p.Exercises[i].ExerciseID != exerciseID {
			continue
		}
		spec := p.spec()
		remaining := make([]ExerciseUsage, 0, len(p.Exercises)-1)
		remaining = append(remaining, p.Exercises[:i]...)
		remaining = append(remaining, p.Exercises[i+1:]...)
		spec.Exercises = remaining
		return NewWorkoutPlan(spec), true
	}
	return WorkoutPlan{}, false
}
