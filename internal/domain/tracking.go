package domain

import (
	"time"
)

// WeightEntry is a single body-weight measurement.
type WeightEntry struct {
	ID         string    `bson:"_id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	Value      float64   `bson:"value" json:"value"`
	RecordedAt time.Time `bson:"recordedAt" json:"recordedAt"`
}

// FitnessGoal is a user-defined target, optionally tied to a catalog exercise.
type FitnessGoal struct {
	ID           string     `bson:"_id" json:"id"`
	UserID       string     `bson:"userId" json:"userId"`
	Name         string     `bson:"name" json:"name"`
	Type         string     `bson:"type" json:"type"` // e.g. "weight", "strength", "endurance"
	TargetValue  float64    `bson:"targetValue" json:"targetValue"`
	CurrentValue float64    `bson:"currentValue" json:"currentValue"`
	IsCompleted  bool       `bson:"isCompleted" json:"isCompleted"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	DueDate      *time.Time `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	ExerciseID   *string    `bson:"exerciseId,omitempty" json:"exerciseId,omitempty"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
}

// ApplyProgress records the current value and completes the goal once the
// target is reached. A completed goal stays completed.
func (g *FitnessGoal) ApplyProgress(current float64) {
	g.CurrentValue = current
	if current >= g.TargetValue {
		g.IsCompleted = true
	}
}
