// internal/domain/exercise.go
package domain

import (
	"time"
)

// Muscle is the primary muscle group an exercise targets.
type Muscle string

const (
	MuscleChest      Muscle = "chest"
	MuscleBack       Muscle = "back"
	MuscleShoulders  Muscle = "shoulders"
	MuscleBiceps     Muscle = "biceps"
	MuscleTriceps    Muscle = "triceps"
	MuscleForearms   Muscle = "forearms"
	MuscleCore       Muscle = "core"
	MuscleAbs        Muscle = "abs"
	MuscleObliques   Muscle = "obliques"
	MuscleQuads      Muscle = "quads"
	MuscleHamstrings Muscle = "hamstrings"
	MuscleGlutes     Muscle = "glutes"
	MuscleCalves     Muscle = "calves"
	MuscleTraps      Muscle = "traps"
	MuscleLats       Muscle = "lats"
)

var muscles = []Muscle{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps, MuscleTriceps,
	MuscleForearms, MuscleCore, MuscleAbs, MuscleObliques, MuscleQuads,
	MuscleHamstrings, MuscleGlutes, MuscleCalves, MuscleTraps, MuscleLats,
}

// Muscles returns every supported muscle group in catalog order.
func Muscles() []Muscle {
	out := make([]Muscle, len(muscles))
	copy(out, muscles)
	return out
}

// ParseMuscle reports whether s names a supported muscle group.
func ParseMuscle(s string) (Muscle, bool) {
	for _, m := range muscles {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Exercise represents a single exercise definition in the catalog.
type Exercise struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Code         int       `bson:"code" json:"code"` // Unique across the catalog
	TargetMuscle Muscle    `bson:"targetMuscle" json:"targetMuscle"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Instruction  string    `bson:"instruction,omitempty" json:"instruction,omitempty"` // How to perform it
	MediaKey     string    `bson:"mediaKey,omitempty" json:"-"`                        // Object key of the demo video, internal use
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// HasMedia reports whether a demo video was attached to the exercise.
func (e *Exercise) HasMedia() bool {
	return e.MediaKey != ""
}
