// internal/domain/usage.go
package domain

// UsageType tags which variant an ExerciseUsage holds.
type UsageType string

const (
	UsageStrength UsageType = "strength"
	UsageCardio   UsageType = "cardio"
)

// ExerciseUsage is an exercise as attached to a workout plan, carrying the
// plan-specific parameters of exactly one variant. Absent parameters are nil.
type ExerciseUsage struct {
	ExerciseID string    `bson:"exerciseId" json:"exerciseId"` // Identifies the usage inside a plan as well
	Type       UsageType `bson:"type" json:"type"`

	// Strength
	Sets   *int     `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps   *int     `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight *float64 `bson:"weight,omitempty" json:"weight,omitempty"`

	// Cardio
	Duration *float64 `bson:"duration,omitempty" json:"duration,omitempty"`
	Distance *float64 `bson:"distance,omitempty" json:"distance,omitempty"`
	Calories *float64 `bson:"calories,omitempty" json:"calories,omitempty"`
}

func (u ExerciseUsage) IsStrength() bool { return u.Type == UsageStrength }

func (u ExerciseUsage) IsCardio() bool { return u.Type == UsageCardio }

// clone returns a deep copy so snapshots never share parameter pointers.
func (u ExerciseUsage) clone() ExerciseUsage {
	u.Sets = copyPtr(u.Sets)
	u.Reps = copyPtr(u.Reps)
	u.Weight = copyPtr(u.Weight)
	u.Duration = copyPtr(u.Duration)
	u.Distance = copyPtr(u.Distance)
	u.Calories = copyPtr(u.Calories)
	return u
}

// StrengthSpec carries the optional parameters of a strength usage.
type StrengthSpec struct {
	ExerciseID string
	Sets       *int
	Reps       *int
	Weight     *float64
}

// NewStrengthUsage validates spec and builds a strength usage.
// Any present value <= 0 fails with ErrInvalidValue; sets and reps must be
// supplied together or not at all (ErrInvalidCombination).
func NewStrengthUsage(spec StrengthSpec) (ExerciseUsage, error) {
	if err := positive("sets", spec.Sets); err != nil {
		return ExerciseUsage{}, err
	}
	if err := positive("reps", spec.Reps); err != nil {
		return ExerciseUsage{}, err
	}
	if err := positive("weight", spec.Weight); err != nil {
		return ExerciseUsage{}, err
	}
	if (spec.Sets == nil) != (spec.Reps == nil) {
		return ExerciseUsage{}, &FieldError{
			Field:  "sets/reps",
			Reason: "both 'sets' and 'reps' must be provided together or omitted together",
			Err:    ErrInvalidCombination,
		}
	}

	return ExerciseUsage{
		ExerciseID: spec.ExerciseID,
		Type:       UsageStrength,
		Sets:       copyPtr(spec.Sets),
		Reps:       copyPtr(spec.Reps),
		Weight:     copyPtr(spec.Weight),
	}, nil
}

// CardioSpec carries the optional parameters of a cardio usage.
type CardioSpec struct {
	ExerciseID string
	Duration   *float64
	Distance   *float64
	Calories   *float64
}

// NewCardioUsage validates spec and builds a cardio usage.
// Any present value <= 0 fails with ErrInvalidValue; at least one of
// duration, distance or calories is required (ErrMissingField).
func NewCardioUsage(spec CardioSpec) (ExerciseUsage, error) {
	if err := positive("duration", spec.Duration); err != nil {
		return ExerciseUsage{}, err
	}
	if err := positive("distance", spec.Distance); err != nil {
		return ExerciseUsage{}, err
	}
	if err := positive("calories", spec.Calories); err != nil {
		return ExerciseUsage{}, err
	}
	if spec.Duration == nil && spec.Distance == nil && spec.Calories == nil {
		return ExerciseUsage{}, &FieldError{
			Field:  "duration/distance/calories",
			Reason: "at least one of 'duration', 'distance', or 'calories' must be provided",
			Err:    ErrMissingField,
		}
	}

	return ExerciseUsage{
		ExerciseID: spec.ExerciseID,
		Type:       UsageCardio,
		Duration:   copyPtr(spec.Duration),
		Distance:   copyPtr(spec.Distance),
		Calories:   copyPtr(spec.Calories),
	}, nil
}

type number interface {
	~int | ~float64
}

func positive[T number](field string, v *T) error {
	if v != nil && *v <= 0 {
		return &FieldError{
			Field:  field,
			Reason: field + " must be greater than 0",
			Err:    ErrInvalidValue,
		}
	}
	return nil
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
