// Package seed fills an empty exercise catalog with built-in exercises.
package seed

import (
	"context"
	"fmt"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
	"github.com/sirupsen/logrus"
)

// BaseCode is the code of the first built-in exercise; the rest follow in order.
const BaseCode = 1000

type builtin struct {
	name        string
	muscle      domain.Muscle
	description string
	instruction string
}

var builtins = []builtin{
	{"Push-Up", domain.MuscleChest, "Do push-ups", "Keep your back straight"},
	{"Bench Press", domain.MuscleChest, "Bench press with barbell", "Lower bar slowly"},
	{"Pull-Up", domain.MuscleBack, "Pull your body up", "Engage lats"},
	{"Lat Pulldown", domain.MuscleLats, "Use machine to pull bar down", "Control the motion"},
	{"Shoulder Press", domain.MuscleShoulders, "Press dumbbells overhead", "Avoid arching back"},
	{"Lateral Raise", domain.MuscleShoulders, "Raise dumbbells to sides", "Slight bend in elbows"},
	{"Bicep Curl", domain.MuscleBiceps, "Curl dumbbells", "Keep elbows fixed"},
	{"Hammer Curl", domain.MuscleBiceps, "Curl dumbbells neutral grip", "Focus on forearms too"},
	{"Tricep Dip", domain.MuscleTriceps, "Dip on parallel bars", "Keep elbows tight"},
	{"Tricep Pushdown", domain.MuscleTriceps, "Push cable down", "Control the weight"},
	{"Plank", domain.MuscleCore, "Hold plank position", "Keep back straight"},
	{"Russian Twist", domain.MuscleObliques, "Twist torso with weight", "Feet off floor optional"},
	{"Crunches", domain.MuscleAbs, "Classic crunch", "Do controlled reps"},
	{"Squat", domain.MuscleQuads, "Bodyweight or barbell squat", "Keep knees aligned"},
	{"Lunge", domain.MuscleQuads, "Step forward into lunge", "Keep torso upright"},
	{"Deadlift", domain.MuscleHamstrings, "Lift barbell from floor", "Engage hamstrings and back"},
	{"Glute Bridge", domain.MuscleGlutes, "Lift hips off floor", "Squeeze glutes at top"},
	{"Calf Raise", domain.MuscleCalves, "Raise heels off floor", "Slow controlled movement"},
	{"Shrugs", domain.MuscleTraps, "Lift shoulders with dumbbells", "Don't rotate neck"},
	{"Face Pull", domain.MuscleTraps, "Pull rope towards face", "Keep elbows high"},
}

// Count is the number of built-in exercises.
func Count() int { return len(builtins) }

// Exercises creates the built-in exercises when the catalog is empty and
// returns how many were added. A non-empty catalog is left untouched.
func Exercises(ctx context.Context, exercises service.ExerciseService, log logrus.FieldLogger) (int, error) {
	existing, err := exercises.ListExercises(ctx)
	if err != nil {
		return 0, fmt.Errorf("list exercises: %w", err)
	}
	if len(existing) > 0 {
		log.WithField("count", len(existing)).Debug("exercise catalog already populated, skipping seed")
		return 0, nil
	}

	for i, b := range builtins {
		_, err := exercises.CreateExercise(ctx, service.NewExercise{
			Name:         b.name,
			Code:         BaseCode + i,
			TargetMuscle: b.muscle,
			Description:  b.description,
			Instruction:  b.instruction,
		})
		if err != nil {
			return i, fmt.Errorf("seed exercise %q: %w", b.name, err)
		}
	}

	log.WithField("count", len(builtins)).Info("seeded exercise catalog")
	return len(builtins), nil
}
