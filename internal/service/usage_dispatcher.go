package service

import (
	"errors"
	"fmt"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
)

var ErrUnsupportedExerciseType = errors.New("unsupported exercise type")

// UnsupportedExerciseTypeError reports the tag no handler accepted.
type UnsupportedExerciseTypeError struct {
	Type string
}

func (e *UnsupportedExerciseTypeError) Error() string {
	return fmt.Sprintf("unsupported exercise type %q", e.Type)
}

func (e *UnsupportedExerciseTypeError) Unwrap() error {
	return ErrUnsupportedExerciseType
}

// UsagePayload is the loosely-typed parameter set of an add-exercise request.
// Each handler reads only the fields of its own variant.
type UsagePayload struct {
	Sets     *int
	Reps     *int
	Weight   *float64
	Duration *float64
	Distance *float64
	Calories *float64
}

// UsageHandler is one link of the dispatch chain.
type UsageHandler interface {
	CanHandle(tag string) bool
	Build(exerciseID string, payload UsagePayload) (domain.ExerciseUsage, error)
}

type StrengthHandler struct{}

func (StrengthHandler) CanHandle(tag string) bool { return tag == string(domain.UsageStrength) }

func (StrengthHandler) Build(exerciseID string, p UsagePayload) (domain.ExerciseUsage, error) {
	return domain.NewStrengthUsage(domain.StrengthSpec{
		ExerciseID: exerciseID,
		Sets:       p.Sets,
		Reps:       p.Reps,
		Weight:     p.Weight,
	})
}

type CardioHandler struct{}

func (CardioHandler) CanHandle(tag string) bool { return tag == string(domain.UsageCardio) }

func (CardioHandler) Build(exerciseID string, p UsagePayload) (domain.ExerciseUsage, error) {
	return domain.NewCardioUsage(domain.CardioSpec{
		ExerciseID: exerciseID,
		Duration:   p.Duration,
		Distance:   p.Distance,
		Calories:   p.Calories,
	})
}

// UsageDispatcher routes a type tag to the first handler in the chain that
// accepts it. The chain is meant to be assembled at startup; Register is not
// safe to call concurrently with Dispatch.
type UsageDispatcher struct {
	handlers []UsageHandler
}

// NewUsageDispatcher builds a chain from handlers. With no arguments the
// default chain is used: strength, then cardio.
func NewUsageDispatcher(handlers ...UsageHandler) *UsageDispatcher {
	if len(handlers) == 0 {
		handlers = []UsageHandler{StrengthHandler{}, CardioHandler{}}
	}
	return &UsageDispatcher{handlers: append([]UsageHandler(nil), handlers...)}
}

// Register appends h to the end of the chain.
func (d *UsageDispatcher) Register(h UsageHandler) {
	d.handlers = append(d.handlers, h)
}

func (d *UsageDispatcher) Dispatch(tag, exerciseID string, payload UsagePayload) (domain.ExerciseUsage, error) {
	for _, h := range d.handlers {
		if h.CanHandle(tag) {
			return h.Build(exerciseID, payload)
		}
	}
	return domain.ExerciseUsage{}, &UnsupportedExerciseTypeError{Type: tag}
}
