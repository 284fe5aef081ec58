package service

import (
	"context"
	"io"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"github.com/sirupsen/logrus"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// countingPlanRepo records how often the list-replacing writes are called.
type countingPlanRepo struct {
	repository.PlanRepository
	adds    int
	deletes int
}

func (r *countingPlanRepo) AddExercise(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	r.adds++
	return r.PlanRepository.AddExercise(ctx, plan)
}

func (r *countingPlanRepo) DeleteExercise(ctx context.Context, plan *domain.WorkoutPlan) error {
	r.deletes++
	return r.PlanRepository.DeleteExercise(ctx, plan)
}
