package core

import (
	"context"
	"errors"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
)

// ErrMediaUnavailable is returned by media operations when no object storage is configured.
var ErrMediaUnavailable = errors.New("exercise media storage is not configured")

// ExerciseInteractor shapes catalog requests for the exercise and media services.
type ExerciseInteractor struct {
	exercises service.ExerciseService
	media     service.MediaService // nil when storage is disabled
}

func NewExerciseInteractor(exercises service.ExerciseService, media service.MediaService) *ExerciseInteractor {
	return &ExerciseInteractor{exercises: exercises, media: media}
}

func (i *ExerciseInteractor) Create(ctx context.Context, req CreateExerciseRequest) (*domain.Exercise, error) {
	return i.exercises.CreateExercise(ctx, service.NewExercise{
		Name:         req.Name,
		Code:         req.Code,
		TargetMuscle: domain.Muscle(req.TargetMuscle),
		Description:  req.Description,
		Instruction:  req.Instruction,
	})
}

func (i *ExerciseInteractor) GetOne(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	return i.exercises.GetExercise(ctx, exerciseID)
}

func (i *ExerciseInteractor) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	return i.exercises.ListExercises(ctx)
}

func (i *ExerciseInteractor) RequestMediaUpload(ctx context.Context, exerciseID string, req MediaUploadRequest) (*service.UploadTicket, error) {
	if i.media == nil {
		return nil, ErrMediaUnavailable
	}
	return i.media.RequestUpload(ctx, exerciseID, req.FileName, req.ContentType)
}

func (i *ExerciseInteractor) MediaURL(ctx context.Context, exerciseID string) (string, error) {
	if i.media == nil {
		return "", ErrMediaUnavailable
	}
	return i.media.DownloadURL(ctx, exerciseID)
}
