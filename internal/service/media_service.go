package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"github.com/gkulo22/WorkoutApp-API/internal/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMediaNotFound    = errors.New("exercise has no media")
	ErrInvalidMediaType = errors.New("media content type must be image/* or video/*")
)

// UploadTicket tells a client where to PUT the media file.
type UploadTicket struct {
	UploadURL   string    `json:"uploadUrl"`
	ObjectKey   string    `json:"objectKey"`
	ContentType string    `json:"contentType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// MediaService manages demo media of catalog exercises in object storage.
type MediaService interface {
	RequestUpload(ctx context.Context, exerciseID, fileName, contentType string) (*UploadTicket, error)
	DownloadURL(ctx context.Context, exerciseID string) (string, error)
}

type mediaService struct {
	exerciseRepo repository.ExerciseRepository
	files        storage.FileStorage
	expiry       time.Duration
	log          logrus.FieldLogger
}

func NewMediaService(exerciseRepo repository.ExerciseRepository, files storage.FileStorage, expiry time.Duration, log logrus.FieldLogger) MediaService {
	if expiry <= 0 {
		expiry = storage.DefaultPresignedURLExpiry
	}
	return &mediaService{
		exerciseRepo: exerciseRepo,
		files:        files,
		expiry:       expiry,
		log:          log,
	}
}

// mediaObjectKey builds exercises/<id>/<uuid><ext>.
func mediaObjectKey(exerciseID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("exercises/%s/%s%s", exerciseID, uuid.NewString(), ext)
}

// RequestUpload issues a presigned PUT URL and points the exercise at the new
// object. The previously stored object, if any, is removed on a best-effort basis.
func (s *mediaService) RequestUpload(ctx context.Context, exerciseID, fileName, contentType string) (*UploadTicket, error) {
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return nil, ErrInvalidMediaType
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	key := mediaObjectKey(exercise.ID, fileName)
	uploadURL, err := s.files.GeneratePresignedUploadURL(ctx, key, contentType, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	if err := s.exerciseRepo.SetMediaKey(ctx, exercise.ID, key); err != nil {
		return nil, fmt.Errorf("store media key: %w", err)
	}

	if exercise.MediaKey != "" {
		if err := s.files.DeleteObject(ctx, exercise.MediaKey); err != nil {
			s.log.WithError(err).WithField("key", exercise.MediaKey).Warn("failed to delete replaced exercise media")
		}
	}

	return &UploadTicket{
		UploadURL:   uploadURL,
		ObjectKey:   key,
		ContentType: contentType,
		ExpiresAt:   time.Now().UTC().Add(s.expiry),
	}, nil
}

func (s *mediaService) DownloadURL(ctx context.Context, exerciseID string) (string, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrExerciseNotFound
		}
		return "", err
	}
	if !exercise.HasMedia() {
		return "", ErrMediaNotFound
	}
	return s.files.GeneratePresignedDownloadURL(ctx, exercise.MediaKey, s.expiry)
}
