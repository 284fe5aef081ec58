package storage

import (
	"context"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) FileStorage {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "media",
	}, log)
	require.NoError(t, err)
	return store
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), config.S3Config{Region: "us-east-1"}, logrus.New())
	assert.Error(t, err)
}

func TestGeneratePresignedUploadURL(t *testing.T) {
	store := newTestStorage(t)

	raw, err := store.GeneratePresignedUploadURL(context.Background(), "exercises/e1/demo.mp4", "video/mp4", 5*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/media/exercises/e1/demo.mp4", u.Path)
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestGeneratePresignedDownloadURL_DefaultExpiry(t *testing.T) {
	store := newTestStorage(t)

	raw, err := store.GeneratePresignedDownloadURL(context.Background(), "exercises/e1/demo.mp4", 0)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}
