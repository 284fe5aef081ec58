package api

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/gkulo22/WorkoutApp-API/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsEndpointReportsRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := newTestServer(t, func(d *Dependencies) {
		d.Metrics = metrics.NewCollector(reg)
		d.Gatherer = reg
	})
	token := s.login(t, "ana")

	w := s.do(t, "GET", "/api/v1/plans/unknown", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, "GET", "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `workout_http_requests_total{method="GET",route="/api/v1/plans/:id",status_code="404"} 1`)
	assert.Contains(t, body, "workout_user_registrations_total 1")
}

func TestMetricsEndpointDisabledWithoutGatherer(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(t, "GET", "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	s := newTestServer(t, func(d *Dependencies) { d.Logger = log })
	token := s.login(t, "ana")
	buf.Reset()

	w := s.do(t, "GET", "/api/v1/plans", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	line := buf.String()
	assert.True(t, strings.Contains(line, `"msg":"http_request"`), line)
	assert.Contains(t, line, `"path":"/api/v1/plans"`)
	assert.Contains(t, line, `"status":200`)
	assert.Contains(t, line, `"user_id":`)
	assert.Contains(t, line, `"level":"info"`)
}
