package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gkulo22/WorkoutApp-API/internal/core"
	"github.com/gkulo22/WorkoutApp-API/internal/logger"
	"github.com/gkulo22/WorkoutApp-API/internal/repository/memory"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
}

func newTestServer(t *testing.T, configure func(*Dependencies)) *testServer {
	t.Helper()
	repos := memory.NewRepositories()
	users := service.NewUserService(repos.Users)
	auth := service.NewAuthService(users, "api-test-secret", time.Minute)
	exercises := service.NewExerciseService(repos.Exercises)

	deps := Dependencies{
		AuthService: auth,
		Logger:      logger.Discard(),
	}
	if configure != nil {
		configure(&deps)
	}
	deps.Facade = core.NewFacade(core.Services{
		Auth:      auth,
		Users:     users,
		Exercises: exercises,
		Plans:     service.NewPlanService(repos.Plans),
		Tracking:  service.NewTrackingService(repos.Weights, repos.Goals),
	}, nil, deps.Metrics)
	return &testServer{router: NewRouter(deps)}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// login registers username and returns a bearer token.
func (s *testServer) login(t *testing.T, username string) string {
	t.Helper()
	creds := gin.H{"username": username, "password": "secret123"}
	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/v1/auth/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var token core.TokenResponse
	decode(t, w, &token)
	return token.AccessToken
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func newRequest(method, path, authHeader string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

func serve(s *testServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
