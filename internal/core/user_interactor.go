package core

import (
	"context"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/metrics"
	"github.com/gkulo22/WorkoutApp-API/internal/service"
)

// UserInteractor handles registration and login.
type UserInteractor struct {
	auth    service.AuthService
	users   service.UserService
	metrics metrics.Recorder
}

func NewUserInteractor(auth service.AuthService, users service.UserService, rec metrics.Recorder) *UserInteractor {
	return &UserInteractor{auth: auth, users: users, metrics: rec}
}

func (i *UserInteractor) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	user, err := i.auth.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	i.metrics.RecordUserRegistered()
	return user, nil
}

func (i *UserInteractor) Login(ctx context.Context, req LoginRequest) (string, *domain.User, error) {
	return i.auth.Login(ctx, req.Username, req.Password)
}

func (i *UserInteractor) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return i.users.GetUser(ctx, username)
}
