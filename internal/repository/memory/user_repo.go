package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
)

// UserRepository implements repository.UserRepository in memory, keyed by username.
type UserRepository struct {
	mu         sync.RWMutex
	byUsername map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byUsername: make(map[string]domain.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	if user.Username == "" || user.PasswordHash == "" {
		return "", errors.New("username and password hash are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return "", repository.ErrConflict
	}
	user.ID = newID()
	user.CreatedAt = now()
	r.byUsername[user.Username] = *user
	return user.ID, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUsername[username]
	return ok, nil
}
