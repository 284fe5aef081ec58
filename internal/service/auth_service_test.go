package service

import (
	"context"
	"testing"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/repository/memory"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(NewUserService(memory.NewUserRepository()), "test-secret", time.Hour)
}

func TestUserService_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	_, err := svc.CreateUser(ctx, "ana", "hash")
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, "ana", "other")
	assert.ErrorIs(t, err, ErrUsernameInUse)

	user, err := svc.GetUser(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)

	_, err = svc.GetUser(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	auth := newAuth(t)

	user, err := auth.Register(ctx, "ana", "s3cret")
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	token, loggedIn, err := auth.Login(ctx, "ana", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ana", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	auth := newAuth(t)
	_, err := auth.Register(ctx, "ana", "s3cret")
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "ana", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = auth.Login(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = auth.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	auth := newAuth(t)

	_, err := auth.Register(ctx, "ana", "one")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "ana", "two")
	assert.ErrorIs(t, err, ErrUsernameInUse)
}

func TestAuthService_ParseTokenRejects(t *testing.T) {
	auth := newAuth(t)

	_, err := auth.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &TokenClaims{
		UserID:           "u1",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "ana", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err := foreign.SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = auth.ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &TokenClaims{
		UserID:           "u1",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "ana", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	})
	signed, err = expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = auth.ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
