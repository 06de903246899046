//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/pkg/password"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthCommands(uow *fakeUow) commands.AuthCommands {
	return commands.NewAuthCommands(uow, jwt.NewService("test-secret", time.Hour))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a customer with hashed password", func(t *testing.T) {
		uow := newFakeUow()
		svc := newAuthCommands(uow)

		result, err := svc.Register(ctx, commands.RegisterRequest{
			Email:    "alice@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.UserID)

		require.Len(t, uow.createdUsers, 1)
		created := uow.createdUsers[0]
		assert.Equal(t, "customer", created.Role().String())
		assert.NotEqual(t, "password123", uow.passwordHash)
		assert.NoError(t, password.ComparePassword(uow.passwordHash, "password123"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		uow := newFakeUow()
		svc := newAuthCommands(uow)
		req := commands.RegisterRequest{Email: "alice@example.com", Password: "password123"}

		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, commands.ErrEmailAlreadyTaken)
	})

	t.Run("invalid email", func(t *testing.T) {
		uow := newFakeUow()
		svc := newAuthCommands(uow)

		_, err := svc.Register(ctx, commands.RegisterRequest{Email: "nope", Password: "password123"})

		assert.ErrorIs(t, err, commands.ErrAuthValidation)
	})

	t.Run("weak password", func(t *testing.T) {
		uow := newFakeUow()
		svc := newAuthCommands(uow)

		_, err := svc.Register(ctx, commands.RegisterRequest{Email: "alice@example.com", Password: "short"})

		assert.ErrorIs(t, err, commands.ErrAuthValidation)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	seedUser := func(t *testing.T, uow *fakeUow, email, rawPassword string, active bool) uuid.UUID {
		t.Helper()
		hash, err := password.HashPassword(rawPassword)
		require.NoError(t, err)
		id := uuid.New()
		uow.users[email] = &shared.UserSnapshot{
			ID:           id,
			Email:        email,
			Role:         "customer",
			IsActive:     active,
			PasswordHash: hash,
		}
		return id
	}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		uow := newFakeUow()
		userID := seedUser(t, uow, "alice@example.com", "password123", true)
		svc := newAuthCommands(uow)

		result, err := svc.Login(ctx, commands.LoginRequest{Email: "alice@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.Equal(t, userID, result.UserID)
		assert.NotEmpty(t, result.AccessToken)

		claims, err := jwt.NewService("test-secret", time.Hour).ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "customer", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		uow := newFakeUow()
		seedUser(t, uow, "alice@example.com", "password123", true)
		svc := newAuthCommands(uow)

		_, err := svc.Login(ctx, commands.LoginRequest{Email: "alice@example.com", Password: "wrongpass"})

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error as a bad password", func(t *testing.T) {
		uow := newFakeUow()
		svc := newAuthCommands(uow)

		_, err := svc.Login(ctx, commands.LoginRequest{Email: "nobody@example.com", Password: "password123"})

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		uow := newFakeUow()
		seedUser(t, uow, "alice@example.com", "password123", false)
		svc := newAuthCommands(uow)

		_, err := svc.Login(ctx, commands.LoginRequest{Email: "alice@example.com", Password: "password123"})

		assert.ErrorIs(t, err, commands.ErrUserDeactivated)
	})
}
