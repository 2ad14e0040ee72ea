package service

import (
	"context"
	"testing"

	"github.com/mkondo/go-todo-service/internal/logger"
	"github.com/mkondo/go-todo-service/internal/store"
	"github.com/mkondo/go-todo-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			user.APIKey = user.UserName + user.Password
			return user, nil
		},
	}
	svc := NewAuthService(repo, logger.Nop())

	registered, err := svc.RegisterUser(context.Background(), models.User{UserName: "user001", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "user001password", registered.APIKey)
	assert.Equal(t, 1, repo.createCalls)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	repo := &mockUserRepository{}
	svc := NewAuthService(repo, logger.Nop())

	tests := []struct {
		name string
		user models.User
	}{
		{name: "empty name", user: models.User{Password: "password"}},
		{name: "empty password", user: models.User{UserName: "user001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
	assert.Zero(t, repo.createCalls, "no create call may happen for invalid input")
}

func TestAuthService_RegisterUser_DuplicateName(t *testing.T) {
	repo := &mockUserRepository{
		findByNameFn: func(context.Context, string) ([]models.User, error) {
			return []models.User{{UserID: 1, UserName: "user001"}}, nil
		},
	}
	svc := NewAuthService(repo, logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.User{UserName: "user001", Password: "other"})
	assert.ErrorIs(t, err, store.ErrUserNameAlreadyExists)
	assert.Zero(t, repo.createCalls, "a duplicate name must not allocate a new id")
}

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 1, UserName: "user001", Password: "Password", APIKey: "user001Password"}
	repo := &mockUserRepository{
		findByNameFn: func(_ context.Context, userName string) ([]models.User, error) {
			if userName == stored.UserName {
				return []models.User{stored}, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(repo, logger.Nop())
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(ctx, models.User{UserName: "user001", Password: "Password"})
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := svc.Login(ctx, models.User{UserName: "nobody", Password: "Password"})
		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("password comparison is case-sensitive", func(t *testing.T) {
		_, err := svc.Login(ctx, models.User{UserName: "user001", Password: "password"})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, models.User{UserName: "user001"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	stored := models.User{UserID: 1, UserName: "user001", APIKey: "user001password"}
	repo := &mockUserRepository{
		findByAPIKeyFn: func(_ context.Context, apikey string) (models.User, error) {
			if apikey == stored.APIKey {
				return stored, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := NewAuthService(repo, logger.Nop())
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "user001password")
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "badkey")
		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})
}
