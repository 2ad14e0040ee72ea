package service

import (
	"context"
	"fmt"

	"github.com/mkondo/go-todo-service/internal/logger"
	"github.com/mkondo/go-todo-service/internal/store"
	"github.com/mkondo/go-todo-service/models"
)

// authService is the concrete implementation of AuthService. It handles
// sign-up, sign-in by name/password, and per-request resolution of the
// opaque access key. The returned service is safe for concurrent use; all
// state is read-only after construction.
type authService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The name is checked against existing accounts before the repository call
// so the common duplicate path allocates no id. The check-then-act window
// that remains is closed by the repository's conditional write, which
// returns [store.ErrUserNameAlreadyExists] for the losing request.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.UserName == "" || user.Password == "" {
		log.Error().Str("userName", user.UserName).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	existing, err := a.userRepository.FindUserByName(ctx, user.UserName)
	if err != nil {
		log.Err(err).Str("userName", user.UserName).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}
	if len(existing) != 0 {
		return models.User{}, store.ErrUserNameAlreadyExists
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("userName", user.UserName).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by name and password.
//
// Returns [store.ErrNoUserWasFound] when no account matches the name and
// [ErrWrongPassword] when the stored credential differs from the supplied
// one. Comparison is exact string equality, case-sensitive.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.UserName == "" || user.Password == "" {
		log.Error().Str("userName", user.UserName).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.userRepository.FindUserByName(ctx, user.UserName)
	if err != nil {
		log.Err(err).Str("userName", user.UserName).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}
	if len(found) == 0 {
		return models.User{}, store.ErrNoUserWasFound
	}

	if found[0].Password != user.Password {
		log.Error().Int64("id", found[0].UserID).Str("userName", found[0].UserName).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return found[0], nil
}

// Authenticate resolves the access key supplied with a request to the
// owning user. An absent or unknown key surfaces as
// [store.ErrNoUserWasFound] so callers treat both the same way.
func (a *authService) Authenticate(ctx context.Context, apikey string) (models.User, error) {
	log := logger.FromContext(ctx)

	if apikey == "" {
		return models.User{}, store.ErrNoUserWasFound
	}

	user, err := a.userRepository.FindUserByAPIKey(ctx, apikey)
	if err != nil {
		log.Err(err).Msg("user search by apikey failed")
		return models.User{}, fmt.Errorf("user search by apikey failed: %w", err)
	}

	return user, nil
}
