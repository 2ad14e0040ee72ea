package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mkondo/go-todo-service/internal/docstore"
	"github.com/mkondo/go-todo-service/internal/logger"
	"github.com/mkondo/go-todo-service/models"
)

// Secondary indexes maintained for the users collection.
const (
	userNameIndex = "userName"
	apiKeyIndex   = "apikey"
)

// userRepository is the document-store-backed implementation of
// [UserRepository]. Users live in the "users" collection keyed by id, with
// a unique index on name and a plain index on the access key.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	store     docstore.Store
	sequences SequenceRepository
	logger    *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// document store, using sequences for id allocation.
func NewUserRepository(store docstore.Store, sequences SequenceRepository, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		store:     store,
		sequences: sequences,
		logger:    logger,
	}
}

// CreateUser allocates the next id of kind "users", derives the access key
// as name + password, and persists the account.
//
// Name uniqueness is enforced by the store's conditional write on the
// name-keyed unique index, not by a read-then-write pair, so two concurrent
// sign-ups with the same name cannot both succeed. The loser's allocated id
// is discarded and never reused.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	nextID, err := r.sequences.Next(ctx, user.TableName())
	if err != nil {
		return models.User{}, err
	}

	user.UserID = nextID
	user.APIKey = user.UserName + user.Password

	doc, err := json.Marshal(user)
	if err != nil {
		log.Err(err).Str("userName", user.UserName).Msg("marshaling user failed")
		return models.User{}, fmt.Errorf("marshaling user failed: %w", err)
	}

	err = r.store.Put(ctx, user.TableName(),
		docstore.Key{Partition: strconv.FormatInt(user.UserID, 10)},
		doc,
		docstore.IndexEntry{Index: userNameIndex, Value: user.UserName, Unique: true},
		docstore.IndexEntry{Index: apiKeyIndex, Value: user.APIKey},
	)
	if err != nil {
		log.Err(err).Str("userName", user.UserName).Msg("persisting user failed")
		if errors.Is(err, docstore.ErrDuplicate) {
			return models.User{}, ErrUserNameAlreadyExists
		}
		return models.User{}, fmt.Errorf("persisting user failed: %w", err)
	}

	return user, nil
}

// FindUserByName returns all users whose name equals userName.
func (r *userRepository) FindUserByName(ctx context.Context, userName string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	docs, err := r.store.QueryIndex(ctx, models.User{}.TableName(), userNameIndex, userName)
	if err != nil {
		log.Err(err).Str("userName", userName).Msg("user lookup by name failed")
		return nil, fmt.Errorf("user lookup by name failed: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		var user models.User
		if err := json.Unmarshal(doc, &user); err != nil {
			log.Err(err).Str("userName", userName).Msg("unmarshaling user failed")
			return nil, fmt.Errorf("unmarshaling user failed: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

// FindUserByAPIKey resolves an access key to the owning user, or returns
// [ErrNoUserWasFound] when the key matches nobody.
func (r *userRepository) FindUserByAPIKey(ctx context.Context, apikey string) (models.User, error) {
	log := logger.FromContext(ctx)

	docs, err := r.store.QueryIndex(ctx, models.User{}.TableName(), apiKeyIndex, apikey)
	if err != nil {
		log.Err(err).Msg("user lookup by apikey failed")
		return models.User{}, fmt.Errorf("user lookup by apikey failed: %w", err)
	}

	if len(docs) == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	var user models.User
	if err := json.Unmarshal(docs[0], &user); err != nil {
		log.Err(err).Msg("unmarshaling user failed")
		return models.User{}, fmt.Errorf("unmarshaling user failed: %w", err)
	}

	return user, nil
}
