package store

import (
	"context"

	"github.com/mkondo/go-todo-service/models"
)

// SequenceRepository issues strictly increasing integer ids shared across
// all entity kinds. It is the only component in the system that requires a
// true atomic read-modify-write against shared state.
type SequenceRepository interface {
	// Next atomically increments the counter for kind and returns the new
	// value. The first call for an unknown kind returns 1. Concurrent calls
	// for the same kind never return duplicate or skipped values.
	Next(ctx context.Context, kind string) (int64, error)
}

// UserRepository creates and looks up user accounts.
type UserRepository interface {
	// CreateUser allocates an id, derives the access key, and persists the
	// user. Returns ErrUserNameAlreadyExists when the name is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByName returns the users whose name matches exactly.
	// Name uniqueness makes more than one match impossible in practice,
	// but the contract returns a list.
	FindUserByName(ctx context.Context, userName string) ([]models.User, error)

	// FindUserByAPIKey resolves an access key to its user.
	// Returns ErrNoUserWasFound when the key matches nobody.
	FindUserByAPIKey(ctx context.Context, apikey string) (models.User, error)
}

// TodoRepository stores task records. Ownership checks are the caller's
// responsibility; GetTodo in particular performs a bare point lookup.
type TodoRepository interface {
	// GetTodo returns the todo with the given id or ErrTodoNotFound.
	GetTodo(ctx context.Context, todoID int64) (models.Todo, error)

	// GetTodos returns every todo owned by userID, order store-determined.
	GetTodos(ctx context.Context, userID int64) ([]models.Todo, error)

	// CreateTodo allocates an id, normalizes the due date, sets the status
	// set to {StatusActive}, stamps both timestamps with the same value,
	// and persists the record under ownerID.
	CreateTodo(ctx context.Context, todo models.Todo, ownerID int64) (models.Todo, error)

	// UpdateTodo overwrites title, detail, due date and status set of an
	// existing record and refreshes the updated timestamp. Id, owner and
	// creation timestamp never change. Returns ErrTodoNotFound when the
	// record is gone.
	UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)

	// DeleteTodo removes the record keyed by (TodoID, CreatedAt).
	// Deleting an absent record is not an error.
	DeleteTodo(ctx context.Context, todo models.Todo) error

	// SearchTodos returns the todos owned by userID whose title or detail
	// contains searchWord (case-sensitive) and whose status set intersects
	// statusIDs. An empty statusIDs filter matches nothing.
	SearchTodos(ctx context.Context, searchWord string, statusIDs []models.Status, userID int64) ([]models.Todo, error)
}
