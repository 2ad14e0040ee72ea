package service

import (
	"context"

	"github.com/mkondo/go-todo-service/models"
)

// AuthService handles sign-up, sign-in, and per-request authentication
// by access key.
type AuthService interface {
	// RegisterUser creates a new account. The duplicate-name check runs
	// before id allocation, and the store-level conditional write closes
	// the remaining race window.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates by name and password with exact, case-sensitive
	// string equality.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Authenticate resolves a bearer access key to a user identity.
	Authenticate(ctx context.Context, apikey string) (models.User, error)
}

// TodoService exposes the task operations consumed by the transport layer.
// Mutating operations validate required fields before any store write;
// AuthorizeTodo is the ownership gate callers compose with Authenticate.
type TodoService interface {
	GetTodo(ctx context.Context, todoID int64) (models.Todo, error)
	GetTodos(ctx context.Context, user models.User) ([]models.Todo, error)
	CreateTodo(ctx context.Context, todo models.Todo, user models.User) (models.Todo, error)
	UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	DeleteTodo(ctx context.Context, todo models.Todo) error
	SearchTodos(ctx context.Context, searchWord string, statusIDs []models.Status, user models.User) ([]models.Todo, error)

	// AuthorizeTodo returns the todo with the given id when it exists and
	// belongs to user, so callers avoid a second lookup. A missing todo and
	// a foreign todo are both ErrTodoAccessDenied.
	AuthorizeTodo(ctx context.Context, todoID int64, user models.User) (models.Todo, error)

	// StatusList returns the static status reference data. No store access.
	StatusList(ctx context.Context) []models.StatusItem
}
