package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mkondo/go-todo-service/internal/logger"
	"github.com/mkondo/go-todo-service/internal/service"
	"github.com/mkondo/go-todo-service/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	authenticateFn func(ctx context.Context, apikey string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) Authenticate(ctx context.Context, apikey string) (models.User, error) {
	return m.authenticateFn(ctx, apikey)
}

// ─────────────────────────────────────────────
// Mock TodoService
// ─────────────────────────────────────────────

// mockTodoService implements service.TodoService for unit tests.
type mockTodoService struct {
	getTodoFn       func(ctx context.Context, todoID int64) (models.Todo, error)
	getTodosFn      func(ctx context.Context, user models.User) ([]models.Todo, error)
	createTodoFn    func(ctx context.Context, todo models.Todo, user models.User) (models.Todo, error)
	updateTodoFn    func(ctx context.Context, todo models.Todo) (models.Todo, error)
	deleteTodoFn    func(ctx context.Context, todo models.Todo) error
	searchTodosFn   func(ctx context.Context, searchWord string, statusIDs []models.Status, user models.User) ([]models.Todo, error)
	authorizeTodoFn func(ctx context.Context, todoID int64, user models.User) (models.Todo, error)
}

func (m *mockTodoService) GetTodo(ctx context.Context, todoID int64) (models.Todo, error) {
	return m.getTodoFn(ctx, todoID)
}

func (m *mockTodoService) GetTodos(ctx context.Context, user models.User) ([]models.Todo, error) {
	return m.getTodosFn(ctx, user)
}

func (m *mockTodoService) CreateTodo(ctx context.Context, todo models.Todo, user models.User) (models.Todo, error) {
	return m.createTodoFn(ctx, todo, user)
}

func (m *mockTodoService) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	return m.updateTodoFn(ctx, todo)
}

func (m *mockTodoService) DeleteTodo(ctx context.Context, todo models.Todo) error {
	return m.deleteTodoFn(ctx, todo)
}

func (m *mockTodoService) SearchTodos(ctx context.Context, searchWord string, statusIDs []models.Status, user models.User) ([]models.Todo, error) {
	return m.searchTodosFn(ctx, searchWord, statusIDs, user)
}

func (m *mockTodoService) AuthorizeTodo(ctx context.Context, todoID int64, user models.User) (models.Todo, error) {
	return m.authorizeTodoFn(ctx, todoID, user)
}

func (m *mockTodoService) StatusList(_ context.Context) []models.StatusItem {
	return models.StatusList()
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks
// are replaced with empty ones so route wiring never panics on construction.
func newTestHandler(t *testing.T, auth service.AuthService, todos service.TodoService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if todos == nil {
		todos = &mockTodoService{}
	}

	svcs := &service.Services{
		AuthService: auth,
		TodoService: todos,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeMessage deserialises a {"message": ...} response payload.
func decodeMessage(t *testing.T, body []byte) models.Message {
	t.Helper()
	var msg models.Message
	require.NoError(t, json.Unmarshal(body, &msg))
	return msg
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	UserID:   1,
	UserName: "user001",
	Password: "password",
	APIKey:   "user001password",
}

// passthroughAuth resolves any apikey to validUser.
func passthroughAuth() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return validUser, nil
		},
	}
}
