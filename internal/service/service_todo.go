package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkondo/go-todo-service/internal/logger"
	"github.com/mkondo/go-todo-service/internal/store"
	"github.com/mkondo/go-todo-service/internal/validators"
	"github.com/mkondo/go-todo-service/models"
)

// todoService is the concrete implementation of TodoService. Mutating
// operations run the required-field validator before touching the
// repository, so an invalid record never allocates an id or reaches the
// store.
type todoService struct {
	todoRepository store.TodoRepository
	validator      validators.TodoValidator

	logger *logger.Logger
}

// NewTodoService constructs a TodoService wired to the given TodoRepository.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		validator:      validators.NewTodoValidator(),
		logger:         logger,
	}
}

// GetTodo returns the todo by id without any ownership check. Callers must
// have passed AuthorizeTodo first.
func (s *todoService) GetTodo(ctx context.Context, todoID int64) (models.Todo, error) {
	return s.todoRepository.GetTodo(ctx, todoID)
}

// GetTodos returns all todos owned by user.
func (s *todoService) GetTodos(ctx context.Context, user models.User) ([]models.Todo, error) {
	return s.todoRepository.GetTodos(ctx, user.UserID)
}

// CreateTodo validates the required fields and persists a new todo owned by
// user.
func (s *todoService) CreateTodo(ctx context.Context, todo models.Todo, user models.User) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(todo); err != nil {
		log.Error().Err(err).Msg("todo validation failed before creation")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.todoRepository.CreateTodo(ctx, todo, user.UserID)
}

// UpdateTodo validates the required fields and overwrites the mutable
// fields of an existing todo. Ownership must already be verified via
// AuthorizeTodo.
func (s *todoService) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(todo); err != nil {
		log.Error().Err(err).Int64("todoId", todo.TodoID).Msg("todo validation failed before update")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.todoRepository.UpdateTodo(ctx, todo)
}

// DeleteTodo removes the todo permanently. Ownership must already be
// verified via AuthorizeTodo.
func (s *todoService) DeleteTodo(ctx context.Context, todo models.Todo) error {
	return s.todoRepository.DeleteTodo(ctx, todo)
}

// SearchTodos returns the todos owned by user matching searchWord and the
// status filter. An empty filter yields an empty result.
func (s *todoService) SearchTodos(ctx context.Context, searchWord string, statusIDs []models.Status, user models.User) ([]models.Todo, error) {
	return s.todoRepository.SearchTodos(ctx, searchWord, statusIDs, user.UserID)
}

// AuthorizeTodo is the ownership gate: it resolves todoID and returns the
// record only when it belongs to user. Both a missing record and a foreign
// record produce [ErrTodoAccessDenied].
func (s *todoService) AuthorizeTodo(ctx context.Context, todoID int64, user models.User) (models.Todo, error) {
	log := logger.FromContext(ctx)

	todo, err := s.todoRepository.GetTodo(ctx, todoID)
	if err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			return models.Todo{}, ErrTodoAccessDenied
		}
		log.Err(err).Int64("todoId", todoID).Msg("todo lookup for authorization failed")
		return models.Todo{}, fmt.Errorf("todo lookup for authorization failed: %w", err)
	}

	if todo.UserID != user.UserID {
		log.Error().Int64("todoId", todoID).Int64("ownerId", todo.UserID).Int64("callerId", user.UserID).Msg("todo ownership violation")
		return models.Todo{}, ErrTodoAccessDenied
	}

	return todo, nil
}

// StatusList returns the static status reference data.
func (s *todoService) StatusList(_ context.Context) []models.StatusItem {
	return models.StatusList()
}
