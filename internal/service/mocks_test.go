package service

import (
	"context"

	"github.com/mkondo/go-todo-service/models"
)

// Hand-rolled func-field fakes for the repository interfaces. A nil func
// field means "must not be called" for mutating methods and "return zero"
// for lookups, which the individual tests rely on.

type mockUserRepository struct {
	createFn       func(ctx context.Context, user models.User) (models.User, error)
	findByNameFn   func(ctx context.Context, userName string) ([]models.User, error)
	findByAPIKeyFn func(ctx context.Context, apikey string) (models.User, error)

	createCalls int
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByName(ctx context.Context, userName string) ([]models.User, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, userName)
	}
	return nil, nil
}

func (m *mockUserRepository) FindUserByAPIKey(ctx context.Context, apikey string) (models.User, error) {
	if m.findByAPIKeyFn != nil {
		return m.findByAPIKeyFn(ctx, apikey)
	}
	return models.User{}, nil
}

type mockTodoRepository struct {
	getFn    func(ctx context.Context, todoID int64) (models.Todo, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Todo, error)
	createFn func(ctx context.Context, todo models.Todo, ownerID int64) (models.Todo, error)
	updateFn func(ctx context.Context, todo models.Todo) (models.Todo, error)
	deleteFn func(ctx context.Context, todo models.Todo) error
	searchFn func(ctx context.Context, searchWord string, statusIDs []models.Status, userID int64) ([]models.Todo, error)

	createCalls int
	updateCalls int
}

func (m *mockTodoRepository) GetTodo(ctx context.Context, todoID int64) (models.Todo, error) {
	if m.getFn != nil {
		return m.getFn(ctx, todoID)
	}
	return models.Todo{}, nil
}

func (m *mockTodoRepository) GetTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTodoRepository) CreateTodo(ctx context.Context, todo models.Todo, ownerID int64) (models.Todo, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, todo, ownerID)
	}
	return todo, nil
}

func (m *mockTodoRepository) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, todo)
	}
	return todo, nil
}

func (m *mockTodoRepository) DeleteTodo(ctx context.Context, todo models.Todo) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, todo)
	}
	return nil
}

func (m *mockTodoRepository) SearchTodos(ctx context.Context, searchWord string, statusIDs []models.Status, userID int64) ([]models.Todo, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, searchWord, statusIDs, userID)
	}
	return nil, nil
}
