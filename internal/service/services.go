package service

import (
	"github.com/mkondo/go-todo-service/internal/logger"
	"github.com/mkondo/go-todo-service/internal/store"
)

type Services struct {
	AuthService AuthService
	TodoService TodoService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, logger),
		TodoService: NewTodoService(storages.TodoRepository, logger),
	}
}
