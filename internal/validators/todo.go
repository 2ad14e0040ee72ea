// Package validators holds the required-field validation applied to inbound
// todos before any store mutation. It is the only field validation in the
// system and is deliberately decoupled from both the transport layer and
// the repositories, so handlers can run it as a pre-flight check.
package validators

import (
	"github.com/mkondo/go-todo-service/models"
)

// TodoValidator checks that a todo carries every required field.
type TodoValidator interface {
	// Validate returns a sentinel error naming the first missing required
	// field, or nil when the todo passes.
	Validate(todo models.Todo) error
}

type todoValidator struct{}

// NewTodoValidator returns the stateless required-field validator for todos.
func NewTodoValidator() TodoValidator {
	return todoValidator{}
}

// Validate rejects a todo whose title, detail, or due date is empty.
// It must run before any mutating store call so that no id is allocated
// for an invalid record.
func (todoValidator) Validate(todo models.Todo) error {
	if todo.Title == "" {
		return ErrEmptyTitle
	}
	if todo.Detail == "" {
		return ErrEmptyDetail
	}
	if todo.ToDate == "" {
		return ErrEmptyToDate
	}
	return nil
}
