package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTodoAccessDenied covers both a todo that does not exist and a todo
	// owned by a different user. Callers are deliberately unable to tell the
	// two apart, so the API never leaks whether a foreign id exists.
	ErrTodoAccessDenied = errors.New("todo access denied")
)
