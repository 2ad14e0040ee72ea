package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values. Store-level failures are not redeclared here: repositories wrap
// them, so [docstore.ErrUnavailable] stays matchable through the chain.
var (
	// ErrUserNameAlreadyExists is returned when an attempt to register a new
	// user fails because the name is already claimed by another account.
	ErrUserNameAlreadyExists = errors.New("user name already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// produces an empty result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTodoNotFound is returned when a point lookup or update targets a
	// todo id that does not exist.
	ErrTodoNotFound = errors.New("todo was not found")
)
