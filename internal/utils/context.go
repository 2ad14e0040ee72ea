// Package utils provides general-purpose helpers used across the service:
// type-safe context keys, HTTP response writing, and canonical date
// formatting.
package utils

import (
	"context"

	"github.com/mkondo/go-todo-service/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages that may
// store string-keyed values in the same context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the apikey middleware stores the
// authenticated user in the request context.
var UserCtxKey = contextKey("authUser")

// GetUserFromContext retrieves the authenticated user from the context.
//
// The ok flag is false when no user was stored or the stored value has an
// unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
