package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and the opaque per-user access key used as
// a bearer credential on every authenticated request.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// sequence allocator at creation time. Immutable.
	UserID int64 `json:"userId"`

	// UserName is the unique display name of the user, case-sensitive.
	// Used during sign-up and sign-in.
	UserName string `json:"userName"`

	// Password is the user's credential stored as an opaque string.
	// Compared with exact string equality during sign-in.
	Password string `json:"password"`

	// APIKey is the opaque bearer token for request authentication.
	// Derived deterministically as UserName + Password at creation time
	// and immutable thereafter.
	APIKey string `json:"apikey"`
}

// TableName returns the name of the document-store collection
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
