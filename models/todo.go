package models

// Todo represents a single task item owned by exactly one user.
//
// CreatedAt doubles as the sort component of the record's physical key in the
// document store, so it must never change after creation. All date fields are
// stored in the canonical `YYYY-MM-DD HH:MM:SS` string form.
type Todo struct {
	// TodoID is the internal unique identifier of the todo, assigned by the
	// sequence allocator at creation time. Immutable.
	TodoID int64 `json:"todoId"`

	// Title is a short required description of the task.
	Title string `json:"title"`

	// Detail is the required long-form description of the task.
	Detail string `json:"detail"`

	// ToDate is the task due date, normalized to canonical form on every write.
	ToDate string `json:"toDate"`

	// TodoStatus is the non-empty set of status codes attached to the task.
	// Replaced wholesale on update; defaults to {StatusActive} at creation.
	TodoStatus []Status `json:"todoStatus"`

	// CreatedAt is the creation timestamp. Immutable; part of the physical key.
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is refreshed on every update. Equals CreatedAt at creation.
	UpdatedAt string `json:"updatedAt"`

	// UserID is the identifier of the owning user. Immutable, never transferred.
	UserID int64 `json:"userId"`
}

// TableName returns the name of the document-store collection
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// HasStatus reports whether the todo's status set contains status.
func (t Todo) HasStatus(status Status) bool {
	for _, s := range t.TodoStatus {
		if s == status {
			return true
		}
	}
	return false
}
