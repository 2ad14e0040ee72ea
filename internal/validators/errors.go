package validators

import "errors"

var (
	ErrEmptyTitle  = errors.New("title is required")
	ErrEmptyDetail = errors.New("detail is required")
	ErrEmptyToDate = errors.New("due date is required")
)
