package http

import "errors"

// ErrEmptyAPIKeyHeader is returned by the auth middleware when the incoming
// request does not include an "apikey" header at all. Callers can match
// against it with [errors.Is].
var ErrEmptyAPIKeyHeader = errors.New("empty `apikey` header")
