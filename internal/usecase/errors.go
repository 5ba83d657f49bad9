package usecase

import "errors"

// Errors shared by several use cases. Use-case specific errors live next to
// the use case that returns them.
var (
	ErrForbidden        = errors.New("forbidden")
	ErrConcurrentUpdate = errors.New("the record was modified concurrently, retry the operation")
	ErrMissingFilter    = errors.New("a list filter is required")
)
