package interfaces

import "errors"

// Repositories report "not found" by returning a zero entity (empty ID) and a
// nil error. The errors below are the only storage conditions use cases branch on.
var (
	// ErrAlreadyExists is returned by Create when the primary key is taken.
	ErrAlreadyExists = errors.New("item already exists")
	// ErrConcurrentUpdate is returned by versioned updates when the stored
	// version no longer matches the one that was read.
	ErrConcurrentUpdate = errors.New("concurrent update")
)
