package context

import "errors"

var (
	// ErrAlreadyCommitted is returned by AddAction and Commit after Commit.
	ErrAlreadyCommitted = errors.New("request context already committed")

	// ErrTypeMismatch is returned by Fetch when a key holds another type.
	ErrTypeMismatch = errors.New("request context value has unexpected type")

	// ErrRollback wraps an action whose Rollback failed during Commit.
	ErrRollback = errors.New("rollback failed")
)
