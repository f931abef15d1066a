package scheduler

import "errors"

var (
	// ErrNotFound means no scheduled broadcast exists with the given id.
	ErrNotFound = errors.New("scheduler: scheduled broadcast not found")

	// ErrNotPending means the broadcast already left the pending state and
	// can no longer be changed.
	ErrNotPending = errors.New("scheduler: broadcast is not pending")
)
