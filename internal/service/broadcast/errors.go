package broadcast

import "errors"

var (
	// ErrNoRecipients means the target resolved to an empty audience.
	// Nothing is sent and no log row is written.
	ErrNoRecipients = errors.New("broadcast: target resolved to no recipients")

	// ErrNotFound means the requested send log does not exist.
	ErrNotFound = errors.New("broadcast: send log not found")
)
