package wheel

import "errors"

var (
	// ErrConfig reports a wheel constructed with inconsistent configuration.
	ErrConfig = errors.New("wheel: invalid configuration")

	// ErrInvariant reports internal state that can no longer produce a payload.
	// It is fatal for the current puzzle; Reset starts a clean one.
	ErrInvariant = errors.New("wheel: invariant violation")
)
