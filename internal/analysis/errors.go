package analysis

import "errors"

var (
	// ErrInvalidInput means the game notation could not be parsed into a
	// legal move sequence.
	ErrInvalidInput = errors.New("invalid game")

	// ErrIdentityNotFound means the requested player is neither White nor
	// Black in the game headers.
	ErrIdentityNotFound = errors.New("identity not found in game")
)
