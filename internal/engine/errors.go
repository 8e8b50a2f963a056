package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrEngineStopped means the engine process is no longer running.
	ErrEngineStopped = errors.New("engine is not running")

	// ErrPoolClosed means the pool was closed while a caller was waiting.
	ErrPoolClosed = errors.New("engine pool is closed")
)

// OpError wraps a failure in one step of talking to the engine process.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("engine %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
