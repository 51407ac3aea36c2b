package engine

import (
	"cmp"
	"errors"
	"fmt"
)

// Category sentinels. UnsatisfiableError and CancelledError both
// satisfy errors.Is against these via an Is method, independent of
// their payload.
var (
	ErrUnsat     = errors.New("engine: no satisfying assignment exists")
	ErrCancelled = errors.New("engine: collapse was cancelled")
)

// UnsatisfiableError reports that backtracking exhausted the root
// node: no assignment satisfies every constraint. Steps carries the
// step log recorded up to the point of exhaustion, for diagnostics.
type UnsatisfiableError[S cmp.Ordered] struct {
	Steps []Step[S]
}

// Error implements the error interface.
func (e *UnsatisfiableError[S]) Error() string {
	return fmt.Sprintf("engine: unsatisfiable after %d recorded steps", len(e.Steps))
}

// Is reports a match against ErrUnsat.
func (e *UnsatisfiableError[S]) Is(target error) bool {
	return target == ErrUnsat
}

// CancelledError reports that an external cancellation signal (ctx or
// the WithCancelChan channel) fired before the search concluded.
type CancelledError[S cmp.Ordered] struct {
	Steps []Step[S]
}

// Error implements the error interface.
func (e *CancelledError[S]) Error() string {
	return fmt.Sprintf("engine: cancelled after %d recorded steps", len(e.Steps))
}

// Is reports a match against ErrCancelled.
func (e *CancelledError[S]) Is(target error) bool {
	return target == ErrCancelled
}
