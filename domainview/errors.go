package domainview

import "errors"

// Sentinel errors for domainview operations.
var (
	// ErrAlreadyShuffled is returned by Shuffle once the cursor has moved.
	ErrAlreadyShuffled = errors.New("domainview: shuffle after cursor movement")

	// ErrWidthMismatch is returned by AddMask/SubtractMask when the mask's
	// width does not equal the view's domain size.
	ErrWidthMismatch = errors.New("domainview: mask width mismatch")

	// ErrNoMaskToReverse is the panic value of ReverseMask when the LIFO
	// stack of applied masks is empty — a programmer error, never a
	// runtime input.
	ErrNoMaskToReverse = errors.New("domainview: no forward mask to reverse")

	// ErrCounterUnderflow is the panic value (wrapped) of SubtractMask
	// when it would decrement a counter already at zero. A breach of the
	// invariant that add/subtract are always balanced; indicates a bug in
	// the caller, not bad input.
	ErrCounterUnderflow = errors.New("domainview: counter underflow")
)
