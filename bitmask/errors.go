package bitmask

import "errors"

// Sentinel errors for bitmask operations.
var (
	// ErrNegativeLength is the panic value (wrapped) when a Mask is
	// constructed with n < 0.
	ErrNegativeLength = errors.New("bitmask: negative length")

	// ErrIndexOutOfRange is the panic value (wrapped) of Test/Set/Clear
	// for i outside [0, Len()).
	ErrIndexOutOfRange = errors.New("bitmask: index out of range")

	// ErrWidthMismatch names a difference in operand widths. No function
	// in this package returns it: Equal reports false for masks of
	// different widths.
	ErrWidthMismatch = errors.New("bitmask: width mismatch")
)
