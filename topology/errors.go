package topology

import "errors"

var (
	// ErrTooFewNodes is returned when a requested topology would have
	// fewer nodes than it supports: fewer than one for Path, fewer than
	// three for Cycle.
	ErrTooFewNodes = errors.New("topology: need at least one node")

	// ErrInvalidSudokuPuzzle is returned by Sudoku when the given puzzle
	// string is not 81 characters of '1'-'9' or '.'.
	ErrInvalidSudokuPuzzle = errors.New("topology: sudoku puzzle must be 81 characters of '1'-'9' or '.'")
)
