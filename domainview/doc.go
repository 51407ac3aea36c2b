// Package domainview provides IndexedView, a permutable cursor over a
// node's state domain guarded by a reference-counted mask stack.
//
// A View owns a domain of fixed size n (positions 0..n-1, meaning
// deferred to the caller — domainview only tracks which positions are
// currently permitted). Two independent layers of state coexist:
//
//   - a permutation π (identity until Shuffle is called, then fixed)
//     that defines the order TryAdvance walks positions in;
//   - a counter per physical position, incremented by AddMask and
//     decremented by SubtractMask, so that a position is permitted iff
//     its counter is zero regardless of how many overlapping parents
//     forbid it.
//
// Representing restrictions as counters rather than booleans makes
// forward/reverse composition commutative: two parents independently
// forbidding the same state compose correctly under backtracking no
// matter which one is reversed first.
//
// ForwardMask/ReverseMask layer a small LIFO on top of AddMask/
// SubtractMask so a caller can reverse "the mask most recently applied
// to this view" without tracking the mask value itself.
package domainview
