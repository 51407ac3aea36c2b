package domainview

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wfc/bitmask"
)

// cursorBeforeStart is the sentinel cursor value meaning "no position
// has been visited yet" — distinct from any valid logical index.
const cursorBeforeStart = -1

// View is a permutable cursor over a fixed-size domain, guarded by a
// reference-counted mask stack. The zero value is not usable;
// construct one with New.
type View struct {
	n        int
	perm     []int // perm[logical index] = physical domain index
	counter  []int // counter[physical index], >0 means forbidden
	restrict int   // number of physical positions with counter > 0
	cursor   int   // logical index, or cursorBeforeStart
	shuffled bool  // true once Shuffle has been called
	moved    bool  // true once the cursor has moved at least once

	applied []bitmask.Mask // LIFO of masks applied via ForwardMask
}

// New returns a View over a domain of size n with the identity
// permutation and every position permitted.
func New(n int) *View {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return &View{
		n:       n,
		perm:    perm,
		counter: make([]int, n),
		cursor:  cursorBeforeStart,
	}
}

// Len returns the domain size.
func (v *View) Len() int {
	return v.n
}

// Shuffle permutes the domain order using rng. It may only be called
// before the cursor has moved; afterwards it returns ErrAlreadyShuffled.
func (v *View) Shuffle(rng *rand.Rand) error {
	if v.moved {
		return ErrAlreadyShuffled
	}
	rng.Shuffle(len(v.perm), func(i, j int) {
		v.perm[i], v.perm[j] = v.perm[j], v.perm[i]
	})
	v.shuffled = true

	return nil
}

// TryAdvance moves the cursor to the smallest logical index strictly
// greater than the current position whose physical counter is zero.
// It returns true if such a position exists, false if the cursor ran
// off the end (the view is left "exhausted": Peek becomes invalid and
// a subsequent TryAdvance again returns false until Reset).
func (v *View) TryAdvance() bool {
	v.moved = true
	for i := v.cursor + 1; i < v.n; i++ {
		if v.counter[v.perm[i]] == 0 {
			v.cursor = i
			return true
		}
	}
	v.cursor = v.n // exhausted

	return false
}

// Peek returns the state index at the current cursor and true, or
// (0, false) if the cursor is not at a valid position (before start or
// exhausted).
func (v *View) Peek() (int, bool) {
	if v.cursor < 0 || v.cursor >= v.n {
		return 0, false
	}

	return v.perm[v.cursor], true
}

// SetOrder replaces the view's logical-to-physical permutation outright,
// for callers that compute their own ordering (e.g. a weighted order
// from prob.ProbabilityTree) instead of Shuffle's uniform one. order
// must be a permutation of [0, Len()); like Shuffle, it may only be
// called before the cursor has moved.
func (v *View) SetOrder(order []int) error {
	if v.moved {
		return ErrAlreadyShuffled
	}
	if len(order) != v.n {
		return fmt.Errorf("%w: order has %d entries, view has %d", ErrWidthMismatch, len(order), v.n)
	}
	seen := make([]bool, v.n)
	for _, p := range order {
		if p < 0 || p >= v.n || seen[p] {
			return fmt.Errorf("%w: order is not a permutation of [0, %d)", ErrWidthMismatch, v.n)
		}
		seen[p] = true
	}
	copy(v.perm, order)
	v.shuffled = true

	return nil
}

// Reset moves the cursor back to "before start". It does not clear
// counters: forward restrictions from parents above this node in the
// search tree must survive a reset of this node's own cursor.
func (v *View) Reset() {
	v.cursor = cursorBeforeStart
}

// AddMask increments the counter of every physical position m forbids
// (m.Test(i) == false). Returns ErrWidthMismatch if m.Len() != v.Len().
func (v *View) AddMask(m bitmask.Mask) error {
	if m.Len() != v.n {
		return fmt.Errorf("%w: mask has %d bits, view has %d", ErrWidthMismatch, m.Len(), v.n)
	}
	for i := 0; i < v.n; i++ {
		if !m.Test(i) {
			if v.counter[i] == 0 {
				v.restrict++
			}
			v.counter[i]++
		}
	}

	return nil
}

// SubtractMask decrements the counter of every physical position m
// forbids, the exact inverse of AddMask. Panics on underflow: a
// counter reaching below zero means add/subtract calls were not
// balanced, which is a caller bug, not a runtime input.
func (v *View) SubtractMask(m bitmask.Mask) error {
	if m.Len() != v.n {
		return fmt.Errorf("%w: mask has %d bits, view has %d", ErrWidthMismatch, m.Len(), v.n)
	}
	for i := 0; i < v.n; i++ {
		if !m.Test(i) {
			if v.counter[i] == 0 {
				panic(fmt.Errorf("%w: position %d", ErrCounterUnderflow, i))
			}
			v.counter[i]--
			if v.counter[i] == 0 {
				v.restrict--
			}
		}
	}

	return nil
}

// ForwardMask applies m via AddMask and remembers it on an internal
// LIFO, so a matching ReverseMask can undo exactly this application
// without the caller needing to keep the mask value around.
func (v *View) ForwardMask(m bitmask.Mask) error {
	if err := v.AddMask(m); err != nil {
		return err
	}
	v.applied = append(v.applied, m)

	return nil
}

// ReverseMask undoes the most recently applied ForwardMask. Panics if
// there is nothing to reverse — a caller bug, since forward/reverse
// calls must always balance.
func (v *View) ReverseMask() {
	if len(v.applied) == 0 {
		panic(ErrNoMaskToReverse)
	}
	last := len(v.applied) - 1
	m := v.applied[last]
	v.applied = v.applied[:last]
	if err := v.SubtractMask(m); err != nil {
		panic(err)
	}
}

// PendingMasks reports how many ForwardMask calls are awaiting a
// matching ReverseMask.
func (v *View) PendingMasks() int {
	return len(v.applied)
}

// IsFullyRestricted reports whether every position has a nonzero
// counter, i.e. no state in the domain is currently permitted.
func (v *View) IsFullyRestricted() bool {
	return v.restrict == v.n
}

// IsCurrentRestricted reports whether the cursor is at a valid
// position whose counter is nonzero.
func (v *View) IsCurrentRestricted() bool {
	if v.cursor < 0 || v.cursor >= v.n {
		return false
	}

	return v.counter[v.perm[v.cursor]] > 0
}
