package domainview_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wfc/bitmask"
	"github.com/katalvlaran/wfc/domainview"
	"github.com/stretchr/testify/require"
)

func TestTryAdvancePeekReset(t *testing.T) {
	t.Parallel()

	v := domainview.New(3)
	_, ok := v.Peek()
	require.False(t, ok)

	require.True(t, v.TryAdvance())
	idx, ok := v.Peek()
	require.True(t, ok)
	require.Equal(t, 0, idx)

	require.True(t, v.TryAdvance())
	idx, ok = v.Peek()
	require.True(t, ok)
	require.Equal(t, 1, idx)

	require.True(t, v.TryAdvance())
	require.False(t, v.TryAdvance()) // exhausted
	_, ok = v.Peek()
	require.False(t, ok)

	v.Reset()
	_, ok = v.Peek()
	require.False(t, ok)
	require.True(t, v.TryAdvance())
	idx, ok = v.Peek()
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestShuffleFailsAfterMovement(t *testing.T) {
	t.Parallel()

	v := domainview.New(4)
	rng := rand.New(rand.NewSource(1))
	require.NoError(t, v.Shuffle(rng))

	v.TryAdvance()
	require.ErrorIs(t, v.Shuffle(rng), domainview.ErrAlreadyShuffled)
}

func TestSetOrderAppliesExplicitPermutation(t *testing.T) {
	t.Parallel()

	v := domainview.New(3)
	require.NoError(t, v.SetOrder([]int{2, 0, 1}))

	require.True(t, v.TryAdvance())
	idx, _ := v.Peek()
	require.Equal(t, 2, idx)

	require.True(t, v.TryAdvance())
	idx, _ = v.Peek()
	require.Equal(t, 0, idx)

	require.True(t, v.TryAdvance())
	idx, _ = v.Peek()
	require.Equal(t, 1, idx)

	require.False(t, v.TryAdvance())
}

func TestSetOrderFailsAfterMovement(t *testing.T) {
	t.Parallel()

	v := domainview.New(3)
	v.TryAdvance()
	require.ErrorIs(t, v.SetOrder([]int{0, 1, 2}), domainview.ErrAlreadyShuffled)
}

func TestSetOrderRejectsWrongLength(t *testing.T) {
	t.Parallel()

	v := domainview.New(3)
	require.ErrorIs(t, v.SetOrder([]int{0, 1}), domainview.ErrWidthMismatch)
}

func TestSetOrderRejectsNonPermutation(t *testing.T) {
	t.Parallel()

	v := domainview.New(3)
	require.ErrorIs(t, v.SetOrder([]int{0, 0, 2}), domainview.ErrWidthMismatch)
	v2 := domainview.New(3)
	require.ErrorIs(t, v2.SetOrder([]int{0, 1, 5}), domainview.ErrWidthMismatch)
}

func TestAddMaskRestrictsAndSubtractUndoes(t *testing.T) {
	t.Parallel()

	v := domainview.New(3)
	// Forbid position 1 only.
	m := bitmask.FromBools([]bool{true, false, true})
	require.NoError(t, v.AddMask(m))

	require.True(t, v.TryAdvance())
	idx, _ := v.Peek()
	require.Equal(t, 0, idx)
	require.True(t, v.TryAdvance())
	idx, _ = v.Peek()
	require.Equal(t, 2, idx) // position 1 skipped

	require.NoError(t, v.SubtractMask(m))
	v.Reset()
	require.True(t, v.TryAdvance())
	require.True(t, v.TryAdvance())
	idx, _ = v.Peek()
	require.Equal(t, 1, idx) // restored
}

func TestIsFullyRestricted(t *testing.T) {
	t.Parallel()

	v := domainview.New(2)
	require.False(t, v.IsFullyRestricted())

	all := bitmask.NewZero(2)
	require.NoError(t, v.AddMask(all))
	require.True(t, v.IsFullyRestricted())

	require.NoError(t, v.SubtractMask(all))
	require.False(t, v.IsFullyRestricted())
}

func TestIsCurrentRestricted(t *testing.T) {
	t.Parallel()

	v := domainview.New(2)
	require.True(t, v.TryAdvance())
	require.False(t, v.IsCurrentRestricted())

	m := bitmask.FromBools([]bool{false, true})
	require.NoError(t, v.AddMask(m))
	require.True(t, v.IsCurrentRestricted())
}

func TestForwardReverseMaskIdempotence(t *testing.T) {
	t.Parallel()

	v := domainview.New(3)
	m := bitmask.FromBools([]bool{true, false, false})

	require.NoError(t, v.ForwardMask(m))
	require.Equal(t, 1, v.PendingMasks())
	require.True(t, v.IsFullyRestricted() == false)

	v.ReverseMask()
	require.Equal(t, 0, v.PendingMasks())
	require.False(t, v.IsFullyRestricted())
}

func TestReverseMaskPanicsWhenEmpty(t *testing.T) {
	t.Parallel()

	v := domainview.New(2)
	require.Panics(t, func() { v.ReverseMask() })
}

func TestSubtractMaskUnderflowPanics(t *testing.T) {
	t.Parallel()

	v := domainview.New(2)
	m := bitmask.FromBools([]bool{false, true})
	require.Panics(t, func() { _ = v.SubtractMask(m) })
}

func TestWidthMismatch(t *testing.T) {
	t.Parallel()

	v := domainview.New(2)
	m := bitmask.NewZero(3)
	require.ErrorIs(t, v.AddMask(m), domainview.ErrWidthMismatch)
	require.ErrorIs(t, v.SubtractMask(m), domainview.ErrWidthMismatch)
}
