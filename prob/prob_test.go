package prob_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wfc/prob"
	"github.com/stretchr/testify/require"
)

func TestPopRandom_EmptyTree(t *testing.T) {
	t.Parallel()

	tree := prob.New[string](nil)
	_, ok := tree.PopRandom(rand.New(rand.NewSource(1)))
	require.False(t, ok)
}

func TestPopRandom_SingleItem(t *testing.T) {
	t.Parallel()

	tree := prob.New(map[string]float64{"only": 3})
	item, ok := tree.PopRandom(rand.New(rand.NewSource(1)))
	require.True(t, ok)
	require.Equal(t, "only", item)
	require.Equal(t, 0, tree.Len())

	_, ok = tree.PopRandom(rand.New(rand.NewSource(1)))
	require.False(t, ok)
}

func TestPopRandom_SkipsZeroWeightItems(t *testing.T) {
	t.Parallel()

	tree := prob.New(map[string]float64{"never": 0, "always": 5})
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		item, ok := tree.PopRandom(rng)
		require.True(t, ok)
		require.Equal(t, "always", item)
		tree.Push("always", 5) // put it back for the next draw
	}
}

func TestPopRandom_DrainsEveryItemExactlyOnce(t *testing.T) {
	t.Parallel()

	weights := map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4}
	tree := prob.New(weights)
	rng := rand.New(rand.NewSource(7))

	seen := map[string]bool{}
	for tree.Len() > 0 {
		item, ok := tree.PopRandom(rng)
		require.True(t, ok)
		require.False(t, seen[item], "item %q popped twice", item)
		seen[item] = true
	}
	require.Len(t, seen, len(weights))
	require.Equal(t, 0.0, tree.TotalWeight())
}

func TestPeekRandom_DoesNotRemove(t *testing.T) {
	t.Parallel()

	tree := prob.New(map[string]float64{"only": 1})
	rng := rand.New(rand.NewSource(1))

	first, ok := tree.PeekRandom(rng)
	require.True(t, ok)
	require.Equal(t, "only", first)
	require.Equal(t, 1, tree.Len())

	second, ok := tree.PeekRandom(rng)
	require.True(t, ok)
	require.Equal(t, "only", second)
}

func TestPush_NegativeWeightPanics(t *testing.T) {
	t.Parallel()

	tree := prob.New[string](nil)
	require.Panics(t, func() {
		tree.Push("x", -1)
	})
}

func TestPush_ReplacesExistingWeight(t *testing.T) {
	t.Parallel()

	tree := prob.New(map[string]float64{"x": 1})
	require.Equal(t, 1.0, tree.TotalWeight())

	tree.Push("x", 9)
	require.Equal(t, 9.0, tree.TotalWeight())
	require.Equal(t, 1, tree.Len())
}

func TestSameSeedReproducesSameDrawOrder(t *testing.T) {
	t.Parallel()

	weights := map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5}

	draw := func(seed int64) []string {
		tree := prob.New(weights)
		rng := rand.New(rand.NewSource(seed))
		var order []string
		for tree.Len() > 0 {
			item, _ := tree.PopRandom(rng)
			order = append(order, item)
		}

		return order
	}

	require.Equal(t, draw(123), draw(123))
}

func TestWeightProportionalSelection(t *testing.T) {
	t.Parallel()

	weights := map[string]float64{"rare": 1, "common": 99}
	rng := rand.New(rand.NewSource(99))

	var commonCount int
	const trials = 2000
	for i := 0; i < trials; i++ {
		tree := prob.New(weights)
		item, ok := tree.PeekRandom(rng)
		require.True(t, ok)
		if item == "common" {
			commonCount++
		}
	}

	require.Greater(t, commonCount, trials*90/100)
}
