package prob

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
	"sort"
)

// ProbabilityTree holds a set of weighted items and draws from them
// with PopRandom (without replacement) or PeekRandom (with
// replacement), both weighted by each item's current weight.
//
// T is constrained to cmp.Ordered, not just comparable: New sorts its
// input map's keys before pushing them, so that two ProbabilityTrees
// built from the same weights and drawn from with the same *rand.Rand
// seed always make the same draws. A map's iteration order is
// randomized per-process; without this the cumulative-weight layout
// (and so which bracket a given draw lands in) would vary run to run
// even for identical inputs.
//
// The zero value is an empty tree; construct one with New, or build
// one up from an empty tree with successive Push calls.
type ProbabilityTree[T cmp.Ordered] struct {
	items   []T
	weights map[T]float64
	total   float64
}

// New builds a ProbabilityTree from a weight-per-item map, pushing
// items in sorted order for reproducible draws. Items with weight 0
// are kept (PeekRandom/PopRandom never draw them) but never contribute
// to the cumulative total. Panics if any weight is negative — a caller
// configuration error, not a runtime input.
func New[T cmp.Ordered](weightPerItem map[T]float64) *ProbabilityTree[T] {
	ordered := make([]T, 0, len(weightPerItem))
	for item := range weightPerItem {
		ordered = append(ordered, item)
	}
	slices.Sort(ordered)

	t := &ProbabilityTree[T]{
		items:   make([]T, 0, len(weightPerItem)),
		weights: make(map[T]float64, len(weightPerItem)),
	}
	for _, item := range ordered {
		t.Push(item, weightPerItem[item])
	}

	return t
}

// Push adds item with the given weight, or replaces its weight if
// already present. Panics if weight is negative.
func (t *ProbabilityTree[T]) Push(item T, weight float64) {
	if weight < 0 {
		panic(fmt.Errorf("%w: got %g for %v", ErrNegativeWeight, weight, item))
	}
	if t.weights == nil {
		t.weights = make(map[T]float64)
	}
	if _, exists := t.weights[item]; !exists {
		t.items = append(t.items, item)
	} else {
		t.total -= t.weights[item]
	}
	t.weights[item] = weight
	t.total += weight
}

// Len reports how many items remain, including weight-0 ones.
func (t *ProbabilityTree[T]) Len() int {
	return len(t.items)
}

// TotalWeight reports the sum of every item's current weight.
func (t *ProbabilityTree[T]) TotalWeight() float64 {
	return t.total
}

// Weight reports item's current weight, or 0 if item is absent.
func (t *ProbabilityTree[T]) Weight(item T) float64 {
	return t.weights[item]
}

// cumulative returns, for every item in declaration order, the running
// sum of weights up to and including that item.
func (t *ProbabilityTree[T]) cumulative() []float64 {
	cum := make([]float64, len(t.items))
	sum := 0.0
	for i, item := range t.items {
		sum += t.weights[item]
		cum[i] = sum
	}

	return cum
}

// pick draws a uniform value in [0, total) and returns the index of
// the item whose cumulative-weight bracket contains it. Returns
// (-1, false) if there are no items with positive weight.
func (t *ProbabilityTree[T]) pick(rng *rand.Rand) (int, bool) {
	if len(t.items) == 0 || t.total <= 0 {
		return -1, false
	}
	if len(t.items) == 1 {
		return 0, true
	}
	cum := t.cumulative()
	r := rng.Float64() * t.total
	idx := sort.Search(len(cum), func(i int) bool { return cum[i] > r })
	if idx == len(cum) {
		idx = len(cum) - 1
	}

	return idx, true
}

// PeekRandom draws an item weighted by its current weight, without
// removing it. Returns (zero, false) if no item has positive weight.
func (t *ProbabilityTree[T]) PeekRandom(rng *rand.Rand) (T, bool) {
	idx, ok := t.pick(rng)
	if !ok {
		var zero T

		return zero, false
	}

	return t.items[idx], true
}

// PopRandom draws an item weighted by its current weight and removes
// it from the tree entirely. Returns (zero, false) if no item has
// positive weight.
func (t *ProbabilityTree[T]) PopRandom(rng *rand.Rand) (T, bool) {
	idx, ok := t.pick(rng)
	if !ok {
		var zero T

		return zero, false
	}
	item := t.items[idx]
	t.items = append(t.items[:idx], t.items[idx+1:]...)
	t.total -= t.weights[item]
	delete(t.weights, item)

	return item, true
}
