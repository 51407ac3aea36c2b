// Package prob provides weighted random selection without (Pop) and
// with (Peek) removal, over a generic ordered (cmp.Ordered) item type.
//
// ProbabilityTree mirrors a cumulative-weight index: each call to
// PopRandom or PeekRandom draws a uniform value in [0, total weight)
// and locates the item whose cumulative weight bracket contains it via
// binary search. Items pushed with weight 0 are tracked but never
// drawn, matching the convention that a weight-0 state is permitted
// but never preferred.
package prob
