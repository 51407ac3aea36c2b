package engine

import (
	"cmp"
	"context"

	"github.com/katalvlaran/wfc/compiler"
)

// sequentialEngine walks compiler.CompiledGraph.Nodes in their fixed
// declaration order (a seed never reorders nodes), backtracking by decrementing
// depth. This is the direct translation of
// sequential_collapsable_wave_function.rs's control flow (see
// DESIGN.md).
type sequentialEngine[S cmp.Ordered] struct {
	cg  *compiler.CompiledGraph[S]
	cfg config[S]
}

// newSequentialEngine constructs a SequentialEngine over cg.
func newSequentialEngine[S cmp.Ordered](cg *compiler.CompiledGraph[S], cfg config[S]) *sequentialEngine[S] {
	return &sequentialEngine[S]{cg: cg, cfg: cfg}
}

// Collapse implements Engine.
func (e *sequentialEngine[S]) Collapse(ctx context.Context) (map[string]S, error) {
	assignment, _, err := e.run(ctx)
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

// CollapseIntoSteps implements Engine.
func (e *sequentialEngine[S]) CollapseIntoSteps(ctx context.Context) ([]Step[S], error) {
	_, steps, err := e.run(ctx)

	return steps, err
}

// run is the shared implementation behind Collapse and
// CollapseIntoSteps: the main backtracking loop of spec.md §4.4.
func (e *sequentialEngine[S]) run(ctx context.Context) (map[string]S, []Step[S], error) {
	cg := e.cg
	n := cg.Len()

	sink := e.cfg.sink
	if sink == nil {
		sink = noopSink[S]{}
	}

	var steps []Step[S]
	emit := func(nodeID string, state *S) {
		st := Step[S]{NodeID: nodeID, State: state}
		steps = append(steps, st)
		sink.OnStep(st)
	}

	if n == 0 {
		return map[string]S{}, steps, nil
	}

	maskStack := make([][]string, n)
	depth := 0

	for depth < n {
		if err := checkCancel(ctx, e.cfg.cancelCh); err != nil {
			teardown(cg, maskStack, depth)

			return nil, steps, &CancelledError[S]{Steps: steps}
		}

		cur := cg.Nodes[depth]
		if cur.View.TryAdvance() {
			idx, _ := cur.View.Peek()
			state := cur.Domain[idx]
			forwarded, ok := forwardToNeighbors(cg, cur, state)
			if ok {
				emit(cur.ID, &state)
				d := depth
				cur.ChosenAtDepth = &d
				maskStack[depth] = forwarded
				depth++
			} else {
				reverseForwarded(cg, forwarded)
				emit(cur.ID, nil)
			}
			continue
		}

		cur.View.Reset()
		cur.ChosenAtDepth = nil
		emit(cur.ID, nil)
		if depth == 0 {
			teardown(cg, maskStack, depth)

			return nil, steps, &UnsatisfiableError[S]{Steps: steps}
		}
		depth--
		reverseForwarded(cg, maskStack[depth])
		maskStack[depth] = nil
	}

	assignment := extractAssignment(cg)
	teardown(cg, maskStack, depth)

	return assignment, steps, nil
}
