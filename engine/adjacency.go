package engine

import (
	"cmp"
	"context"

	"github.com/katalvlaran/wfc/compiler"
)

// frontierEntry is one node on the adjacency engine's visited stack:
// its id, and how far its NeighborIDs have been scanned for the next
// unvisited child to push.
type frontierEntry struct {
	nodeID  string
	scanned int // NeighborIDs[0:scanned] have already been considered
}

// adjacencyEngine walks the compiled graph by adjacency: the next
// node to assign is an unvisited out-neighbor of the most recently
// successful node, found by scanning the visited stack backward (most
// recent first). This is the direct translation of
// sequential_adjacent_collapsable_wave_function.rs's VisitedCollapsableNode
// stack (see DESIGN.md).
type adjacencyEngine[S cmp.Ordered] struct {
	cg   *compiler.CompiledGraph[S]
	cfg  config[S]
	root string
}

// newAdjacencyEngine constructs an AdjacencyEngine over cg, picking as
// root the first node (in compiled order) whose outgoing-edge
// reachability covers every other node — the same node
// wfgraph.Validate's weaker connectivity check guarantees exists.
func newAdjacencyEngine[S cmp.Ordered](cg *compiler.CompiledGraph[S], cfg config[S]) *adjacencyEngine[S] {
	return &adjacencyEngine[S]{cg: cg, cfg: cfg, root: findRoot(cg)}
}

// findRoot returns the first node whose forward adjacency closure
// covers every node in cg. Panics if none does — that can only happen
// if a CompiledGraph was assembled by hand without running
// wfgraph.Validate first, which is a caller bug.
func findRoot[S cmp.Ordered](cg *compiler.CompiledGraph[S]) string {
	for _, candidate := range cg.Nodes {
		seen := map[string]bool{candidate.ID: true}
		queue := []string{candidate.ID}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			node, _ := cg.NodeByID(id)
			for _, nb := range node.NeighborIDs {
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		if len(seen) == cg.Len() {
			return candidate.ID
		}
	}
	panic("engine: no node reaches every other node; compile from a validated wfgraph.WaveFunction")
}

// Collapse implements Engine.
func (e *adjacencyEngine[S]) Collapse(ctx context.Context) (map[string]S, error) {
	assignment, _, err := e.run(ctx)
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

// CollapseIntoSteps implements Engine.
func (e *adjacencyEngine[S]) CollapseIntoSteps(ctx context.Context) ([]Step[S], error) {
	_, steps, err := e.run(ctx)

	return steps, err
}

// findUnvisitedNeighbor scans the visited stack from the most
// recently pushed entry backward, looking for an entry with an
// unvisited neighbor not yet considered. On success it advances that
// entry's scan cursor and returns the neighbor id.
func findUnvisitedNeighbor[S cmp.Ordered](cg *compiler.CompiledGraph[S], stack []frontierEntry, visited map[string]bool) (string, bool) {
	for i := len(stack) - 1; i >= 0; i-- {
		entry := &stack[i]
		node, _ := cg.NodeByID(entry.nodeID)
		for entry.scanned < len(node.NeighborIDs) {
			candidate := node.NeighborIDs[entry.scanned]
			entry.scanned++
			if !visited[candidate] {
				return candidate, true
			}
		}
	}

	return "", false
}

// run is the shared implementation behind Collapse and
// CollapseIntoSteps.
func (e *adjacencyEngine[S]) run(ctx context.Context) (map[string]S, []Step[S], error) {
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
	visited := map[string]bool{e.root: true}
	stack := []frontierEntry{{nodeID: e.root}}

	for {
		if err := checkCancel(ctx, e.cfg.cancelCh); err != nil {
			teardown(cg, maskStack, len(stack))

			return nil, steps, &CancelledError[S]{Steps: steps}
		}

		depth := len(stack) - 1
		top := &stack[depth]
		cur, _ := cg.NodeByID(top.nodeID)

		if cur.View.TryAdvance() {
			idx, _ := cur.View.Peek()
			state := cur.Domain[idx]
			forwarded, ok := forwardToNeighbors(cg, cur, state)
			if !ok {
				reverseForwarded(cg, forwarded)
				emit(cur.ID, nil)
				continue
			}

			emit(cur.ID, &state)
			d := depth
			cur.ChosenAtDepth = &d
			maskStack[depth] = forwarded

			if len(stack) == n {
				assignment := extractAssignment(cg)
				teardown(cg, maskStack, len(stack))

				return assignment, steps, nil
			}

			if nextID, found := findUnvisitedNeighbor(cg, stack, visited); found {
				visited[nextID] = true
				stack = append(stack, frontierEntry{nodeID: nextID})
			}
			// While len(stack) < n an unvisited neighbor always exists:
			// the stack holds exactly the visited nodes, it contains the
			// root, and the root reaches every node, so some stacked node
			// has an unvisited out-neighbor that the scan finds. This loop
			// therefore makes forward progress until len(stack) == n.
			continue
		}

		cur.View.Reset()
		cur.ChosenAtDepth = nil
		emit(cur.ID, nil)
		if len(stack) == 1 {
			teardown(cg, maskStack, len(stack))

			return nil, steps, &UnsatisfiableError[S]{Steps: steps}
		}
		delete(visited, top.nodeID)
		stack = stack[:len(stack)-1]
		// The popped node is unvisited again, but the entry that found it
		// has already scanned past it; rescan every entry from the start
		// (visited neighbors are skipped) so it can be found again.
		for i := range stack {
			stack[i].scanned = 0
		}
		newTop := len(stack) - 1
		reverseForwarded(cg, maskStack[newTop])
		maskStack[newTop] = nil
	}
}
