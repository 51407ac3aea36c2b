package engine

import (
	"cmp"

	"github.com/katalvlaran/wfc/compiler"
)

// forwardToNeighbors forwards state's neighbor masks from cn to every
// out-neighbor that has one registered (states never mentioned as a
// source state on an edge impose no constraint on that edge). It
// stops at the first neighbor left fully restricted, returning the
// partial list of neighbors already touched and ok=false so the
// caller can reverse exactly those.
func forwardToNeighbors[S cmp.Ordered](cg *compiler.CompiledGraph[S], cn *compiler.CompiledNode[S], state S) (forwarded []string, ok bool) {
	masksForState, hasState := cn.MaskPerStatePerNeighbor[state]
	if !hasState {
		return nil, true
	}
	for _, neighborID := range cn.NeighborIDs {
		mask, hasMask := masksForState[neighborID]
		if !hasMask {
			continue
		}
		neighbor, found := cg.NodeByID(neighborID)
		if !found {
			continue
		}
		if err := neighbor.View.ForwardMask(mask); err != nil {
			// Masks are built from the neighbor's own domain length at
			// compile time; a width mismatch here is a compiler bug.
			panic(err)
		}
		forwarded = append(forwarded, neighborID)
		if neighbor.View.IsFullyRestricted() {
			return forwarded, false
		}
	}

	return forwarded, true
}

// reverseForwarded undoes forwardToNeighbors' masks in reverse (LIFO)
// order.
func reverseForwarded[S cmp.Ordered](cg *compiler.CompiledGraph[S], ids []string) {
	for i := len(ids) - 1; i >= 0; i-- {
		n, found := cg.NodeByID(ids[i])
		if !found {
			continue
		}
		n.View.ReverseMask()
	}
}

// extractAssignment reads each node's current cursor state into a
// plain map. Valid only once every node has successfully advanced.
func extractAssignment[S cmp.Ordered](cg *compiler.CompiledGraph[S]) map[string]S {
	out := make(map[string]S, cg.Len())
	for _, cn := range cg.Nodes {
		idx, ok := cn.View.Peek()
		if !ok {
			continue
		}
		out[cn.ID] = cn.Domain[idx]
	}

	return out
}

// teardown restores every node touched at depths [0, depth) to its
// initial state: masks reversed, cursor reset, chosen-at-depth
// cleared. Called before every return from run(), regardless of
// outcome, so the compiled graph is always left ready for the next
// collapse attempt (spec.md §8's mask-stack-balance invariant).
func teardown[S cmp.Ordered](cg *compiler.CompiledGraph[S], maskStack [][]string, depth int) {
	for d := depth - 1; d >= 0; d-- {
		reverseForwarded(cg, maskStack[d])
		maskStack[d] = nil
	}
	for _, cn := range cg.Nodes {
		cn.View.Reset()
		cn.ChosenAtDepth = nil
	}
}
