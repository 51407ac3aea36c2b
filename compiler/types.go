package compiler

import (
	"cmp"

	"github.com/katalvlaran/wfc/bitmask"
	"github.com/katalvlaran/wfc/domainview"
)

// CompiledNode is the runtime record for one node: its sorted domain,
// sorted/ordered neighbor and parent id lists, the per-source-state
// neighbor masks the compiler built, and the IndexedView driving
// search over its domain.
type CompiledNode[S cmp.Ordered] struct {
	ID          string
	Domain      []S
	NeighborIDs []string // sorted ascending
	ParentIDs   []string // sorted ascending, or seed-shuffled

	// MaskPerStatePerNeighbor[s][neighborID] is the bitmask.Mask over
	// neighborID's domain permitted when this node holds state s.
	// A missing entry for (s, neighborID) means "no constraint."
	MaskPerStatePerNeighbor map[S]map[string]bitmask.Mask

	View *domainview.View

	// ChosenAtDepth is non-nil once this node's current value has been
	// locked in at the given search depth.
	ChosenAtDepth *int
}

// StateIndex returns the position of s within this node's sorted
// domain, or -1 if s is not in the domain.
func (cn *CompiledNode[S]) StateIndex(s S) int {
	for i, d := range cn.Domain {
		if d == s {
			return i
		}
	}

	return -1
}

// CompiledGraph is the flat, index-addressed result of Compile: every
// node's CompiledNode record plus an id lookup table. It is
// engine-agnostic — SequentialEngine and AdjacencyEngine both search
// the same CompiledGraph.
type CompiledGraph[S cmp.Ordered] struct {
	Nodes []*CompiledNode[S]
	index map[string]int
}

// NodeByID looks up a compiled node by id.
func (cg *CompiledGraph[S]) NodeByID(id string) (*CompiledNode[S], bool) {
	i, ok := cg.index[id]
	if !ok {
		return nil, false
	}

	return cg.Nodes[i], true
}

// Len returns the number of nodes in the compiled graph.
func (cg *CompiledGraph[S]) Len() int {
	return len(cg.Nodes)
}
