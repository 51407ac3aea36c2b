package wfgraph

import (
	"cmp"
	"fmt"
)

// Validate runs the graph-wide checks Build does not: every neighbor
// id referenced by an edge must exist, every state-collection id
// referenced by an edge must exist, every referenced collection's
// SourceState must be in its owning node's domain, and the graph must
// satisfy the (deliberately weaker than full undirected connectivity)
// rule that at least one node can reach every other by following
// outgoing edges.
//
// Returns the first violation found, in that order, as a
// *ValidationError.
func (wf *WaveFunction[S]) Validate() error {
	for _, n := range wf.nodes {
		for neighborID, collIDs := range n.Edges {
			if _, ok := wf.index[neighborID]; !ok {
				return &ValidationError{
					Kind:   ErrDanglingNeighbor,
					NodeID: n.ID,
					Detail: fmt.Sprintf("neighbor %q does not exist", neighborID),
				}
			}
			for _, cid := range collIDs {
				coll, ok := wf.collections[cid]
				if !ok {
					return &ValidationError{
						Kind:   ErrUnknownCollection,
						NodeID: n.ID,
						Detail: fmt.Sprintf("collection %q referenced on edge to %q does not exist", cid, neighborID),
					}
				}
				if !domainContains(n.domain, coll.SourceState) {
					return &ValidationError{
						Kind:   ErrSourceStateNotInDomain,
						NodeID: n.ID,
						Detail: fmt.Sprintf("collection %q's source state is not in node %q's domain", cid, n.ID),
					}
				}
			}
		}
	}

	if err := wf.validateConnectivity(); err != nil {
		return err
	}

	return nil
}

// domainContains reports whether s appears in the sorted slice domain.
func domainContains[S cmp.Ordered](domain []S, s S) bool {
	for _, d := range domain {
		if d == s {
			return true
		}
	}

	return false
}

// validateConnectivity checks the source's weaker rule: at least one
// node must reach every other node by outgoing-edge traversal. This is
// intentionally weaker than full undirected connectivity (see
// DESIGN.md, Open Question §9(iii)).
//
// Node ids and their Edges keys are already indexed in wf.index, so
// reachability is a plain id-keyed BFS over that map rather than a
// general-purpose graph type: this domain never needs edge weights,
// directed/undirected toggles, or mutation after Build.
func (wf *WaveFunction[S]) validateConnectivity() error {
	if len(wf.nodes) <= 1 {
		return nil
	}

	for _, n := range wf.nodes {
		if wf.reachableCount(n.ID) == len(wf.nodes) {
			return nil
		}
	}

	return &ValidationError{
		Kind:   ErrDisconnected,
		Detail: "no node can reach every other node via outgoing edges",
	}
}

// reachableCount runs a breadth-first traversal from startID following
// outgoing edges and returns how many distinct node ids it visits,
// including startID itself.
func (wf *WaveFunction[S]) reachableCount(startID string) int {
	visited := map[string]bool{startID: true}
	queue := []string{startID}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		pos, ok := wf.index[id]
		if !ok {
			// Every id enqueued here came from a node's own id or an
			// edge key validated against wf.index by Validate; this
			// can only happen on a bug, not bad input.
			panic(fmt.Errorf("wfgraph: unexpected missing node %q", id))
		}
		for neighborID := range wf.nodes[pos].Edges {
			if !visited[neighborID] {
				visited[neighborID] = true
				queue = append(queue, neighborID)
			}
		}
	}

	return len(visited)
}
