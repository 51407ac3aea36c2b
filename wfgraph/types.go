package wfgraph

import "cmp"

// Node is the declarative description of one graph node: a weighted
// state domain plus outgoing edges, each edge carrying an ordered list
// of state-collection ids that govern it.
//
// Weights maps every permitted state to a non-negative weight; weight
// 0 means "permitted but never preferred by a weighted sampler." The
// domain of a Node is exactly the key set of Weights, sorted ascending
// by Build.
//
// Edges maps neighbor node id to the ordered list of StateCollection
// ids attached to the directed edge from this node to that neighbor.
type Node[S cmp.Ordered] struct {
	ID      string
	Weights map[S]float64
	Edges   map[string][]string

	domain []S // sorted ascending, computed by Build
}

// Domain returns the node's sorted state domain. Valid only on a Node
// returned from a built WaveFunction (Build populates it); a bare
// caller-constructed Node has a nil Domain until passed through Build.
func (n *Node[S]) Domain() []S {
	return n.domain
}

// Weight returns the weight of s in this node's domain, or 0 if s is
// not in the domain.
func (n *Node[S]) Weight(s S) float64 {
	return n.Weights[s]
}

// StateCollection is a named permission rule: if the edge's source
// node holds SourceState, the neighbor across that edge may only hold
// a state in AllowedNeighborStates. Multiple collections attached to
// the same edge with the same SourceState union their allowed sets.
type StateCollection[S cmp.Ordered] struct {
	ID                    string
	SourceState           S
	AllowedNeighborStates map[S]struct{}
}

// WaveFunction is a validated (or validatable) declarative graph: a
// fixed ordered list of Nodes plus the StateCollections their edges
// reference. Construct one with Build.
type WaveFunction[S cmp.Ordered] struct {
	nodes       []*Node[S]
	index       map[string]int // node id -> position in nodes
	collections map[string]*StateCollection[S]
}

// Nodes returns the nodes in declaration order. The returned slice and
// its elements must not be mutated by callers outside this module.
func (wf *WaveFunction[S]) Nodes() []*Node[S] {
	return wf.nodes
}

// NodeByID looks up a node by id.
func (wf *WaveFunction[S]) NodeByID(id string) (*Node[S], bool) {
	i, ok := wf.index[id]
	if !ok {
		return nil, false
	}

	return wf.nodes[i], true
}

// CollectionByID looks up a state collection by id.
func (wf *WaveFunction[S]) CollectionByID(id string) (*StateCollection[S], bool) {
	c, ok := wf.collections[id]

	return c, ok
}

// Collections returns every state collection, keyed by id. The
// returned map must not be mutated by callers outside this module.
func (wf *WaveFunction[S]) Collections() map[string]*StateCollection[S] {
	return wf.collections
}
