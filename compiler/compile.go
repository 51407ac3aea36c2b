package compiler

import (
	"cmp"
	"math/rand"
	"sort"

	"github.com/katalvlaran/wfc/bitmask"
	"github.com/katalvlaran/wfc/domainview"
	"github.com/katalvlaran/wfc/prob"
	"github.com/katalvlaran/wfc/wfgraph"
)

// Compile validates wf, then builds a CompiledGraph: per-node/per-state
// neighbor masks, transposed parent lists, and one domainview.View per
// node over its sorted domain. See the package doc for the four-stage
// pipeline.
func Compile[S cmp.Ordered](wf *wfgraph.WaveFunction[S], opts ...CompileOption) (*CompiledGraph[S], error) {
	if wf == nil {
		return nil, ErrNilWaveFunction
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weightedOrder && !cfg.seeded {
		return nil, ErrWeightedOrderWithoutSeed
	}

	if err := wf.Validate(); err != nil {
		return nil, err
	}

	nodes := wf.Nodes()
	cg := &CompiledGraph[S]{
		Nodes: make([]*CompiledNode[S], 0, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}

	for i, n := range nodes {
		neighborIDs := make([]string, 0, len(n.Edges))
		for nb := range n.Edges {
			neighborIDs = append(neighborIDs, nb)
		}
		sort.Strings(neighborIDs)

		cn := &CompiledNode[S]{
			ID:                      n.ID,
			Domain:                  n.Domain(),
			NeighborIDs:             neighborIDs,
			MaskPerStatePerNeighbor: make(map[S]map[string]bitmask.Mask),
		}
		cg.index[n.ID] = i
		cg.Nodes = append(cg.Nodes, cn)
	}

	buildMaskTable(wf, cg)
	transposeParents(cg)

	for i, cn := range cg.Nodes {
		cn.View = domainview.New(len(cn.Domain))
		if cfg.seeded {
			rng := rand.New(rand.NewSource(deriveSeed(cfg.seed, i)))
			if cfg.weightedOrder {
				order := weightedDomainOrder(rng, nodes[i], cn.Domain)
				if err := cn.View.SetOrder(order); err != nil {
					// Compile always orders a fresh view before any cursor
					// movement; an error here is a bug, not input.
					panic(err)
				}
			} else if err := cn.View.Shuffle(rng); err != nil {
				panic(err)
			}
			shuffleStrings(rng, cn.ParentIDs)
		}
	}

	return cg, nil
}

// buildMaskTable fills in every node's MaskPerStatePerNeighbor: for
// each directed edge u->v, group the collections attached to that edge
// by their SourceState, and OR each group's allowed-neighbor-states
// into one bitmask.Mask over v's domain.
func buildMaskTable[S cmp.Ordered](wf *wfgraph.WaveFunction[S], cg *CompiledGraph[S]) {
	for _, cn := range cg.Nodes {
		n, _ := wf.NodeByID(cn.ID)
		for neighborID, collIDs := range n.Edges {
			neighbor, _ := wf.NodeByID(neighborID)
			bySourceState := make(map[S][]*wfgraph.StateCollection[S])
			for _, cid := range collIDs {
				coll, _ := wf.CollectionByID(cid)
				bySourceState[coll.SourceState] = append(bySourceState[coll.SourceState], coll)
			}
			for state, colls := range bySourceState {
				mask := bitmask.NewZero(len(neighbor.Domain()))
				for i, val := range neighbor.Domain() {
					for _, coll := range colls {
						if _, ok := coll.AllowedNeighborStates[val]; ok {
							mask.Set(i)
							break
						}
					}
				}
				if cn.MaskPerStatePerNeighbor[state] == nil {
					cn.MaskPerStatePerNeighbor[state] = make(map[string]bitmask.Mask)
				}
				cn.MaskPerStatePerNeighbor[state][neighborID] = mask
			}
		}
	}
}

// transposeParents fills in every node's ParentIDs from the
// already-built NeighborIDs of every other node, sorted ascending.
func transposeParents[S cmp.Ordered](cg *CompiledGraph[S]) {
	parents := make(map[string][]string, len(cg.Nodes))
	for _, cn := range cg.Nodes {
		for _, nb := range cn.NeighborIDs {
			parents[nb] = append(parents[nb], cn.ID)
		}
	}
	for _, cn := range cg.Nodes {
		ids := parents[cn.ID]
		sort.Strings(ids)
		cn.ParentIDs = ids
	}
}

// shuffleStrings shuffles ids in place using rng.
func shuffleStrings(rng *rand.Rand, ids []string) {
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

// weightedDomainOrder returns a permutation of [0, len(domain)) biased
// by n's per-state Weights, via repeated prob.ProbabilityTree draws
// without replacement: heavier states tend to land earlier, so
// TryAdvance visits them first. Falls back to declaration order if
// every state in domain carries weight 0 (nothing to bias by).
func weightedDomainOrder[S cmp.Ordered](rng *rand.Rand, n *wfgraph.Node[S], domain []S) []int {
	weights := make(map[int]float64, len(domain))
	for i, s := range domain {
		weights[i] = n.Weight(s)
	}

	tree := prob.New(weights)
	if tree.TotalWeight() <= 0 {
		order := make([]int, len(domain))
		for i := range order {
			order[i] = i
		}

		return order
	}

	order := make([]int, 0, len(domain))
	for tree.Len() > 0 {
		idx, ok := tree.PopRandom(rng)
		if !ok {
			// Remaining items are all weight-0; declaration order among
			// them is as good as any.
			break
		}
		order = append(order, idx)
	}
	// Any weight-0 indices left in the tree (ok became false above)
	// never got a turn; append them in their original order.
	if len(order) < len(domain) {
		placed := make([]bool, len(domain))
		for _, idx := range order {
			placed[idx] = true
		}
		for i := range domain {
			if !placed[i] {
				order = append(order, i)
			}
		}
	}

	return order
}
