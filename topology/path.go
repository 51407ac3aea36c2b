package topology

import (
	"fmt"

	"github.com/katalvlaran/wfc/wfgraph"
)

// nodeLabel formats a path/cycle node id; "n0", "n1", ... keeps ids
// lexically sortable only up to 9 nodes, which is fine for the example
// scale these constructors target — callers needing more should build
// their own wfgraph.Node slice directly.
func nodeLabel(i int) string {
	return fmt.Sprintf("n%d", i)
}

// Path builds an n-node line graph over colors: node i has
// all-different edges to nodes i-1 and i+1 (where they exist), in both
// directions, and to no other node. A proper coloring of
// this graph is equivalent to a walk where no two consecutive nodes
// share a color.
func Path(n int, colors []string) (*wfgraph.WaveFunction[string], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}

	collections, ids := allDifferentCollections(colors)
	weights := make(map[string]float64, len(colors))
	for _, c := range colors {
		weights[c] = 1
	}

	nodes := make([]wfgraph.Node[string], n)
	for i := 0; i < n; i++ {
		edges := map[string][]string{}
		if i > 0 {
			edges[nodeLabel(i-1)] = ids
		}
		if i+1 < n {
			edges[nodeLabel(i+1)] = ids
		}
		nodes[i] = wfgraph.Node[string]{ID: nodeLabel(i), Weights: weights, Edges: edges}
	}

	return wfgraph.Build(nodes, collections, wfgraph.WithAutoValidate())
}

// Cycle builds an n-node ring graph (n >= 3): node i is adjacent to
// i-1 and i+1 mod n. A proper coloring requires at least 2 colors for
// even n and 3 for odd n.
func Cycle(n int, colors []string) (*wfgraph.WaveFunction[string], error) {
	if n < 3 {
		return nil, ErrTooFewNodes
	}

	collections, ids := allDifferentCollections(colors)
	weights := make(map[string]float64, len(colors))
	for _, c := range colors {
		weights[c] = 1
	}

	nodes := make([]wfgraph.Node[string], n)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		next := (i + 1) % n
		edges := map[string][]string{
			nodeLabel(prev): ids,
			nodeLabel(next): ids,
		}
		nodes[i] = wfgraph.Node[string]{ID: nodeLabel(i), Weights: weights, Edges: edges}
	}

	return wfgraph.Build(nodes, collections, wfgraph.WithAutoValidate())
}
