package topology

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/wfc/wfgraph"
)

// allDifferentCollections returns one wfgraph.StateCollection per
// value in domain, each permitting every other value as a neighbor
// state — the shared rule behind every edge topology.Sudoku,
// topology.Path, and topology.Cycle emit. Reused verbatim across every
// edge in a graph, since the rule never depends on which two nodes the
// edge connects.
func allDifferentCollections[S cmp.Ordered](domain []S) ([]wfgraph.StateCollection[S], []string) {
	collections := make([]wfgraph.StateCollection[S], 0, len(domain))
	ids := make([]string, 0, len(domain))
	for _, s := range domain {
		allowed := make(map[S]struct{}, len(domain)-1)
		for _, other := range domain {
			if other != s {
				allowed[other] = struct{}{}
			}
		}
		id := fmt.Sprintf("ne_%v", s)
		collections = append(collections, wfgraph.StateCollection[S]{
			ID:                    id,
			SourceState:           s,
			AllowedNeighborStates: allowed,
		})
		ids = append(ids, id)
	}

	return collections, ids
}
