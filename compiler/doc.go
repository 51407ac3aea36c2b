// Package compiler transforms a declarative wfgraph.WaveFunction into
// a CompiledGraph: a flat, index-addressed collection of CompiledNodes
// whose per-state neighbor masks and IndexedViews are ready for an
// engine to search over.
//
// Compile runs a four-stage pipeline:
//
//  1. Validate the WaveFunction (wfgraph.WaveFunction.Validate).
//  2. Build the mask table: for every directed edge and every source
//     state that has at least one attached state collection, OR the
//     collections' allowed-neighbor-state sets into one bitmask.Mask
//     over the neighbor's domain.
//  3. Transpose neighbor lists into each node's parent list.
//  4. Build one domainview.View per node over its sorted domain,
//     optionally shuffled by a seed derived independently per node so
//     that the same seed always produces the same compiled graph.
//
// The resulting CompiledGraph is engine-agnostic: SequentialEngine and
// AdjacencyEngine both search the same representation, differing only
// in visitation order.
package compiler
