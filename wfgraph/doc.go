// Package wfgraph is the declarative input model for a wave-function
// collapse problem: nodes with weighted state domains, connected by
// directed edges carrying one or more state collections.
//
// Build assembles a WaveFunction from plain Node and StateCollection
// values, rejecting structurally malformed input (duplicate ids, empty
// domains) at construction time. Validate performs the deeper,
// graph-wide checks — dangling neighbor references, unknown collection
// ids, source states absent from their owning node's domain, and
// connectivity — that the compiler package runs before building a
// CompiledGraph.
//
// State is any ordered, comparable type (cmp.Ordered): string, int,
// rune, or a custom named type over one of those. wfgraph never
// interprets state values beyond ordering and equality.
//
// WaveFunction also supports a self-describing JSON encoding
// (Encode/Decode) for fixture persistence, matching the on-disk schema
// `{nodes: [...], collections: [...]}`.
package wfgraph
