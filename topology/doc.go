// Package topology builds ready-made wfgraph.WaveFunction fixtures for
// common constraint-satisfaction shapes: a Sudoku cell-adjacency grid
// and path/cycle graphs for graph-coloring scenarios.
//
// Every constructor here follows the same "all-different" rule: two
// adjacent nodes may never hold the same state. This is expressed as a
// single shared wfgraph.StateCollection set (one collection per state,
// each one permitting every other state) reused across every edge,
// rather than rebuilding an identical rule per edge.
package topology
