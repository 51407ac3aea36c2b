// Package wfc is a constraint-propagation and backtracking engine for
// wave-function-collapse style problems: assign each node in a finite
// graph exactly one state from its domain, subject to per-edge
// permission rules, by depth-first search with forward propagation and
// mask reversal.
//
// What is wfc?
//
//	A small, dependency-light toolkit that brings together:
//
//	  - bitmask    — fixed-length word-packed bit vectors
//	  - domainview — a permutable cursor guarded by reference-counted masks
//	  - wfgraph    — the declarative node/state-collection graph model
//	  - compiler   — declarative graph -> compact bitmask-indexed graph
//	  - engine     — sequential and adjacency-driven backtracking search
//	  - prob       — weighted sampling for compiler's weighted domain order
//	  - topology   — ready-made Sudoku, path, and cycle fixtures
//
// Why choose wfc?
//
//   - Deterministic — identical input (and seed) always yields identical output
//   - Auditable     — every propagation step can be reversed and replayed
//   - Small surface — seven packages, one Engine interface, no hidden globals
//
// Under the hood:
//
//	bitmask/   — fixed-width bit vectors
//	domainview/ — per-node cursor + counter-based mask stack
//	wfgraph/   — declarative WaveFunction model, builders, and text encoding
//	compiler/  — WaveFunction -> CompiledGraph
//	engine/    — SequentialEngine, AdjacencyEngine
//	prob/      — ProbabilityTree
//	topology/  — Sudoku, Path, Cycle
//
//	go get github.com/katalvlaran/wfc
package wfc
