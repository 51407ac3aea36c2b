// Package engine drives a depth-first search with forward constraint
// propagation and mask reversal over a compiler.CompiledGraph,
// producing either a total state assignment or a proven-unsatisfiable
// result.
//
// Two implementations share the Engine interface:
//
//   - SequentialEngine walks nodes in a fixed order (the compiled
//     graph's declaration order; a compile seed shuffles each node's
//     domain order and parent list, never the node order).
//   - AdjacencyEngine walks nodes by following graph adjacency: the
//     next node is an unvisited out-neighbor of the most recently
//     assigned node, found by scanning the visited stack backward.
//
// Both engines share the same propagation contract: choosing a state
// for a node forwards that state's neighbor masks via
// domainview.View.ForwardMask, checking each recipient is not left
// fully restricted; a rejected attempt reverses every mask it just
// forwarded and retries the current node's next permitted state;
// exhausting a node's states backtracks one step, reversing the masks
// the newly-exposed node had forwarded so it can try its own next
// state.
//
// New selects an implementation by Kind. Both accept the same
// EngineOption set: WithCancelChan for external cooperative
// cancellation, and WithStepSink to observe every attempted advance
// (successful or not) without process-global state.
package engine
