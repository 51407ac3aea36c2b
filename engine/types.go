package engine

import (
	"cmp"
	"context"
)

// Kind selects which search strategy New builds.
type Kind int

const (
	// KindSequential walks nodes in the compiled graph's fixed order.
	KindSequential Kind = iota
	// KindAdjacency walks nodes by following graph adjacency from a
	// root that reaches every other node.
	KindAdjacency
)

// Step records one attempted advance: NodeID is the node whose cursor
// was just moved; State is the state it landed on, or nil if the
// advance failed (the node's domain is exhausted, or the chosen state
// left a neighbor fully restricted).
type Step[S cmp.Ordered] struct {
	NodeID string
	State  *S
}

// StepSink observes every Step as it happens, without altering search
// behavior. Used by WithStepSink.
type StepSink[S cmp.Ordered] interface {
	OnStep(Step[S])
}

// Engine produces a total assignment of states to nodes, or proves
// none exists.
type Engine[S cmp.Ordered] interface {
	// Collapse runs the search to completion, returning a map from
	// node id to chosen state on success, or an *UnsatisfiableError /
	// *CancelledError on failure.
	Collapse(ctx context.Context) (map[string]S, error)

	// CollapseIntoSteps runs the same search as Collapse but returns
	// the full ordered step log (successful and failed advances)
	// instead of discarding it.
	CollapseIntoSteps(ctx context.Context) ([]Step[S], error)
}

// config holds the parsed effect of every EngineOption.
type config[S cmp.Ordered] struct {
	cancelCh <-chan struct{}
	sink     StepSink[S]
}

// EngineOption configures an Engine built by New.
type EngineOption[S cmp.Ordered] func(*config[S])

// WithCancelChan registers an external cancellation channel, polled
// once per main-loop iteration alongside ctx.Done(). A closed or
// signaled channel surfaces as *CancelledError.
func WithCancelChan[S cmp.Ordered](ch <-chan struct{}) EngineOption[S] {
	return func(c *config[S]) { c.cancelCh = ch }
}

// WithStepSink registers a sink notified of every Step as it happens.
func WithStepSink[S cmp.Ordered](sink StepSink[S]) EngineOption[S] {
	return func(c *config[S]) { c.sink = sink }
}

// noopSink discards every step; the default when WithStepSink is not used.
type noopSink[S cmp.Ordered] struct{}

func (noopSink[S]) OnStep(Step[S]) {}

// checkCancel reports a non-nil error if ctx is done or cancelCh has
// fired. Polled once per main-loop iteration, per spec.md §5.
func checkCancel(ctx context.Context, cancelCh <-chan struct{}) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if cancelCh != nil {
		select {
		case <-cancelCh:
			return context.Canceled
		default:
		}
	}

	return nil
}
