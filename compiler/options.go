package compiler

// config holds the parsed effect of every CompileOption.
type config struct {
	seeded        bool
	seed          int64
	weightedOrder bool
}

// CompileOption configures Compile's behavior.
type CompileOption func(*config)

// WithSeed makes Compile deterministically shuffle every node's
// IndexedView and parent-id order, deriving an independent stream per
// node from seed so that the same seed always yields the same
// compiled graph. Without WithSeed, domains and parent lists keep
// their declaration/sorted order.
func WithSeed(seed int64) CompileOption {
	return func(c *config) {
		c.seeded = true
		c.seed = seed
	}
}

// WithWeightedOrder makes Compile order each node's domainview.View by
// drawing from a prob.ProbabilityTree built over the node's
// per-state Weights, instead of a uniform Shuffle. Requires WithSeed
// (the draw needs an RNG); Compile returns ErrWeightedOrderWithoutSeed
// if used alone.
func WithWeightedOrder() CompileOption {
	return func(c *config) {
		c.weightedOrder = true
	}
}
