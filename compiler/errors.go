package compiler

import "errors"

// ErrNilWaveFunction is returned by Compile when wf is nil.
var ErrNilWaveFunction = errors.New("compiler: wave function is nil")

// ErrWeightedOrderWithoutSeed is returned by Compile when
// WithWeightedOrder is passed without WithSeed: weighted ordering
// draws from a prob.ProbabilityTree, which needs an RNG.
var ErrWeightedOrderWithoutSeed = errors.New("compiler: WithWeightedOrder requires WithSeed")
