package engine

import (
	"cmp"

	"github.com/katalvlaran/wfc/compiler"
)

// New builds an Engine of the given Kind over cg.
func New[S cmp.Ordered](cg *compiler.CompiledGraph[S], kind Kind, opts ...EngineOption[S]) Engine[S] {
	cfg := config[S]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch kind {
	case KindAdjacency:
		return newAdjacencyEngine(cg, cfg)
	default:
		return newSequentialEngine(cg, cfg)
	}
}
