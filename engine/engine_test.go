package engine_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/wfc/compiler"
	"github.com/katalvlaran/wfc/engine"
	"github.com/katalvlaran/wfc/wfgraph"
	"github.com/stretchr/testify/require"
)

func buildTwoNodeBinary(t *testing.T) *wfgraph.WaveFunction[string] {
	t.Helper()

	collections := []wfgraph.StateCollection[string]{
		{ID: "c_a_to_b", SourceState: "A", AllowedNeighborStates: map[string]struct{}{"B": {}}},
		{ID: "c_b_to_a", SourceState: "B", AllowedNeighborStates: map[string]struct{}{"A": {}}},
	}
	nodes := []wfgraph.Node[string]{
		{ID: "n1", Weights: map[string]float64{"A": 1, "B": 1}, Edges: map[string][]string{"n2": {"c_a_to_b", "c_b_to_a"}}},
		{ID: "n2", Weights: map[string]float64{"A": 1, "B": 1}, Edges: map[string][]string{"n1": {"c_a_to_b", "c_b_to_a"}}},
	}
	wf, err := wfgraph.Build(nodes, collections)
	require.NoError(t, err)

	return wf
}

func TestSequentialEngine_TwoNodeBinary(t *testing.T) {
	t.Parallel()

	wf := buildTwoNodeBinary(t)
	cg, err := compiler.Compile[string](wf)
	require.NoError(t, err)

	eng := engine.New[string](cg, engine.KindSequential)
	result, err := eng.Collapse(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]string{"n1": "A", "n2": "B"}, result)
}

// noSameNeighborCollections builds a "not equal" collection set between two
// states over a shared domain, used by both the triangle and line
// graph scenarios.
func noSameNeighborCollections(domain []string) []wfgraph.StateCollection[string] {
	collections := make([]wfgraph.StateCollection[string], 0, len(domain))
	for _, s := range domain {
		allowed := make(map[string]struct{}, len(domain)-1)
		for _, other := range domain {
			if other != s {
				allowed[other] = struct{}{}
			}
		}
		collections = append(collections, wfgraph.StateCollection[string]{
			ID:                    "ne_" + s,
			SourceState:           s,
			AllowedNeighborStates: allowed,
		})
	}

	return collections
}

func collectionIDs(collections []wfgraph.StateCollection[string]) []string {
	ids := make([]string, len(collections))
	for i, c := range collections {
		ids[i] = c.ID
	}

	return ids
}

func TestSequentialEngine_TriangleUnsatisfiable(t *testing.T) {
	t.Parallel()

	domain := []string{"X"}
	collections := noSameNeighborCollections(domain)
	ids := collectionIDs(collections)

	weights := map[string]float64{"X": 1}
	nodes := []wfgraph.Node[string]{
		{ID: "n1", Weights: weights, Edges: map[string][]string{"n2": ids, "n3": ids}},
		{ID: "n2", Weights: weights, Edges: map[string][]string{"n1": ids, "n3": ids}},
		{ID: "n3", Weights: weights, Edges: map[string][]string{"n1": ids, "n2": ids}},
	}
	wf, err := wfgraph.Build(nodes, collections)
	require.NoError(t, err)

	cg, err := compiler.Compile[string](wf)
	require.NoError(t, err)

	eng := engine.New[string](cg, engine.KindSequential)
	_, err = eng.Collapse(context.Background())
	require.ErrorIs(t, err, engine.ErrUnsat)
}

func buildLineGraph(t *testing.T) *wfgraph.WaveFunction[string] {
	t.Helper()

	domain := []string{"B", "G", "R"}
	collections := noSameNeighborCollections(domain)
	ids := collectionIDs(collections)
	weights := map[string]float64{"B": 1, "G": 1, "R": 1}

	names := []string{"n1", "n2", "n3", "n4", "n5"}
	nodes := make([]wfgraph.Node[string], len(names))
	for i, id := range names {
		edges := map[string][]string{}
		if i > 0 {
			edges[names[i-1]] = ids
		}
		if i+1 < len(names) {
			edges[names[i+1]] = ids
		}
		nodes[i] = wfgraph.Node[string]{ID: id, Weights: weights, Edges: edges}
	}

	wf, err := wfgraph.Build(nodes, collections)
	require.NoError(t, err)

	return wf
}

func validateColoring(t *testing.T, result map[string]string) {
	t.Helper()

	names := []string{"n1", "n2", "n3", "n4", "n5"}
	require.Len(t, result, 5)
	for i := 0; i+1 < len(names); i++ {
		require.NotEqual(t, result[names[i]], result[names[i+1]])
	}
}

func TestSequentialEngine_LineGraphFiveNodes(t *testing.T) {
	t.Parallel()

	wf := buildLineGraph(t)
	cg, err := compiler.Compile[string](wf)
	require.NoError(t, err)

	eng := engine.New[string](cg, engine.KindSequential)
	result, err := eng.Collapse(context.Background())
	require.NoError(t, err)
	validateColoring(t, result)
}

func TestSequentialEngine_SeedZeroReproducible(t *testing.T) {
	t.Parallel()

	wf := buildLineGraph(t)

	cg1, err := compiler.Compile[string](wf, compiler.WithSeed(0))
	require.NoError(t, err)
	eng1 := engine.New[string](cg1, engine.KindSequential)
	result1, err := eng1.Collapse(context.Background())
	require.NoError(t, err)
	validateColoring(t, result1)

	cg2, err := compiler.Compile[string](wf, compiler.WithSeed(0))
	require.NoError(t, err)
	eng2 := engine.New[string](cg2, engine.KindSequential)
	result2, err := eng2.Collapse(context.Background())
	require.NoError(t, err)

	require.Equal(t, result1, result2)
}

func TestSequentialEngine_UnseededDeterministic(t *testing.T) {
	t.Parallel()

	wf := buildLineGraph(t)

	cg1, err := compiler.Compile[string](wf)
	require.NoError(t, err)
	result1, err := engine.New[string](cg1, engine.KindSequential).Collapse(context.Background())
	require.NoError(t, err)

	cg2, err := compiler.Compile[string](wf)
	require.NoError(t, err)
	result2, err := engine.New[string](cg2, engine.KindSequential).Collapse(context.Background())
	require.NoError(t, err)

	require.Equal(t, result1, result2)
}

func TestAdjacencyEngine_LineGraphFiveNodes(t *testing.T) {
	t.Parallel()

	wf := buildLineGraph(t)
	cg, err := compiler.Compile[string](wf)
	require.NoError(t, err)

	eng := engine.New[string](cg, engine.KindAdjacency)
	result, err := eng.Collapse(context.Background())
	require.NoError(t, err)
	validateColoring(t, result)
}

func TestMaskStackBalanceAfterSuccess(t *testing.T) {
	t.Parallel()

	wf := buildTwoNodeBinary(t)
	cg, err := compiler.Compile[string](wf)
	require.NoError(t, err)

	_, err = engine.New[string](cg, engine.KindSequential).Collapse(context.Background())
	require.NoError(t, err)

	for _, n := range cg.Nodes {
		require.Equal(t, 0, n.View.PendingMasks())
		require.False(t, n.View.IsFullyRestricted())
		_, ok := n.View.Peek()
		require.False(t, ok) // cursor reset to "before start"
	}
}

func TestMaskStackBalanceAfterUnsat(t *testing.T) {
	t.Parallel()

	domain := []string{"X"}
	collections := noSameNeighborCollections(domain)
	ids := collectionIDs(collections)
	weights := map[string]float64{"X": 1}
	nodes := []wfgraph.Node[string]{
		{ID: "n1", Weights: weights, Edges: map[string][]string{"n2": ids}},
		{ID: "n2", Weights: weights, Edges: map[string][]string{"n1": ids}},
	}
	wf, err := wfgraph.Build(nodes, collections)
	require.NoError(t, err)

	cg, err := compiler.Compile[string](wf)
	require.NoError(t, err)

	_, err = engine.New[string](cg, engine.KindSequential).Collapse(context.Background())
	require.ErrorIs(t, err, engine.ErrUnsat)

	for _, n := range cg.Nodes {
		require.Equal(t, 0, n.View.PendingMasks())
		require.False(t, n.View.IsFullyRestricted())
	}
}

func TestCollapseIntoSteps_IncludesFailedAdvances(t *testing.T) {
	t.Parallel()

	domain := []string{"X"}
	collections := noSameNeighborCollections(domain)
	ids := collectionIDs(collections)
	weights := map[string]float64{"X": 1}
	nodes := []wfgraph.Node[string]{
		{ID: "n1", Weights: weights, Edges: map[string][]string{"n2": ids}},
		{ID: "n2", Weights: weights, Edges: map[string][]string{"n1": ids}},
	}
	wf, err := wfgraph.Build(nodes, collections)
	require.NoError(t, err)

	cg, err := compiler.Compile[string](wf)
	require.NoError(t, err)

	steps, err := engine.New[string](cg, engine.KindSequential).CollapseIntoSteps(context.Background())
	require.ErrorIs(t, err, engine.ErrUnsat)
	require.NotEmpty(t, steps)

	var sawFailure bool
	for _, st := range steps {
		if st.State == nil {
			sawFailure = true
		}
	}
	require.True(t, sawFailure)
}

type recordingSink struct {
	steps []engine.Step[string]
}

func (r *recordingSink) OnStep(s engine.Step[string]) {
	r.steps = append(r.steps, s)
}

func TestWithStepSink(t *testing.T) {
	t.Parallel()

	wf := buildTwoNodeBinary(t)
	cg, err := compiler.Compile[string](wf)
	require.NoError(t, err)

	sink := &recordingSink{}
	eng := engine.New[string](cg, engine.KindSequential, engine.WithStepSink[string](sink))
	_, err = eng.Collapse(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, sink.steps)
}

func TestWithCancelChan(t *testing.T) {
	t.Parallel()

	wf := buildLineGraph(t)
	cg, err := compiler.Compile[string](wf)
	require.NoError(t, err)

	ch := make(chan struct{})
	close(ch)
	eng := engine.New[string](cg, engine.KindSequential, engine.WithCancelChan[string](ch))
	_, err = eng.Collapse(context.Background())
	require.ErrorIs(t, err, engine.ErrCancelled)
}
