// Command coloring demonstrates graph coloring as a wave function
// collapse problem: it builds an n-node cycle graph and colors it so
// that no two adjacent nodes share a color, via AdjacencyEngine.
//
// Usage:
//
//	coloring [node count]
//
// Defaults to 12 nodes with 3 colors.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/wfc/compiler"
	"github.com/katalvlaran/wfc/engine"
	"github.com/katalvlaran/wfc/topology"
)

var colors = []string{"red", "green", "blue"}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	n := 12
	if len(os.Args) > 1 {
		parsed, err := strconv.Atoi(os.Args[1])
		if err != nil {
			return fmt.Errorf("parsing node count: %w", err)
		}
		n = parsed
	}

	wf, err := topology.Cycle(n, colors)
	if err != nil {
		return fmt.Errorf("building cycle graph: %w", err)
	}

	cg, err := compiler.Compile[string](wf, compiler.WithSeed(1))
	if err != nil {
		return fmt.Errorf("compiling cycle graph: %w", err)
	}

	result, err := engine.New[string](cg, engine.KindAdjacency).Collapse(context.Background())
	if err != nil {
		return fmt.Errorf("coloring graph: %w", err)
	}

	for i := 0; i < n; i++ {
		id := fmt.Sprintf("n%d", i)
		fmt.Printf("%s: %s\n", id, result[id])
	}

	return nil
}
