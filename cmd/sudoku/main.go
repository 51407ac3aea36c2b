// Command sudoku solves a 9x9 Sudoku puzzle by compiling it into a
// wave function collapse graph and running SequentialEngine over it.
//
// Usage:
//
//	sudoku [81-character puzzle, '.' for blanks]
//
// With no argument, solves a bundled example puzzle.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/wfc/compiler"
	"github.com/katalvlaran/wfc/engine"
	"github.com/katalvlaran/wfc/topology"
)

const examplePuzzle = "" +
	"53..7...." +
	"6..195..." +
	".98....6." +
	"8...6...3" +
	"4..8.3..1" +
	"7...2...6" +
	".6....28." +
	"...419..5" +
	"....8..79"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	puzzle := examplePuzzle
	if len(os.Args) > 1 {
		puzzle = os.Args[1]
	}

	wf, err := topology.Sudoku(puzzle)
	if err != nil {
		return fmt.Errorf("building puzzle: %w", err)
	}

	cg, err := compiler.Compile[int](wf)
	if err != nil {
		return fmt.Errorf("compiling puzzle: %w", err)
	}

	result, err := engine.New[int](cg, engine.KindSequential).Collapse(context.Background())
	if err != nil {
		return fmt.Errorf("solving puzzle: %w", err)
	}

	printGrid(result)

	return nil
}

func printGrid(cells map[string]int) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fmt.Printf("%d ", cells[fmt.Sprintf("%d,%d", r, c)])
			if c == 2 || c == 5 {
				fmt.Print("| ")
			}
		}
		fmt.Println()
		if r == 2 || r == 5 {
			fmt.Println("------+-------+------")
		}
	}
}
