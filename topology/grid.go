package topology

import (
	"fmt"

	"github.com/katalvlaran/wfc/wfgraph"
)

const (
	sudokuSize  = 9
	sudokuBox   = 3
	sudokuCells = sudokuSize * sudokuSize
)

// cellID formats a Sudoku cell's node id as "r,c", matching the
// row-major coordinate scheme grid topologies in this corpus use.
func cellID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Sudoku builds a 9x9 Sudoku cell-adjacency graph: every pair of cells
// sharing a row, column, or 3x3 box is connected by an all-different
// edge. puzzle is an 81-character string read row-major, '1'-'9' for a
// given clue or '.' for an empty cell; a clue fixes that cell's domain
// to the single given digit instead of the full 1-9 range.
func Sudoku(puzzle string) (*wfgraph.WaveFunction[int], error) {
	if len(puzzle) != sudokuCells {
		return nil, ErrInvalidSudokuPuzzle
	}

	fullDomain := make([]int, sudokuSize)
	for i := range fullDomain {
		fullDomain[i] = i + 1
	}
	collections, ids := allDifferentCollections(fullDomain)

	given := make([]int, sudokuCells) // 0 means "no clue"
	for i, ch := range puzzle {
		switch {
		case ch == '.':
			given[i] = 0
		case ch >= '1' && ch <= '9':
			given[i] = int(ch - '0')
		default:
			return nil, ErrInvalidSudokuPuzzle
		}
	}

	nodes := make([]wfgraph.Node[int], 0, sudokuCells)
	for r := 0; r < sudokuSize; r++ {
		for c := 0; c < sudokuSize; c++ {
			weights := make(map[int]float64, sudokuSize)
			edgeIDs := ids
			if clue := given[r*sudokuSize+c]; clue != 0 {
				weights[clue] = 1
				// A clue cell's domain is its digit alone, so only that
				// digit's collection may sit on its edges (Validate rejects
				// a source state outside the node's domain).
				edgeIDs = []string{ids[clue-1]}
			} else {
				for _, d := range fullDomain {
					weights[d] = 1
				}
			}

			edges := make(map[string][]string, 20)
			for _, peer := range sudokuPeers(r, c) {
				edges[cellID(peer[0], peer[1])] = edgeIDs
			}

			nodes = append(nodes, wfgraph.Node[int]{ID: cellID(r, c), Weights: weights, Edges: edges})
		}
	}

	return wfgraph.Build(nodes, collections, wfgraph.WithAutoValidate())
}

// sudokuPeers returns every distinct cell sharing row r, column c, or
// r,c's 3x3 box, deduplicated (a cell can qualify via more than one of
// the three rules).
func sudokuPeers(r, c int) [][2]int {
	seen := make(map[[2]int]bool, 20)
	add := func(pr, pc int) {
		if pr == r && pc == c {
			return
		}
		seen[[2]int{pr, pc}] = true
	}

	for i := 0; i < sudokuSize; i++ {
		add(r, i)
		add(i, c)
	}
	boxR, boxC := (r/sudokuBox)*sudokuBox, (c/sudokuBox)*sudokuBox
	for dr := 0; dr < sudokuBox; dr++ {
		for dc := 0; dc < sudokuBox; dc++ {
			add(boxR+dr, boxC+dc)
		}
	}

	peers := make([][2]int, 0, len(seen))
	for p := range seen {
		peers = append(peers, p)
	}

	return peers
}
