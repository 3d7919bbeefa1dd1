// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sudoku

import (
	"github.com/PaulVaroutsos/SudokuSolver/cnf"
	"github.com/PaulVaroutsos/SudokuSolver/z"
)

// Encode builds the 11988 structural clauses common to every 9x9 puzzle
// plus one unit clause per given cell in g, and returns the resulting
// *cnf.Builder. The structural clauses assert, for every row, column and
// 3x3 box: every digit appears at least once (the "at least one" clauses)
// and no digit appears twice (the "at most one" clauses), together with
// one clause per cell asserting it holds at least one digit and pairwise
// clauses per cell asserting it holds at most one digit.
func Encode(g Grid) (*cnf.Builder, error) {
	b := cnf.NewBuilder(NVars)

	// every cell holds at least one digit
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for digit := 1; digit <= 9; digit++ {
				b.Add(CellVar(row, col, digit).Pos())
			}
			b.Add(z.LitNull)
		}
	}

	// every cell holds at most one digit
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			atMostOne(b, func(digit int) z.Lit { return CellVar(row, col, digit).Pos() })
		}
	}

	// every digit appears at least once per row, and at most once per row
	for digit := 1; digit <= 9; digit++ {
		for row := 0; row < 9; row++ {
			for col := 0; col < 9; col++ {
				b.Add(CellVar(row, col, digit).Pos())
			}
			b.Add(z.LitNull)
		}
	}
	for digit := 1; digit <= 9; digit++ {
		for row := 0; row < 9; row++ {
			atMostOne(b, func(i int) z.Lit { return CellVar(row, i-1, digit).Pos() })
		}
	}

	// every digit appears at least once per column, and at most once per column
	for digit := 1; digit <= 9; digit++ {
		for col := 0; col < 9; col++ {
			for row := 0; row < 9; row++ {
				b.Add(CellVar(row, col, digit).Pos())
			}
			b.Add(z.LitNull)
		}
	}
	for digit := 1; digit <= 9; digit++ {
		for col := 0; col < 9; col++ {
			atMostOne(b, func(i int) z.Lit { return CellVar(i-1, col, digit).Pos() })
		}
	}

	// every digit appears at least once per 3x3 box, and at most once per box
	for digit := 1; digit <= 9; digit++ {
		for br := 0; br < 9; br += 3 {
			for bc := 0; bc < 9; bc += 3 {
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						b.Add(CellVar(br+i, bc+j, digit).Pos())
					}
				}
				b.Add(z.LitNull)
			}
		}
	}
	for digit := 1; digit <= 9; digit++ {
		for br := 0; br < 9; br += 3 {
			for bc := 0; bc < 9; bc += 3 {
				boxAtMostOne(b, br, bc, digit)
			}
		}
	}

	// unit clauses for the givens
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if digit := g[row][col]; digit != 0 {
				b.Add(CellVar(row, col, digit).Pos())
				b.Add(z.LitNull)
			}
		}
	}

	return b, nil
}

// atMostOne adds pairwise negative clauses over the 9 literals lit(1)..
// lit(9), forbidding any two of them from holding simultaneously.
func atMostOne(b *cnf.Builder, lit func(i int) z.Lit) {
	for i := 1; i <= 9; i++ {
		for j := i + 1; j <= 9; j++ {
			b.Add(lit(i).Not())
			b.Add(lit(j).Not())
			b.Add(z.LitNull)
		}
	}
}

// boxAtMostOne adds pairwise negative clauses over the 9 cells of the 3x3
// box rooted at (br, bc), forbidding digit from appearing twice in the box.
func boxAtMostOne(b *cnf.Builder, br, bc, digit int) {
	type cell struct{ row, col int }
	cells := make([]cell, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cells = append(cells, cell{br + i, bc + j})
		}
	}
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			b.Add(CellVar(cells[i].row, cells[i].col, digit).Pos().Not())
			b.Add(CellVar(cells[j].row, cells[j].col, digit).Pos().Not())
			b.Add(z.LitNull)
		}
	}
}
