// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sudoku

import (
	"errors"

	"github.com/PaulVaroutsos/SudokuSolver/cnf"
	"github.com/PaulVaroutsos/SudokuSolver/z"
)

// ErrIncomplete is returned by Decode when assign leaves some cell without
// exactly one true digit, meaning assign is not a solution to a puzzle
// encoded by Encode.
var ErrIncomplete = errors.New("sudoku: assignment does not decode to a complete grid")

// Decode is the inverse of Encode's variable mapping: given a satisfying
// assignment over NVars variables, it recovers the Grid it encodes. assign
// must be indexed exactly as cnf.Formula.Assignment returns it (1-based,
// assign[0] unused).
func Decode(assign []cnf.Value) (Grid, error) {
	var g Grid
	if len(assign) <= NVars {
		return Grid{}, ErrIncomplete
	}
	for v := 1; v <= NVars; v++ {
		if assign[v] != cnf.True {
			continue
		}
		row, col, digit := DecodeVar(z.Var(v))
		if g[row][col] != 0 {
			return Grid{}, ErrIncomplete
		}
		g[row][col] = digit
	}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if g[row][col] == 0 {
				return Grid{}, ErrIncomplete
			}
		}
	}
	return g, nil
}
