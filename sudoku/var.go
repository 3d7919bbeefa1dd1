// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sudoku

import (
	"fmt"

	"github.com/PaulVaroutsos/SudokuSolver/z"
)

// NVars is the size of the variable space: one variable per (row, col,
// digit) triple among 9 rows, 9 columns and 9 digits.
const NVars = 9 * 9 * 9

// CellVar returns the variable asserting that cell (row, col) holds digit,
// under the explicit bijection 1 + (digit-1) + 9*col + 81*row. row and col
// are 0-indexed in [0,9); digit is 1-indexed in [1,9]. CellVar panics if
// any argument is out of range, since every caller in this package computes
// them from bounded loops and an out-of-range argument is a programmer
// error, not malformed input.
func CellVar(row, col, digit int) z.Var {
	if row < 0 || row > 8 || col < 0 || col > 8 || digit < 1 || digit > 9 {
		panic(fmt.Sprintf("sudoku: CellVar(%d,%d,%d) out of range", row, col, digit))
	}
	return z.Var(1 + (digit - 1) + 9*col + 81*row)
}

// DecodeVar is the inverse of CellVar: given a variable in [1, NVars], it
// recovers the (row, col, digit) triple it was built from. DecodeVar
// panics if v is out of range.
func DecodeVar(v z.Var) (row, col, digit int) {
	n := int(v)
	if n < 1 || n > NVars {
		panic(fmt.Sprintf("sudoku: DecodeVar(%d) out of range", v))
	}
	n--
	digit = n%9 + 1
	n /= 9
	col = n % 9
	row = n / 9
	return row, col, digit
}
