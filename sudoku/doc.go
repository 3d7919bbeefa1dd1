// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sudoku encodes and decodes Sudoku puzzles as instances of the CNF
// SAT engine in package cnf. It owns the text grid format, the 729-variable
// bijection between (row, col, digit) triples and the engine's z.Var space,
// and the structural clauses common to every 9x9 puzzle.
//
// The package is a pure collaborator of cnf and dpll: it neither knows nor
// cares how the formula it builds is solved, and it never reaches into the
// solver's internal state beyond the documented Assignment/Value contract.
package sudoku
