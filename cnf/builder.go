// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import "github.com/PaulVaroutsos/SudokuSolver/z"

// Builder accumulates clauses programmatically, one literal at a time,
// terminated by z.LitNull, the same Add/terminator idiom used for building
// formulas without a text intermediary. Package gen and package sudoku both
// build their formulas through a Builder rather than round-tripping through
// DIMACS text.
type Builder struct {
	nVars   int
	clauses [][]z.Lit
	cur     []z.Lit
}

// NewBuilder returns a Builder for a formula over nVars variables.
func NewBuilder(nVars int) *Builder {
	return &Builder{nVars: nVars}
}

// Add appends m to the clause under construction, or -- if m is
// z.LitNull -- terminates it and starts a new one.
func (b *Builder) Add(m z.Lit) {
	if m == z.LitNull {
		b.clauses = append(b.clauses, b.cur)
		b.cur = nil
		return
	}
	b.cur = append(b.cur, m)
}

// NVars returns the variable count the Builder was constructed with.
func (b *Builder) NVars() int {
	return b.nVars
}

// Build constructs a Formula from the clauses accumulated so far. Any
// clause left open (Add called without a trailing z.LitNull) is included
// as-is. See New for the resulting Formula's contract and failure modes.
func (b *Builder) Build() (*Formula, error) {
	clauses := b.clauses
	if len(b.cur) > 0 {
		clauses = append(clauses, b.cur)
	}
	return New(b.nVars, clauses)
}
