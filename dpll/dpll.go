// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package dpll implements the Davis-Putnam-Logemann-Loveland search driver:
// a recursive decide/propagate/backtrack loop over a *cnf.Formula. It never
// inspects clauses directly -- only through the Formula's IsEmpty,
// HasConflict, Branch, Decide and Undo.
package dpll

import (
	"github.com/PaulVaroutsos/SudokuSolver/cnf"
)

// Result is the outcome of Solve: 1 for SAT, 0 for unknown, -1 for UNSAT.
type Result int8

const (
	// Unsat means the formula has no satisfying assignment.
	Unsat Result = -1
	// Unknown is never returned by Solve; it exists for symmetry with the
	// Solvable convention this type mirrors.
	Unknown Result = 0
	// Sat means the formula is satisfiable; f.Assignment() holds a model.
	Sat Result = 1
)

// Solve decides a CNF formula by DPLL search: unit propagation interleaved
// with Jeroslow-Wang-guided branching, backtracking on conflict. It primes
// f first, draining any unit clauses from the original input into the base
// decision level, then runs the recursive search. On Sat, f.Assignment()
// holds a satisfying assignment; on Unsat, every Decide has been paired
// with an Undo, so f is back at its base level (with the conflict flag
// still set if priming alone found the conflict).
func Solve(f *cnf.Formula) Result {
	f.Prime()
	return dp(f)
}

// dp is the recursive decide/propagate/backtrack loop: if the formula is
// empty, it's satisfiable; if it has a conflict, this branch is
// unsatisfiable; otherwise pick a literal, decide it, and recurse,
// backtracking and trying the opposite polarity on failure.
func dp(f *cnf.Formula) Result {
	if f.IsEmpty() {
		return Sat
	}
	if f.HasConflict() {
		return Unsat
	}

	lit, err := f.Branch()
	if err != nil {
		// IsEmpty is false, so some variable must still be unassigned;
		// reaching here means Branch's own precondition was violated.
		panic(err)
	}

	f.Decide(lit)
	if dp(f) == Sat {
		return Sat
	}
	f.Undo()

	f.Decide(lit.Not())
	if dp(f) == Sat {
		return Sat
	}
	f.Undo()

	return Unsat
}
