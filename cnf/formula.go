// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"fmt"

	"github.com/PaulVaroutsos/SudokuSolver/z"
)

// ClauseID identifies a clause in a Formula's clause database.
type ClauseID int32

// snapshot is the state needed to undo one Decide and the propagation it
// triggered: the active-clause set as it stood immediately before the
// decision, and the variables newly assigned during the round. Since the
// active-clause set is never mutated in place (propagate always builds a
// fresh slice), prevActive is a cheap reference capture, not a copy.
type snapshot struct {
	prevActive []ClauseID
	assigned   []z.Var
}

// Formula is the CNF formula store: an immutable clause database plus the
// mutable partial-assignment state the propagation engine and ranking
// heuristic operate over. The zero Formula is not usable; construct one
// with New or Builder.Build.
type Formula struct {
	nVars   int
	clauses [][]z.Lit // clause id -> literals; built once, never mutated

	assign   []Value // size nVars+1, index 0 unused
	active   []ClauseID
	pending  litSet
	conflict bool

	snaps []*snapshot // snaps[0] is the base level; never popped by Undo
}

// New builds a Formula from nVars variables and a structural clause list:
// clauses[i] is the literal sequence of clause i, in the order it should be
// loaded. This is the structured equivalent of the DIMACS loader contract
// in package dimacs -- dimacs.Load parses text into exactly this shape and
// calls New, so text is a transport used only at the real file boundary,
// never between the loader and the formula store.
//
// New fails with ErrMalformedInput if any literal's variable falls outside
// [1, nVars]. An empty clause immediately sets the conflict flag, since the
// formula is then unsatisfiable without any search. Duplicate literals
// within a clause are tolerated; complementary literals within a clause
// make it trivially satisfied and it is still loaded.
//
// On success, the returned Formula has all nVars variables unassigned, an
// active-clause set equal to every clause id, and every unit clause's
// literal placed in the pending-unit set (not yet consumed -- see Prime).
func New(nVars int, clauses [][]z.Lit) (*Formula, error) {
	if nVars < 0 {
		return nil, fmt.Errorf("%w: negative variable count %d", ErrMalformedInput, nVars)
	}
	f := &Formula{
		nVars:   nVars,
		clauses: clauses,
		assign:  make([]Value, nVars+1),
		active:  make([]ClauseID, len(clauses)),
	}
	for i, lits := range clauses {
		for _, m := range lits {
			v := int(m.Var())
			if v < 1 || v > nVars {
				return nil, fmt.Errorf("%w: literal %d out of range [1,%d]", ErrMalformedInput, m.Dimacs(), nVars)
			}
		}
		f.active[i] = ClauseID(i)
		if len(lits) == 0 {
			f.conflict = true
		} else if len(lits) == 1 {
			f.pending.add(lits[0])
		}
	}
	f.snaps = []*snapshot{{prevActive: f.active}}
	return f, nil
}

// NVars returns the number of variables the formula was built with.
func (f *Formula) NVars() int {
	return f.nVars
}

// IsEmpty reports whether the active-clause set is empty, i.e. every
// clause is satisfied by the current partial assignment.
func (f *Formula) IsEmpty() bool {
	return len(f.active) == 0
}

// HasConflict reports whether the conflict flag is set: some clause in the
// active set has every literal false, or propagation discovered both a
// literal and its negation forced.
func (f *Formula) HasConflict() bool {
	return f.conflict
}

// Value returns the current value of variable v. It panics if v is out of
// range, which can only happen on programmer error (a Var never produced
// by this Formula's own literals).
func (f *Formula) Value(v z.Var) Value {
	if int(v) < 1 || int(v) > f.nVars {
		invariantf("Value: variable %d out of range [1,%d]", v, f.nVars)
	}
	return f.assign[v]
}

// litValue returns the value of literal m under the current assignment:
// True if m currently evaluates true, False if it evaluates false,
// Unassigned if its variable has no value yet.
func (f *Formula) litValue(m z.Lit) Value {
	a := f.assign[m.Var()]
	if a == Unassigned {
		return Unassigned
	}
	if (a == True) == m.IsPos() {
		return True
	}
	return False
}

// Assignment returns a defensive copy of the assignment vector, indexed by
// variable (index 0 unused). Callers may read but never mutate the live
// assignment through this.
func (f *Formula) Assignment() []Value {
	out := make([]Value, len(f.assign))
	copy(out, f.assign)
	return out
}
