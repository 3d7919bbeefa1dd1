// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"testing"

	"github.com/PaulVaroutsos/SudokuSolver/z"
)

func TestBranchDeterministic(t *testing.T) {
	f, err := New(4, [][]z.Lit{lits(1, 2, 3), lits(-1, 2), lits(3, -4), lits(4)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	f.Prime()

	m1, err := f.Branch()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	m2, err := f.Branch()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if m1 != m2 {
		t.Errorf("Branch not deterministic: %s != %s", m1, m2)
	}
}

func TestBranchShortClauseWins(t *testing.T) {
	// x1 appears in a unit-length clause (weight 1/2) and, negated, in a
	// 3-literal clause (weight 1/8); x2 and x3 appear only in the 3-literal
	// clause (weight 1/8 each). x1 should win.
	f, err := New(3, [][]z.Lit{lits(1), lits(2, 3, -1)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// Don't prime: we want x1 still unassigned so Branch can see it.
	m, err := f.Branch()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if m.Var() != 1 {
		t.Errorf("expected variable 1 to win, got %s", m)
	}
}

func TestBranchTieBreaksSmallestVarThenPositive(t *testing.T) {
	// x1 and x2 tie on total score (1/2 each), and each ties with itself
	// on polarity (1/4 positive, 1/4 negative).
	f, err := New(2, [][]z.Lit{lits(1, -1), lits(2, -2)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	m, err := f.Branch()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if m != z.Dimacs2Lit(1) {
		t.Errorf("expected +1 on tie, got %s", m)
	}
}

func TestBranchNoUnassignedVariable(t *testing.T) {
	f, err := New(1, [][]z.Lit{lits(1)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	f.Prime()
	if _, err := f.Branch(); err != ErrNoUnassignedVariable {
		t.Errorf("expected ErrNoUnassignedVariable, got %v", err)
	}
}
