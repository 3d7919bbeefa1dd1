// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"testing"

	"github.com/PaulVaroutsos/SudokuSolver/cnf"
	"github.com/PaulVaroutsos/SudokuSolver/dpll"
	"github.com/PaulVaroutsos/SudokuSolver/z"
)

func TestPhpUnsatWhenMorePigeonsThanHoles(t *testing.T) {
	b := cnf.NewBuilder(3 * 2)
	Php(b, 3, 2)
	f, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if dpll.Solve(f) != dpll.Unsat {
		t.Errorf("PHP(3,2) must be UNSAT")
	}
}

func TestPhpSatWhenEnoughHoles(t *testing.T) {
	b := cnf.NewBuilder(3 * 4)
	Php(b, 3, 4)
	f, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if dpll.Solve(f) != dpll.Sat {
		t.Errorf("PHP(3,4) must be SAT")
	}
}

func TestRand3CnfNoRepeatedVarPerClause(t *testing.T) {
	b := cnf.NewBuilder(20)
	Seed(7)
	Rand3Cnf(b, 20, 50)
	f, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if f.NVars() != 20 {
		t.Errorf("expected 20 vars, got %d", f.NVars())
	}

	var rec clauseRecorder
	Seed(7)
	Rand3Cnf(&rec, 20, 50)
	if len(rec.clauses) != 50 {
		t.Fatalf("expected 50 clauses, got %d", len(rec.clauses))
	}
	for i, c := range rec.clauses {
		if len(c) != 3 || c[0].Var() == c[1].Var() || c[0].Var() == c[2].Var() || c[1].Var() == c[2].Var() {
			t.Errorf("clause %d repeats a variable or is not 3 literals: %v", i, c)
		}
	}
}

// clauseRecorder is an Adder that keeps every clause added to it.
type clauseRecorder struct {
	clauses [][]z.Lit
	cur     []z.Lit
}

func (r *clauseRecorder) Add(m z.Lit) {
	if m == z.LitNull {
		r.clauses = append(r.clauses, r.cur)
		r.cur = nil
		return
	}
	r.cur = append(r.cur, m)
}
