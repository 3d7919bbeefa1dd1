// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dpll

import (
	"math/rand"
	"testing"

	"github.com/PaulVaroutsos/SudokuSolver/cnf"
	"github.com/PaulVaroutsos/SudokuSolver/gen"
	"github.com/PaulVaroutsos/SudokuSolver/z"
)

func lits(ds ...int) []z.Lit {
	out := make([]z.Lit, len(ds))
	for i, d := range ds {
		out[i] = z.Dimacs2Lit(d)
	}
	return out
}

func build(nVars int, clauses [][]z.Lit) *cnf.Formula {
	f, err := cnf.New(nVars, clauses)
	if err != nil {
		panic(err)
	}
	return f
}

// checkModel substitutes assignment into clauses and reports whether every
// clause is satisfied, implementing the soundness property: if Solve
// returns Sat, the assignment must satisfy the original clause database.
func checkModel(clauses [][]z.Lit, assign []cnf.Value) bool {
	for _, c := range clauses {
		ok := false
		for _, m := range c {
			v := assign[m.Var()]
			if v == cnf.Unassigned {
				continue
			}
			if (v == cnf.True) == m.IsPos() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func TestSingleUnitClauseSat(t *testing.T) {
	clauses := [][]z.Lit{lits(1)}
	f := build(1, clauses)
	if Solve(f) != Sat {
		t.Fatalf("expected SAT")
	}
	if f.Value(1) != cnf.True {
		t.Errorf("expected variable 1 true")
	}
}

func TestContradictoryUnitsUnsat(t *testing.T) {
	clauses := [][]z.Lit{lits(1), lits(-1)}
	f := build(1, clauses)
	if Solve(f) != Unsat {
		t.Fatalf("expected UNSAT")
	}
}

func TestThreeClauseSat(t *testing.T) {
	clauses := [][]z.Lit{lits(1, 2), lits(-1, 3), lits(-2, -3)}
	f := build(3, clauses)
	if Solve(f) != Sat {
		t.Fatalf("expected SAT")
	}
	if !checkModel(clauses, f.Assignment()) {
		t.Errorf("returned assignment does not satisfy all clauses")
	}
}

func TestPigeonholeUnsat(t *testing.T) {
	// PHP(3,2): 3 pigeons, 2 holes, 6 variables.
	b := cnf.NewBuilder(6)
	gen.Php(b, 3, 2)
	f, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if Solve(f) != Unsat {
		t.Fatalf("PHP(3,2) must be UNSAT")
	}
}

func TestPigeonholeSat(t *testing.T) {
	// PHP(2,3): 2 pigeons, 3 holes is satisfiable.
	b := cnf.NewBuilder(6)
	gen.Php(b, 2, 3)
	f, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if Solve(f) != Sat {
		t.Fatalf("PHP(2,3) must be SAT")
	}
}

// bruteForce evaluates clauses over every total assignment of nVars
// variables, returning Sat if any assignment satisfies every clause.
func bruteForce(nVars int, clauses [][]z.Lit) Result {
	assign := make([]cnf.Value, nVars+1)
	var try func(i int) bool
	try = func(i int) bool {
		if i > nVars {
			for _, c := range clauses {
				ok := false
				for _, m := range c {
					v := assign[m.Var()]
					if (v == cnf.True) == m.IsPos() {
						ok = true
						break
					}
				}
				if !ok {
					return false
				}
			}
			return true
		}
		assign[i] = cnf.False
		if try(i + 1) {
			return true
		}
		assign[i] = cnf.True
		return try(i + 1)
	}
	if try(1) {
		return Sat
	}
	return Unsat
}

func TestCompletenessOnSmallRandomInstances(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		nVars := 1 + rng.Intn(8) // up to 8 variables
		nClauses := 1 + rng.Intn(12)
		var clauses [][]z.Lit
		for c := 0; c < nClauses; c++ {
			clauseLen := 1 + rng.Intn(3)
			var clause []z.Lit
			for l := 0; l < clauseLen; l++ {
				v := 1 + rng.Intn(nVars)
				if rng.Intn(2) == 0 {
					v = -v
				}
				clause = append(clause, z.Dimacs2Lit(v))
			}
			clauses = append(clauses, clause)
		}
		f := build(nVars, clauses)
		got := Solve(f)
		want := bruteForce(nVars, clauses)
		if got != want {
			t.Fatalf("trial %d: dpll=%d bruteforce=%d clauses=%v", trial, got, want, clauses)
		}
		if got == Sat && !checkModel(clauses, f.Assignment()) {
			t.Fatalf("trial %d: model does not satisfy clauses", trial)
		}
	}
}
