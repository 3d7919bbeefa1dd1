// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"math"

	"github.com/PaulVaroutsos/SudokuSolver/z"
)

// powersOfTwo[k] == 2^-k for k in [0,10], a lookup table for the hot path:
// Sudoku clauses are short, so almost every clause's unassigned-literal
// count falls in this range.
var powersOfTwo = [...]float64{
	1,
	0.5,
	0.25,
	0.125,
	0.0625,
	0.03125,
	0.015625,
	0.0078125,
	0.00390625,
	0.001953125,
	0.0009765625,
}

func weight(k int) float64 {
	if k < len(powersOfTwo) {
		return powersOfTwo[k]
	}
	return math.Pow(2, float64(-k))
}

// Branch computes Jeroslow-Wang scores over the active-clause set and
// returns the literal to branch on next: the variable maximizing the sum
// of its positive and negative literal scores, with the polarity whose
// score is at least the other's. Ties break by smallest variable index,
// then by positive polarity. Scores are recomputed from scratch on every
// call; there is no incremental maintenance across decisions.
//
// Branch returns ErrNoUnassignedVariable if every variable is already
// assigned. The search driver is expected to call IsEmpty/HasConflict
// first and never reach this case.
func (f *Formula) Branch() (z.Lit, error) {
	pos := make([]float64, f.nVars+1)
	neg := make([]float64, f.nVars+1)

	// Phase 1: accumulate all scores.
	for _, cid := range f.active {
		lits := f.clauses[cid]
		k := 0
		for _, m := range lits {
			if f.litValue(m) == Unassigned {
				k++
			}
		}
		if k == 0 {
			continue
		}
		w := weight(k)
		for _, m := range lits {
			if f.litValue(m) != Unassigned {
				continue
			}
			if m.IsPos() {
				pos[m.Var()] += w
			} else {
				neg[m.Var()] += w
			}
		}
	}

	// Phase 2: scan once for the maximum, so an in-progress partial sum
	// can never be mistaken for the final one.
	bestVar := z.VarNull
	bestScore := -1.0
	for v := z.Var(1); int(v) <= f.nVars; v++ {
		if f.assign[v] != Unassigned {
			continue
		}
		total := pos[v] + neg[v]
		if total > bestScore {
			bestScore = total
			bestVar = v
		}
	}
	if bestVar == z.VarNull {
		return z.LitNull, ErrNoUnassignedVariable
	}
	if pos[bestVar] >= neg[bestVar] {
		return bestVar.Pos(), nil
	}
	return bestVar.Neg(), nil
}
