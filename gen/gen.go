// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/PaulVaroutsos/SudokuSolver/z"
)

// Adder is anything clauses can be added to by sequences of literals
// terminated by z.LitNull, matching cnf.Builder.Add exactly.
type Adder interface {
	Add(m z.Lit)
}

var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

// Seed makes the package-level rng used by Rand3Cnf reproducible.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// PartVar returns the positive literal of the variable for "pigeon i is
// placed in hole h", among P pigeons, used by Php below.
func PartVar(i, h, p int) z.Lit {
	return z.Var(h*p + i + 1).Pos()
}

// Php generates the pigeonhole problem asking whether P pigeons can be
// placed into H holes with at most one pigeon per hole. It is UNSAT
// whenever P > H, and is one of the classic hard instances for resolution-
// based provers, making it a useful conflict-detection and worst-case
// fixture for the DPLL search driver.
func Php(dst Adder, P, H int) {
	for i := 0; i < P; i++ {
		for h := 0; h < H; h++ {
			dst.Add(PartVar(i, h, P))
		}
		dst.Add(z.LitNull)
	}
	for i := 0; i < P; i++ {
		for j := 0; j < i; j++ {
			for h := 0; h < H; h++ {
				dst.Add(PartVar(i, h, P).Not())
				dst.Add(PartVar(j, h, P).Not())
				dst.Add(z.LitNull)
			}
		}
	}
}

// Rand3Cnf generates a random 3-CNF with n variables and m clauses, no
// clause containing a repeated variable.
func Rand3Cnf(dst Adder, n, m int) {
	mu.Lock()
	defer mu.Unlock()
	var ms [3]z.Lit
	for i := 0; i < m; i++ {
		ms[0] = randLit(n)
		ms[1] = randLit(n)
		for ms[1].Var() == ms[0].Var() {
			ms[1] = randLit(n)
		}
		ms[2] = randLit(n)
		for ms[2].Var() == ms[0].Var() || ms[2].Var() == ms[1].Var() {
			ms[2] = randLit(n)
		}
		dst.Add(ms[0])
		dst.Add(ms[1])
		dst.Add(ms[2])
		dst.Add(z.LitNull)
	}
}

func randLit(n int) z.Lit {
	v := 1 + rng.Intn(n)
	if rng.Intn(2) == 0 {
		v = -v
	}
	return z.Dimacs2Lit(v)
}

// HardRand3Cnf generates a random 3-CNF with n variables and 4n clauses,
// a clause-to-variable ratio of 4, close to the satisfiability threshold
// (about 4.27) where random 3-CNF is hardest to decide.
func HardRand3Cnf(dst Adder, n int) {
	Rand3Cnf(dst, n, 4*n)
}
