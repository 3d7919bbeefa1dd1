// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"sort"

	"github.com/PaulVaroutsos/SudokuSolver/z"
)

// litSet is a set of literals iterated in ascending signed-literal order,
// so that propagation consumes forced literals deterministically (smallest
// literal first).
type litSet struct {
	ms []z.Lit
}

func (s *litSet) search(m z.Lit) (int, bool) {
	i := sort.Search(len(s.ms), func(i int) bool { return s.ms[i] >= m })
	return i, i < len(s.ms) && s.ms[i] == m
}

// contains reports whether m is currently pending.
func (s *litSet) contains(m z.Lit) bool {
	_, ok := s.search(m)
	return ok
}

// add inserts m if it is not already present. It reports whether m was
// newly added.
func (s *litSet) add(m z.Lit) bool {
	i, ok := s.search(m)
	if ok {
		return false
	}
	s.ms = append(s.ms, z.LitNull)
	copy(s.ms[i+1:], s.ms[i:])
	s.ms[i] = m
	return true
}

// popMin removes and returns the smallest pending literal. It panics if the
// set is empty; callers must check isEmpty first.
func (s *litSet) popMin() z.Lit {
	if len(s.ms) == 0 {
		invariantf("popMin on empty pending-unit set")
	}
	m := s.ms[0]
	s.ms = s.ms[1:]
	return m
}

func (s *litSet) isEmpty() bool {
	return len(s.ms) == 0
}

func (s *litSet) clear() {
	s.ms = s.ms[:0]
}
