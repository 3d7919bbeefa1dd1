// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import "github.com/PaulVaroutsos/SudokuSolver/z"

// Prime drains the pending-unit set left over from New/Build -- the unit
// clauses present in the original input -- into the base decision level,
// before any search begins. Those facts are permanent: they are folded
// into snaps[0] rather than a new snapshot, so Undo can never remove them
// (Undo is a no-op once only the base snapshot remains). Callers (package
// dpll) call Prime exactly once, before the first observation of the
// formula's state, so that the pending-unit set is always empty at every
// point the search driver looks at it, per this package's invariant.
//
// Prime is safe to call on a formula with an empty pending-unit set; it is
// then a no-op.
func (f *Formula) Prime() {
	f.propagate(f.snaps[0])
}

// Decide pushes a new snapshot, adds lit to the pending-unit set, and runs
// propagation. After Decide returns, either HasConflict is true, IsEmpty is
// true, or neither. Unless propagation stopped on a conflict, the
// pending-unit set is empty again; on a conflict it is left as it stood
// until Undo clears it.
func (f *Formula) Decide(lit z.Lit) {
	if !f.pending.isEmpty() {
		invariantf("Decide called with a non-empty pending-unit set")
	}
	snap := &snapshot{prevActive: f.active}
	f.snaps = append(f.snaps, snap)
	f.pending.add(lit)
	f.propagate(snap)
}

// Undo pops the most recent snapshot, restoring the active-clause set and
// reverting every variable assigned during that snapshot's round to
// Unassigned. It clears the conflict flag and the pending-unit set. If only
// the base snapshot remains, Undo does nothing: the base level (Prime's
// work, and the initial state) is never rolled back.
func (f *Formula) Undo() {
	if len(f.snaps) <= 1 {
		return
	}
	top := f.snaps[len(f.snaps)-1]
	f.snaps = f.snaps[:len(f.snaps)-1]
	f.active = top.prevActive
	for _, v := range top.assigned {
		f.assign[v] = Unassigned
	}
	f.conflict = false
	f.pending.clear()
}

// propagate drains the pending-unit set, recording every assigned variable
// into snap, until the set is empty or a conflict is found. It implements
// the five-step algorithm: pop the smallest pending literal, check it
// against any existing assignment, assign it, rescan the active-clause set
// once classifying each clause as satisfied/conflict/unit/open, and loop.
func (f *Formula) propagate(snap *snapshot) {
	for !f.pending.isEmpty() {
		l := f.pending.popMin()
		v := l.Var()

		cur := f.assign[v]
		if cur != Unassigned {
			if (cur == True) == l.IsPos() {
				continue // consistent with what's already assigned; nothing forced
			}
			f.conflict = true
			return
		}
		snap.assigned = append(snap.assigned, v)
		if l.IsPos() {
			f.assign[v] = True
		} else {
			f.assign[v] = False
		}

		newActive := make([]ClauseID, 0, len(f.active))
		for _, cid := range f.active {
			lits := f.clauses[cid]
			satisfied := false
			nUnassigned := 0
			var lastUnassigned z.Lit

			for _, m := range lits {
				switch f.litValue(m) {
				case True:
					satisfied = true
				case Unassigned:
					nUnassigned++
					lastUnassigned = m
				}
				if satisfied {
					break
				}
			}
			if satisfied {
				continue // drop from the active set; invariant 2
			}
			if nUnassigned == 0 {
				f.conflict = true // every literal false: conflict
				return
			}
			if nUnassigned == 1 {
				if !f.pending.contains(lastUnassigned) {
					if f.pending.contains(lastUnassigned.Not()) {
						f.conflict = true
						return
					}
					f.pending.add(lastUnassigned)
				}
			}
			newActive = append(newActive, cid)
		}
		f.active = newActive
	}
}
