// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cnf holds the CNF formula store and its propagation engine and
// ranking heuristic: a read-only clause database, a mutable per-variable
// assignment, an active-clause set shrunk by unit propagation, and the
// Jeroslow-Wang branch heuristic. It is the core decision-procedure state
// that package dpll drives.
package cnf
