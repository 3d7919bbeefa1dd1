// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package dimacs reads and writes the DIMACS-like wire format: a loader
// that parses a text buffer into a *cnf.Formula, and an exporter that
// writes out a satisfying assignment in human-readable form. Text is used
// only at this boundary; everywhere else in this module clauses and
// assignments are passed as structured Go values.
package dimacs
