// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z provides the literal and variable types shared by every other
// package in this module: a Var names a propositional variable, a Lit is a
// signed, nonzero occurrence of one.
package z

import "strconv"

// Var identifies a propositional variable, numbered from 1. VarNull (the
// zero value) never denotes a real variable and is used as a sentinel by
// code that needs to signal "no variable".
type Var int32

// VarNull is the zero value of Var.
const VarNull Var = 0

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(v)
}

// Neg returns the negative literal of v.
func (v Var) Neg() Lit {
	return Lit(-v)
}

// String implements fmt.Stringer.
func (v Var) String() string {
	return strconv.Itoa(int(v))
}
