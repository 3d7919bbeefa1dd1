// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "strconv"

// Lit is a literal: a signed, nonzero occurrence of a Var. The absolute
// value of a Lit gives its Var; the sign gives its polarity. This is
// exactly the DIMACS convention, so conversion to and from DIMACS integers
// is the identity on the underlying representation.
type Lit int32

// LitNull is the zero value of Lit. It is not a valid literal and is used
// as a clause terminator in streams of literals, mirroring the DIMACS "0"
// terminator (see cnf.Builder.Add).
const LitNull Lit = 0

// Dimacs2Lit converts a nonzero DIMACS integer to a Lit.
func Dimacs2Lit(d int) Lit {
	return Lit(d)
}

// Dimacs returns m as a signed DIMACS integer.
func (m Lit) Dimacs() int {
	return int(m)
}

// Var returns the variable underlying m.
func (m Lit) Var() Var {
	if m < 0 {
		return Var(-m)
	}
	return Var(m)
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return -m
}

// IsPos reports whether m is the positive occurrence of its variable.
func (m Lit) IsPos() bool {
	return m > 0
}

// Sign returns 1 for a positive literal and -1 for a negative one.
func (m Lit) Sign() int {
	if m < 0 {
		return -1
	}
	return 1
}

// String implements fmt.Stringer, rendering m as a signed DIMACS integer.
func (m Lit) String() string {
	return strconv.Itoa(int(m))
}
