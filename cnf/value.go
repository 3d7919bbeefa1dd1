// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

// Value is the three-state truth value of a variable in a partial
// assignment.
type Value int8

const (
	// Unassigned is the value of a variable the search has not yet fixed.
	Unassigned Value = iota
	// False is the value of a variable fixed to false.
	False
	// True is the value of a variable fixed to true.
	True
)

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "unassigned"
	}
}
