// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned (possibly wrapped) when a clause set cannot
// be loaded into a Formula: a negative variable count, or a literal whose
// variable is out of range.
var ErrMalformedInput = errors.New("cnf: malformed input")

// ErrNoUnassignedVariable is returned by Branch when every variable already
// has a value. Callers (the search driver) are expected to check IsEmpty
// and HasConflict first, so reaching this is itself a sign of misuse.
var ErrNoUnassignedVariable = errors.New("cnf: no unassigned variable")

// InvariantError reports a broken internal invariant: a condition the
// package's own algorithm guarantees never to violate if called correctly.
// It is never returned as an error value -- it is always the payload of a
// panic, since recovering from it would mean continuing past state the
// package can no longer reason about.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("cnf: internal invariant violated: %s", e.Detail)
}

// invariantf panics with an *InvariantError built from format and args.
func invariantf(format string, args ...interface{}) {
	panic(&InvariantError{Detail: fmt.Sprintf(format, args...)})
}
