// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaulVaroutsos/SudokuSolver/cnf"
	"github.com/PaulVaroutsos/SudokuSolver/z"
)

// ErrMalformedInput is returned (possibly wrapped with detail) when the
// input buffer is not well-formed DIMACS: a missing or malformed "p cnf"
// header, a non-integer token, a clause missing its terminating 0, or a
// declared clause count that disagrees with what was actually parsed.
var ErrMalformedInput = errors.New("dimacs: malformed input")

// Load parses a DIMACS-like CNF buffer from r and builds a *cnf.Formula
// from it.
//
// Lines beginning with 'c' are comments. A line beginning with 'p' declares
// "p cnf <nVars> <nClauses>". Every other non-empty line contributes
// whitespace-separated signed integers to the clause stream; clauses are
// terminated by a literal 0, and may span multiple lines. Exactly
// nClauses clauses must appear; any further non-comment content is
// ignored. Every literal's variable must fall in [1, nVars].
func Load(r io.Reader) (*cnf.Formula, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nVars, nClauses, err := readHeader(sc)
	if err != nil {
		return nil, err
	}

	clauses := make([][]z.Lit, 0, nClauses)
	var cur []z.Lit
	for len(clauses) < nClauses && sc.Scan() {
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if strings.HasPrefix(fields[0], "c") {
			continue
		}
		for _, tok := range fields {
			d, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: non-integer token %q", ErrMalformedInput, tok)
			}
			if d == 0 {
				clauses = append(clauses, cur)
				cur = nil
				if len(clauses) == nClauses {
					break
				}
				continue
			}
			cur = append(cur, z.Dimacs2Lit(d))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	if len(clauses) != nClauses {
		if len(cur) > 0 {
			return nil, fmt.Errorf("%w: clause %d missing terminating 0", ErrMalformedInput, len(clauses))
		}
		return nil, fmt.Errorf("%w: declared %d clauses, found %d", ErrMalformedInput, nClauses, len(clauses))
	}

	f, err := cnf.New(nVars, clauses)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	return f, nil
}

// readHeader scans past comment lines and reads the "p cnf nVars nClauses"
// header line, returning its declared counts.
func readHeader(sc *bufio.Scanner) (nVars, nClauses int, err error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if strings.HasPrefix(fields[0], "c") {
			continue
		}
		if fields[0] != "p" {
			return 0, 0, fmt.Errorf("%w: expected \"p cnf ...\" header, got %q", ErrMalformedInput, line)
		}
		if len(fields) != 4 || fields[1] != "cnf" {
			return 0, 0, fmt.Errorf("%w: malformed header %q", ErrMalformedInput, line)
		}
		nVars, err = strconv.Atoi(fields[2])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: non-integer variable count %q", ErrMalformedInput, fields[2])
		}
		nClauses, err = strconv.Atoi(fields[3])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: non-integer clause count %q", ErrMalformedInput, fields[3])
		}
		return nVars, nClauses, nil
	}
	if err := sc.Err(); err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	return 0, 0, fmt.Errorf("%w: no \"p cnf ...\" header found", ErrMalformedInput)
}

// WriteAssignment writes a human-readable rendering of a satisfying
// assignment, one "Variable <v> Value <0|1|-1>" line per variable in
// ascending order: 1 for true, 0 for false, -1 for unassigned
// ("don't care").
func WriteAssignment(w io.Writer, nVars int, assign []cnf.Value) error {
	bw := bufio.NewWriter(w)
	for v := 1; v <= nVars; v++ {
		val := -1
		switch assign[v] {
		case cnf.True:
			val = 1
		case cnf.False:
			val = 0
		}
		if _, err := fmt.Fprintf(bw, "Variable %d Value %d\n", v, val); err != nil {
			return err
		}
	}
	return bw.Flush()
}
