// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command dpsolver reads a DIMACS CNF file and decides it with the DPLL
// search in package dpll, printing the result and, optionally, a model.
package main

import (
	"compress/bzip2"
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaulVaroutsos/SudokuSolver/cnf"
	"github.com/PaulVaroutsos/SudokuSolver/dimacs"
	"github.com/PaulVaroutsos/SudokuSolver/dpll"
)

var model = flag.Bool("model", false, "print the satisfying assignment (default false)")
var satcomp = flag.Bool("satcomp", false, "exit 10 sat, 20 unsat, like a SAT competition binary (default false)")

func path2Reader(p string) (io.Reader, error) {
	if p == "-" {
		return os.Stdin, nil
	}
	st, stErr := os.Stat(p)
	if stErr != nil {
		return nil, stErr
	}
	if st.Mode()&os.ModeSymlink != 0 {
		q, e := os.Readlink(p)
		if e != nil {
			return nil, e
		}
		p = q
	}
	f, e := os.Open(p)
	if e != nil {
		return nil, e
	}
	if strings.HasSuffix(p, ".gz") {
		return gzip.NewReader(f)
	}
	if strings.HasSuffix(p, ".bz2") {
		return bzip2.NewReader(f), nil
	}
	return f, nil
}

func handleResultOutput(res dpll.Result) {
	switch res {
	case dpll.Sat:
		fmt.Printf("s SATISFIABLE\n")
	case dpll.Unsat:
		fmt.Printf("s UNSATISFIABLE\n")
	default:
		fmt.Printf("s UNKNOWN\n")
	}
}

func handleExit(res dpll.Result) {
	if !*satcomp {
		return
	}
	switch res {
	case dpll.Sat:
		os.Exit(10)
	case dpll.Unsat:
		os.Exit(20)
	default:
		os.Exit(0)
	}
}

func run(r io.Reader) (dpll.Result, *cnf.Formula, error) {
	f, err := dimacs.Load(r)
	if err != nil {
		return dpll.Unknown, nil, err
	}
	return dpll.Solve(f), f, nil
}

func main() {
	flag.Usage = func() {
		p := os.Args[0]
		_, p = filepath.Split(p)
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [cnf-file]\n\n", p)
		flag.PrintDefaults()
	}
	log.SetPrefix("c [dpsolver] ")
	flag.Parse()

	var rdr io.Reader = os.Stdin
	if flag.NArg() > 0 {
		var err error
		rdr, err = path2Reader(flag.Arg(0))
		if err != nil {
			log.Fatalf("%s", err)
		}
	}

	res, f, err := run(rdr)
	if err != nil {
		log.Fatalf("%s", err)
	}
	handleResultOutput(res)
	if res == dpll.Sat && *model {
		if err := dimacs.WriteAssignment(os.Stdout, f.NVars(), f.Assignment()); err != nil {
			log.Fatalf("%s", err)
		}
	}
	handleExit(res)
}
