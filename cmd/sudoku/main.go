// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command sudoku reads a text Sudoku grid, encodes it as CNF, solves it
// with the DPLL search in package dpll, and prints the solved grid.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/PaulVaroutsos/SudokuSolver/dpll"
	"github.com/PaulVaroutsos/SudokuSolver/sudoku"
)

func main() {
	flag.Usage = func() {
		p := os.Args[0]
		_, p = filepath.Split(p)
		fmt.Fprintf(os.Stderr, "usage: %s [puzzle-file]\n\nreads a 9-line Sudoku grid ('.'/0 for blanks) from the\nfile, or from stdin if no file is given, and prints the solution.\n\n", p)
		flag.PrintDefaults()
	}
	log.SetPrefix("c [sudoku] ")
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("%s", err)
		}
		defer f.Close()
		in = f
	}

	g, err := sudoku.ParseGrid(in)
	if err != nil {
		log.Fatalf("%s", err)
	}

	b, err := sudoku.Encode(g)
	if err != nil {
		log.Fatalf("%s", err)
	}
	formula, err := b.Build()
	if err != nil {
		log.Fatalf("%s", err)
	}

	if dpll.Solve(formula) != dpll.Sat {
		fmt.Println("no solution")
		os.Exit(1)
	}

	solved, err := sudoku.Decode(formula.Assignment())
	if err != nil {
		log.Fatalf("%s", err)
	}
	if err := solved.WriteTo(os.Stdout); err != nil {
		log.Fatalf("%s", err)
	}
}
