// SPDX-License-Identifier: MIT

// Command minila is a small command-line front end for the minila packages.
//
// Usage:
//
//	minila svd   --a "4,0;0,9"
//	minila lu    --a "4,3;6,3"
//	minila solve --a "2,1;1,3" --b "3;5"
//	minila mul   --size 128 --seed 7
//	minila integrate --fn sin --from 0 --to 3.141592653589793 --rule simpson
//	minila root  --fn cubic --start 2
//	minila brownian --paths 500 --steps 100 --mu 0 --sigma 1 --seed 42
//
// Matrices are written row by row: entries separated by ',', rows by ';'.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("minila: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
