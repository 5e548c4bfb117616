// Command twisty plays abstract twisty puzzles from the shell. The session
// lives in a JSON log file between invocations.
//
//	twisty new "Cube Nnn(3)"
//	twisty scramble --seed 42
//	twisty twist R 1 2,-2
//	twisty undo
//	twisty show
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "twisty:", err)
		os.Exit(1)
	}
}
