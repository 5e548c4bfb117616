// SPDX-License-Identifier: MIT
// Package: twisty/puzzle
//
// options.go - functional options for Scramble.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Defaults live in newScrambleConfig only.

package puzzle

import "fmt"

// ScrambleOption customizes a Scramble call.
// Complexity: applying N options costs O(N).
type ScrambleOption func(*scrambleConfig)

type scrambleConfig struct {
	moves int
}

// WithMoves sets the number of random twists. Zero is allowed and leaves
// the puzzle untouched; negative counts panic.
// Complexity: O(1).
func WithMoves(n int) ScrambleOption {
	if n < 0 {
		panic(fmt.Sprintf("puzzle: WithMoves(%d)", n))
	}
	return func(c *scrambleConfig) {
		c.moves = n
	}
}

func newScrambleConfig(opts ...ScrambleOption) scrambleConfig {
	cfg := scrambleConfig{moves: DefaultScrambleMoves}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
