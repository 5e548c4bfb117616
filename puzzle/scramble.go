// SPDX-License-Identifier: MIT
// Package: twisty/puzzle
//
// scramble.go - random twists through the normal Twist path.
//
// Determinism is explicit: the caller owns the *rand.Rand.

package puzzle

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/twisty/ray"
)

// DefaultScrambleMoves is the move count used when WithMoves is not given.
const DefaultScrambleMoves = 1000

// Move is one applied twist: a turn and the grip it was applied to.
type Move[R ray.Ray[R]] struct {
	Turn ray.Turn[R]
	Grip []int
}

// Scramble applies random twists drawn from rng and returns them in order.
// Each move picks a uniform ray, a uniform order in [0, Order()) and a
// uniform registered grip. Panics on a nil rng.
// Complexity: O(moves·P·N).
func (p *Puzzle[R]) Scramble(rng *rand.Rand, opts ...ScrambleOption) []Move[R] {
	if rng == nil {
		panic("puzzle: Scramble(nil rng)")
	}
	cfg := newScrambleConfig(opts...)

	moves := make([]Move[R], 0, cfg.moves)
	for i := 0; i < cfg.moves; i++ {
		r := ray.Choose[R](rng)
		t := ray.Turn[R]{Ray: r, Order: rng.Intn(r.Order())}
		grip := p.grips[rng.Intn(len(p.grips))]
		p.Twist(t, grip)
		moves = append(moves, Move[R]{Turn: t, Grip: slices.Clone(grip)})
	}

	return moves
}
