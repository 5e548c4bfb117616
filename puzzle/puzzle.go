// SPDX-License-Identifier: MIT
// Package: twisty/puzzle
//
// puzzle.go - the full puzzle: registered grips plus every piece.
//
// Contract:
//   • grips[0] is the fixed core; Twist on it twists every other grip the
//     opposite way (depth one, never recursive).
//   • pieces are created in mixed-radix order; their home layers never
//     change, so the index bijection stays valid after any twist.
//   • Bulk restores are validated before any piece is touched.

package puzzle

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/twisty/ray"
)

// Puzzle is a laminated puzzle over ray system R.
type Puzzle[R ray.Ray[R]] struct {
	grips  [][]int
	pieces []*Piece[R]
}

// MakeSolved builds a solved puzzle with the given grips. Every grip must
// list one layer per ray of an axis, and grips must be distinct.
// Panics on an empty grip list or malformed grips.
// Complexity: O(P·N) with P = len(grips)^len(AxisHeads).
func MakeSolved[R ray.Ray[R]](grips [][]int) *Puzzle[R] {
	if len(grips) == 0 {
		panic("puzzle: MakeSolved needs at least one grip")
	}
	heads := ray.Heads[R]()
	for _, h := range heads {
		if n := len(h.Axis()); n != len(grips[0]) {
			panic(fmt.Sprintf("puzzle: grip length %d does not match axis %v of length %d", len(grips[0]), h, n))
		}
	}
	for i, g := range grips {
		if len(g) != len(grips[0]) {
			panic(fmt.Sprintf("puzzle: grip %v has length %d, want %d", g, len(g), len(grips[0])))
		}
		for _, prev := range grips[:i] {
			if slices.Equal(prev, g) {
				panic(fmt.Sprintf("puzzle: duplicate grip %v", g))
			}
		}
	}

	p := &Puzzle[R]{grips: cloneGrips(grips)}
	count := pow(len(grips), len(heads))
	p.pieces = make([]*Piece[R], count)
	for i := range p.pieces {
		p.pieces[i] = p.IndexToSolvedPiece(i)
	}

	return p
}

// PieceCount returns len(grips)^len(AxisHeads).
// Complexity: O(1).
func (p *Puzzle[R]) PieceCount() int {
	return len(p.pieces)
}

// Grips returns a deep copy of the registered grips, core first.
// Complexity: O(G·|Axis|).
func (p *Puzzle[R]) Grips() [][]int {
	return cloneGrips(p.grips)
}

// IsGrip reports whether grip is registered.
// Complexity: O(G·|Axis|).
func (p *Puzzle[R]) IsGrip(grip []int) bool {
	return p.gripIndex(grip) >= 0
}

// Piece returns a copy of the piece at construction index i.
// Complexity: O(N).
func (p *Puzzle[R]) Piece(i int) *Piece[R] {
	return p.pieces[i].Clone()
}

// Pieces returns copies of every piece in construction order.
// Complexity: O(P·N).
func (p *Puzzle[R]) Pieces() []*Piece[R] {
	out := make([]*Piece[R], len(p.pieces))
	for i, pc := range p.pieces {
		out[i] = pc.Clone()
	}

	return out
}

// IsSolved reports whether every piece shares the first piece's
// orientation. A whole-puzzle rotation therefore still counts as solved.
// Complexity: O(P·N).
func (p *Puzzle[R]) IsSolved() bool {
	first := p.pieces[0].orientation
	for _, pc := range p.pieces[1:] {
		if !pc.orientation.Equal(first) {
			return false
		}
	}

	return true
}

// Twist turns every piece whose current grip on t.Ray's axis equals grip.
// Twisting the core grip twists every other grip by the inverse turn
// instead, which keeps the core fixed in space.
// Complexity: O(P·N).
func (p *Puzzle[R]) Twist(t ray.Turn[R], grip []int) {
	if slices.Equal(grip, p.grips[0]) {
		inv := turnTable(t.Inverse())
		for _, other := range p.grips[1:] {
			p.twistLayer(t.Ray, inv, other)
		}

		return
	}
	p.twistLayer(t.Ray, turnTable(t), grip)
}

// twistLayer applies one turn table to every piece in grip.
func (p *Puzzle[R]) twistLayer(axis R, table []int, grip []int) {
	for _, pc := range p.pieces {
		pc.twistWith(axis, table, grip)
	}
}

// Orientations returns a copy of every piece's orientation.
// Complexity: O(P·N).
func (p *Puzzle[R]) Orientations() []Orientation[R] {
	out := make([]Orientation[R], len(p.pieces))
	for i, pc := range p.pieces {
		out[i] = pc.orientation.Clone()
	}

	return out
}

// SetOrientations restores every piece's orientation. Nothing changes
// unless the whole input is valid.
// Complexity: O(P·N).
func (p *Puzzle[R]) SetOrientations(oris []Orientation[R]) error {
	if len(oris) != len(p.pieces) {
		return fmt.Errorf("%w: got %d, want %d", ErrOrientationCount, len(oris), len(p.pieces))
	}
	for i, o := range oris {
		if !o.Valid() {
			return fmt.Errorf("%w: piece %d", ErrInvalidOrientation, i)
		}
	}
	for i, o := range oris {
		p.pieces[i].orientation = o.Clone()
	}

	return nil
}

// Clone returns an independent deep copy.
// Complexity: O(P·N).
func (p *Puzzle[R]) Clone() *Puzzle[R] {
	return &Puzzle[R]{
		grips:  cloneGrips(p.grips),
		pieces: p.Pieces(),
	}
}

// Reset returns every piece to the identity orientation.
// Complexity: O(P·N).
func (p *Puzzle[R]) Reset() {
	for _, pc := range p.pieces {
		pc.orientation = Identity[R]()
	}
}

func cloneGrips(grips [][]int) [][]int {
	out := make([][]int, len(grips))
	for i, g := range grips {
		out[i] = slices.Clone(g)
	}

	return out
}

func pow(base, exp int) int {
	n := 1
	for i := 0; i < exp; i++ {
		n *= base
	}

	return n
}
