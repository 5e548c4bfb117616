// SPDX-License-Identifier: MIT
// Package: twisty/puzzle
//
// piece.go - a single fragment of the puzzle.
//
// Contract:
//   • layers is fixed at construction: it is the piece's home cell.
//   • orientation changes only through Twist (or a bulk restore by the
//     owning Puzzle).
//   • A non-matching grip is a normal outcome: Twist returns false.

package puzzle

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/twisty/ray"
)

// Piece is one cell of an abstract laminated puzzle.
type Piece[R ray.Ray[R]] struct {
	// layers[r.Index()] is the home layer of the piece along ray r.
	layers []int
	// orientation[r.Index()] is the ray currently occupying direction r.
	orientation Orientation[R]
}

// MakeSolvedPiece builds a solved piece from one grip per axis head, in
// AxisHeads order; grip j is spread over the rays of head j's axis.
// Panics unless there is exactly one grip per head, each as long as its axis.
// Complexity: O(N).
func MakeSolvedPiece[R ray.Ray[R]](axisLayers [][]int) *Piece[R] {
	heads := ray.Heads[R]()
	if len(axisLayers) != len(heads) {
		panic(fmt.Sprintf("puzzle: %d axis grips for %d axes", len(axisLayers), len(heads)))
	}
	layers := make([]int, ray.Count[R]())
	for j, head := range heads {
		axis := head.Axis()
		if len(axisLayers[j]) != len(axis) {
			panic(fmt.Sprintf("puzzle: grip %v does not match axis %v", axisLayers[j], axis))
		}
		for i, r := range axis {
			layers[r.Index()] = axisLayers[j][i]
		}
	}

	return MakeSolvedFromLayers[R](layers)
}

// MakeSolvedFromLayers builds a piece with the given per-ray home layers
// (indexed by ray Index) and the identity orientation.
// Complexity: O(N).
func MakeSolvedFromLayers[R ray.Ray[R]](layers []int) *Piece[R] {
	if len(layers) != ray.Count[R]() {
		panic("puzzle: layers must cover every ray")
	}

	return &Piece[R]{
		layers:      slices.Clone(layers),
		orientation: Identity[R](),
	}
}

// IsSolved reports whether the piece has the identity orientation.
// Complexity: O(N).
func (p *Piece[R]) IsSolved() bool {
	return p.orientation.IsIdentity()
}

// Layer returns the home layer along r.
// Complexity: O(1).
func (p *Piece[R]) Layer(r R) int {
	return p.layers[r.Index()]
}

// Occupant returns the ray whose colour currently shows in direction r.
// Complexity: O(1).
func (p *Piece[R]) Occupant(r R) R {
	return p.orientation.At(r)
}

// Orientation returns a copy of the current orientation.
// Complexity: O(N).
func (p *Piece[R]) Orientation() Orientation[R] {
	return p.orientation.Clone()
}

// GripOnAxis returns the layers the piece currently occupies on r's axis,
// in r.Axis() order. It accounts for the piece's rotation history.
// Complexity: O(|Axis|).
func (p *Piece[R]) GripOnAxis(r R) []int {
	axis := r.Axis()
	grip := make([]int, len(axis))
	for i, a := range axis {
		grip[i] = p.layers[p.orientation.At(a).Index()]
	}

	return grip
}

// GripOnAxisSolved returns the layers of the piece's home cell on r's axis.
// Complexity: O(|Axis|).
func (p *Piece[R]) GripOnAxisSolved(r R) []int {
	axis := r.Axis()
	grip := make([]int, len(axis))
	for i, a := range axis {
		grip[i] = p.layers[a.Index()]
	}

	return grip
}

// Twist rotates the piece by t when its current grip on t.Ray's axis equals
// grip, and reports whether it did.
// Complexity: O(N·Order).
func (p *Piece[R]) Twist(t ray.Turn[R], grip []int) bool {
	if !slices.Equal(p.GripOnAxis(t.Ray), grip) {
		return false
	}
	p.rotate(turnTable(t))

	return true
}

// twistWith is Twist with a precomputed turn table.
func (p *Piece[R]) twistWith(axis R, table []int, grip []int) bool {
	if !slices.Equal(p.GripOnAxis(axis), grip) {
		return false
	}
	p.rotate(table)

	return true
}

// rotate composes the orientation with a turn: o'[r] = o[turn(r)].
func (p *Piece[R]) rotate(table []int) {
	next := make(Orientation[R], len(p.orientation))
	for i, j := range table {
		next[i] = p.orientation[j]
	}
	p.orientation = next
}

// OrientedLayers returns, for every direction, the home layer of the ray
// now occupying it. This is the piece's current cell.
// Complexity: O(N).
func (p *Piece[R]) OrientedLayers() []int {
	out := make([]int, len(p.layers))
	for i, occ := range p.orientation {
		out[i] = p.layers[occ.Index()]
	}

	return out
}

// Clone returns an independent copy of the piece.
// Complexity: O(N).
func (p *Piece[R]) Clone() *Piece[R] {
	return &Piece[R]{
		layers:      slices.Clone(p.layers),
		orientation: p.orientation.Clone(),
	}
}

// String lists the home layers as "[U: 1, D: -1, ...]".
func (p *Piece[R]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range ray.All[R]() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.Name())
		sb.WriteString(": ")
		sb.WriteString(strconv.Itoa(p.layers[i]))
	}
	sb.WriteByte(']')

	return sb.String()
}
