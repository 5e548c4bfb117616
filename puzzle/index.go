// SPDX-License-Identifier: MIT
// Package: twisty/puzzle
//
// index.go - the mixed-radix bijection between piece indices and cells.
//
// A cell is one grip per axis head. With G grips and heads h_0..h_{A-1},
// index = Σ_j gripIndex(h_j) · G^j.

package puzzle

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/twisty/ray"
)

// IndexToSolvedPiece builds the solved piece whose home cell has index i.
// Complexity: O(A + N).
func (p *Puzzle[R]) IndexToSolvedPiece(i int) *Piece[R] {
	heads := ray.Heads[R]()
	g := len(p.grips)
	axisLayers := make([][]int, len(heads))
	stride := 1
	for j := range heads {
		axisLayers[j] = p.grips[(i/stride)%g]
		stride *= g
	}

	return MakeSolvedPiece[R](axisLayers)
}

// PieceToIndex returns the index of the cell pc currently occupies.
// Panics if pc sits in a grip that is not registered, which only happens
// for pieces foreign to this puzzle.
// Complexity: O(A·G·|Axis|).
func (p *Puzzle[R]) PieceToIndex(pc *Piece[R]) int {
	return p.indexOf(pc.GripOnAxis)
}

// PieceToIndexSolved returns the index of pc's home cell. It inverts
// IndexToSolvedPiece.
// Complexity: O(A·G·|Axis|).
func (p *Puzzle[R]) PieceToIndexSolved(pc *Piece[R]) int {
	return p.indexOf(pc.GripOnAxisSolved)
}

// Permutation maps every slot to the construction index of the piece
// currently occupying it: perm[PieceToIndex(piece_i)] = i.
// Complexity: O(P·A·G·|Axis|).
func (p *Puzzle[R]) Permutation() []int {
	perm := make([]int, len(p.pieces))
	for i, pc := range p.pieces {
		perm[p.PieceToIndex(pc)] = i
	}

	return perm
}

func (p *Puzzle[R]) indexOf(gripOn func(R) []int) int {
	g := len(p.grips)
	index, stride := 0, 1
	for _, h := range ray.Heads[R]() {
		grip := gripOn(h)
		k := p.gripIndex(grip)
		if k < 0 {
			panic(fmt.Sprintf("puzzle: grip %v on axis %v is not registered", grip, h))
		}
		index += k * stride
		stride *= g
	}

	return index
}

func (p *Puzzle[R]) gripIndex(grip []int) int {
	return slices.IndexFunc(p.grips, func(g []int) bool {
		return slices.Equal(g, grip)
	})
}
