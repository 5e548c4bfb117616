// SPDX-License-Identifier: MIT
// Package: twisty/ray
//
// basis.go - cyclic basis and sign arithmetic used by the closed-form
// ray systems (cube, dodecahedron, rhombic dodecahedron).
//
// Model:
//   • Basis is one of the three coordinate axes X, Y, Z.
//   • BasisDiff is an element of Z/3: the cyclic distance between bases,
//     so X.Add(D1) == Y and Z.Sub(X) == D2.
//   • Sign is an element of {+1, -1} under multiplication.

package ray

// Basis is a coordinate axis of 3-space.
type Basis uint8

const (
	// X is the first basis vector.
	X Basis = iota
	// Y is the second basis vector.
	Y
	// Z is the third basis vector.
	Z
)

// BasisDiff is the cyclic difference between two bases.
type BasisDiff uint8

const (
	// D0 maps a basis to itself.
	D0 BasisDiff = iota
	// D1 maps X→Y→Z→X.
	D1
	// D2 maps X→Z→Y→X.
	D2
)

// Bases lists X, Y, Z in order.
var Bases = [3]Basis{X, Y, Z}

// Add shifts b cyclically by d.
// Complexity: O(1).
func (b Basis) Add(d BasisDiff) Basis {
	return Basis((uint8(b) + uint8(d)) % 3)
}

// Sub returns the cyclic difference d such that o.Add(d) == b.
// Complexity: O(1).
func (b Basis) Sub(o Basis) BasisDiff {
	return BasisDiff((uint8(b) + 3 - uint8(o)) % 3)
}

// Minus shifts b cyclically by -d.
// Complexity: O(1).
func (b Basis) Minus(d BasisDiff) Basis {
	return b.Add(d.Neg())
}

// String returns "X", "Y" or "Z".
func (b Basis) String() string {
	switch b {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}

	return "?"
}

// Add composes two cyclic differences.
// Complexity: O(1).
func (d BasisDiff) Add(o BasisDiff) BasisDiff {
	return BasisDiff((uint8(d) + uint8(o)) % 3)
}

// Neg returns the inverse difference.
// Complexity: O(1).
func (d BasisDiff) Neg() BasisDiff {
	return BasisDiff((3 - uint8(d)) % 3)
}

// Sign is a unit scalar, positive or negative.
type Sign uint8

const (
	// Pos is +1.
	Pos Sign = iota
	// Neg is -1.
	Neg
)

// Mul multiplies two signs.
// Complexity: O(1).
func (s Sign) Mul(o Sign) Sign {
	if s == o {
		return Pos
	}

	return Neg
}

// Neg flips the sign.
// Complexity: O(1).
func (s Sign) Neg() Sign {
	if s == Pos {
		return Neg
	}

	return Pos
}

// Int returns +1 or -1.
func (s Sign) Int() int {
	if s == Pos {
		return 1
	}

	return -1
}

// String returns "+" or "-".
func (s Sign) String() string {
	if s == Pos {
		return "+"
	}

	return "-"
}
