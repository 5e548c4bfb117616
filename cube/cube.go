// Package cube is the ray system of the cube: six face directions on three
// axes, turned in quarter turns.
//
// Each ray is a signed basis vector: R=+X, L=-X, U=+Y, D=-Y, F=+Z, B=-Z.
// A quarter turn about basis A sends (A+1, s) to (A+2, s) and (A+2, s) to
// (A+1, -s), leaving the turning axis itself in place.
package cube

import "github.com/katalvlaran/twisty/ray"

// Ray is one face direction of the cube. The constant order is the
// canonical enumeration and must not change: it is the layout of every
// orientation map.
type Ray uint8

const (
	U Ray = iota
	D
	F
	B
	R
	L
)

// count is the number of cube rays.
const count = 6

// coords maps each ray to its signed basis vector.
var coords = [count]struct {
	basis ray.Basis
	sign  ray.Sign
}{
	U: {ray.Y, ray.Pos},
	D: {ray.Y, ray.Neg},
	F: {ray.Z, ray.Pos},
	B: {ray.Z, ray.Neg},
	R: {ray.X, ray.Pos},
	L: {ray.X, ray.Neg},
}

var names = [count]string{U: "U", D: "D", F: "F", B: "B", R: "R", L: "L"}

var (
	all   = []Ray{U, D, F, B, R, L}
	heads = []Ray{U, F, R}
	axes  = [3][]Ray{
		ray.X: {R, L},
		ray.Y: {U, D},
		ray.Z: {F, B},
	}
)

// cycle visits all 24 rotations of the cube with quarter turns of U and F.
var cycle = []ray.Turn[Ray]{
	q(U, 1), q(U, 1), q(U, 1), q(F, 1),
	q(U, 1), q(U, 1), q(U, 1), q(F, 1),
	q(U, 1), q(U, 1), q(U, 1), q(F, 3),
	q(U, 1), q(U, 1), q(U, 1), q(F, 3),
	q(U, 1), q(U, 1), q(U, 1), q(F, 1),
	q(U, 1), q(U, 1), q(U, 1),
}

// q builds a turn of r by k quarter turns.
func q(r Ray, k int) ray.Turn[Ray] { return ray.Turn[Ray]{Ray: r, Order: k} }

// FromBasis returns the ray along basis b with sign s.
func FromBasis(b ray.Basis, s ray.Sign) Ray {
	for _, r := range all {
		if coords[r].basis == b && coords[r].sign == s {
			return r
		}
	}
	panic("cube: invalid basis " + b.String())
}

// Basis returns the coordinate axis the ray points along.
func (r Ray) Basis() ray.Basis { return coords[r].basis }

// Sign returns the direction of the ray along its basis.
func (r Ray) Sign() ray.Sign { return coords[r].sign }

// Index implements ray.Ray.
func (r Ray) Index() int { return int(r) }

// Axis implements ray.Ray: the positive ray first.
func (r Ray) Axis() []Ray { return axes[r.Basis()] }

// TurnOne implements ray.Ray.
// Complexity: O(1).
func (r Ray) TurnOne(axis Ray) Ray {
	a := axis.Basis()
	switch r.Basis().Sub(a) {
	case ray.D1:
		return FromBasis(a.Add(ray.D2), r.Sign())
	case ray.D2:
		return FromBasis(a.Add(ray.D1), r.Sign().Neg())
	}

	return r
}

// Order implements ray.Ray.
func (Ray) Order() int { return 4 }

// Name implements ray.Ray.
func (r Ray) Name() string { return names[r] }

// String returns the ray's name.
func (r Ray) String() string { return r.Name() }

// Rays implements ray.Ray.
func (Ray) Rays() []Ray { return all }

// AxisHeads implements ray.Ray.
func (Ray) AxisHeads() []Ray { return heads }

// Cycle implements ray.Ray.
func (Ray) Cycle() []ray.Turn[Ray] { return cycle }
