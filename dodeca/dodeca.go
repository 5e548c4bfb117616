// Package dodeca is the ray system of the dodecahedron: twelve face
// directions on six axes, turned in fifths.
//
// A ray is written Ray(a, s1, s2) for the face normal φ·s1·e(a+1) + s2·e(a+2),
// the twelve cyclic permutations of (0, ±φ, ±1). A turn is computed by
// flipping coordinate signs until the turning axis is (a, +, +), applying
// one of six fixed transforms, and flipping back.
package dodeca

import "github.com/katalvlaran/twisty/ray"

// Ray is one face of the dodecahedron. Its value is a<<2 | s1<<1 | s2
// with ray.Pos as 0.
type Ray uint8

const (
	PB Ray = iota
	PD
	U
	F
	BL
	BR
	DL
	DR
	PR
	R
	PL
	L
)

const count = 12

var names = [count]string{
	PB: "PB", PD: "PD", U: "U", F: "F",
	BL: "BL", BR: "BR", DL: "DL", DR: "DR",
	PR: "PR", R: "R", PL: "PL", L: "L",
}

var (
	all   = []Ray{PB, PD, U, F, BL, BR, DL, DR, PR, R, PL, L}
	heads = []Ray{PB, PD, BL, BR, PR, R}
)

// transform is the relative move of a ray once the axis is normalised to
// (a, +, +), keyed by the ray's basis distance from the axis and the
// product of its signs.
var transform = [3][2]struct {
	shift  ray.BasisDiff
	s1, s2 ray.Sign
}{
	ray.D0: {ray.Pos: {ray.D0, ray.Pos, ray.Pos}, ray.Neg: {ray.D2, ray.Neg, ray.Neg}},
	ray.D1: {ray.Pos: {ray.D1, ray.Pos, ray.Pos}, ray.Neg: {ray.D0, ray.Pos, ray.Neg}},
	ray.D2: {ray.Pos: {ray.D1, ray.Pos, ray.Neg}, ray.Neg: {ray.D2, ray.Neg, ray.Neg}},
}

// cycle visits all 60 rotations with fifth turns of BR, R and BL.
var cycle = buildCycle()

func buildCycle() []ray.Turn[Ray] {
	rows := []struct {
		spin  int
		pivot Ray
		order int
	}{
		{4, R, 1}, {4, R, 4}, {1, R, 4}, {1, R, 4},
		{1, R, 4}, {1, R, 1}, {4, R, 4}, {4, BL, 4},
		{4, BL, 4}, {4, BL, 4}, {4, R, 4}, {4, R, 0},
	}
	var out []ray.Turn[Ray]
	for i, row := range rows {
		for k := 0; k < 4; k++ {
			out = append(out, ray.Turn[Ray]{Ray: BR, Order: row.spin})
		}
		if i < len(rows)-1 {
			out = append(out, ray.Turn[Ray]{Ray: row.pivot, Order: row.order})
		}
	}

	return out
}

// Make builds the ray (a, s1, s2).
func Make(a ray.Basis, s1, s2 ray.Sign) Ray {
	return Ray(uint8(a)<<2 | uint8(s1)<<1 | uint8(s2))
}

// Parts returns the (a, s1, s2) coordinates of the ray.
func (r Ray) Parts() (ray.Basis, ray.Sign, ray.Sign) {
	return ray.Basis(r >> 2), ray.Sign(r >> 1 & 1), ray.Sign(r & 1)
}

// flip returns the sign axis applies along basis b when normalising.
func (r Ray) flip(b ray.Basis) ray.Sign {
	a, s1, s2 := r.Parts()
	switch b.Sub(a) {
	case ray.D1:
		return s1
	case ray.D2:
		return s2
	}

	return s1.Mul(s2)
}

// flipBasis multiplies the coordinate along basis b by s.
func (r Ray) flipBasis(b ray.Basis, s ray.Sign) Ray {
	a, s1, s2 := r.Parts()
	switch b.Sub(a) {
	case ray.D1:
		return Make(a, s.Mul(s1), s2)
	case ray.D2:
		return Make(a, s1, s.Mul(s2))
	}

	return r
}

// flipBy applies the sign flips that carry axis to (a, +, +). The map is an
// involution, so it also carries the result back.
func (r Ray) flipBy(axis Ray) Ray {
	for _, b := range ray.Bases {
		r = r.flipBasis(b, axis.flip(b))
	}

	return r
}

// Index implements ray.Ray.
func (r Ray) Index() int { return int(r) }

// Axis implements ray.Ray.
func (r Ray) Axis() []Ray {
	a, s1, s2 := r.Parts()
	p := s1.Mul(s2)

	return []Ray{Make(a, ray.Pos, p), Make(a, ray.Neg, p.Neg())}
}

// TurnOne implements ray.Ray.
// Complexity: O(1).
func (r Ray) TurnOne(axis Ray) Ray {
	head := axis.Axis()[0]
	rel := r.flipBy(head)
	a, s1, s2 := rel.Parts()
	ha, _, _ := head.Parts()
	tr := transform[a.Sub(ha)][s1.Mul(s2)]

	return Make(a.Add(tr.shift), s1.Mul(tr.s1), s2.Mul(tr.s2)).flipBy(head)
}

// Order implements ray.Ray.
func (Ray) Order() int { return 5 }

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
