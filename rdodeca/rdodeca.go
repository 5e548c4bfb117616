// Package rdodeca is the ray system of the rhombic dodecahedron: twelve
// face directions on six axes, turned in halves.
//
// A ray is written Ray(a, s1, s2) for the face normal s1·e(a+1) + s2·e(a+2),
// the sum of two cube face directions, and is named after them: the ray
// between U and F is "UF".
package rdodeca

import (
	"github.com/katalvlaran/twisty/cube"
	"github.com/katalvlaran/twisty/ray"
)

// Ray is one face of the rhombic dodecahedron. Its value is
// a<<2 | s1<<1 | s2 with ray.Pos as 0.
type Ray uint8

const count = 12

var (
	all   = make([]Ray, count)
	names [count]string
	heads []Ray
	cycle []ray.Turn[Ray]
)

func init() {
	for i := range all {
		r := Ray(i)
		all[i] = r
		a, s1, s2 := r.Parts()
		names[i] = cube.FromBasis(a.Add(ray.D1), s1).Name() + cube.FromBasis(a.Add(ray.D2), s2).Name()
		if s1 == ray.Pos {
			heads = append(heads, r)
		}
	}

	uf, ub, fr := Make(ray.X, ray.Pos, ray.Pos), Make(ray.X, ray.Pos, ray.Neg), Make(ray.Y, ray.Pos, ray.Pos)
	for _, r := range []Ray{
		uf, fr, uf, fr, uf, ub, uf, fr, uf, fr, uf, ub,
		uf, fr, ub, fr, uf, fr, uf, fr, ub, fr, uf,
	} {
		cycle = append(cycle, ray.Turn[Ray]{Ray: r, Order: 1})
	}
}

// Make builds the ray (a, s1, s2).
func Make(a ray.Basis, s1, s2 ray.Sign) Ray {
	return Ray(uint8(a)<<2 | uint8(s1)<<1 | uint8(s2))
}

// Parts returns the (a, s1, s2) coordinates of the ray.
func (r Ray) Parts() (ray.Basis, ray.Sign, ray.Sign) {
	return ray.Basis(r >> 2), ray.Sign(r >> 1 & 1), ray.Sign(r & 1)
}

// Faces returns the two cube faces the ray lies between.
func (r Ray) Faces() (cube.Ray, cube.Ray) {
	a, s1, s2 := r.Parts()

	return cube.FromBasis(a.Add(ray.D1), s1), cube.FromBasis(a.Add(ray.D2), s2)
}

// Index implements ray.Ray.
func (r Ray) Index() int { return int(r) }

// Axis implements ray.Ray.
func (r Ray) Axis() []Ray {
	a, s1, s2 := r.Parts()
	p := s1.Mul(s2)

	return []Ray{Make(a, ray.Pos, p), Make(a, ray.Neg, p.Neg())}
}

// TurnOne implements ray.Ray: a half turn about the axis.
// Complexity: O(1).
func (r Ray) TurnOne(axis Ray) Ray {
	ha, h1, h2 := axis.Axis()[0].Parts()
	k := h1.Mul(h2)
	a, s1, s2 := r.Parts()
	switch a.Sub(ha) {
	case ray.D1:
		return Make(a.Add(ray.D1), s2.Neg(), k.Mul(s1))
	case ray.D2:
		return Make(a.Add(ray.D2), k.Mul(s2), s1.Neg())
	}

	return Make(a, k.Mul(s2), k.Mul(s1))
}

// Order implements ray.Ray.
func (Ray) Order() int { return 2 }

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
