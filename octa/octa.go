// Package octa is the ray system of the octahedron: eight face directions,
// one per octant, on four axes turned in thirds.
//
// A ray is the octant (ud, fb, rl) with each bit false on the U, F and R
// side. Opposite faces flip all three bits. Turns are signed cyclic
// permutations of the three bits, so every turn is a rotation about the
// body diagonal through the axis faces.
package octa

import "github.com/katalvlaran/twisty/ray"

// Ray is one face of the octahedron. Its value is ud<<2 | fb<<1 | rl.
type Ray uint8

const (
	UFR Ray = iota
	UFL
	UBR
	UBL
	DFR
	DFL
	DBR
	DBL
)

const count = 8

var names = [count]string{
	UFR: "UFR", UFL: "UFL", UBR: "UBR", UBL: "UBL",
	DFR: "DFR", DFL: "DFL", DBR: "DBR", DBL: "DBL",
}

var (
	all   = []Ray{UFR, UFL, UBR, UBL, DFR, DFL, DBR, DBL}
	heads = []Ray{DBL, DBR, DFL, DFR}
)

// cycle visits the twelve rotations generated by the third turns.
var cycle = []ray.Turn[Ray]{
	third(DBL), third(DBL), third(DBR), third(DBR),
	third(DBL), third(DBL), third(DBR), third(DBL),
	third(DBL), third(DBR), third(DBL),
}

func third(r Ray) ray.Turn[Ray] { return ray.Turn[Ray]{Ray: r, Order: 1} }

// FromBits builds the ray of the given octant; true selects D, B and L.
func FromBits(ud, fb, rl bool) Ray {
	var r Ray
	if ud {
		r |= 4
	}
	if fb {
		r |= 2
	}
	if rl {
		r |= 1
	}

	return r
}

// Bits returns the octant of the ray.
func (r Ray) Bits() (ud, fb, rl bool) {
	return r&4 != 0, r&2 != 0, r&1 != 0
}

// Opposite returns the face across the centre.
func (r Ray) Opposite() Ray { return r ^ 7 }

// Index implements ray.Ray.
func (r Ray) Index() int { return int(r) }

// Axis implements ray.Ray: the D-side face first.
func (r Ray) Axis() []Ray {
	if ud, _, _ := r.Bits(); ud {
		return []Ray{r, r.Opposite()}
	}

	return []Ray{r.Opposite(), r}
}

// TurnOne implements ray.Ray.
// Complexity: O(1).
func (r Ray) TurnOne(axis Ray) Ray {
	a, b, c := r.Bits()
	switch axis {
	case DBL, UFR:
		return FromBits(b, c, a)
	case DBR, UFL:
		return FromBits(!c, a, !b)
	case DFL, UBR:
		return FromBits(c, !a, !b)
	default: // DFR, UBL
		return FromBits(!b, c, !a)
	}
}

// Order implements ray.Ray.
func (Ray) Order() int { return 3 }

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
