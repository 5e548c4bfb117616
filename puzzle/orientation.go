// SPDX-License-Identifier: MIT
// Package: twisty/puzzle
//
// orientation.go - dense ray-keyed maps.
//
// An Orientation is indexed by ray Index: o[r.Index()] is the ray that
// currently occupies nominal direction r. It always covers every ray.

package puzzle

import "github.com/katalvlaran/twisty/ray"

// Orientation maps every nominal direction to the ray occupying it.
type Orientation[R ray.Ray[R]] []R

// Identity returns the solved orientation of R.
// Complexity: O(N).
func Identity[R ray.Ray[R]]() Orientation[R] {
	rays := ray.All[R]()
	o := make(Orientation[R], len(rays))
	copy(o, rays)

	return o
}

// At returns the ray occupying direction r.
// Complexity: O(1).
func (o Orientation[R]) At(r R) R {
	return o[r.Index()]
}

// IsIdentity reports whether every direction holds its own ray.
// Complexity: O(N).
func (o Orientation[R]) IsIdentity() bool {
	for i, r := range o {
		if r.Index() != i {
			return false
		}
	}

	return true
}

// Equal reports whether o and other map every direction identically.
// Complexity: O(N).
func (o Orientation[R]) Equal(other Orientation[R]) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
// Complexity: O(N).
func (o Orientation[R]) Clone() Orientation[R] {
	c := make(Orientation[R], len(o))
	copy(c, o)

	return c
}

// Valid reports whether o covers the full enumeration of R with each ray
// exactly once.
// Complexity: O(N).
func (o Orientation[R]) Valid() bool {
	n := ray.Count[R]()
	if len(o) != n {
		return false
	}
	seen := make([]bool, n)
	for _, r := range o {
		i := r.Index()
		if i < 0 || i >= n || seen[i] {
			return false
		}
		seen[i] = true
	}

	return true
}

// Names returns the occupant names in direction order. This is the
// persisted form of an orientation.
// Complexity: O(N).
func (o Orientation[R]) Names() []string {
	names := make([]string, len(o))
	for i, r := range o {
		names[i] = r.Name()
	}

	return names
}

// turnTable returns table[i] = Apply(Rays()[i], t).Index(), the index form
// of one turn, computed once per twist.
func turnTable[R ray.Ray[R]](t ray.Turn[R]) []int {
	rays := ray.All[R]()
	table := make([]int, len(rays))
	for i, r := range rays {
		table[i] = ray.Apply(r, t).Index()
	}

	return table
}
