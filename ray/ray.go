// SPDX-License-Identifier: MIT
// Package: twisty/ray
//
// ray.go - derived operations every ray system gets for free.

package ray

import "math/rand"

// Apply turns r about t.Ray's axis by t.Order unit steps and returns the
// ray that occupies r's direction afterwards. Negative orders turn the
// other way: the step count is t.Order mod Order() (Euclidean).
// Complexity: O(Order()) TurnOne calls.
func Apply[R Ray[R]](r R, t Turn[R]) R {
	steps := Mod(t.Order, t.Ray.Order())
	turned := r
	for i := 0; i < steps; i++ {
		turned = turned.TurnOne(t.Ray)
	}

	return turned
}

// Mod returns the Euclidean remainder of a by m (always in [0, m)).
// m must be positive.
// Complexity: O(1).
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// All returns the canonical enumeration of R.
// Complexity: O(1); the slice belongs to the ray system, do not mutate it.
func All[R Ray[R]]() []R {
	var zero R
	return zero.Rays()
}

// Count returns the number of rays of R.
// Complexity: O(1).
func Count[R Ray[R]]() int {
	return len(All[R]())
}

// Heads returns the axis heads of R.
// Complexity: O(1); the slice belongs to the ray system, do not mutate it.
func Heads[R Ray[R]]() []R {
	var zero R
	return zero.AxisHeads()
}

// Cycle returns the symmetry-group cycle of R.
// Complexity: O(1); the slice belongs to the ray system, do not mutate it.
func Cycle[R Ray[R]]() []Turn[R] {
	var zero R
	return zero.Cycle()
}

// FromName resolves a ray by its Name. The boolean is false when no ray of
// R carries that name.
// Complexity: O(|Rays|).
func FromName[R Ray[R]](name string) (R, bool) {
	for _, r := range All[R]() {
		if r.Name() == name {
			return r, true
		}
	}
	var zero R

	return zero, false
}

// Choose returns a ray of R drawn uniformly with rng.
// Complexity: O(1).
func Choose[R Ray[R]](rng *rand.Rand) R {
	rays := All[R]()
	if len(rays) == 0 {
		panic("ray: Choose on an empty ray system")
	}

	return rays[rng.Intn(len(rays))]
}

// Names returns the names of every ray of R in Index order.
// Complexity: O(|Rays|).
func Names[R Ray[R]]() []string {
	rays := All[R]()
	names := make([]string, len(rays))
	for i, r := range rays {
		names[i] = r.Name()
	}

	return names
}

// SameAxis reports whether a and b lie on the same axis.
// Complexity: O(|Axis|).
func SameAxis[R Ray[R]](a, b R) bool {
	for _, m := range a.Axis() {
		if m == b {
			return true
		}
	}

	return false
}
