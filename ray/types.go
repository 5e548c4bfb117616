// SPDX-License-Identifier: MIT
// Package: twisty/ray
//
// types.go - the Ray contract and the Turn value.
//
// Contract:
//   • Index() is dense: Rays()[i].Index() == i for every i.
//   • Axis() returns the same ordered slice for every ray of one axis.
//   • TurnOne(a) depends only on a's axis, never on which axis-mate a is.
//   • Rays(), AxisHeads() and Cycle() describe the system, not the
//     receiver; they are called on the zero value.

package ray

import "fmt"

// Ray is the constraint satisfied by every concrete ray system.
// R is the concrete ray type itself (F-bounded), so methods can return
// and accept values of the same system.
type Ray[R any] interface {
	comparable

	// Index returns the dense discriminant of the ray in [0, len(Rays())).
	// It is the canonical enumeration order and the key of dense maps.
	Index() int

	// Axis returns the rays sharing this ray's axis, in canonical order.
	// Every ray on the axis returns an identical slice.
	Axis() []R

	// TurnOne turns the system one unit clockwise about axis's axis and
	// returns the ray that now occupies the receiver's direction.
	TurnOne(axis R) R

	// Order is the cyclic order of a turn about this ray's axis.
	Order() int

	// Name is a stable short identifier used by persisted logs.
	Name() string

	// Rays returns the full enumeration in Index order.
	Rays() []R

	// AxisHeads returns exactly one ray per axis; each head is the first
	// element of its own Axis().
	AxisHeads() []R

	// Cycle returns turns that, composed one after another starting from
	// the identity, visit every element of the rotation group generated by
	// the system's turns exactly once.
	Cycle() []Turn[R]
}

// Turn is a twist about Ray's axis by Order unit steps. Order may be any
// integer; it is reduced with a Euclidean remainder when applied.
type Turn[R any] struct {
	Ray   R
	Order int
}

// Inverse returns the turn that undoes t.
// Complexity: O(1).
func (t Turn[R]) Inverse() Turn[R] {
	return Turn[R]{Ray: t.Ray, Order: -t.Order}
}

// String renders the turn as "(ray, order)".
func (t Turn[R]) String() string {
	return fmt.Sprintf("(%v, %d)", t.Ray, t.Order)
}
