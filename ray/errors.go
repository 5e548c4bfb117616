// SPDX-License-Identifier: MIT
// Package: twisty/ray
//
// errors.go - sentinel errors reported by Validate.
//
// Error policy:
//   • Only sentinel variables are exposed; Validate wraps them with the
//     offending rays via %w and joins every violation it finds.
//   • Callers branch with errors.Is(err, ErrX), never on message text.

package ray

import "errors"

var (
	// ErrAxisInconsistent indicates a ray missing from its own Axis(), or two
	// axis-mates reporting different axis orderings.
	ErrAxisInconsistent = errors.New("ray: inconsistent axis")

	// ErrAxisHead indicates AxisHeads() is not exactly one head per axis,
	// each head first on its own axis.
	ErrAxisHead = errors.New("ray: invalid axis heads")

	// ErrTurnInconsistent indicates two rays of one axis turning the system
	// differently.
	ErrTurnInconsistent = errors.New("ray: turn depends on axis representative")

	// ErrTurnNotInjective indicates a one-step turn sending two rays to the
	// same ray.
	ErrTurnNotInjective = errors.New("ray: turn is not a permutation")

	// ErrTurnOrder indicates Order() turns not returning to the identity, or
	// a smaller positive count already doing so.
	ErrTurnOrder = errors.New("ray: turn has wrong order")

	// ErrIndex indicates Rays()[i].Index() != i.
	ErrIndex = errors.New("ray: index does not match enumeration")

	// ErrName indicates a name that is empty, duplicated, or that does not
	// resolve back to its ray.
	ErrName = errors.New("ray: name does not round-trip")

	// ErrCycle indicates Cycle() revisiting a group element or missing one.
	ErrCycle = errors.New("ray: cycle is not hamiltonian")
)
