// SPDX-License-Identifier: MIT
// Package: twisty/ray
//
// validate.go - structural checks for a ray system.
//
// Validate is the executable form of the ray contract: concrete systems
// call it from their tests, and the CLI exposes it as `twisty validate`.
// Every violation is collected; nothing stops at the first failure.

package ray

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks every invariant of the ray system R and returns the
// joined violations, or nil when R is well formed.
//
// Checks:
//   - index:   Rays()[i].Index() == i.
//   - axis:    r ∈ r.Axis(); axis-mates return identical Axis() slices.
//   - heads:   one head per distinct axis, each first on its own axis.
//   - turns:   TurnOne agrees across axis-mates, is injective, and has
//     exactly the declared Order (Order turns are the identity, fewer are not).
//   - names:   non-empty, unique, FromName(Name(r)) == r.
//   - cycle:   Cycle() is a Hamiltonian path of the group the turns generate.
//
// Complexity: O(|Rays|²·|AxisHeads| + |G|·|AxisHeads|·|Rays|).
func Validate[R Ray[R]]() error {
	var errs []error
	errs = append(errs, checkIndex[R]()...)
	errs = append(errs, checkAxes[R]()...)
	errs = append(errs, checkHeads[R]()...)
	errs = append(errs, checkTurns[R]()...)
	errs = append(errs, checkNames[R]()...)
	errs = append(errs, checkCycle[R]()...)

	return errors.Join(errs...)
}

func checkIndex[R Ray[R]]() []error {
	var errs []error
	for i, r := range All[R]() {
		if r.Index() != i {
			errs = append(errs, fmt.Errorf("%w: %v at position %d has index %d", ErrIndex, r, i, r.Index()))
		}
	}

	return errs
}

func checkAxes[R Ray[R]]() []error {
	var errs []error
	for _, r := range All[R]() {
		axis := r.Axis()
		if !slices.Contains(axis, r) {
			errs = append(errs, fmt.Errorf("%w: %v not on its own axis %v", ErrAxisInconsistent, r, axis))
		}
		for _, mate := range axis {
			if !slices.Equal(axis, mate.Axis()) {
				errs = append(errs, fmt.Errorf("%w: %v and %v have axes %v and %v",
					ErrAxisInconsistent, r, mate, axis, mate.Axis()))
			}
		}
	}

	return errs
}

func checkHeads[R Ray[R]]() []error {
	var errs []error
	heads := Heads[R]()
	for _, h := range heads {
		if axis := h.Axis(); len(axis) == 0 || axis[0] != h {
			errs = append(errs, fmt.Errorf("%w: %v is not first on its axis %v", ErrAxisHead, h, axis))
		}
	}
	// Every ray must be covered by exactly one head.
	for _, r := range All[R]() {
		covering := 0
		for _, h := range heads {
			if SameAxis(h, r) {
				covering++
			}
		}
		if covering != 1 {
			errs = append(errs, fmt.Errorf("%w: %v is covered by %d heads", ErrAxisHead, r, covering))
		}
	}

	return errs
}

func checkTurns[R Ray[R]]() []error {
	var errs []error
	rays := All[R]()
	for _, h := range Heads[R]() {
		for _, mate := range h.Axis() {
			if mate.Order() != h.Order() {
				errs = append(errs, fmt.Errorf("%w: %v has order %d but axis-mate %v has %d",
					ErrTurnOrder, h, h.Order(), mate, mate.Order()))
			}
			for _, r := range rays {
				if a, b := r.TurnOne(h), r.TurnOne(mate); a != b {
					errs = append(errs, fmt.Errorf("%w: %v turns to %v under %v but to %v under %v",
						ErrTurnInconsistent, r, a, h, b, mate))
				}
			}
		}

		seen := make(map[R]R, len(rays))
		for _, r := range rays {
			img := r.TurnOne(h)
			if prev, ok := seen[img]; ok {
				errs = append(errs, fmt.Errorf("%w: %v and %v both turn to %v under %v",
					ErrTurnNotInjective, prev, r, img, h))
			}
			seen[img] = r
		}

		// Apply reduces the step count modulo Order, so the full turn is
		// stepped by hand.
		for _, r := range rays {
			got := r
			for k := 0; k < h.Order(); k++ {
				got = got.TurnOne(h)
			}
			if got != r {
				errs = append(errs, fmt.Errorf("%w: %v turns to %v after %d turns about %v",
					ErrTurnOrder, r, got, h.Order(), h))
			}
		}
		for k := 1; k < h.Order(); k++ {
			moved := false
			for _, r := range rays {
				if Apply(r, Turn[R]{Ray: h, Order: k}) != r {
					moved = true
					break
				}
			}
			if !moved {
				errs = append(errs, fmt.Errorf("%w: %d turns about %v already act as the identity",
					ErrTurnOrder, k, h))
			}
		}
	}

	return errs
}

func checkNames[R Ray[R]]() []error {
	var errs []error
	seen := make(map[string]R)
	for _, r := range All[R]() {
		name := r.Name()
		if name == "" {
			errs = append(errs, fmt.Errorf("%w: %v has an empty name", ErrName, r.Index()))
			continue
		}
		if prev, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("%w: %q names both %d and %d", ErrName, name, prev.Index(), r.Index()))
		}
		seen[name] = r
		if back, ok := FromName[R](name); !ok || back != r {
			errs = append(errs, fmt.Errorf("%w: %q resolves to %v", ErrName, name, back))
		}
	}

	return errs
}

// element is a rotation of the ray system: element[i] is the index of
// the ray now occupying the place of ray i.
type element []byte

func identity(n int) element {
	e := make(element, n)
	for i := range e {
		e[i] = byte(i)
	}

	return e
}

// compose returns t ∘ e: the rays of e turned by t.
func compose[R Ray[R]](e element, t Turn[R], rays []R) element {
	out := make(element, len(e))
	for i, cur := range e {
		out[i] = byte(Apply(rays[cur], t).Index())
	}

	return out
}

// generatedGroup returns every element reachable from the identity by
// unit turns about the axis heads (breadth-first closure).
func generatedGroup[R Ray[R]]() map[string]struct{} {
	rays := All[R]()
	start := identity(len(rays))
	group := map[string]struct{}{string(start): {}}
	frontier := []element{start}
	for len(frontier) > 0 {
		var next []element
		for _, e := range frontier {
			for _, h := range Heads[R]() {
				g := compose(e, Turn[R]{Ray: h, Order: 1}, rays)
				if _, ok := group[string(g)]; ok {
					continue
				}
				group[string(g)] = struct{}{}
				next = append(next, g)
			}
		}
		frontier = next
	}

	return group
}

func checkCycle[R Ray[R]]() []error {
	rays := All[R]()
	if len(rays) > 255 {
		return []error{fmt.Errorf("%w: %d rays exceed the element encoding", ErrCycle, len(rays))}
	}
	group := generatedGroup[R]()

	var errs []error
	cur := identity(len(rays))
	visited := map[string]struct{}{string(cur): {}}
	for step, t := range Cycle[R]() {
		cur = compose(cur, t, rays)
		if _, ok := visited[string(cur)]; ok {
			errs = append(errs, fmt.Errorf("%w: step %d %v revisits an element", ErrCycle, step, t))
		}
		visited[string(cur)] = struct{}{}
	}
	if len(visited) != len(group) {
		errs = append(errs, fmt.Errorf("%w: visits %d of %d elements", ErrCycle, len(visited), len(group)))
	}

	return errs
}
