// Package ray defines the contract shared by every ray system of an
// abstract laminated puzzle, together with the small coordinate algebra
// (Basis, BasisDiff, Sign) the concrete systems are written in.
//
// What:
//
//   - Ray[R]: a finite, totally enumerable set of directions. Each ray has
//     a dense Index, belongs to exactly one axis (Axis), and can be turned
//     one minimal step about any axis (TurnOne).
//   - Turn[R]: an (axis ray, order) pair. Apply turns a ray by any integer
//     order, negative orders meaning the inverse direction.
//   - Static data is read from the zero value of R: Rays (the canonical
//     enumeration), AxisHeads (one representative per axis) and Cycle (a
//     Hamiltonian path through the rotation group the turns generate).
//   - Validate checks every structural invariant of a ray system and is
//     run by the tests of each concrete system.
//
// Why:
//
//   - Puzzles and sessions are generic over R, so one implementation of
//     pieces, twisting and history serves cubes, octahedra, dodecahedra
//     and rhombic dodecahedra alike.
//   - Dense indices let ray-keyed maps be plain slices.
//
// Complexity:
//
//   - Apply: O(Order) TurnOne calls.
//   - FromName, Choose: O(|Rays|).
//   - Validate: O(|Rays|²·|AxisHeads| + |G|·|Rays|), G the generated group.
//
// Errors:
//
//   - ErrAxisInconsistent, ErrAxisHead, ErrTurnInconsistent,
//     ErrTurnNotInjective, ErrTurnOrder, ErrIndex, ErrName, ErrCycle:
//     returned (joined) by Validate for a malformed ray system.
package ray
