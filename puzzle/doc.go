// Package puzzle models an abstract laminated twisty puzzle over any ray
// system: a Cartesian product of layers (grips) on every axis, one Piece
// per cell, and twists that rotate every piece sitting in a chosen grip.
//
// What:
//
//   - Piece: a fixed home layer per ray and a mutable Orientation mapping
//     each nominal direction to the ray that currently occupies it.
//   - Puzzle: the registered grips and every piece, built by MakeSolved in
//     mixed-radix order (axis j varies with stride len(grips)^j).
//   - Twist: rotates every piece whose current grip on the turning axis
//     equals the requested grip. The first registered grip is the fixed
//     core: twisting it twists every other grip the opposite way instead.
//   - Index bijection: IndexToSolvedPiece / PieceToIndexSolved invert the
//     construction layout; PieceToIndex reads a piece's current slot and
//     Permutation collects those slots for the whole puzzle.
//   - Scramble: random twists through the normal Twist path, driven by an
//     explicit *rand.Rand.
//
// Why:
//
//   - No geometry is involved: rendering reads Permutation and each
//     piece's Occupant, sessions persist Orientations.
//
// Complexity (P pieces, A axes, N rays):
//
//   - MakeSolved:  O(P·N).
//   - Twist:       O(P·N) worst case (every piece matches).
//   - Permutation: O(P·A·G) with G grips.
//   - Scramble:    O(moves·P·N).
//
// Errors:
//
//   - ErrOrientationCount: SetOrientations got the wrong number of maps.
//   - ErrInvalidOrientation: a map is not a permutation of the rays.
//
// Construction preconditions (empty or malformed grip lists) panic: they
// can only come from a misconfigured puzzle family, never from user input.
package puzzle
