// Package twisty models abstract twisty puzzles: cubes, face-turning
// octahedra, dodecahedra and rhombic dodecahedra of any layer count, all
// driven by one generic engine.
//
// A puzzle is described by its ray system, the finite set of directions
// from the center of a polyhedron together with the rotations that permute
// them. Everything else is built on top of that:
//
//	ray/      - the Ray contract, turn application and the invariant checker
//	cube/     - 6 face rays, quarter turns
//	octa/     - 8 corner rays, third turns
//	dodeca/   - 12 face rays, fifth turns
//	rdodeca/  - 12 edge rays, half turns
//	puzzle/   - pieces, grips, twisting, mixed-radix piece indexing, scrambles
//	session/  - undo/redo history and the versioned JSON session log
//	family/   - session types ("Cube Nnn(3)", "Dodeca Megaminx") over one API
//	config/   - YAML configuration with validation
//	archive/  - badger-backed store of saved session logs
//	metrics/  - prometheus counters fed by session events
//	cmd/twisty - the command line front end
//
// A 3x3x3 cube, one R turn and back:
//
//	p := puzzle.MakeSolved[cube.Ray](family.Layers(3))
//	p.Twist(ray.Turn[cube.Ray]{Ray: cube.R, Order: 1}, []int{2, -2})
//	p.Twist(ray.Turn[cube.Ray]{Ray: cube.R, Order: -1}, []int{2, -2})
//	p.IsSolved() // true
//
//	go install github.com/katalvlaran/twisty/cmd/twisty@latest
package twisty
