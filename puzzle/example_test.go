package puzzle_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/twisty/cube"
	"github.com/katalvlaran/twisty/puzzle"
	"github.com/katalvlaran/twisty/ray"
)

// ExamplePuzzle_Twist turns the right layer of a 2x2x2 cube a quarter turn.
// Pieces 4..7 sit in the right layer; the left layer keeps its slots.
func ExamplePuzzle_Twist() {
	p := puzzle.MakeSolved[cube.Ray]([][]int{{-1, 1}, {1, -1}})
	p.Twist(ray.Turn[cube.Ray]{Ray: cube.R, Order: 1}, []int{1, -1})

	fmt.Println(p.Permutation())
	fmt.Println(p.IsSolved())

	p.Twist(ray.Turn[cube.Ray]{Ray: cube.R, Order: -1}, []int{1, -1})
	fmt.Println(p.IsSolved())
	// Output:
	// [0 1 2 3 5 7 4 6]
	// false
	// true
}

// ExamplePiece_String prints the home layers of a corner.
func ExamplePiece_String() {
	p := puzzle.MakeSolved[cube.Ray]([][]int{{-1, 1}, {1, -1}})
	fmt.Println(p.Piece(0))
	fmt.Println(p.Piece(7))
	// Output:
	// [U: -1, D: 1, F: -1, B: 1, R: -1, L: 1]
	// [U: 1, D: -1, F: 1, B: -1, R: 1, L: -1]
}

// ExamplePuzzle_Scramble shows that a seeded scramble is reproducible.
func ExamplePuzzle_Scramble() {
	a := puzzle.MakeSolved[cube.Ray]([][]int{{0, 0}, {-2, 2}, {2, -2}})
	b := a.Clone()
	a.Scramble(rand.New(rand.NewSource(1)), puzzle.WithMoves(25))
	b.Scramble(rand.New(rand.NewSource(1)), puzzle.WithMoves(25))

	same := fmt.Sprint(a.Permutation()) == fmt.Sprint(b.Permutation())
	fmt.Println(same)
	// Output:
	// true
}
