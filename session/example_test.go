package session_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/twisty/cube"
	"github.com/katalvlaran/twisty/puzzle"
	"github.com/katalvlaran/twisty/session"
)

// ExampleSession_DoInverse replaces a mistaken move by its inverse.
func ExampleSession_DoInverse() {
	s := session.New(puzzle.MakeSolved[cube.Ray]([][]int{{-1, 1}, {1, -1}}))
	s.Twist(tw(cube.U, 1), [][]int{{1, -1}})
	if err := s.DoInverse(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Twists()[0].Turn)

	_ = s.Undo()
	fmt.Println(s.IsSolved())
	fmt.Println(s.Undo())
	// Output:
	// (U, -1)
	// true
	// session: no undo available
}

// ExampleTwistRecord_MarshalJSON shows the persisted tuple form.
func ExampleTwistRecord_MarshalJSON() {
	data, _ := json.Marshal(session.TwistRecord{Ray: "R", Order: 1, Grips: [][]int{{1, -1}}})
	fmt.Println(string(data))
	// Output:
	// [["R",1],[[1,-1]]]
}
