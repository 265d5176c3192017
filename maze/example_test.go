package maze_test

import (
	"fmt"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
)

// ExampleMaze_UpdateWall shows the three outcomes of observing a wall: first
// learning it, then reconfirming it, then contradicting it (which demotes
// it back to unknown rather than raising an error).
func ExampleMaze_UpdateWall() {
	m, err := maze.New(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p := maze.NewPosition(1, 1)

	fmt.Println(m.UpdateWall(p, direction.East, true))
	fmt.Println(m.UpdateWall(p, direction.East, true))
	fmt.Println(m.UpdateWall(p, direction.East, false))
	fmt.Println(m.IsKnownAt(p, direction.East))
	// Output:
	// true
	// true
	// false
	// false
}

// ExampleMaze_CanGo shows that a wall must be both known and absent before
// a solver is allowed to step through it.
func ExampleMaze_CanGo() {
	m, err := maze.New(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p := maze.NewPosition(2, 2)
	idx := maze.NewWallIndex(p, direction.North)

	fmt.Println(m.CanGo(idx))
	m.UpdateWall(p, direction.North, false)
	fmt.Println(m.CanGo(idx))
	// Output:
	// false
	// true
}
