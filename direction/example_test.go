package direction_test

import (
	"fmt"

	"github.com/gomicromouse/mazecore/direction"
)

// Example demonstrates that relative directions compose with absolute
// facings using plain modular arithmetic.
func Example() {
	facing := direction.East
	turnedLeft := facing.Add(direction.Left)
	fmt.Println(turnedLeft)
	// Output: North
}
