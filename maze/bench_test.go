package maze_test

import (
	"testing"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
)

// BenchmarkUpdateWall measures the cost of observing every wall of a 32x32
// maze exactly once.
func BenchmarkUpdateWall(b *testing.B) {
	m, err := maze.New(32)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for x := int8(0); x < 32; x++ {
			for y := int8(0); y < 32; y++ {
				p := maze.NewPosition(x, y)
				m.UpdateWall(p, direction.East, (x+y)%2 == 0)
				m.UpdateWall(p, direction.North, (x+y)%3 == 0)
			}
		}
		m.Reset(true)
	}
}

// BenchmarkCanGo measures the steady-state cost of a passability query once
// the maze is fully known.
func BenchmarkCanGo(b *testing.B) {
	m, err := maze.New(32)
	if err != nil {
		b.Fatal(err)
	}
	for x := int8(0); x < 32; x++ {
		for y := int8(0); y < 32; y++ {
			p := maze.NewPosition(x, y)
			m.UpdateWall(p, direction.East, false)
			m.UpdateWall(p, direction.North, false)
		}
	}
	idx := maze.NewWallIndex(maze.NewPosition(15, 15), direction.East)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.CanGo(idx)
	}
}
