package maze_test

import (
	"testing"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
)

func TestNewWallIndexCanonicalizesWestSouth(t *testing.T) {
	p := maze.NewPosition(3, 3)
	east := maze.NewWallIndex(p, direction.East)
	west := maze.NewWallIndex(p, direction.West)
	wantWest := maze.NewWallIndex(maze.NewPosition(2, 3), direction.East)
	if west != wantWest {
		t.Errorf("West wall of %v = %v; want %v", p, west, wantWest)
	}

	north := maze.NewWallIndex(p, direction.North)
	south := maze.NewWallIndex(p, direction.South)
	wantSouth := maze.NewWallIndex(maze.NewPosition(3, 2), direction.North)
	if south != wantSouth {
		t.Errorf("South wall of %v = %v; want %v", p, south, wantSouth)
	}
	_ = east
	_ = north
}

func TestWallIndexGetIndexRoundTrips(t *testing.T) {
	size, err := maze.NewSize(16)
	if err != nil {
		t.Fatal(err)
	}
	// Spot-check a handful of concrete indices instead of a full 16x16x2
	// sweep (many raw (x,y,z) combinations fall outside the field and are
	// only meaningful when reached via NewWallIndex/Next).
	samples := []maze.WallIndex{
		maze.NewWallIndex(maze.NewPosition(0, 0), direction.East),
		maze.NewWallIndex(maze.NewPosition(0, 0), direction.North),
		maze.NewWallIndex(maze.NewPosition(15, 15), direction.East),
		maze.NewWallIndex(maze.NewPosition(7, 8), direction.North),
	}
	for _, i := range samples {
		if !i.IsInsideOfField(size) {
			continue
		}
		idx := i.GetIndex(size)
		got := maze.WallIndexFromIndex(idx, size)
		if got != i {
			t.Errorf("WallIndexFromIndex(GetIndex(%v)) = %v; want %v", i, got, i)
		}
	}
}

func TestWallIndexNextMatchesNewWallIndexForAlongDirections(t *testing.T) {
	p := maze.NewPosition(4, 4)
	for _, d := range direction.Along4() {
		want := maze.NewWallIndex(p.Next(d), direction.East)
		viaNext := maze.NewWallIndex(p, direction.East).Next(d)
		if viaNext != want {
			t.Errorf("Next(%s) from East-wall of %v = %v; want %v", d, p, viaNext, want)
		}
	}
}

func TestWallIndexNextDirection6HasNoDuplicates(t *testing.T) {
	i := maze.NewWallIndex(maze.NewPosition(2, 2), direction.East)
	seen := map[direction.Direction]bool{}
	for _, d := range i.NextDirection6() {
		if seen[d] {
			t.Errorf("duplicate direction %s in NextDirection6", d)
		}
		seen[d] = true
	}
	if len(seen) != 6 {
		t.Errorf("NextDirection6 produced %d distinct directions; want 6", len(seen))
	}
}
