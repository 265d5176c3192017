package maze_test

import (
	"testing"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
)

func TestPositionNextIsInvolutiveOverAll8(t *testing.T) {
	p := maze.NewPosition(5, 5)
	for _, d := range direction.All8() {
		q := p.Next(d).Next(d.Add(direction.Back))
		if q != p {
			t.Errorf("Next(%s) then Next(%s) = %v; want %v", d, d.Add(direction.Back), q, p)
		}
	}
}

func TestPositionGetIndexRoundTrips(t *testing.T) {
	size, err := maze.NewSize(16)
	if err != nil {
		t.Fatal(err)
	}
	for x := int8(0); x < 16; x++ {
		for y := int8(0); y < 16; y++ {
			p := maze.NewPosition(x, y)
			idx := p.GetIndex(size)
			got := maze.PositionFromIndex(idx, size)
			if got != p {
				t.Errorf("PositionFromIndex(GetIndex(%v)) = %v; want %v", p, got, p)
			}
		}
	}
}

func TestPositionRotate(t *testing.T) {
	p := maze.NewPosition(2, 0)
	cases := []struct {
		d    direction.Direction
		want maze.Position
	}{
		{direction.East, maze.NewPosition(2, 0)},
		{direction.North, maze.NewPosition(0, 2)},
		{direction.West, maze.NewPosition(-2, 0)},
		{direction.South, maze.NewPosition(0, -2)},
	}
	for _, c := range cases {
		if got := p.Rotate(c.d); got != c.want {
			t.Errorf("Rotate(%s) = %v; want %v", c.d, got, c.want)
		}
	}
}

func TestPositionRotateFourTimesIsIdentity(t *testing.T) {
	p := maze.NewPosition(3, -1)
	got := p
	for i := 0; i < 4; i++ {
		got = got.Rotate(direction.North)
	}
	if got != p {
		t.Errorf("four quarter rotations = %v; want %v", got, p)
	}
}

func TestPoseNext(t *testing.T) {
	ps := maze.NewPose(maze.NewPosition(0, 0), direction.North)
	next := ps.Next(direction.East)
	want := maze.NewPose(maze.NewPosition(1, 0), direction.East)
	if next != want {
		t.Errorf("Pose.Next = %v; want %v", next, want)
	}
}
