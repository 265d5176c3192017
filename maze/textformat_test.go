package maze_test

import (
	"bytes"
	"testing"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
	"github.com/stretchr/testify/require"
)

func TestPrintParseRoundTrip(t *testing.T) {
	m, err := maze.New(4)
	require.NoError(t, err)

	m.SetGoals([]maze.Position{maze.NewPosition(2, 2)})
	m.UpdateWall(maze.NewPosition(0, 0), direction.North, true)
	m.UpdateWall(maze.NewPosition(1, 0), direction.East, true)
	m.UpdateWall(maze.NewPosition(1, 1), direction.North, false)
	m.UpdateWall(maze.NewPosition(2, 2), direction.South, true)

	var buf bytes.Buffer
	require.NoError(t, m.Print(&buf))

	parsed, err := maze.Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Equal(t, m.Start(), parsed.Start())
	require.Equal(t, m.Goals(), parsed.Goals())

	for x := int8(0); x < 4; x++ {
		for y := int8(0); y < 4; y++ {
			p := maze.NewPosition(x, y)
			for _, d := range direction.Along4() {
				if m.IsKnownAt(p, d) {
					require.Equalf(t, m.IsWallAt(p, d), parsed.IsWallAt(p, d),
						"wall (%v, %s) disagrees after round trip", p, d)
				}
			}
		}
	}
}

func TestPrintPositionsHighlightsGivenCells(t *testing.T) {
	m, err := maze.New(3)
	require.NoError(t, err)
	var buf bytes.Buffer
	err = m.PrintPositions(&buf, []maze.Position{maze.NewPosition(1, 1)})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "X")
}

func TestPrintPathHighlightsTraversedWalls(t *testing.T) {
	m, err := maze.New(3)
	require.NoError(t, err)
	m.UpdateWall(maze.NewPosition(0, 0), direction.East, false)
	var buf bytes.Buffer
	err = m.PrintPath(&buf, maze.NewPosition(0, 0), []direction.Direction{direction.East})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "\x1b[33m")
}
