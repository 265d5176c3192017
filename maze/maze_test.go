package maze_test

import (
	"testing"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadSize(t *testing.T) {
	_, err := maze.New(0)
	require.ErrorIs(t, err, maze.ErrInvalidSize)

	_, err = maze.New(maze.MaxMazeSize + 1)
	require.ErrorIs(t, err, maze.ErrInvalidSize)
}

func TestBoundaryWallsAreAlwaysWallAndKnown(t *testing.T) {
	m, err := maze.New(16)
	require.NoError(t, err)

	// The wall just past the East edge of the top-right cell is out of
	// field and therefore always present and known.
	edge := maze.NewWallIndex(maze.NewPosition(15, 15), direction.East)
	require.True(t, m.IsWall(edge))
	require.True(t, m.IsKnown(edge))
}

func TestUpdateWallLearnsUnknownWall(t *testing.T) {
	m, err := maze.New(4)
	require.NoError(t, err)

	p := maze.NewPosition(1, 1)
	require.False(t, m.IsKnownAt(p, direction.North))

	ok := m.UpdateWall(p, direction.North, true)
	require.True(t, ok)
	require.True(t, m.IsKnownAt(p, direction.North))
	require.True(t, m.IsWallAt(p, direction.North))
}

func TestUpdateWallContradictionDemotesToUnknown(t *testing.T) {
	m, err := maze.New(4)
	require.NoError(t, err)

	p := maze.NewPosition(1, 1)
	require.True(t, m.UpdateWall(p, direction.North, true))
	require.True(t, m.IsKnownAt(p, direction.North))

	ok := m.UpdateWall(p, direction.North, false)
	require.False(t, ok)
	require.False(t, m.IsKnownAt(p, direction.North))
	require.False(t, m.IsWallAt(p, direction.North))
}

func TestUpdateWallRecordsObservationsInOrder(t *testing.T) {
	m, err := maze.New(4)
	require.NoError(t, err)
	before := len(m.WallRecords())

	p := maze.NewPosition(2, 2)
	m.UpdateWall(p, direction.East, true)
	m.UpdateWall(p, direction.North, false)

	records := m.WallRecords()
	require.Len(t, records, before+2)
	require.Equal(t, p, records[before].Position())
	require.Equal(t, direction.East, records[before].D())
	require.True(t, records[before].B())
}

func TestCanGoRequiresKnownAndAbsent(t *testing.T) {
	m, err := maze.New(4)
	require.NoError(t, err)

	p := maze.NewPosition(1, 1)
	idx := maze.NewWallIndex(p, direction.East)
	require.False(t, m.CanGo(idx), "unknown wall must not be passable")

	m.UpdateWall(p, direction.East, false)
	require.True(t, m.CanGo(idx))

	m.UpdateWall(p, direction.East, true)
	require.False(t, m.CanGo(idx))
}

func TestResetLastWallsUndoesRecentObservations(t *testing.T) {
	m, err := maze.New(4)
	require.NoError(t, err)

	p := maze.NewPosition(2, 2)
	m.UpdateWall(p, direction.East, true)
	m.UpdateWall(p, direction.North, false)
	n := len(m.WallRecords())

	m.ResetLastWalls(1, true)
	require.Len(t, m.WallRecords(), n-1)
	require.False(t, m.IsKnownAt(p, direction.North))
	require.True(t, m.IsKnownAt(p, direction.East))
}

func TestWallCountAndUnknownCountAt(t *testing.T) {
	m, err := maze.New(4)
	require.NoError(t, err)

	p := maze.NewPosition(2, 2)
	require.Equal(t, 4, m.UnknownCountAt(p))
	require.Equal(t, 0, m.WallCountAt(p))

	m.UpdateWall(p, direction.East, true)
	m.UpdateWall(p, direction.North, false)
	require.Equal(t, 2, m.UnknownCountAt(p))
	require.Equal(t, 1, m.WallCountAt(p))
}

func TestSetGoalsAndStart(t *testing.T) {
	m, err := maze.New(8)
	require.NoError(t, err)

	goals := []maze.Position{maze.NewPosition(3, 3), maze.NewPosition(4, 4)}
	m.SetGoals(goals)
	require.Equal(t, goals, m.Goals())

	start := maze.NewPosition(1, 0)
	m.SetStart(start)
	require.Equal(t, start, m.Start())
}
