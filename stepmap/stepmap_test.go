package stepmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
	"github.com/gomicromouse/mazecore/stepmap"
)

// openMaze builds a maze whose only walls are the outer boundary, learning
// every cell's East/North wall through UpdateWall so the bounding box grows
// to cover the whole field. The start cell's preset East wall disagrees
// with the open layout on the first observation, which only demotes it to
// unknown (per UpdateWall's reconciliation rule); a second call then learns
// the intended value.
func openMaze(t *testing.T, n int) *maze.Maze {
	t.Helper()
	m, err := maze.New(n)
	require.NoError(t, err)
	for x := int8(0); x < int8(n); x++ {
		for y := int8(0); y < int8(n); y++ {
			p := maze.NewPosition(x, y)
			m.UpdateWall(p, direction.East, x == int8(n-1))
			m.UpdateWall(p, direction.East, x == int8(n-1))
			m.UpdateWall(p, direction.North, y == int8(n-1))
			m.UpdateWall(p, direction.North, y == int8(n-1))
		}
	}
	return m
}

func TestUpdateSimpleMatchesManhattanDistance(t *testing.T) {
	m := openMaze(t, 8)
	sm := stepmap.New(m.Size())
	dest := []maze.Position{maze.NewPosition(0, 0)}

	require.NoError(t, sm.Update(m, dest, true, true))

	for x := int8(0); x < 8; x++ {
		for y := int8(0); y < 8; y++ {
			p := maze.NewPosition(x, y)
			want := stepmap.Step(int(x) + int(y))
			require.Equal(t, want, sm.GetStep(p), "cell %v", p)
		}
	}
}

func TestUpdateStraightRunIsMonotoneAlongARun(t *testing.T) {
	m := openMaze(t, 8)
	sm := stepmap.New(m.Size())
	dest := []maze.Position{maze.NewPosition(7, 7)}

	require.NoError(t, sm.Update(m, dest, true, false))

	// Walking away from the destination along a single open axis, the step
	// value must never decrease.
	prev := stepmap.Step(0)
	for x := int8(7); x >= 0; x-- {
		cur := sm.GetStep(maze.NewPosition(x, 7))
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestUpdateRejectsOutOfFieldDestination(t *testing.T) {
	m := openMaze(t, 4)
	sm := stepmap.New(m.Size())
	err := sm.Update(m, []maze.Position{maze.NewPosition(99, 99)}, true, true)
	require.ErrorIs(t, err, stepmap.ErrInvalidDestination)
}

func TestCalcShortestDirectionsReachesGoal(t *testing.T) {
	m := openMaze(t, 4)
	sm := stepmap.New(m.Size())
	dirs, err := sm.CalcShortestDirections(m, maze.NewPosition(0, 0), []maze.Position{maze.NewPosition(3, 3)}, true, true)
	require.NoError(t, err)
	require.NotEmpty(t, dirs)

	cur := maze.NewPosition(0, 0)
	for _, d := range dirs {
		require.True(t, d.IsAlong())
		cur = cur.Next(d)
	}
	require.Equal(t, maze.NewPosition(3, 3), cur)
}

func TestCalcShortestDirectionsUnreachableIsEmpty(t *testing.T) {
	m, err := maze.New(4)
	require.NoError(t, err)
	// Wall the start cell in on every side except its already-known East.
	m.UpdateWall(maze.NewPosition(0, 0), direction.North, true)
	sm := stepmap.New(m.Size())
	dirs, err := sm.CalcShortestDirections(m, maze.NewPosition(0, 0), []maze.Position{maze.NewPosition(3, 3)}, true, true)
	require.NoError(t, err)
	require.Empty(t, dirs)
}

func TestGetNextDirectionCandidatesPrefersStraightOnTie(t *testing.T) {
	m := openMaze(t, 4)
	sm := stepmap.New(m.Size())
	require.NoError(t, sm.Update(m, []maze.Position{maze.NewPosition(2, 0)}, true, true))

	focus := maze.NewPose(maze.NewPosition(0, 0), direction.East)
	cands := sm.GetNextDirectionCandidates(m, focus)
	require.NotEmpty(t, cands)
	require.Equal(t, direction.East, cands[0])
}

func TestAppendStraightDirectionsExtendsWhilePassable(t *testing.T) {
	m := openMaze(t, 4)
	sm := stepmap.New(m.Size())
	dirs := sm.AppendStraightDirections(m, maze.NewPosition(0, 0), []direction.Direction{direction.East, direction.East}, true, false)
	// From (2,0) one more eastward cell is open; (3,0)'s East wall is the
	// boundary, so the run stops there.
	require.Equal(t, []direction.Direction{direction.East, direction.East, direction.East}, dirs)
}

func TestAppendStraightDirectionsSingleDirectionUnchanged(t *testing.T) {
	m := openMaze(t, 4)
	sm := stepmap.New(m.Size())
	dirs := sm.AppendStraightDirections(m, maze.NewPosition(0, 0), []direction.Direction{direction.East}, true, true)
	require.Equal(t, []direction.Direction{direction.East}, dirs)
}

func TestAppendStraightDirectionsDiagonalZigzag(t *testing.T) {
	m := openMaze(t, 4)
	sm := stepmap.New(m.Size())
	dirs := sm.AppendStraightDirections(m, maze.NewPosition(0, 0),
		[]direction.Direction{direction.East, direction.North}, true, true)
	// The path ends mid-left-turn at (1,1), so the extension alternates the
	// opposite turn and the last direction, zigzagging East/North across the
	// open field until both stall at the far corner (3,3). Every appended
	// step must be an along direction, never a raw 45° diagonal.
	want := []direction.Direction{
		direction.East, direction.North,
		direction.East, direction.North, direction.East, direction.North,
	}
	require.Equal(t, want, dirs)
	for _, d := range dirs {
		require.True(t, d.IsAlong())
	}
}
