package maze_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	m, err := maze.New(8)
	require.NoError(t, err)
	m.SetGoals([]maze.Position{maze.NewPosition(4, 4), maze.NewPosition(4, 5)})
	m.UpdateWall(maze.NewPosition(3, 3), direction.East, true)
	m.UpdateWall(maze.NewPosition(3, 3), direction.North, false)

	path := filepath.Join(t.TempDir(), "snap.bin")
	require.NoError(t, m.BackupSnapshotToFile(path))

	restored, err := maze.New(8)
	require.NoError(t, err)
	require.NoError(t, restored.RestoreSnapshotFromFile(path))

	require.Equal(t, m.Goals(), restored.Goals())
	require.Equal(t, m.Start(), restored.Start())
	require.Equal(t, m.IsWallAt(maze.NewPosition(3, 3), direction.East),
		restored.IsWallAt(maze.NewPosition(3, 3), direction.East))
	require.Equal(t, m.IsKnownAt(maze.NewPosition(3, 3), direction.North),
		restored.IsKnownAt(maze.NewPosition(3, 3), direction.North))
}

func TestRestoreSnapshotRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-snapshot.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a maze snapshot at all"), 0o644))

	m, err := maze.New(8)
	require.NoError(t, err)
	err = m.RestoreSnapshotFromFile(path)
	require.ErrorIs(t, err, maze.ErrParseFailed)
}
