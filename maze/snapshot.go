package maze

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// snapshotMagic tags a whole-maze snapshot file so RestoreSnapshot can
// reject files written by an incompatible format.
const snapshotMagic uint32 = 0x4d415a31 // "MAZ1"

// BackupSnapshotToFile writes the entire current wall/known state (not just
// the observation log) to filepath: size, start, goals, and the two
// bitsets. Unlike BackupWallRecordsToFile, this is not incremental and
// carries no replay semantics — it is a point-in-time dump meant for
// resuming a long exploration run across process restarts without
// replaying every UpdateWall call.
func (m *Maze) BackupSnapshotToFile(filepath string) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, snapshotMagic); err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	binary.Write(&buf, binary.LittleEndian, int32(m.size.N))
	binary.Write(&buf, binary.LittleEndian, m.start.X)
	binary.Write(&buf, binary.LittleEndian, m.start.Y)
	binary.Write(&buf, binary.LittleEndian, int32(len(m.goals)))
	for _, g := range m.goals {
		binary.Write(&buf, binary.LittleEndian, g.X)
		binary.Write(&buf, binary.LittleEndian, g.Y)
	}
	writeBitset(&buf, m.wall)
	writeBitset(&buf, m.known)
	if err := os.WriteFile(filepath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	return nil
}

// RestoreSnapshotFromFile replaces m's entire state with the snapshot
// stored in filepath. The wall-record log is cleared, since a snapshot
// restore is not a replay of observations.
func (m *Maze) RestoreSnapshotFromFile(filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	r := bytes.NewReader(data)
	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil || magic != snapshotMagic {
		return fmt.Errorf("%w: not a maze snapshot file", ErrParseFailed)
	}
	var n int32
	binary.Read(r, binary.LittleEndian, &n)
	size, err := NewSize(int(n))
	if err != nil {
		return err
	}
	var sx, sy int8
	binary.Read(r, binary.LittleEndian, &sx)
	binary.Read(r, binary.LittleEndian, &sy)
	var numGoals int32
	binary.Read(r, binary.LittleEndian, &numGoals)
	goals := make([]Position, 0, numGoals)
	for i := int32(0); i < numGoals; i++ {
		var gx, gy int8
		binary.Read(r, binary.LittleEndian, &gx)
		binary.Read(r, binary.LittleEndian, &gy)
		goals = append(goals, Position{X: gx, Y: gy})
	}
	wall, err := readBitset(r, size.WallCount())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	known, err := readBitset(r, size.WallCount())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	m.size = size
	m.start = Position{X: sx, Y: sy}
	m.goals = goals
	m.wall = wall
	m.known = known
	m.wallRecords = nil
	m.wallRecordsBackupCounter = 0
	m.minX, m.minY, m.maxX, m.maxY = 0, 0, int8(size.N-1), int8(size.N-1)
	return nil
}

func writeBitset(buf *bytes.Buffer, b bitset) {
	binary.Write(buf, binary.LittleEndian, int32(b.n))
	binary.Write(buf, binary.LittleEndian, b.words)
}

func readBitset(r *bytes.Reader, want int) (bitset, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return bitset{}, err
	}
	b := newBitset(int(n))
	if err := binary.Read(r, binary.LittleEndian, b.words); err != nil {
		return bitset{}, err
	}
	if int(n) != want {
		return bitset{}, fmt.Errorf("snapshot size mismatch: got %d bits, want %d", n, want)
	}
	return b, nil
}
