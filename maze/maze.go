package maze

import "github.com/gomicromouse/mazecore/direction"

// Option configures a Maze at construction time.
type Option func(*Maze)

// WithGoals sets the initial goal cells.
func WithGoals(goals ...Position) Option {
	return func(m *Maze) { m.goals = append([]Position(nil), goals...) }
}

// WithStart sets the initial start cell (default origin).
func WithStart(start Position) Option {
	return func(m *Maze) { m.start = start }
}

// Maze stores the wall-present/wall-known bitsets, the goal set, the start
// cell, and the append-only wall-observation log for a single maze of a
// fixed Size. It is mutated only through UpdateWall/ResetLastWalls/
// SetGoals/SetStart/Reset; every solver recomputes its own state from a
// Maze snapshot each time it is queried.
type Maze struct {
	size Size

	wall  bitset
	known bitset

	goals []Position
	start Position

	wallRecords              []WallRecord
	wallRecordsBackupCounter int

	minX, minY, maxX, maxY int8
}

// New constructs an empty Maze of the given edge length and applies opts,
// then resets it (setting the start cell's known East-wall-present /
// North-wall-absent boundary).
func New(n int, opts ...Option) (*Maze, error) {
	size, err := NewSize(n)
	if err != nil {
		return nil, err
	}
	m := &Maze{
		size:  size,
		wall:  newBitset(size.WallCount()),
		known: newBitset(size.WallCount()),
		start: Position{0, 0},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Reset(true)
	return m, nil
}

// Size returns the Maze's edge-length configuration.
func (m *Maze) Size() Size { return m.size }

// Goals returns the current goal cells.
func (m *Maze) Goals() []Position { return m.goals }

// SetGoals replaces the goal set.
func (m *Maze) SetGoals(goals []Position) {
	m.goals = append([]Position(nil), goals...)
}

// Start returns the current start cell.
func (m *Maze) Start() Position { return m.start }

// SetStart replaces the start cell.
func (m *Maze) SetStart(start Position) { m.start = start }

// WallRecords returns the append-only observation log, in recorded order.
func (m *Maze) WallRecords() []WallRecord { return m.wallRecords }

// Bounds returns the bounding box (min_x, min_y, max_x, max_y) of cells
// touched by at least one wall observation.
func (m *Maze) Bounds() (minX, minY, maxX, maxY int8) {
	return m.minX, m.minY, m.maxX, m.maxY
}

// Reset clears the wall/known bitsets and the observation log. When
// setStartWall is true, the start cell's East wall is marked present/known
// and its North wall absent/known, matching a freshly booted robot's
// first-cell certainty.
func (m *Maze) Reset(setStartWall bool) {
	m.wall.clear()
	m.known.clear()
	m.wallRecords = m.wallRecords[:0]
	m.wallRecordsBackupCounter = 0
	m.minX, m.minY = int8(m.size.N-1), int8(m.size.N-1)
	m.maxX, m.maxY = 0, 0
	if setStartWall {
		m.UpdateWall(m.start, direction.East, true)
		m.UpdateWall(m.start, direction.North, false)
	}
}

func (m *Maze) isWallBase(b bitset, i WallIndex) bool {
	return !i.IsInsideOfField(m.size) || b.get(i.GetIndex(m.size))
}

func (m *Maze) setWallBase(b bitset, i WallIndex, v bool) {
	if i.IsInsideOfField(m.size) {
		b.set(i.GetIndex(m.size), v)
	}
}

// IsWall reports whether wall i is present. Out-of-field walls always
// report present.
func (m *Maze) IsWall(i WallIndex) bool { return m.isWallBase(m.wall, i) }

// IsWallAt reports whether the wall of cell p in direction d is present.
func (m *Maze) IsWallAt(p Position, d direction.Direction) bool {
	return m.IsWall(NewWallIndex(p, d))
}

// IsKnown reports whether wall i has been observed. Out-of-field walls are
// always known.
func (m *Maze) IsKnown(i WallIndex) bool { return m.isWallBase(m.known, i) }

// IsKnownAt reports whether the wall of cell p in direction d has been
// observed.
func (m *Maze) IsKnownAt(p Position, d direction.Direction) bool {
	return m.IsKnown(NewWallIndex(p, d))
}

// SetWall sets wall i's present bit directly, bypassing reconciliation and
// the observation log. Out-of-field indices are a no-op. Used by the
// search package's tentative-wall look-ahead.
func (m *Maze) SetWall(i WallIndex, v bool) { m.setWallBase(m.wall, i, v) }

// SetWallAt sets the wall of cell p in direction d directly.
func (m *Maze) SetWallAt(p Position, d direction.Direction, v bool) {
	m.SetWall(NewWallIndex(p, d), v)
}

// SetKnown sets wall i's known bit directly, bypassing the observation log.
func (m *Maze) SetKnown(i WallIndex, v bool) { m.setWallBase(m.known, i, v) }

// SetKnownAt sets the known bit of the wall of cell p in direction d.
func (m *Maze) SetKnownAt(p Position, d direction.Direction, v bool) {
	m.SetKnown(NewWallIndex(p, d), v)
}

// CanGo reports whether wall i is both known and absent.
func (m *Maze) CanGo(i WallIndex) bool {
	return !m.IsWall(i) && m.IsKnown(i)
}

// CanGoKnownOnly reports passability the same way CanGo does when
// knownOnly is true; when knownOnly is false, an unknown wall is also
// treated as passable (used by exploration planning that must look past
// the known map).
func (m *Maze) CanGoKnownOnly(i WallIndex, knownOnly bool) bool {
	if knownOnly {
		return m.CanGo(i)
	}
	return !m.IsWall(i)
}

// WallCountAt returns how many of the four along-walls of p are present.
func (m *Maze) WallCountAt(p Position) int {
	n := 0
	for _, d := range direction.Along4() {
		if m.IsWallAt(p, d) {
			n++
		}
	}
	return n
}

// UnknownCountAt returns how many of the four along-walls of p are
// unobserved.
func (m *Maze) UnknownCountAt(p Position) int {
	n := 0
	for _, d := range direction.Along4() {
		if !m.IsKnownAt(p, d) {
			n++
		}
	}
	return n
}

// UpdateWall reconciles a new observation of the wall at (p, d) with the
// Maze's current state:
//
//   - if the wall is already known and the observation disagrees, the wall
//     is demoted to unknown-and-absent (a discrepancy is not fatal), the
//     observation is logged, and false is returned;
//   - if the wall is unknown, it is learned as b, the observation is logged,
//     the bounding box is enlarged, and true is returned;
//   - if the wall is already known and the observation agrees, nothing is
//     changed or logged and true is returned.
//
// Logging is skipped when pushRecord is false (used by the text and hex
// parsers).
func (m *Maze) UpdateWall(p Position, d direction.Direction, b bool, pushRecord ...bool) bool {
	push := true
	if len(pushRecord) > 0 {
		push = pushRecord[0]
	}
	i := NewWallIndex(p, d)
	if m.IsKnown(i) && m.IsWall(i) != b {
		m.SetWall(i, false)
		m.SetKnown(i, false)
		if push {
			m.wallRecords = append(m.wallRecords, NewWallRecordAt(p, d, b))
		}
		return false
	}
	if !m.IsKnown(i) {
		m.SetWall(i, b)
		m.SetKnown(i, true)
		if push {
			m.wallRecords = append(m.wallRecords, NewWallRecordAt(p, d, b))
		}
		if p.X < m.minX {
			m.minX = p.X
		}
		if p.Y < m.minY {
			m.minY = p.Y
		}
		if p.X > m.maxX {
			m.maxX = p.X
		}
		if p.Y > m.maxY {
			m.maxY = p.Y
		}
	}
	return true
}

// ResetLastWalls pops the last n records from the wall-record log and
// rebuilds the bitsets from the remainder, so the Maze ends up exactly as
// if those n observations had never happened.
func (m *Maze) ResetLastWalls(n int, setStartWall bool) {
	if n > len(m.wallRecords) {
		n = len(m.wallRecords)
	}
	remaining := append([]WallRecord(nil), m.wallRecords[:len(m.wallRecords)-n]...)
	m.Reset(setStartWall)
	for _, wr := range remaining {
		m.UpdateWall(wr.Position(), wr.D(), wr.B())
	}
}
