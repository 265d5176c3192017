package maze

import (
	"fmt"

	"github.com/gomicromouse/mazecore/direction"
)

// Position is a maze cell's signed (x, y) coordinate. The zero value is the
// origin cell (0, 0).
type Position struct {
	X, Y int8
}

// NewPosition constructs a Position from plain coordinates.
func NewPosition(x, y int8) Position {
	return Position{X: x, Y: y}
}

// Pack returns the 16-bit packed representation (x in the high byte, y in
// the low byte) used for fast equality and hashing.
func (p Position) Pack() uint16 {
	return uint16(uint8(p.X))<<8 | uint16(uint8(p.Y))
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference of two positions.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Next returns the neighboring cell reached from p by moving one step in
// direction d, diagonals included.
func (p Position) Next(d direction.Direction) Position {
	switch d {
	case direction.East:
		return Position{p.X + 1, p.Y}
	case direction.NorthEast:
		return Position{p.X + 1, p.Y + 1}
	case direction.North:
		return Position{p.X, p.Y + 1}
	case direction.NorthWest:
		return Position{p.X - 1, p.Y + 1}
	case direction.West:
		return Position{p.X - 1, p.Y}
	case direction.SouthWest:
		return Position{p.X - 1, p.Y - 1}
	case direction.South:
		return Position{p.X, p.Y - 1}
	case direction.SouthEast:
		return Position{p.X + 1, p.Y - 1}
	}
	return p
}

// IsInsideOfField reports whether p lies within a size.N × size.N field.
func (p Position) IsInsideOfField(size Size) bool {
	return uint8(p.X) < uint8(size.N) && uint8(p.Y) < uint8(size.N)
}

// GetIndex returns a dense, size-relative index for p. Only meaningful (and
// only guaranteed unique) when p.IsInsideOfField(size) holds.
func (p Position) GetIndex(size Size) int {
	return int(p.X)<<size.Bit | int(p.Y)
}

// PositionFromIndex is the inverse of GetIndex.
func PositionFromIndex(idx int, size Size) Position {
	return Position{
		X: int8(idx >> size.Bit),
		Y: int8(idx & (size.Max - 1)),
	}
}

// Rotate rotates p around the origin by one of the four along directions
// (East=identity, North=90° CCW, West=180°, South=270° CCW / 90° CW). d
// must be an along direction; any other value returns p unchanged.
func (p Position) Rotate(d direction.Direction) Position {
	switch d {
	case direction.East:
		return p
	case direction.North:
		return Position{X: -p.Y, Y: p.X}
	case direction.West:
		return Position{X: -p.X, Y: -p.Y}
	case direction.South:
		return Position{X: p.Y, Y: -p.X}
	}
	return p
}

// RotateAbout rotates p around center by one of the four along directions.
func (p Position) RotateAbout(d direction.Direction, center Position) Position {
	return center.Add(p.Sub(center).Rotate(d))
}

// String renders p as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%2d, %2d)", p.X, p.Y)
}

// Pose is a Position paired with the direction the robot was travelling
// when it arrived there — the direction *into* the cell, not out of it.
type Pose struct {
	P Position
	D direction.Direction
}

// NewPose constructs a Pose.
func NewPose(p Position, d direction.Direction) Pose {
	return Pose{P: p, D: d}
}

// Next returns the pose reached by moving one step in nextDirection.
func (ps Pose) Next(nextDirection direction.Direction) Pose {
	return Pose{P: ps.P.Next(nextDirection), D: nextDirection}
}

// String renders ps as "(x, y, d)".
func (ps Pose) String() string {
	return fmt.Sprintf("(%2d, %2d, %s)", ps.P.X, ps.P.Y, ps.D)
}
