package maze

import (
	"fmt"

	"github.com/gomicromouse/mazecore/direction"
)

// WallIndex canonically identifies one interior wall: z=0 is the East wall
// of cell (x, y); z=1 is the North wall of cell (x, y). West/South walls
// are never stored directly — NewWallIndex canonicalizes them to the East/
// North wall of the neighboring cell.
type WallIndex struct {
	X, Y int8
	Z    uint8
}

// NewWallIndex builds the canonical WallIndex for the wall of cell p in
// along-direction d. d must be one of East/North/West/South; West and
// South are rewritten to the East/North wall of the appropriate neighbor.
func NewWallIndex(p Position, d direction.Direction) WallIndex {
	i := WallIndex{X: p.X, Y: p.Y, Z: uint8(d>>1) & 1}
	switch d {
	case direction.West:
		i.X--
	case direction.South:
		i.Y--
	}
	return i
}

// newWallIndexRaw builds a WallIndex directly from its components, with no
// canonicalization — used internally by Next, which already operates in
// canonical wall-space.
func newWallIndexRaw(x, y int8, z uint8) WallIndex {
	return WallIndex{X: x, Y: y, Z: z & 1}
}

// Position returns the cell (x, y) component of the wall index.
func (i WallIndex) Position() Position {
	return Position{X: i.X, Y: i.Y}
}

// Direction returns East for z=0 or North for z=1.
func (i WallIndex) Direction() direction.Direction {
	return direction.Direction(i.Z << 1)
}

// IsInsideOfField reports whether the wall lies strictly inside the
// size.N × size.N field, excluding the outer boundary (which is always
// present and known, per Maze's convention).
func (i WallIndex) IsInsideOfField(size Size) bool {
	return uint8(i.X) < uint8(size.N-1+int(i.Z)) && uint8(i.Y) < uint8(size.N-int(i.Z))
}

// GetIndex returns a dense, size-relative index for i. Only meaningful when
// i.IsInsideOfField(size) holds.
func (i WallIndex) GetIndex(size Size) int {
	return int(i.Z)<<(2*size.Bit) | int(i.Y)<<size.Bit | int(i.X)
}

// WallIndexFromIndex is the inverse of GetIndex.
func WallIndexFromIndex(idx int, size Size) WallIndex {
	mask := size.Max - 1
	return WallIndex{
		X: int8(idx & mask),
		Y: int8((idx >> size.Bit) & mask),
		Z: uint8(idx >> (2 * size.Bit)),
	}
}

// Next returns the WallIndex reached by moving from i's midpoint one step
// in direction d (any of the 8 directions); diagonal steps cross a pillar
// and flip z.
func (i WallIndex) Next(d direction.Direction) WallIndex {
	x, y, z := i.X, i.Y, i.Z
	switch d {
	case direction.East:
		return newWallIndexRaw(x+1, y, z)
	case direction.NorthEast:
		return newWallIndexRaw(x+int8(1-z), y+int8(z), 1-z)
	case direction.North:
		return newWallIndexRaw(x, y+1, z)
	case direction.NorthWest:
		return newWallIndexRaw(x-int8(z), y+int8(z), 1-z)
	case direction.West:
		return newWallIndexRaw(x-1, y, z)
	case direction.SouthWest:
		return newWallIndexRaw(x-int8(z), y-int8(1-z), 1-z)
	case direction.South:
		return newWallIndexRaw(x, y-1, z)
	case direction.SouthEast:
		return newWallIndexRaw(x+int8(1-z), y-int8(1-z), 1-z)
	}
	return i
}

// NextDirection6 returns the six directions (relative to the wall's own
// orientation) that lead to another wall without crossing through a
// pillar's own footprint: straight ahead, straight back, and the four 45°/
// 135° diagonals to either side.
func (i WallIndex) NextDirection6() [6]direction.Direction {
	d := i.Direction()
	return [6]direction.Direction{
		d.Add(direction.Front),
		d.Add(direction.Back),
		d.Add(direction.Left45),
		d.Add(direction.Right45),
		d.Add(direction.Left135),
		d.Add(direction.Right135),
	}
}

// String renders i as "(x, y, d)".
func (i WallIndex) String() string {
	return fmt.Sprintf("(%2d, %2d, %s)", i.X, i.Y, i.Direction())
}
