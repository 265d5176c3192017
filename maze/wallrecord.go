package maze

import (
	"fmt"

	"github.com/gomicromouse/mazecore/direction"
)

// WallRecord is one entry of the Maze's append-only observation log,
// packed into 16 bits (x:6, y:6, d:3, b:1) so the log can be written to
// and restored from a file byte-for-byte. Unlike Position/WallIndex, which
// keep friendly struct fields for in-memory use, WallRecord's packed form
// *is* its primary representation because it crosses a process boundary
// (the wall-record backup file).
type WallRecord uint16

const (
	wrXMask = 0x3F
	wrYMask = 0x3F
	wrDMask = 0x7
)

// NewWallRecord packs an observation into a WallRecord.
func NewWallRecord(x, y int8, d direction.Direction, b bool) WallRecord {
	var bb uint16
	if b {
		bb = 1
	}
	return WallRecord(
		uint16(uint8(x)&wrXMask) |
			uint16(uint8(y)&wrYMask)<<6 |
			uint16(uint8(d)&wrDMask)<<12 |
			bb<<15,
	)
}

// NewWallRecordAt packs an observation at p, d, b.
func NewWallRecordAt(p Position, d direction.Direction, b bool) WallRecord {
	return NewWallRecord(p.X, p.Y, d, b)
}

func signExtend6(v uint16) int8 {
	v &= 0x3F
	if v&0x20 != 0 {
		return int8(v | 0xC0)
	}
	return int8(v)
}

// X returns the packed x coordinate (sign-extended from 6 bits).
func (r WallRecord) X() int8 { return signExtend6(uint16(r)) }

// Y returns the packed y coordinate (sign-extended from 6 bits).
func (r WallRecord) Y() int8 { return signExtend6(uint16(r) >> 6) }

// D returns the packed direction.
func (r WallRecord) D() direction.Direction {
	return direction.Direction((uint16(r) >> 12) & wrDMask)
}

// B returns the packed wall-present bit.
func (r WallRecord) B() bool { return uint16(r)>>15 != 0 }

// Position returns the recorded cell.
func (r WallRecord) Position() Position {
	return Position{X: r.X(), Y: r.Y()}
}

// String renders r as "(x, y, d, b)".
func (r WallRecord) String() string {
	return fmt.Sprintf("(%2d, %2d, %s, %v)", r.X(), r.Y(), r.D(), r.B())
}
