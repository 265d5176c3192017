package stepmapslalom

import (
	"errors"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
)

// ErrInvalidDestination indicates every destination Index lies outside the
// maze's field.
var ErrInvalidDestination = errors.New("stepmapslalom: no destination index is inside the field")

// ErrNoPath indicates GenPathFromMap could not reach a zero-cost node, or
// found a non-decreasing predecessor chain.
var ErrNoPath = errors.New("stepmapslalom: no path to any destination")

// Cost is the scalar time-to-go unit, milliseconds divided by
// RunParameter.ScalingFactor.
type Cost uint16

// CostMax marks a node that has not been reached by the relaxation.
const CostMax Cost = ^Cost(0)

// Slalom enumerates the six turn shapes the robot's motion profile supports.
type Slalom int

const (
	F45 Slalom = iota
	F90
	F135
	F180
	FV90
	FS90
	slalomCount
)

// RunParameter holds the trapezoidal motion-profile constants the cost
// tables are built from. Defaults are measured classic-size contest
// values (before ScalingFactor is applied).
type RunParameter struct {
	StartSpeed    float64    // vs, mm/s, shared by every table
	MaxAccelAlong float64    // a_max along, mm/s²
	MaxAccelDiag  float64    // a_max diagonal, mm/s²
	MaxSpeedAlong float64    // v_max along, mm/s
	MaxSpeedDiag  float64    // v_max diagonal, mm/s
	SlalomCostMS  [6]float64 // raw ms cost for F45/F90/F135/F180/FV90/FS90
	ScalingFactor float64    // divides every table entry to fit 16 bits
}

// DefaultRunParameter returns the stock motion-profile constants.
func DefaultRunParameter() RunParameter {
	return RunParameter{
		StartSpeed:    420.0,
		MaxAccelAlong: 4200.0,
		MaxAccelDiag:  3600.0,
		MaxSpeedAlong: 1500.0,
		MaxSpeedDiag:  1200.0,
		SlalomCostMS:  [6]float64{257, 375, 465, 563, 388, 287},
		ScalingFactor: 2.0,
	}
}

const segAlong = 90.0

var segDiag = 45.0 * sqrt2

const sqrt2 = 1.4142135623730951

// Option configures a StepMapSlalom at construction time.
type Option func(*StepMapSlalom)

// WithRunParameter overrides the default trapezoidal/slalom cost constants.
func WithRunParameter(p RunParameter) Option {
	return func(s *StepMapSlalom) { s.params = p }
}

// Index identifies one node of the slalom graph: either a cell center
// (when ND is an along direction, Z is always 0) or a wall center (when ND
// is diagonal, Z selects the East/North wall orientation exactly like
// maze.WallIndex). X/Y are the underlying cell coordinates.
type Index struct {
	X, Y int8
	Z    uint8
	ND   direction.Direction
}

// NewIndexCell builds the cell-center node at p facing nd (nd should be an
// along direction; Z is always 0 for cell-center nodes).
func NewIndexCell(p maze.Position, nd direction.Direction) Index {
	return Index{X: p.X, Y: p.Y, Z: 0, ND: nd}
}

// NewIndexWall builds the wall-center node at wi, moving along diagonal nd.
func NewIndexWall(wi maze.WallIndex, nd direction.Direction) Index {
	return Index{X: wi.X, Y: wi.Y, Z: wi.Z, ND: nd}
}

// NewIndexAt builds the canonical node for cell p's wall in direction d,
// facing nd — d is canonicalized into (X, Y, Z) the same way
// maze.NewWallIndex does.
func NewIndexAt(p maze.Position, d, nd direction.Direction) Index {
	wi := maze.NewWallIndex(p, d)
	return Index{X: wi.X, Y: wi.Y, Z: wi.Z, ND: nd}
}

// IndexStart is the virtual "about to leave the start cell, facing north"
// node genPathFromMap and getShortestCost anchor their walk on.
var IndexStart = NewIndexCell(maze.Position{X: 0, Y: 0}, direction.North)

// Position returns the node's underlying cell coordinate.
func (i Index) Position() maze.Position {
	return maze.Position{X: i.X, Y: i.Y}
}

// Direction returns the wall orientation (East for Z=0, North for Z=1).
func (i Index) Direction() direction.Direction {
	return direction.Direction(i.Z << 1)
}

// NodeDirection returns the direction the node represents motion along.
func (i Index) NodeDirection() direction.Direction {
	return i.ND
}

// WallIndex returns the nearest wall to this node: its own along-wall when
// ND is along, or its own wall center when ND is diagonal.
func (i Index) WallIndex() maze.WallIndex {
	if i.ND.IsAlong() {
		return maze.NewWallIndex(i.Position(), i.ND)
	}
	return maze.WallIndex{X: i.X, Y: i.Y, Z: i.Z}
}

// IsInsideOfField reports whether the node's underlying geometry lies
// inside size's field.
func (i Index) IsInsideOfField(size maze.Size) bool {
	if i.ND.IsAlong() {
		return i.Position().IsInsideOfField(size)
	}
	return i.WallIndex().IsInsideOfField(size)
}

// indexCapacity returns the dense array capacity GetIndex requires: the bit
// layout's top bit sits at 2*Bit+3, so 2*Bit+4 bits of range are needed.
func indexCapacity(size maze.Size) int {
	return 1 << (2*size.Bit + 4)
}

// GetIndex returns a dense, size-relative index for i. Only meaningful when
// i.IsInsideOfField(size) holds. The bit layout packs (~nd&1) as the
// highest bit (separating along from diagonal nodes), then Z, then the two
// high bits of nd, then X and Y — trading a few unreachable slots (16 per
// cell instead of the true 12) for branch-free packing.
func (i Index) GetIndex(size maze.Size) int {
	bit := size.Bit
	alongBit := 0
	if i.ND&1 == 0 {
		alongBit = 1
	}
	return alongBit<<(2*bit+3) |
		int(i.Z)<<(2*bit+2) |
		int(i.ND&6)<<(2*bit-1) |
		int(i.X)<<bit |
		int(i.Y)
}

// RelativeDirectionDiagToAlong returns, for a diagonal node, the ±45°
// relative direction from ND to the along direction its own wall faces.
func (i Index) RelativeDirectionDiagToAlong() direction.Direction {
	switch i.ND {
	case direction.NorthEast, direction.SouthWest:
		if i.Z == 0 {
			return direction.Left45
		}
		return direction.Right45
	case direction.NorthWest, direction.SouthEast:
		if i.Z == 1 {
			return direction.Left45
		}
		return direction.Right45
	}
	return direction.Front
}

// Next returns the node reached by moving the node's own geometry one hop
// in direction nd. The along/diagonal case split is irregular by
// construction: diagonal origins step by whole cells in the four along
// directions, but fall back to wall stepping for any other nd.
func (i Index) Next(nd direction.Direction) Index {
	switch i.ND {
	case direction.East, direction.North, direction.West, direction.South:
		if nd.IsAlong() {
			return NewIndexCell(i.Position().Next(nd), nd)
		}
		return NewIndexWall(i.WallIndex().Next(nd), nd)
	case direction.NorthEast:
		switch nd {
		case direction.East:
			return NewIndexCell(maze.Position{X: i.X + 1, Y: i.Y + 1}, nd)
		case direction.North:
			return NewIndexCell(maze.Position{X: i.X + 1, Y: i.Y + 1}, nd)
		case direction.West:
			return NewIndexCell(maze.Position{X: i.X, Y: i.Y + 1}, nd)
		case direction.South:
			return NewIndexCell(maze.Position{X: i.X + 1, Y: i.Y}, nd)
		default:
			return NewIndexWall(maze.WallIndex{X: i.X, Y: i.Y, Z: i.Z}.Next(nd), nd)
		}
	case direction.NorthWest:
		switch nd {
		case direction.East:
			return NewIndexCell(maze.Position{X: i.X + 1, Y: i.Y + 1}, nd)
		case direction.North:
			return NewIndexCell(maze.Position{X: i.X, Y: i.Y + 1}, nd)
		case direction.West:
			return NewIndexCell(maze.Position{X: i.X - 1, Y: i.Y + 1}, nd)
		case direction.South:
			return NewIndexCell(maze.Position{X: i.X - 1, Y: i.Y}, nd)
		default:
			return NewIndexWall(maze.WallIndex{X: i.X, Y: i.Y, Z: i.Z}.Next(nd), nd)
		}
	case direction.SouthWest:
		switch nd {
		case direction.East:
			return NewIndexCell(maze.Position{X: i.X + 1, Y: i.Y - 1}, nd)
		case direction.North:
			return NewIndexCell(maze.Position{X: i.X - 1, Y: i.Y + 1}, nd)
		case direction.West:
			return NewIndexCell(maze.Position{X: i.X - 1, Y: i.Y}, nd)
		case direction.South:
			return NewIndexCell(maze.Position{X: i.X, Y: i.Y - 1}, nd)
		default:
			return NewIndexWall(maze.WallIndex{X: i.X, Y: i.Y, Z: i.Z}.Next(nd), nd)
		}
	case direction.SouthEast:
		switch nd {
		case direction.East:
			return NewIndexCell(maze.Position{X: i.X + 1, Y: i.Y}, nd)
		case direction.North:
			return NewIndexCell(maze.Position{X: i.X + 1, Y: i.Y + 1}, nd)
		case direction.West:
			return NewIndexCell(maze.Position{X: i.X, Y: i.Y - 1}, nd)
		case direction.South:
			return NewIndexCell(maze.Position{X: i.X + 1, Y: i.Y - 1}, nd)
		default:
			return NewIndexWall(maze.WallIndex{X: i.X, Y: i.Y, Z: i.Z}.Next(nd), nd)
		}
	}
	return i
}

// Opposite returns the node with the same geometry facing the reverse
// direction — used to bridge "arriving at" and "leaving from" the same
// physical place.
func (i Index) Opposite() Index {
	return Index{X: i.X, Y: i.Y, Z: i.Z, ND: i.ND.Add(direction.Back)}
}

// String renders i for test failures and logs.
func (i Index) String() string {
	if i.ND.IsAlong() {
		return i.Position().String() + " " + i.ND.String()
	}
	return i.WallIndex().String() + " " + i.ND.String()
}
