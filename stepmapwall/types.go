package stepmapwall

import (
	"errors"

	"github.com/gomicromouse/mazecore/maze"
)

// ErrInvalidDestination indicates every wall in a requested destination set
// lies outside the maze's field.
var ErrInvalidDestination = errors.New("stepmapwall: no destination wall is inside the field")

// Step is the scalar time-to-go unit, ms divided by ScalingFactor (or a raw
// hop count in Simple mode).
type Step uint16

// StepMax marks a wall that has not been reached by the relaxation.
const StepMax Step = ^Step(0)

// StartWallIndex is the fictive north wall of the start cell: the wall the
// robot is considered to have just entered the maze through.
var StartWallIndex = maze.WallIndex{X: 0, Y: 0, Z: 1}

// CostParams parameterizes the along/diagonal trapezoidal cost tables.
// Defaults are measured classic-size contest values.
type CostParams struct {
	StartSpeed    float64 // vs, mm/s, shared by both tables
	MaxAccelAlong float64 // a_max along, mm/s²
	MaxAccelDiag  float64 // a_max diagonal, mm/s²
	MaxSpeedAlong float64 // v_max along, mm/s
	MaxSpeedDiag  float64 // v_max diagonal, mm/s
	SegmentAlong  float64 // along wall-to-wall spacing, mm
	SegmentDiag   float64 // diagonal wall-to-wall spacing, mm
	TurnTime      float64 // t_slalom, ms charged once into the diagonal table
	ScalingFactor float64 // divides every table entry to fit 16 bits
}

// DefaultCostParams returns the stock along/diagonal profile constants.
func DefaultCostParams() CostParams {
	return CostParams{
		StartSpeed:    420.0,
		MaxAccelAlong: 4200.0,
		MaxAccelDiag:  3600.0,
		MaxSpeedAlong: 1500.0,
		MaxSpeedDiag:  1200.0,
		SegmentAlong:  90.0,
		SegmentDiag:   45.0 * sqrt2,
		TurnTime:      388.0,
		ScalingFactor: 2.0,
	}
}

const sqrt2 = 1.4142135623730951

// Option configures a StepMapWall at construction time.
type Option func(*StepMapWall)

// WithCostParams overrides the default trapezoidal cost-table constants.
func WithCostParams(p CostParams) Option {
	return func(s *StepMapWall) { s.params = p }
}
