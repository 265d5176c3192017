package stepmap

import "errors"

// ErrInvalidDestination indicates every cell in a requested destination
// set lies outside the maze's field.
var ErrInvalidDestination = errors.New("stepmap: no destination cell is inside the field")

// Step is the scalar time-to-go unit used throughout the step map: ms
// divided by ScalingFactor, or a raw hop count in Simple mode.
type Step uint16

// StepMax marks a cell that has not been reached by the relaxation.
const StepMax Step = ^Step(0)

// CostParams parameterizes the trapezoidal straight-run cost table.
// Defaults are measured classic-size contest values.
type CostParams struct {
	StartSpeed    float64 // vs, mm/s
	MaxAccel      float64 // a_max, mm/s²
	MaxSpeed      float64 // v_max, mm/s
	Segment       float64 // seg, mm per cell
	TurnTime      float64 // t_slalom, ms charged to the first hop of a run
	ScalingFactor float64 // divides every table entry to fit 16 bits
}

// DefaultCostParams returns the stock straight-run profile constants.
func DefaultCostParams() CostParams {
	return CostParams{
		StartSpeed:    420.0,
		MaxAccel:      4200.0,
		MaxSpeed:      1500.0,
		Segment:       90.0,
		TurnTime:      287.0,
		ScalingFactor: 2.0,
	}
}

// Option configures a StepMap at construction time.
type Option func(*StepMap)

// WithCostParams overrides the default trapezoidal cost-table constants.
func WithCostParams(p CostParams) Option {
	return func(s *StepMap) { s.params = p }
}
