package search

import (
	"errors"

	"github.com/gomicromouse/mazecore/direction"
)

// ErrImpossible indicates a phase of calcNextDirections found no viable
// path and the Agent must stop.
var ErrImpossible = errors.New("search: no viable path to target")

// Result is the three-way outcome of a calcNextDirections phase.
type Result uint8

const (
	// Processing means the current state should run again next call.
	Processing Result = iota
	// Reached means the current phase is complete; advance to the next.
	Reached
	// Error means the phase failed outright; the caller sets IMPOSSIBLE.
	Error
)

// String renders r for logs and test failures.
func (r Result) String() string {
	switch r {
	case Processing:
		return "Processing"
	case Reached:
		return "Reached"
	case Error:
		return "Error"
	}
	return "Invalid"
}

// State enumerates the exploration state machine's phases.
type State uint8

const (
	START State = iota
	SEARCHING_FOR_GOAL
	SEARCHING_ADDITIONALLY
	BACKING_TO_START
	REACHED_START
	IMPOSSIBLE
	IDENTIFYING_POSITION
	GOING_TO_GOAL
)

var stateStrings = [...]string{
	"Start", "Searching for Goal", "Searching Additionally",
	"Backing to Start", "Reached Start", "Impossible",
	"Identifying Position", "Going to Goal",
}

// String renders s for logs and test failures.
func (s State) String() string {
	if int(s) < len(stateStrings) {
		return stateStrings[s]
	}
	return "Invalid"
}

// NextDirections is calcNextDirections' computed result for the current
// call: the known-segment run, the ranked fallback candidates for the first
// unknown cell, and two diagnostics.
type NextDirections struct {
	State                   State
	NextDirectionsKnown     []direction.Direction
	NextDirectionCandidates []direction.Direction
	UnknownAccelFlag        bool
	PoseMatchCount          int
}

// LogFunc receives a named event with structured fields. The zero value is
// a no-op.
type LogFunc func(event string, fields map[string]any)

// Option configures an Agent at construction time.
type Option func(*Agent)

// WithSearchAdditionallyAtStart controls whether CalcNextDirections skips
// straight to SEARCHING_ADDITIONALLY (the default) or runs
// SEARCHING_FOR_GOAL first. Passing false restores the goal-first cascade.
func WithSearchAdditionallyAtStart(v bool) Option {
	return func(a *Agent) { a.searchAdditionallyAtStart = v }
}

// WithLogger installs fn as the Agent's event sink.
func WithLogger(fn LogFunc) Option {
	return func(a *Agent) { a.log = fn }
}

// WithKnownDiffTolerance overrides the position-identification match
// threshold (default 6, enough slack to absorb a few misread walls).
func WithKnownDiffTolerance(n int) Option {
	return func(a *Agent) { a.knownDiffTolerance = n }
}

// idOutsideMarginCells is the extra margin added around the known maze's
// bounding box when scanning countIdentityCandidates offsets, so the robot
// can be a couple of cells outside what has been mapped so far.
const idOutsideMarginCells = 2

// ignoreFirstIDWalls is the count of leading idMaze wall records discarded
// when copying position-identification observations back into the real
// maze, since the first moments after a recovery are prone to misreads.
const ignoreFirstIDWalls = 12

// backToStartDetourBudget is how many extra known-only steps a tentative
// "close the wall behind me" reroute may cost before it is rejected in
// favor of the original route, in calcNextDirectionsBackingToStart.
const backToStartDetourBudget = 9
