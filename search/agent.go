package search

import (
	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
	"github.com/gomicromouse/mazecore/stepmap"
	"github.com/gomicromouse/mazecore/stepmapslalom"
)

// Agent holds the robot's current pose, the three exploration flags, and
// the plan output of the last CalcNextDirections call, and owns the
// Maze/StepMap* instances the state-machine phases (this package's other
// files) operate on. There is no separate SearchAlgorithm type — the phase
// methods are implemented directly on Agent rather than behind an extra
// indirection.
type Agent struct {
	maze          *maze.Maze
	stepMap       *stepmap.StepMap
	stepMapSlalom *stepmapslalom.StepMapSlalom
	cost          uint32

	// idMaze and idOffset are the ephemeral second Maze used during
	// position identification. idMaze is always sized MaxMazeSize
	// regardless of the live maze's N: the real maze can be smaller, but
	// recentering drift during a long identification run needs the full
	// working area to stay in bounds.
	idMaze    *maze.Maze
	idOffset  maze.Position
	idStepMap *stepmap.StepMap

	pose  maze.Pose
	state State

	isPositionIdentifying bool
	isForceBackToStart    bool
	isForceGoingToGoal    bool

	searchAdditionallyAtStart bool
	log                       LogFunc
	knownDiffTolerance        int
}

// New constructs an Agent bound to m (the real, live maze under
// exploration), applying opts. The idMaze is allocated fresh at
// maze.MaxMazeSize.
func New(m *maze.Maze, opts ...Option) *Agent {
	// MaxMazeSize is a valid Size input by construction; the error return
	// only guards caller-supplied sizes.
	idm, _ := maze.New(maze.MaxMazeSize)

	a := &Agent{
		maze:          m,
		stepMap:       stepmap.New(m.Size()),
		stepMapSlalom: stepmapslalom.New(m.Size()),

		idMaze:    idm,
		idStepMap: stepmap.New(idm.Size()),

		pose:  maze.NewPose(m.Start(), direction.North),
		state: START,

		searchAdditionallyAtStart: true,
		knownDiffTolerance:        6,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Pose returns the Agent's current pose.
func (a *Agent) Pose() maze.Pose { return a.pose }

// State returns the state the last CalcNextDirections call left the Agent in.
func (a *Agent) State() State { return a.state }

// Maze returns the live maze under exploration.
func (a *Agent) Maze() *maze.Maze { return a.maze }

// IDMaze returns the ephemeral maze used during position identification.
func (a *Agent) IDMaze() *maze.Maze { return a.idMaze }

// IsPositionIdentifying reports whether the Agent is mid position-recovery.
func (a *Agent) IsPositionIdentifying() bool { return a.isPositionIdentifying }

// IsForceBackToStart reports the forced-return flag's current value.
func (a *Agent) IsForceBackToStart() bool { return a.isForceBackToStart }

// SetForceBackToStart sets the forced-return flag: once set, exploration
// skips straight to BACKING_TO_START on the next CalcNextDirections call.
func (a *Agent) SetForceBackToStart(v bool) { a.isForceBackToStart = v }

// IsForceGoingToGoal reports the forced-goal-visit flag's current value.
func (a *Agent) IsForceGoingToGoal() bool { return a.isForceGoingToGoal }

// SetForceGoingToGoal sets the forced-goal-visit flag.
func (a *Agent) SetForceGoingToGoal(v bool) { a.isForceGoingToGoal = v }

// StartPositionIdentifying resets idMaze and jumps the Agent's pose to the
// idOffset origin, matching positionIdentifyingInit: the robot believes
// itself lost and the next CalcNextDirections call enters
// IDENTIFYING_POSITION.
func (a *Agent) StartPositionIdentifying() {
	a.pose = a.positionIdentifyingInit()
	a.isPositionIdentifying = true
}

// SetPose records the robot's new pose after it has physically moved. It
// also clears isForceGoingToGoal once the goal cell is actually reached,
// a supplemental check alongside calcNextDirectionsGoingToGoal's own
// Reached condition.
func (a *Agent) SetPose(p maze.Pose) {
	a.pose = p
	if a.state == IDENTIFYING_POSITION || !a.isForceGoingToGoal {
		return
	}
	for _, g := range a.maze.Goals() {
		if g == a.pose.P {
			a.isForceGoingToGoal = false
			return
		}
	}
}

// UpdateWall reports the three walls sensed from the current pose: they
// land on idMaze while IDENTIFYING_POSITION, on the real maze otherwise.
// Returns false if any of the three observations contradicted a previously
// known wall.
func (a *Agent) UpdateWall(left, front, right bool) bool {
	ok := a.updateWallAt(a.pose.D.Add(direction.Left), left)
	if !a.updateWallAt(a.pose.D.Add(direction.Front), front) {
		ok = false
	}
	if !a.updateWallAt(a.pose.D.Add(direction.Right), right) {
		ok = false
	}
	return ok
}

func (a *Agent) updateWallAt(d direction.Direction, b bool) bool {
	if a.state == IDENTIFYING_POSITION {
		return a.idMaze.UpdateWall(a.pose.P, d, b)
	}
	return a.maze.UpdateWall(a.pose.P, d, b)
}

// UpdateWallAt updates a single wall by absolute position/direction,
// dispatched to the correct maze the same way UpdateWall is.
func (a *Agent) UpdateWallAt(p maze.Position, d direction.Direction, b bool) bool {
	if a.state == IDENTIFYING_POSITION {
		return a.idMaze.UpdateWall(p, d, b)
	}
	return a.maze.UpdateWall(p, d, b)
}

// ResetLastWalls pops the last n observation records from whichever maze is
// currently live, dispatched by state exactly like UpdateWall.
func (a *Agent) ResetLastWalls(n int) {
	if a.state == IDENTIFYING_POSITION {
		a.idMaze.ResetLastWalls(n, false)
		return
	}
	a.maze.ResetLastWalls(n, true)
}

// IsCompleted reports whether exploration has fully finished: no cell on
// any possibly-shortest path still has an unknown adjacent wall.
func (a *Agent) IsCompleted() bool {
	candidates, ok := a.findShortestCandidates()
	return ok && len(candidates) == 0
}

// IsSolvable reports whether a path from the start to some goal exists at
// all, treating unknown walls as passable (used to fail fast rather than
// explore forever against an unreachable goal).
func (a *Agent) IsSolvable() bool {
	dirs, err := a.stepMap.CalcShortestDirections(a.maze, a.maze.Start(), a.maze.Goals(), false, false)
	return err == nil && len(dirs) > 0
}

// CalcShortestDirections computes the final known-only shortest path once
// exploration is complete: diagEnabled runs the slalom Dijkstra solver
// (StepMapSlalom), otherwise the plain cell BFS step map. GetShortestCost
// is updated as a side effect.
func (a *Agent) CalcShortestDirections(diagEnabled bool) ([]direction.Direction, error) {
	const knownOnly = true
	var dirs []direction.Direction

	if diagEnabled {
		dest := stepmapslalom.ConvertDestinations(a.maze.Goals())
		out, err := a.stepMapSlalom.CalcShortestDirections(a.maze, dest, knownOnly)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			return nil, ErrImpossible
		}
		dirs = out
		a.cost = uint32(float64(a.stepMapSlalom.GetShortestCost()))
	} else {
		out, err := a.stepMap.CalcShortestDirections(a.maze, a.maze.Start(), a.maze.Goals(), knownOnly, false)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			return nil, ErrImpossible
		}
		dirs = out
		a.cost = uint32(float64(a.stepMap.GetStep(a.maze.Start())) * a.stepMap.GetScalingFactor())
	}

	return a.stepMap.AppendStraightDirections(a.maze, a.maze.Start(), dirs, knownOnly, diagEnabled), nil
}

// GetShortestCost returns the cost (ms) computed by the most recent
// CalcShortestDirections call.
func (a *Agent) GetShortestCost() uint32 { return a.cost }

func (a *Agent) logEvent(event string, fields map[string]any) {
	if a.log != nil {
		a.log(event, fields)
	}
}

// CalcNextDirections runs the exploration cascade:
// position identification, then (optionally) searching for the goal,
// searching additionally, a forced goal visit, and finally backing to
// start, each phase short-circuiting the rest on Processing and falling
// through to the next on Reached.
func (a *Agent) CalcNextDirections() (NextDirections, error) {
	out := NextDirections{State: START}

	if a.isPositionIdentifying {
		out.State = IDENTIFYING_POSITION
		switch result := a.calcNextDirectionsPositionIdentification(&out); result {
		case Processing:
			a.state = out.State
			return out, nil
		case Reached:
			a.isPositionIdentifying = false
		case Error:
			a.state = IMPOSSIBLE
			out.State = IMPOSSIBLE
			return out, ErrImpossible
		}
	}

	if !a.searchAdditionallyAtStart {
		out.State = SEARCHING_FOR_GOAL
		switch result := a.calcNextDirectionsSearchForGoal(&out); result {
		case Processing:
			a.state = out.State
			return out, nil
		case Error:
			a.state = IMPOSSIBLE
			out.State = IMPOSSIBLE
			return out, ErrImpossible
		}
	}

	if !a.isForceBackToStart {
		out.State = SEARCHING_ADDITIONALLY
		switch result := a.calcNextDirectionsSearchAdditionally(&out); result {
		case Processing:
			a.state = out.State
			return out, nil
		case Error:
			a.state = IMPOSSIBLE
			out.State = IMPOSSIBLE
			return out, ErrImpossible
		}
	}

	if a.isForceGoingToGoal {
		out.State = GOING_TO_GOAL
		switch result := a.calcNextDirectionsGoingToGoal(&out); result {
		case Processing:
			a.state = out.State
			return out, nil
		case Reached:
			a.isForceGoingToGoal = false
		case Error:
			a.state = IMPOSSIBLE
			out.State = IMPOSSIBLE
			return out, ErrImpossible
		}
	}

	out.State = BACKING_TO_START
	switch result := a.calcNextDirectionsBackingToStart(&out); result {
	case Processing:
		a.state = out.State
		return out, nil
	case Error:
		a.state = IMPOSSIBLE
		out.State = IMPOSSIBLE
		return out, ErrImpossible
	}
	a.isForceBackToStart = false

	a.state = REACHED_START
	out.State = REACHED_START
	a.logEvent("reached_start", nil)
	return out, nil
}
