package search

import (
	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
	"github.com/gomicromouse/mazecore/stepmap"
)

// tentativeWalls is a scoped guard around a batch of SetWall/SetKnown
// overrides: restore() undoes every override in reverse order, so a
// look-ahead pass can borrow the live Maze instead of cloning it. Callers
// must defer restore() immediately after construction.
type tentativeWalls struct {
	m        *maze.Maze
	indices  []maze.WallIndex
	wasWall  []bool
	wasKnown []bool
}

func newTentativeWalls(m *maze.Maze) *tentativeWalls {
	return &tentativeWalls{m: m}
}

// set marks wall i known, with the given present value, for the duration of
// the guard, recording its prior state so restore can undo it.
func (t *tentativeWalls) set(i maze.WallIndex, present bool) {
	t.indices = append(t.indices, i)
	t.wasWall = append(t.wasWall, t.m.IsWall(i))
	t.wasKnown = append(t.wasKnown, t.m.IsKnown(i))
	t.m.SetWall(i, present)
	t.m.SetKnown(i, true)
}

// restore undoes every override this guard made, in reverse order.
func (t *tentativeWalls) restore() {
	for idx := len(t.indices) - 1; idx >= 0; idx-- {
		t.m.SetWall(t.indices[idx], t.wasWall[idx])
		t.m.SetKnown(t.indices[idx], t.wasKnown[idx])
	}
}

// calcNextDirectionsInAdvance computes the known-only direction run from
// start toward dest (GetStepDownDirections, breakUnknown=true), then
// refines the candidate list at the pose that run stops at: the current top
// candidate is recorded, and if its wall is still unknown it is tentatively
// marked present (a closed wall to route around, not an open one to walk
// through) before the step map is recomputed and re-ranked from the same
// pose. Every tentative wall is restored before returning. The result is a
// ranked fallback list reflecting what to try if the top choice turns out
// blocked, rather than a single guess. Shared by every phase except
// SEARCHING_ADDITIONALLY, which inlines its own variant with a dead-end
// check below. m and sm let position identification reuse this against
// idMaze/idStepMap instead of the live maze.
func calcNextDirectionsInAdvance(m *maze.Maze, sm *stepmap.StepMap, dest []maze.Position, start maze.Pose, out *NextDirections) maze.Position {
	if err := sm.Update(m, dest, false, false); err != nil {
		return start.P
	}
	known, end := sm.GetStepDownDirections(m, start, false, true)
	out.NextDirectionsKnown = known
	cands := sm.GetNextDirectionCandidates(m, end)

	var advanced []direction.Direction
	guard := newTentativeWalls(m)
	defer guard.restore()
	for len(cands) > 0 {
		d := cands[0]
		advanced = append(advanced, d)
		if m.IsKnownAt(end.P, d) {
			break
		}
		guard.set(maze.NewWallIndex(end.P, d), true)
		if err := sm.Update(m, dest, false, false); err != nil {
			break
		}
		cands = sm.GetNextDirectionCandidates(m, end)
	}
	out.NextDirectionCandidates = advanced
	return end.P
}

// findShortestCandidates reports every cell along some currently-shortest
// (treating unknown walls as passable) path from the start cell to a goal that
// still has an unknown wall, and whether such a path exists at all. An
// empty, ok=true result means exploration is complete: IsCompleted and
// calcNextDirectionsSearchAdditionally's termination both rest on this.
func (a *Agent) findShortestCandidates() ([]maze.Position, bool) {
	dest := a.maze.Goals()
	if err := a.stepMap.Update(a.maze, dest, false, false); err != nil {
		return nil, false
	}
	if a.stepMap.GetStep(a.maze.Start()) == stepmap.StepMax {
		return nil, false
	}

	seen := make(map[maze.Position]bool)
	var candidates []maze.Position
	p := a.maze.Start()
	limit := a.maze.Size().N * a.maze.Size().N
	for i := 0; i < limit && a.stepMap.GetStep(p) != 0; i++ {
		if a.maze.UnknownCountAt(p) > 0 && !seen[p] {
			seen[p] = true
			candidates = append(candidates, p)
		}
		best := direction.East
		bestStep := a.stepMap.GetStep(p)
		found := false
		for _, d := range direction.Along4() {
			if a.maze.IsWallAt(p, d) {
				continue
			}
			next := p.Next(d)
			step := a.stepMap.GetStep(next)
			if step < bestStep {
				bestStep = step
				best = d
				found = true
			}
		}
		if !found {
			return candidates, false
		}
		p = p.Next(best)
	}
	return candidates, true
}

// calcNextDirectionsSearchForGoal drives the robot from its current pose
// toward whichever goal cells still have an unknown wall, looking ahead
// through unknown walls (calcNextDirectionsInAdvance) so a single unexplored
// cell never stalls the run; it is Reached once every goal cell is fully
// known.
func (a *Agent) calcNextDirectionsSearchForGoal(out *NextDirections) Result {
	var candidates []maze.Position
	for _, g := range a.maze.Goals() {
		if a.maze.UnknownCountAt(g) > 0 {
			candidates = append(candidates, g)
		}
	}
	if len(candidates) == 0 {
		return Reached
	}
	calcNextDirectionsInAdvance(a.maze, a.stepMap, candidates, a.pose, out)
	if len(out.NextDirectionCandidates) == 0 {
		return Error
	}
	return Processing
}

// calcNextDirectionsSearchAdditionally drives the robot toward the nearest
// cell with an unknown wall that still lies on some currently-shortest path
// to a goal, stopping (Reached) once findShortestCandidates reports none
// remain. Its candidate refinement is inlined rather than delegated to
// calcNextDirectionsInAdvance because it additionally detects a dead end
// (wallCount==3, in which case the only way out is Back) and re-derives its
// destination set (findShortestCandidates, falling back to the start cell
// once no shortest-path candidate remains) at every refinement step.
func (a *Agent) calcNextDirectionsSearchAdditionally(out *NextDirections) Result {
	candidates, ok := a.findShortestCandidates()
	if !ok {
		return Error
	}
	if len(candidates) == 0 {
		return Reached
	}

	if err := a.stepMap.Update(a.maze, candidates, false, false); err != nil {
		return Error
	}
	known, end := a.stepMap.GetStepDownDirections(a.maze, a.pose, false, true)
	cands := a.stepMap.GetNextDirectionCandidates(a.maze, end)
	out.NextDirectionsKnown = known

	// Unknown-segment acceleration hint: the top candidate continues
	// straight ahead, and one cell further the ranking would still prefer
	// straight, so the robot can plan on two straight hops rather than one.
	if len(cands) > 0 && cands[0] == end.D {
		ahead := a.stepMap.GetNextDirectionCandidates(a.maze, end.Next(end.D))
		if len(ahead) > 0 && ahead[0] == end.D {
			out.UnknownAccelFlag = true
		}
	}

	var advanced []direction.Direction
	guard := newTentativeWalls(a.maze)
	defer guard.restore()
	for len(cands) > 0 {
		d := cands[0]
		advanced = append(advanced, d)
		if a.maze.IsKnownAt(end.P, d) {
			break
		}
		guard.set(maze.NewWallIndex(end.P, d), true)
		if a.maze.WallCountAt(end.P) == 3 {
			advanced = append(advanced, end.D.Add(direction.Back))
			break
		}
		next, ok := a.findShortestCandidates()
		if !ok {
			break
		}
		dest := next
		if len(dest) == 0 {
			dest = []maze.Position{a.maze.Start()}
		}
		if err := a.stepMap.Update(a.maze, dest, false, false); err != nil {
			break
		}
		cands = a.stepMap.GetNextDirectionCandidates(a.maze, end)
	}
	out.NextDirectionCandidates = advanced

	if len(out.NextDirectionCandidates) == 0 {
		return Error
	}
	return Processing
}

// calcNextDirectionsBackingToStart drives the robot back to the start cell.
// It prefers the plain known-only shortest path, but first checks whether
// temporarily forbidding the immediate U-turn (closing the wall directly
// behind the robot) yields a route that is not too much longer
// (backToStartDetourBudget extra steps): a robot that can avoid stopping to
// reverse gets there faster even if the path is nominally a few cells
// longer. Only once no known-only route exists at all does it fall back to
// looking ahead through unknown walls.
func (a *Agent) calcNextDirectionsBackingToStart(out *NextDirections) Result {
	out.NextDirectionCandidates = nil
	start := a.maze.Start()
	known, _ := a.stepMap.CalcShortestDirections(a.maze, a.pose.P, []maze.Position{start}, true, false)

	dBack := a.pose.D.Add(direction.Back)
	wi := maze.NewWallIndex(a.pose.P, dBack)
	wasWall := a.maze.IsWall(wi)
	a.maze.SetWall(wi, true)
	detour, _ := a.stepMap.CalcShortestDirections(a.maze, a.pose.P, []maze.Position{start}, true, false)
	a.maze.SetWall(wi, wasWall)

	if len(detour) > 0 && len(detour) < len(known)+backToStartDetourBudget {
		known = detour
	}
	out.NextDirectionsKnown = known
	if len(known) > 0 {
		return Reached
	}

	end := calcNextDirectionsInAdvance(a.maze, a.stepMap, []maze.Position{start}, a.pose, out)
	if end == start {
		return Reached
	}
	if len(out.NextDirectionCandidates) == 0 {
		return Error
	}
	return Processing
}

// calcNextDirectionsGoingToGoal drives the robot to a goal cell on demand
// (SetForceGoingToGoal), independent of the ordinary exploration cascade. A
// known-only shortest path is preferred, ranking a fixed four-way fallback
// (straight, left, right, back relative to its last leg) in case that path
// turns out wrong; only once no known-only path exists does it look ahead
// through unknown walls.
func (a *Agent) calcNextDirectionsGoingToGoal(out *NextDirections) Result {
	goals := a.maze.Goals()
	for _, g := range goals {
		if g == a.pose.P {
			return Reached
		}
	}

	known, err := a.stepMap.CalcShortestDirections(a.maze, a.pose.P, goals, true, false)
	if err == nil && len(known) > 0 {
		out.NextDirectionsKnown = known
		last := known[len(known)-1]
		out.NextDirectionCandidates = []direction.Direction{
			last.Add(direction.Front),
			last.Add(direction.Left),
			last.Add(direction.Right),
			last.Add(direction.Back),
		}
		return Processing
	}

	calcNextDirectionsInAdvance(a.maze, a.stepMap, goals, a.pose, out)
	if len(out.NextDirectionCandidates) == 0 {
		return Error
	}
	return Processing
}
