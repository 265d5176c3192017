package search

import (
	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
	"github.com/gomicromouse/mazecore/stepmap"
)

// positionIdentifyingInit resets idMaze and picks the pose the robot is
// considered to start at within idMaze's coordinate frame: idMaze's center,
// facing North. idOffset records that center so later translation back into
// the real maze's frame can subtract it out again.
func (a *Agent) positionIdentifyingInit() maze.Pose {
	a.idMaze.Reset(false)
	center := int8(maze.MaxMazeSize / 2)
	a.idOffset = maze.Position{X: center, Y: center}
	return maze.NewPose(a.idOffset, direction.North)
}

func minInt8(x, y int8) int8 {
	if x < y {
		return x
	}
	return y
}

func maxInt8(x, y int8) int8 {
	if x > y {
		return x
	}
	return y
}

// countIdentityCandidates tests every (offset, rotation) placement of
// idMaze's accumulated wall records — offset ranging over the real maze's
// known bounding box widened by idOutsideMarginCells, rotation over the
// four along directions — and reports how many placements agree with the
// real maze within knownDiffTolerance mismatches. A placement is bailed
// entirely, not merely skipped for that one record, the moment any mapped
// wall falls outside the searched area: partial agreement against an area
// we can't fully check is not agreement. The last placement found to agree
// is returned alongside the count, packed as a Pose whose P is the offset
// and whose D is the rotation; it is only meaningful when the count is
// exactly 1.
func (a *Agent) countIdentityCandidates(records []maze.WallRecord) (int, maze.Pose) {
	_, _, boundMaxX, boundMaxY := a.maze.Bounds()
	n := int8(a.maze.Size().N)
	margin := int8(idOutsideMarginCells)
	maxX := minInt8(n, boundMaxX+1+margin)
	maxY := minInt8(n, boundMaxY+1+margin)

	count := 0
	var ans maze.Pose
	for ox := int8(0); ox < maxX; ox++ {
		for oy := int8(0); oy < maxY; oy++ {
			offset := maze.Position{X: ox, Y: oy}
			for _, rot := range direction.Along4() {
				diffs := 0
				bailed := false
				for _, r := range records {
					p := r.Position().Sub(a.idOffset).Rotate(rot).Add(offset)
					if p.X < 0 || p.X >= maxX || p.Y < 0 || p.Y >= maxY {
						bailed = true
						break
					}
					d := r.D().Add(rot)
					if a.maze.IsKnownAt(p, d) && a.maze.IsWallAt(p, d) != r.B() {
						diffs++
						if diffs > a.knownDiffTolerance {
							break
						}
					}
				}
				if bailed || diffs > a.knownDiffTolerance {
					continue
				}
				ans = maze.NewPose(offset, rot)
				count++
				if count > 1 {
					return count, ans
				}
			}
		}
	}
	return count, ans
}

// findMatchDirectionCandidates reports, for each along rotation offsetD,
// whether placing idMaze's wall records so that current maps to target.P
// rotated by offsetD agrees exactly (zero tolerance) with the real maze
// wherever both are known; the corresponding result direction is
// target.D-offsetD, the orientation a robot at current would have to face
// for that placement to hold. Used to compute the small set of directions a
// given cell must avoid looking like, steering position-identification
// exploration away from configurations indistinguishable from a forbidden
// pose (the start cell).
func (a *Agent) findMatchDirectionCandidates(current maze.Position, target maze.Pose) []direction.Direction {
	const tolerance = 0
	var dirs []direction.Direction
	for _, rot := range direction.Along4() {
		diffs := 0
		for _, r := range a.idMaze.WallRecords() {
			p := target.P.Add(r.Position().Sub(current).Rotate(rot))
			d := r.D().Add(rot)
			if a.maze.IsKnownAt(p, d) && a.maze.IsWallAt(p, d) != r.B() {
				diffs++
				if diffs > tolerance {
					break
				}
			}
		}
		if diffs > tolerance {
			continue
		}
		dirs = append(dirs, target.D.Sub(rot))
	}
	return dirs
}

// identifyingSteerAwayFromStart is calcNextDirectionsPositionIdentification's
// branch for when countIdentityCandidates is still ambiguous (more than one
// placement agrees): it picks fresh idMaze cells to explore, steering away
// from any cell that would currently look like the start cell (so the
// search doesn't keep re-confirming a placement it must rule out), and
// falls back to the direction the robot arrived from if that leaves nothing
// to head toward.
func (a *Agent) identifyingSteerAwayFromStart(out *NextDirections) Result {
	minX, minY, maxX, maxY := a.idMaze.Bounds()
	n := int8(a.idMaze.Size().N)
	margin := int8(idOutsideMarginCells)
	lowX := maxInt8(minX-margin, 0)
	lowY := maxInt8(minY-margin, 0)
	highX := minInt8(maxX+margin, n)
	highY := minInt8(maxY+margin, n)

	// The cell one step north of start, facing south: the pose a robot
	// re-entering start from the direction it originally left in would
	// have.
	forbiddenTarget := maze.NewPose(a.maze.Start().Next(direction.North), direction.South)

	var backup []maze.WallRecord
	var candidates []maze.Position
	for x := lowX; x < highX; x++ {
		for y := lowY; y < highY; y++ {
			p := maze.Position{X: x, Y: y}
			forbidden := a.findMatchDirectionCandidates(p, forbiddenTarget)
			for _, d := range forbidden {
				backup = append(backup, maze.NewWallRecordAt(p, d, a.idMaze.IsWallAt(p, d)))
				a.idMaze.SetWallAt(p, d, true)
			}
			if len(forbidden) == 0 && a.idMaze.UnknownCountAt(p) > 0 {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		for x := lowX; x < highX; x++ {
			for y := lowY; y < highY; y++ {
				p := maze.Position{X: x, Y: y}
				if a.idMaze.UnknownCountAt(p) > 0 {
					candidates = append(candidates, p)
				}
			}
		}
	}

	calcNextDirectionsInAdvance(a.idMaze, a.idStepMap, candidates, a.pose, out)
	out.NextDirectionCandidates = append(out.NextDirectionCandidates, a.pose.D.Add(direction.Back))

	for i := len(backup) - 1; i >= 0; i-- {
		a.idMaze.SetWallAt(backup[i].Position(), backup[i].D(), backup[i].B())
	}

	if a.idStepMap.GetStep(a.pose.P) == stepmap.StepMax {
		calcNextDirectionsInAdvance(a.idMaze, a.idStepMap, candidates, a.pose, out)
	}

	if len(out.NextDirectionCandidates) == 0 {
		return Error
	}
	return Processing
}

// calcNextDirectionsPositionIdentification drives idMaze exploration until
// countIdentityCandidates finds exactly one placement agreeing with the
// real maze (Reached: the real pose is fixed up and idMaze's records
// spliced in, minus the ignoreFirstIDWalls lead-in discarded as
// unreliable), errors out if not even one placement agrees, and otherwise
// steers the search away from ambiguity (identifyingSteerAwayFromStart).
func (a *Agent) calcNextDirectionsPositionIdentification(out *NextDirections) Result {
	// Re-center idMaze so the recorded bounding box sits mid-field: a long
	// identification run would otherwise drift past the edge of idMaze's
	// working area. Offset, pose, and every record shift together, then
	// the bitsets are rebuilt by replaying the shifted log.
	if recorded := a.idMaze.WallRecords(); len(recorded) > 0 {
		minX, minY, maxX, maxY := a.idMaze.Bounds()
		n := int8(a.idMaze.Size().N)
		diff := maze.Position{X: (n - maxX - minX - 1) / 2, Y: (n - maxY - minY - 1) / 2}
		if diff.X != 0 || diff.Y != 0 {
			a.idOffset = a.idOffset.Add(diff)
			a.pose = maze.NewPose(a.pose.P.Add(diff), a.pose.D)
			shifted := append([]maze.WallRecord(nil), recorded...)
			a.idMaze.Reset(false)
			for _, wr := range shifted {
				a.idMaze.UpdateWall(wr.Position().Add(diff), wr.D(), wr.B())
			}
		}
	}

	records := a.idMaze.WallRecords()
	count, candidate := a.countIdentityCandidates(records)
	out.PoseMatchCount = count

	switch {
	case count == 0:
		return Error
	case count == 1:
		rot := candidate.D
		offset := candidate.P
		a.pose = maze.NewPose(
			a.pose.P.Sub(a.idOffset).Rotate(rot).Add(offset),
			a.pose.D.Add(rot),
		)

		for _, g := range a.maze.Goals() {
			idG := g.Sub(offset).Rotate(rot.Neg()).Add(a.idOffset)
			if a.idMaze.UnknownCountAt(idG) == 0 {
				a.isForceGoingToGoal = false
			}
		}
		idStart := a.maze.Start().Sub(offset).Rotate(rot.Neg()).Add(a.idOffset)
		if a.idMaze.UnknownCountAt(idStart) == 0 {
			a.isForceGoingToGoal = true
		}

		a.maze.UpdateWall(a.pose.P, a.pose.D.Add(direction.Back), false)

		skip := len(records)
		if skip > ignoreFirstIDWalls {
			skip = ignoreFirstIDWalls
		}
		for _, r := range records[skip:] {
			p := r.Position().Sub(a.idOffset).Rotate(rot).Add(offset)
			d := r.D().Add(rot)
			if !a.maze.IsKnownAt(p, d) {
				a.maze.UpdateWall(p, d, r.B())
			}
		}
		return Reached
	default:
		return a.identifyingSteerAwayFromStart(out)
	}
}
