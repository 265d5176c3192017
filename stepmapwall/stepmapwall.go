package stepmapwall

import (
	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
)

// StepMapWall is the wall-indexed step-map solver.
type StepMapWall struct {
	params    CostParams
	size      maze.Size
	stepAlong []Step
	stepDiag  []Step
	step      []Step
}

// New constructs a StepMapWall sized for size, applying opts.
func New(size maze.Size, opts ...Option) *StepMapWall {
	s := &StepMapWall{
		params: DefaultCostParams(),
		size:   size,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.stepAlong, s.stepDiag = buildStepTables(size.N, s.params)
	s.step = make([]Step, size.WallCount())
	return s
}

// GetStep returns the most recently computed step value for i.
func (s *StepMapWall) GetStep(i maze.WallIndex) Step {
	if !i.IsInsideOfField(s.size) {
		return StepMax
	}
	return s.step[i.GetIndex(s.size)]
}

// ConvertDestinations turns a goal cell set into the WallIndex set of their
// passable along-walls, the form Update expects as its destination set.
func ConvertDestinations(m *maze.Maze, positions []maze.Position) []maze.WallIndex {
	var dest []maze.WallIndex
	for _, p := range positions {
		for _, d := range direction.Along4() {
			if !m.IsWallAt(p, d) {
				dest = append(dest, maze.NewWallIndex(p, d))
			}
		}
	}
	return dest
}

func clampBBox(m *maze.Maze, dest []maze.WallIndex, size maze.Size) (lx, ly, hx, hy int8) {
	minX, minY, maxX, maxY := m.Bounds()
	for _, i := range dest {
		p := i.Position()
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	lx, ly = minX-1, minY-1
	hx, hy = maxX+2, maxY+2
	if lx < 0 {
		lx = 0
	}
	if ly < 0 {
		ly = 0
	}
	if hx > int8(size.N-1) {
		hx = int8(size.N - 1)
	}
	if hy > int8(size.N-1) {
		hy = int8(size.N - 1)
	}
	return lx, ly, hx, hy
}

// Update relaxes the step value of every wall reachable from dest, walking
// the 6-direction star from each wall and charging the along or diagonal
// cost table depending on the hop's own direction.
func (s *StepMapWall) Update(m *maze.Maze, dest []maze.WallIndex, knownOnly, simple bool) error {
	var inField []maze.WallIndex
	for _, i := range dest {
		if i.IsInsideOfField(s.size) {
			inField = append(inField, i)
		}
	}
	if len(inField) == 0 {
		return ErrInvalidDestination
	}

	for i := range s.step {
		s.step[i] = StepMax
	}

	if simple {
		return s.updateSimple(m, inField, knownOnly)
	}
	return s.updateStraightRun(m, inField, knownOnly)
}

// updateSimple is a flat-cost multi-source BFS over wall adjacency (the
// 6-direction star), mirroring updateStraightRun's queue shape but charging
// a uniform 1 per hop instead of the along/diagonal cost tables.
func (s *StepMapWall) updateSimple(m *maze.Maze, dest []maze.WallIndex, knownOnly bool) error {
	lx, ly, hx, hy := clampBBox(m, dest, s.size)
	inBBox := func(i maze.WallIndex) bool {
		p := i.Position()
		return p.X >= lx && p.X <= hx && p.Y >= ly && p.Y <= hy
	}
	passable := func(i maze.WallIndex) bool {
		return !m.IsWall(i) && (!knownOnly || m.IsKnown(i))
	}

	queue := make([]maze.WallIndex, 0, len(dest))
	for _, i := range dest {
		s.step[i.GetIndex(s.size)] = 0
		queue = append(queue, i)
	}

	for len(queue) > 0 {
		focus := queue[0]
		queue = queue[1:]
		if !inBBox(focus) {
			continue
		}
		focusStep := s.step[focus.GetIndex(s.size)]

		for _, d := range focus.NextDirection6() {
			next := focus.Next(d)
			if !next.IsInsideOfField(s.size) || !inBBox(next) || !passable(next) {
				continue
			}
			candidate := focusStep + 1
			idx := next.GetIndex(s.size)
			if candidate < s.step[idx] {
				s.step[idx] = candidate
				queue = append(queue, next)
			}
		}
	}
	return nil
}

func (s *StepMapWall) updateStraightRun(m *maze.Maze, dest []maze.WallIndex, knownOnly bool) error {
	lx, ly, hx, hy := clampBBox(m, dest, s.size)
	inBBox := func(i maze.WallIndex) bool {
		p := i.Position()
		return p.X >= lx && p.X <= hx && p.Y >= ly && p.Y <= hy
	}
	passable := func(i maze.WallIndex) bool {
		return !m.IsWall(i) && (!knownOnly || m.IsKnown(i))
	}

	queue := make([]maze.WallIndex, 0, len(dest))
	for _, i := range dest {
		s.step[i.GetIndex(s.size)] = 0
		queue = append(queue, i)
	}

	for len(queue) > 0 {
		focus := queue[0]
		queue = queue[1:]
		if !inBBox(focus) {
			continue
		}
		focusStep := s.step[focus.GetIndex(s.size)]

		for _, d := range focus.NextDirection6() {
			table := s.stepAlong
			if d.IsDiag() {
				table = s.stepDiag
			}
			cur := focus
			for i := 1; i < 2*s.size.N; i++ {
				next := cur.Next(d)
				if !next.IsInsideOfField(s.size) || !passable(next) {
					break
				}
				candidate := focusStep + table[i]
				idx := next.GetIndex(s.size)
				if candidate >= s.step[idx] {
					break
				}
				s.step[idx] = candidate
				queue = append(queue, next)
				cur = next
			}
		}
	}
	return nil
}

// CalcShortestDirections runs Update, then descends from start via
// GetStepDownDirections, returning the wall-direction path to the nearest
// destination wall or nil if start is unreachable.
func (s *StepMapWall) CalcShortestDirections(m *maze.Maze, start maze.WallIndex, dest []maze.WallIndex, knownOnly, simple bool) ([]direction.Direction, error) {
	if err := s.Update(m, dest, knownOnly, simple); err != nil {
		return nil, err
	}
	dirs, end := s.GetStepDownDirections(m, start, knownOnly)
	if s.GetStep(end) != 0 {
		return nil, nil
	}
	return dirs, nil
}

// GetStepDownDirections greedily descends from start along the
// strictly-decreasing-step neighbor (6-direction star), returning the path
// taken and the wall it terminated at.
func (s *StepMapWall) GetStepDownDirections(m *maze.Maze, start maze.WallIndex, knownOnly bool) ([]direction.Direction, maze.WallIndex) {
	if !start.IsInsideOfField(s.size) {
		return nil, start
	}
	passable := func(i maze.WallIndex) bool {
		return !m.IsWall(i) && (!knownOnly || m.IsKnown(i))
	}

	var dirs []direction.Direction
	end := start
	for {
		var minD direction.Direction
		minStep := StepMax
		found := false
		for _, d := range end.NextDirection6() {
			next := end.Next(d)
			if !next.IsInsideOfField(s.size) || !passable(next) {
				continue
			}
			nextStep := s.GetStep(next)
			if nextStep >= minStep {
				continue
			}
			minStep = nextStep
			minD = d
			found = true
		}
		if !found || s.GetStep(end) <= minStep {
			break
		}
		end = end.Next(minD)
		dirs = append(dirs, minD)
	}
	return dirs, end
}

// ConvertWallIndexDirection maps a 6-direction-star hop taken from wall i to
// the corresponding cell-direction label: along directions pass through
// unchanged, and each diagonal resolves to the along-direction implied by
// the wall's own orientation (z).
func ConvertWallIndexDirection(i maze.WallIndex, d direction.Direction) direction.Direction {
	if d.IsAlong() {
		return d
	}
	switch d {
	case direction.NorthEast:
		if i.Z == 0 {
			return direction.North
		}
		return direction.East
	case direction.SouthWest:
		if i.Z == 0 {
			return direction.South
		}
		return direction.West
	case direction.NorthWest:
		if i.Z == 0 {
			return direction.North
		}
		return direction.West
	case direction.SouthEast:
		if i.Z == 0 {
			return direction.South
		}
		return direction.East
	}
	return d
}

// ConvertWallIndexDirectionsToPositionDirections turns a wall-index
// direction path (as produced by CalcShortestDirections, starting at
// StartWallIndex) into a cell-direction path, honoring that each diagonal
// hop resolves differently depending on the wall it was taken from.
func ConvertWallIndexDirectionsToPositionDirections(src []direction.Direction) []direction.Direction {
	if len(src) < 2 {
		return nil
	}
	dirs := make([]direction.Direction, 0, len(src)+1)
	i := StartWallIndex
	dirs = append(dirs, direction.North) // start cell
	for _, d := range src {
		dirs = append(dirs, ConvertWallIndexDirection(i, d))
		i = i.Next(d)
	}
	return dirs
}

// AppendStraightDirections extends dirs from its terminal wall with further
// hops in its own last direction for as long as the next wall is passable.
func AppendStraightDirections(m *maze.Maze, dirs []direction.Direction, start maze.WallIndex) []direction.Direction {
	if len(dirs) == 0 {
		return dirs
	}
	i := start
	for _, d := range dirs {
		i = i.Next(d)
	}
	d := dirs[len(dirs)-1]
	for {
		i = i.Next(d)
		if m.IsWall(i) {
			break
		}
		dirs = append(dirs, d)
	}
	return dirs
}
