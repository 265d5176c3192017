package stepmap

import (
	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
)

// StepMap is the cell-based step-map solver: it holds a precomputed
// trapezoidal cost table and the dense step array produced by the most
// recent Update call.
type StepMap struct {
	params CostParams
	size   maze.Size
	table  []Step
	step   []Step
}

// New constructs a StepMap sized for size, applying opts.
func New(size maze.Size, opts ...Option) *StepMap {
	s := &StepMap{
		params: DefaultCostParams(),
		size:   size,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.table = buildStepTable(size.N, s.params)
	s.step = make([]Step, size.CellCount())
	return s
}

// GetScalingFactor returns the divisor applied to every cost-table entry,
// so callers can convert a raw Step back to milliseconds.
func (s *StepMap) GetScalingFactor() float64 { return s.params.ScalingFactor }

// GetStep returns the most recently computed step value for p.
func (s *StepMap) GetStep(p maze.Position) Step {
	if !p.IsInsideOfField(s.size) {
		return StepMax
	}
	return s.step[p.GetIndex(s.size)]
}

func clampBBox(m *maze.Maze, dest []maze.Position, size maze.Size) (lx, ly, hx, hy int8) {
	minX, minY, maxX, maxY := m.Bounds()
	for _, p := range dest {
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

// Update relaxes the step value of every cell reachable from dest, per the
// straight-run trapezoidal cost model (or a flat per-hop cost when simple
// is true). It returns ErrInvalidDestination if no destination cell lies
// inside the field.
func (s *StepMap) Update(m *maze.Maze, dest []maze.Position, knownOnly, simple bool) error {
	var inField []maze.Position
	for _, p := range dest {
		if p.IsInsideOfField(s.size) {
			inField = append(inField, p)
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

// updateSimple is a flat-cost multi-source BFS over cell adjacency: each
// along-direction hop costs exactly 1 step regardless of run length. It
// shares the FIFO queue shape of updateStraightRun but relaxes one cell at
// a time instead of an entire straight run per dequeue.
func (s *StepMap) updateSimple(m *maze.Maze, dest []maze.Position, knownOnly bool) error {
	lx, ly, hx, hy := clampBBox(m, dest, s.size)
	inBBox := func(p maze.Position) bool {
		return p.X >= lx && p.X <= hx && p.Y >= ly && p.Y <= hy
	}

	queue := make([]maze.Position, 0, len(dest))
	for _, p := range dest {
		s.step[p.GetIndex(s.size)] = 0
		queue = append(queue, p)
	}

	for len(queue) > 0 {
		focus := queue[0]
		queue = queue[1:]
		focusStep := s.step[focus.GetIndex(s.size)]

		for _, d := range direction.Along4() {
			if !m.CanGoKnownOnly(maze.NewWallIndex(focus, d), knownOnly) {
				continue
			}
			next := focus.Next(d)
			if !next.IsInsideOfField(s.size) || !inBBox(next) {
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

// updateStraightRun is the hand-rolled relaxation: a FIFO queue
// (enqueue/dequeue/relax-neighbors loop), except each dequeued cell relaxes
// an entire straight run in one pass instead of a single +1 hop, charging
// stepTable[i] at the i-th cell of the run.
func (s *StepMap) updateStraightRun(m *maze.Maze, dest []maze.Position, knownOnly bool) error {
	lx, ly, hx, hy := clampBBox(m, dest, s.size)
	inBBox := func(p maze.Position) bool {
		return p.X >= lx && p.X <= hx && p.Y >= ly && p.Y <= hy
	}

	queue := make([]maze.Position, 0, len(dest))
	for _, p := range dest {
		s.step[p.GetIndex(s.size)] = 0
		queue = append(queue, p)
	}

	for len(queue) > 0 {
		focus := queue[0]
		queue = queue[1:]
		focusStep := s.step[focus.GetIndex(s.size)]

		for _, d := range direction.Along4() {
			cur := focus
			for i := 1; i < s.size.N; i++ {
				if !m.CanGoKnownOnly(maze.NewWallIndex(cur, d), knownOnly) {
					break
				}
				next := cur.Next(d)
				if !next.IsInsideOfField(s.size) || !inBBox(next) {
					break
				}
				candidate := focusStep + s.table[i]
				idx := next.GetIndex(s.size)
				if candidate < s.step[idx] {
					s.step[idx] = candidate
					queue = append(queue, next)
				} else {
					break
				}
				cur = next
			}
		}
	}
	return nil
}

// CalcShortestDirections runs Update, then greedily descends from start
// along the steepest strictly-decreasing straight run at each step,
// returning the direction sequence to the nearest destination cell. It
// returns nil if start is unreachable.
func (s *StepMap) CalcShortestDirections(m *maze.Maze, start maze.Position, dest []maze.Position, knownOnly, simple bool) ([]direction.Direction, error) {
	if err := s.Update(m, dest, knownOnly, simple); err != nil {
		return nil, err
	}
	if s.GetStep(start) == StepMax {
		return nil, nil
	}

	var dirs []direction.Direction
	cur := start
	for s.GetStep(cur) != 0 {
		curStep := s.GetStep(cur)
		var bestDir direction.Direction
		var bestRun []direction.Direction
		bestStep := curStep

		for _, d := range direction.Along4() {
			p := cur
			var run []direction.Direction
			lastImprovingStep := curStep
			for {
				if !m.CanGoKnownOnly(maze.NewWallIndex(p, d), knownOnly) {
					break
				}
				next := p.Next(d)
				if !next.IsInsideOfField(s.size) {
					break
				}
				nextStep := s.GetStep(next)
				if nextStep >= lastImprovingStep {
					break
				}
				run = append(run, d)
				lastImprovingStep = nextStep
				p = next
			}
			if len(run) > 0 && lastImprovingStep < bestStep {
				bestStep = lastImprovingStep
				bestDir = d
				bestRun = run
			}
		}
		if len(bestRun) == 0 {
			return nil, nil
		}
		dirs = append(dirs, bestRun...)
		for range bestRun {
			cur = cur.Next(bestDir)
		}
	}
	return dirs, nil
}

// GetStepDownDirections greedily descends from start along the
// strictly-decreasing-step neighbor (4-direction star), mirroring
// stepmapwall's GetStepDownDirections but over cells instead of walls. When
// breakUnknown is true, the descent halts before leaving any cell that
// still has an unknown wall, so the returned path is the known-only prefix
// of the full greedy descent; the pose it stops at is returned alongside.
func (s *StepMap) GetStepDownDirections(m *maze.Maze, start maze.Pose, knownOnly, breakUnknown bool) ([]direction.Direction, maze.Pose) {
	if !start.P.IsInsideOfField(s.size) {
		return nil, start
	}
	end := start
	var dirs []direction.Direction
	for {
		minPose := end
		minStep := StepMax
		for _, d := range direction.Along4() {
			next := end.P
			for i := 1; i < s.size.N; i++ {
				if m.IsWallAt(next, d) || (knownOnly && !m.IsKnownAt(next, d)) {
					break
				}
				next = next.Next(d)
				nextStep := s.GetStep(next)
				if minStep <= nextStep {
					break
				}
				minStep = nextStep
				minPose = maze.NewPose(next, d)
			}
		}
		if s.GetStep(end.P) <= minStep {
			break
		}
		for end.P != minPose.P {
			if breakUnknown && m.UnknownCountAt(end.P) > 0 {
				return dirs, end
			}
			end = end.Next(minPose.D)
			dirs = append(dirs, minPose.D)
		}
	}
	return dirs, end
}

// CalcNextDirections runs GetStepDownDirections with breakUnknown=true to
// find the known-segment run from start, then ranks fallback candidates at
// the segment's end with GetNextDirectionCandidates.
func (s *StepMap) CalcNextDirections(m *maze.Maze, start maze.Pose) (nextDirectionsKnown, nextDirectionCandidates []direction.Direction, end maze.Pose) {
	nextDirectionsKnown, end = s.GetStepDownDirections(m, start, false, true)
	nextDirectionCandidates = s.GetNextDirectionCandidates(m, end)
	return
}

// GetNextDirectionCandidates ranks the four along-directions reachable from
// focus as fallback exploration candidates: ascending neighbor step
// (primary), unknown-walls-present bucketed ahead of fully-known
// (secondary), and a straight-ahead direction preferred over a turn
// (tertiary). Input order breaks remaining ties.
func (s *StepMap) GetNextDirectionCandidates(m *maze.Maze, focus maze.Pose) []direction.Direction {
	type candidate struct {
		d    direction.Direction
		step Step
		unk  bool
		idx  int
	}
	rel := []direction.Direction{direction.Front, direction.Left, direction.Right, direction.Back}
	var cands []candidate
	for i, r := range rel {
		d := focus.D.Add(r)
		wi := maze.NewWallIndex(focus.P, d)
		if m.IsWall(wi) {
			continue
		}
		next := focus.P.Next(d)
		step := s.GetStep(next)
		if step == StepMax {
			continue
		}
		cands = append(cands, candidate{
			d:    d,
			step: step,
			unk:  m.UnknownCountAt(next) > 0,
			idx:  i,
		})
	}

	less := func(a, b candidate) bool {
		if a.step != b.step {
			return a.step < b.step
		}
		if a.unk != b.unk {
			return a.unk // unknown-having neighbor sorts first
		}
		aStraight := a.d == focus.D
		bStraight := b.d == focus.D
		if aStraight != bStraight {
			return aStraight
		}
		return a.idx < b.idx
	}
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && less(cands[j], cands[j-1]); j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}

	out := make([]direction.Direction, len(cands))
	for i, c := range cands {
		out[i] = c.d
	}
	return out
}

// AppendStraightDirections extends dirs from its terminal cell for as long
// as the next wall is passable under knownOnly. The candidate set is
// re-derived every iteration from the last two directions taken: straight
// ahead always, and when diagEnabled and the path just turned 90°, the
// opposite 90° turn first, so a turning run zigzags deeper into the goal
// region through the cells a diagonal cut would pass through. Only along
// directions are ever appended; a path ending in a diagonal label stops
// extending immediately. Needs at least two directions to know whether the
// path ended mid-turn, so shorter inputs are returned unchanged.
func (s *StepMap) AppendStraightDirections(m *maze.Maze, start maze.Position, dirs []direction.Direction, knownOnly, diagEnabled bool) []direction.Direction {
	if len(dirs) < 2 {
		return dirs
	}
	p := start
	for _, d := range dirs {
		p = p.Next(d)
	}
	prevDir := dirs[len(dirs)-2]
	dir := dirs[len(dirs)-1]

	for {
		var candidates []direction.Direction
		switch rel := dir.Sub(prevDir); {
		case diagEnabled && rel == direction.Left:
			candidates = []direction.Direction{dir.Add(direction.Right), dir}
		case diagEnabled && rel == direction.Right:
			candidates = []direction.Direction{dir.Add(direction.Left), dir}
		default:
			candidates = []direction.Direction{dir}
		}
		extended := false
		for _, d := range candidates {
			if !d.IsAlong() {
				continue
			}
			if !m.CanGoKnownOnly(maze.NewWallIndex(p, d), knownOnly) {
				continue
			}
			dirs = append(dirs, d)
			p = p.Next(d)
			prevDir = dir
			dir = d
			extended = true
			break
		}
		if !extended {
			return dirs
		}
	}
}
