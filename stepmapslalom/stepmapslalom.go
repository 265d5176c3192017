package stepmapslalom

import (
	"container/heap"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
)

// StepMapSlalom is the slalom-cost solver: a directional node graph over
// cell centers and wall centers, relaxed by turn-aware edge costs.
type StepMapSlalom struct {
	params     RunParameter
	size       maze.Size
	costAlong  []Cost
	costDiag   []Cost
	costSlalom [slalomCount]Cost
	cost       []Cost
	from       []Index
}

// New constructs a StepMapSlalom sized for size, applying opts.
func New(size maze.Size, opts ...Option) *StepMapSlalom {
	s := &StepMapSlalom{params: DefaultRunParameter(), size: size}
	for _, opt := range opts {
		opt(s)
	}
	s.costAlong, s.costDiag, s.costSlalom = buildCostTables(size.N, s.params)
	n := indexCapacity(size)
	s.cost = make([]Cost, n)
	s.from = make([]Index, n)
	return s
}

// GetCost returns the most recently computed cost value for i, or CostMax
// if i lies outside the field.
func (s *StepMapSlalom) GetCost(i Index) Cost {
	if !i.IsInsideOfField(s.size) {
		return CostMax
	}
	return s.cost[i.GetIndex(s.size)]
}

// ConvertDestinations turns a goal cell set into the Index set of their
// incoming cell-center nodes, the form Update expects as its destination
// set.
func ConvertDestinations(positions []maze.Position) []Index {
	var dest []Index
	for _, p := range positions {
		for _, nd := range direction.Along4() {
			dest = append(dest, NewIndexCell(p, nd))
		}
	}
	return dest
}

type transition struct {
	to   Index
	cost Cost
}

// transitionsFrom enumerates every edge Update would relax directly out of
// focus, split per-node on along vs. diagonal orientation. It returns the
// full candidate set regardless of the live cost map, so the same logic
// can drive both the hand-rolled FIFO relaxation and UpdateGraph's
// priority-queue mode.
func (s *StepMapSlalom) transitionsFrom(focus Index, canGo func(maze.WallIndex) bool) []transition {
	var out []transition
	add := func(to Index, cost Cost) {
		out = append(out, transition{to: to, cost: cost})
	}
	nd := focus.ND

	if nd.IsAlong() {
		if !canGo(focus.WallIndex()) {
			return nil
		}
		n := 1
		for i := focus; canGo(i.WallIndex()); n++ {
			next := i.Next(nd)
			add(next, s.costAlong[n])
			i = next
		}
		for _, rel45 := range [2]direction.Direction{direction.Left45, direction.Right45} {
			d45 := nd.Add(rel45)
			d90 := d45.Add(rel45)
			d135 := d90.Add(rel45)
			d180 := d135.Add(rel45)

			i45 := focus.Next(d45)
			if !canGo(i45.WallIndex()) {
				continue
			}
			if canGo(i45.Next(i45.ND).WallIndex()) {
				add(i45, s.costSlalom[F45])
			}
			v90 := focus.Position().Next(nd).Next(d90)
			add(NewIndexCell(v90, d90), s.costSlalom[F90])

			i135 := i45.Next(d135)
			if !canGo(i135.WallIndex()) {
				continue
			}
			if canGo(i135.Next(i135.ND).WallIndex()) {
				add(i135, s.costSlalom[F135])
			}
			add(NewIndexCell(v90.Next(d180), d180), s.costSlalom[F180])
		}
		return out
	}

	// Diagonal origin: focus is a wall-center node.
	iF := focus.Next(nd)
	if !canGo(iF.WallIndex()) {
		return nil
	}
	n := 1
	for i := iF; ; n++ {
		next := i.Next(nd)
		if !canGo(next.WallIndex()) {
			break
		}
		add(i, s.costDiag[n])
		i = next
	}
	rel45 := focus.RelativeDirectionDiagToAlong()
	d45 := nd.Add(rel45)
	d90 := d45.Add(rel45)
	d135 := d90.Add(rel45)

	add(focus.Next(d45), s.costSlalom[F45])

	i90 := iF.Next(d90)
	if canGo(i90.WallIndex()) {
		if canGo(i90.Next(i90.ND).WallIndex()) {
			add(i90, s.costSlalom[FV90])
		}
		add(focus.Next(d135), s.costSlalom[F135])
	}
	return out
}

// Update relaxes every node reachable from dest with a plain FIFO queue:
// edge costs are monotone in hop count, so no priority queue is required
// for correctness.
func (s *StepMapSlalom) Update(m *maze.Maze, dest []Index, knownOnly bool) error {
	var inField []Index
	for _, i := range dest {
		if i.IsInsideOfField(s.size) {
			inField = append(inField, i)
		}
	}
	if len(inField) == 0 {
		return ErrInvalidDestination
	}

	for i := range s.cost {
		s.cost[i] = CostMax
	}

	canGo := func(wi maze.WallIndex) bool {
		return !m.IsWall(wi) && (!knownOnly || m.IsKnown(wi))
	}

	queue := make([]Index, 0, len(inField))
	for _, i := range inField {
		s.cost[i.GetIndex(s.size)] = 0
		queue = append(queue, i)
	}

	for len(queue) > 0 {
		focus := queue[0]
		queue = queue[1:]
		focusCost := s.cost[focus.GetIndex(s.size)]

		for _, t := range s.transitionsFrom(focus, canGo) {
			if !t.to.IsInsideOfField(s.size) {
				continue
			}
			nextCost := focusCost + t.cost
			idx := t.to.GetIndex(s.size)
			if s.cost[idx] <= nextCost {
				continue
			}
			s.cost[idx] = nextCost
			s.from[idx] = focus
			queue = append(queue, t.to)
		}
	}
	return nil
}

// pqItem is one entry in UpdateGraph's priority queue: the node reached and
// the cost it was reached at (lazy-decrease-key — stale entries are
// recognized and skipped via the live cost map, rather than removed).
type pqItem struct {
	node Index
	cost Cost
}

// nodeHeap is a container/heap.Interface min-heap over pqItem.cost, built
// purpose-specific to the Index node space instead of a generic weighted
// graph so UpdateGraph never needs more than "push a reachable node,
// pop the cheapest one so far".
type nodeHeap []pqItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// UpdateGraph computes the same cost map as Update, relaxing the same
// transitionsFrom edges out of dest, but with a min-heap priority queue
// seeded at dest with cost 0 instead of Update's FIFO queue — an
// independent check of the hand-rolled relaxation above. Built directly on
// transitionsFrom rather than a materialized general-purpose graph.
func (s *StepMapSlalom) UpdateGraph(m *maze.Maze, dest []Index, knownOnly bool) error {
	var inField []Index
	for _, i := range dest {
		if i.IsInsideOfField(s.size) {
			inField = append(inField, i)
		}
	}
	if len(inField) == 0 {
		return ErrInvalidDestination
	}

	for i := range s.cost {
		s.cost[i] = CostMax
	}

	canGo := func(wi maze.WallIndex) bool {
		return !m.IsWall(wi) && (!knownOnly || m.IsKnown(wi))
	}

	pq := &nodeHeap{}
	heap.Init(pq)
	for _, i := range inField {
		s.cost[i.GetIndex(s.size)] = 0
		heap.Push(pq, pqItem{node: i, cost: 0})
	}

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		idx := top.node.GetIndex(s.size)
		if top.cost > s.cost[idx] {
			continue // stale entry, a cheaper path already settled this node
		}

		for _, t := range s.transitionsFrom(top.node, canGo) {
			if !t.to.IsInsideOfField(s.size) {
				continue
			}
			nextCost := top.cost + t.cost
			nextIdx := t.to.GetIndex(s.size)
			if nextCost >= s.cost[nextIdx] {
				continue
			}
			s.cost[nextIdx] = nextCost
			s.from[nextIdx] = top.node
			heap.Push(pq, pqItem{node: t.to, cost: nextCost})
		}
	}
	return nil
}

// buildReversedAdjacency enumerates every node in the field, collects its
// forward transitionsFrom edges, and files each one under the *destination*
// node's index: reverse[i] holds every transition{to: n, cost} such that the forward edge n→(node at
// index i) exists.
func (s *StepMapSlalom) buildReversedAdjacency(canGo func(maze.WallIndex) bool) [][]transition {
	reverse := make([][]transition, len(s.cost))
	for x := int8(0); x < int8(s.size.N); x++ {
		for y := int8(0); y < int8(s.size.N); y++ {
			p := maze.Position{X: x, Y: y}
			var nodes []Index
			for _, nd := range direction.Along4() {
				nodes = append(nodes, NewIndexCell(p, nd))
			}
			for _, nd := range direction.Diag4() {
				for _, z := range [2]uint8{0, 1} {
					nodes = append(nodes, Index{X: x, Y: y, Z: z, ND: nd})
				}
			}
			for _, n := range nodes {
				for _, t := range s.transitionsFrom(n, canGo) {
					if !t.to.IsInsideOfField(s.size) {
						continue
					}
					toIdx := t.to.GetIndex(s.size)
					reverse[toIdx] = append(reverse[toIdx], transition{to: n, cost: t.cost})
				}
			}
		}
	}
	return reverse
}

// GenPathFromMap reconstructs the shortest path by starting from the
// virtual "about to leave the start" node and following predecessors until
// a zero-cost node is reached, emitting each node's Opposite to recover the
// forward-facing path.
func (s *StepMapSlalom) GenPathFromMap() ([]Index, error) {
	var path []Index
	i := IndexStart.Opposite()
	for {
		path = append(path, i.Opposite())
		idx := i.GetIndex(s.size)
		if s.cost[idx] == 0 {
			break
		}
		from := s.from[idx]
		if s.cost[idx] <= s.cost[from.GetIndex(s.size)] {
			return nil, ErrNoPath
		}
		i = from
	}
	return path, nil
}

// GetShortestCost returns the total cost (ms) of the path GenPathFromMap
// would produce.
func (s *StepMapSlalom) GetShortestCost() Cost {
	idx := IndexStart.Opposite().GetIndex(s.size)
	return Cost(float64(s.cost[idx]) * s.params.ScalingFactor)
}

func absInt8(v int8) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}

// Indexes2Directions converts an Index path (as produced by GenPathFromMap)
// to a Direction sequence, honoring that a single hop may expand into
// multiple grid-direction steps (an F180, for instance, emits three
// direction labels). Only the diagonal-enabled form is implemented: this
// solver always assumes diagonals, so a non-diagonal fallback would have
// no caller here.
func Indexes2Directions(path []Index) []direction.Direction {
	var dirs []direction.Direction
	for i := 0; i < len(path)-1; i++ {
		cur, nxt := path[i], path[i+1]
		nd := cur.ND
		relP := nxt.Position().Sub(cur.Position())
		relND := nxt.ND.Sub(nd)

		if nd.IsAlong() {
			switch relND {
			case direction.Front:
				steps := absInt8(relP.X) + absInt8(relP.Y)
				for j := 0; j < steps; j++ {
					dirs = append(dirs, nd)
				}
			case direction.Left45:
				dirs = append(dirs, nd, nd.Add(direction.Left))
			case direction.Right45:
				dirs = append(dirs, nd, nd.Add(direction.Right))
			case direction.Left:
				dirs = append(dirs, nd, nd.Add(direction.Left))
			case direction.Right:
				dirs = append(dirs, nd, nd.Add(direction.Right))
			case direction.Left135:
				dirs = append(dirs, nd, nd.Add(direction.Left), nd.Add(direction.Back))
			case direction.Right135:
				dirs = append(dirs, nd, nd.Add(direction.Right), nd.Add(direction.Back))
			case direction.Back:
				dirs = append(dirs, nd)
				rotated := relP.Rotate(nd.Neg())
				if rotated.Y > 0 {
					dirs = append(dirs, nd.Add(direction.Left), nd.Add(direction.Back))
				} else {
					dirs = append(dirs, nd.Add(direction.Right), nd.Add(direction.Back))
				}
			}
			continue
		}

		switch relND {
		case direction.Front:
			for idx := cur; idx != nxt; idx = idx.Next(idx.ND) {
				rel45 := idx.RelativeDirectionDiagToAlong()
				dirs = append(dirs, idx.ND.Add(rel45))
			}
		case direction.Left45:
			dirs = append(dirs, nd.Add(direction.Left45))
		case direction.Right45:
			dirs = append(dirs, nd.Add(direction.Right45))
		case direction.Left:
			dirs = append(dirs, nd.Add(direction.Left45), nd.Add(direction.Left135))
		case direction.Right:
			dirs = append(dirs, nd.Add(direction.Right45), nd.Add(direction.Right135))
		case direction.Left135:
			dirs = append(dirs, nd.Add(direction.Left45), nd.Add(direction.Left135))
		case direction.Right135:
			dirs = append(dirs, nd.Add(direction.Right45), nd.Add(direction.Right135))
		}
	}
	return dirs
}

// CalcShortestDirections runs Update, reconstructs the path, and converts
// it to a Direction sequence in one call. Returns nil, nil if no path to a
// destination exists.
func (s *StepMapSlalom) CalcShortestDirections(m *maze.Maze, dest []Index, knownOnly bool) ([]direction.Direction, error) {
	if err := s.Update(m, dest, knownOnly); err != nil {
		return nil, err
	}
	path, err := s.GenPathFromMap()
	if err != nil {
		return nil, nil
	}
	return Indexes2Directions(path), nil
}
