// Package stepmap implements the cell-based step-map solver: a breadth-
// first search over maze cells whose relaxation walks each straight run in
// one amortized pass and charges it against a precomputed trapezoidal
// velocity-profile cost table, using a FIFO queue of (position, step) items
// with a monotone, non-uniform edge cost baked into the table instead of a
// flat +1 per hop.
//
// What:
//
//   - CostParams/DefaultCostParams and buildStepTable implement a
//     trapezoidal accelerate-cruise-decelerate cost model, scaled down by
//     ScalingFactor so a full traversal fits in a 16-bit step value.
//   - Update relaxes every cell reachable from a destination set, using a
//     flat-cost multi-source BFS when Simple is requested, and a
//     hand-rolled straight-run relaxation otherwise.
//   - CalcShortestDirections/GetNextDirectionCandidates/
//     AppendStraightDirections turn a computed step map into directions.
//
// Errors:
//
//	ErrInvalidDestination – every requested destination cell is outside
//	                          the maze's field.
//
// Complexity: Update is O(N²) amortized (the straight-run walk touches
// each cell O(1) times thanks to the monotonicity argument in the design
// notes); the simple-mode BFS delegation is O(V+E).
package stepmap
