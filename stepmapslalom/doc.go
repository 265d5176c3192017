// Package stepmapslalom implements the richest of the three step-map
// solvers: a directional node graph over cell centers (along orientation)
// and wall centers (diagonal orientation), relaxed with slalom-turn-aware
// edge costs instead of a flat per-cell cost.
//
// What:
//
//   - Index is the bit-packed node id: a cell-center node when its
//     orientation is along (Z is always 0), or a wall-center node when its
//     orientation is diagonal.
//   - RunParameter/DefaultRunParameter and buildCostTables combine a
//     trapezoidal motion profile with six fixed slalom-turn costs
//     (F45/F90/F135/F180/FV90/FS90), scaled down by ScalingFactor.
//   - Update relaxes every node reachable from a destination set with a
//     hand-rolled FIFO walk (edge costs are monotone in hop count, so no
//     priority queue is required); UpdateGraph computes the same map by
//     relaxing the same edges through a purpose-built container/heap
//     priority queue seeded at the destination set, as an independent
//     check of Update's FIFO.
//   - GenPathFromMap/Indexes2Directions/GetShortestCost turn a computed
//     cost map into a direction sequence and its total time cost.
//
// Errors:
//
//	ErrInvalidDestination – every requested destination Index is outside
//	                          the maze's field.
//	ErrNoPath             – the predecessor chain from the start node never
//	                          reaches a zero-cost node.
//
// Complexity: Update is O(V+E) over the node graph; UpdateGraph pays the
// same bound plus Dijkstra's O((V+E) log V) heap overhead.
package stepmapslalom
