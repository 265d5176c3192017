// Package stepmapwall implements the wall-indexed step-map solver: the same
// straight-run relaxation as package stepmap, but over WallIndex nodes
// instead of Position cells, so a path can be diagonal-aware without the
// richer slalom-cost node graph package stepmapslalom builds.
//
// What:
//
//   - StartWallIndex is the fictive north wall of the start cell the robot
//     is considered to have just entered through.
//   - CostParams/DefaultCostParams and the two along/diagonal cost tables
//     implement the same trapezoidal cost model as stepmap, using distinct
//     acceleration/speed/segment-length constants for along versus
//     diagonal hops.
//   - Update relaxes every wall reachable from a destination set by walking
//     the 6-direction star (front, back, and the four 45°/135° diagonals)
//     from each dequeued wall, exactly like stepmap's straight-run BFS but
//     keyed on WallIndex.getIndex instead of Position.getIndex.
//   - ConvertDestinations turns a goal cell set into the WallIndex set of
//     their passable along-walls. ConvertWallIndexDirectionsToPositionDirections
//     turns a wall-index direction path back into cell-direction labels.
//
// Complexity: Update is O(N²) amortized, the same argument as stepmap's.
package stepmapwall
