// Package maze holds the geometry types that are too tightly coupled to
// stand alone (Position, Pose, WallIndex, WallRecord) together with the
// Maze type that stores wall-present/wall-known bitsets, the goal/start
// cells, and the append-only observation log. They live in one package
// because none of them is meaningful in isolation: WallIndex
// canonicalization needs Position and Direction, and Maze needs WallIndex.
//
// What:
//
//   - Position/Pose/WallIndex/WallRecord are small value types; Position and
//     WallIndex know how to compute a dense array index (GetIndex) for use
//     by the step-map solvers, and WallRecord has an explicit bit-packing
//     routine for the part that crosses a process boundary (its file format).
//   - Maze owns wall/known bitsets indexed by WallIndex, a start cell, a
//     goal set, an append-only WallRecord log, and a bounding box of
//     observed cells used to bound solver loops.
//   - updateWall is the single reconciliation point: unknown walls are
//     learned, and a contradicting observation demotes a wall back to
//     unknown rather than failing — "lost" is not "broken".
//
// Why:
//
//   - Every solver (stepmap, stepmapwall, stepmapslalom) and the search
//     state machine only ever reads a Maze through isWall/isKnown/canGo;
//     centralizing that policy here is what lets boundary walls, unknown
//     walls, and contradicted walls behave identically everywhere.
//
// Errors:
//
//	ErrInvalidSize   – NewSize given a non-positive or too-large N.
//	ErrFileIO        – a wall-record file could not be opened/read/written.
//	ErrParseFailed   – the ASCII or hex maze text could not be parsed.
//
// Complexity: isWall/isKnown/setWall/canGo/updateWall are all O(1). Parsing
// is O(N²); the hex parser additionally tries up to 2048 axis/permutation
// combinations, so it is O(2048·N²) — acceptable since it runs once at load
// time, never per solver query.
package maze
