// Package mazecore is the algorithmic core of a micromouse maze-search
// library: the engine that explores an unknown grid maze from incremental
// wall observations, guarantees discovery of a provably-optimal path from
// start to goal, computes shortest paths under realistic motion-cost models
// (including diagonal slaloms), and recovers the robot's pose from recent
// wall observations when it gets lost.
//
// 🧭 What is mazecore?
//
//	A synchronous, dependency-light library that brings together:
//
//	  • Geometry primitives: 8-way Direction, bit-packed Position/Pose/WallIndex
//	  • Maze: wall bitsets, observation log, text/hex/binary I/O
//	  • Three step-map solvers: cell BFS, wall-indexed BFS, slalom-cost Dijkstra
//	  • SearchAlgorithm / Agent: the exploration state machine and its
//	    position-identification recovery path
//
// Under the hood, everything is organized by concern:
//
//	direction/      — the 8-way Direction newtype and its modular arithmetic
//	maze/           — Position, Pose, WallIndex, WallRecord, and the Maze itself
//	stepmap/        — cell-based BFS with straight-run trapezoidal costs
//	stepmapwall/    — wall-indexed BFS with along/diagonal cost tables
//	stepmapslalom/  — Dijkstra over the directional slalom node graph
//	search/         — Agent: the exploration cascade and position identification
//	examples/       — standalone runnable drivers exercising the Agent loop
//
// The physical robot interface, maze-file CLI drivers, and GUI visualizers
// are deliberately out of scope; this package only ever consumes wall
// observations and returns direction plans.
//
//	go get github.com/gomicromouse/mazecore
package mazecore
