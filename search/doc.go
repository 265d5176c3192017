// Package search implements the exploration state machine, the thin Agent
// that carries pose/flags for it, and position identification. The three
// are kept in one package because position identification shares the state
// machine's cascade dispatcher and its idMaze/idOffset state is an
// Agent-owned detail, not a standalone component.
package search
