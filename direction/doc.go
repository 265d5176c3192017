// Package direction defines the 8-way Direction used throughout the maze
// core: East, North, West, South and the four diagonals in between, plus
// the relative-direction vocabulary (Front, Left, Right, Back, ...) that
// shares the same underlying integer encoding.
//
// What:
//
//   - Direction is a newtype around a 3-bit modular integer (0..7).
//   - Arithmetic (+, -, unary -) is modulo 8, so East+Left == North and
//     -Left == Right fall out of the encoding instead of a lookup table.
//   - IsAlong() reports the four axis-aligned directions (even values);
//     IsDiag() reports the four diagonals (odd values).
//
// Why:
//
//   - Every other package (maze, stepmap, stepmapwall, stepmapslalom,
//     search) indexes arrays and switches behavior by direction; a single,
//     cheap, comparable value type keeps that code branch-free.
//
// Complexity: every operation here is O(1).
package direction
