package maze

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/gomicromouse/mazecore/direction"
)

// Parse reads the ASCII maze text format:
//
//	+---+---+
//	|   S   |
//	+   +---+
//	|     G |
//	+---+---+
//
// and returns a freshly built Maze sized to fit it. A '.' in place of a wall
// character (or a three-space-wide " . " pillar row) means that wall is
// unknown rather than known-absent. The edge length is inferred from the
// byte count of the whole input via the quadratic size formula, so the
// caller never has to pass N explicitly.
func Parse(r io.Reader) (*Maze, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("maze: read maze text: %w", err)
	}
	// Estimated minimum file size F = (4*n + 2)*(2*n + 1); inverting the
	// quadratic for n gives n = (sqrt(2F) - 2) / 4, rounded down.
	fileSize := len(data) + 1
	n := int((math.Sqrt(float64(2*fileSize)) - 2) / 4)
	if n < 1 {
		return nil, fmt.Errorf("%w: input too small to contain a maze", ErrParseFailed)
	}
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	m.Reset(false)
	m.goals = nil

	sc := &byteScanner{data: data}
	for y := int8(n); y >= 0; y-- {
		if int(y) != n {
			sc.skipUntil('|')
			for x := int8(0); x < int8(n); x++ {
				sc.skip(1)
				c := sc.next()
				switch c {
				case 'S':
					m.start = Position{X: x, Y: y}
				case 'G':
					m.goals = append(m.goals, Position{X: x, Y: y})
				}
				sc.skip(1)
				switch sc.next() {
				case '|':
					m.UpdateWall(Position{X: x, Y: y}, direction.East, true, false)
				case ' ':
					m.UpdateWall(Position{X: x, Y: y}, direction.East, false, false)
				}
			}
		}
		for x := int8(0); x < int8(n); x++ {
			sc.skipUntilAnyOf('+', 'o')
			seg := sc.nextN(3)
			switch seg {
			case "---":
				m.UpdateWall(Position{X: x, Y: y}, direction.South, true, false)
			case "   ":
				m.UpdateWall(Position{X: x, Y: y}, direction.South, false, false)
			}
		}
	}
	return m, nil
}

// byteScanner is a minimal forward-only cursor over a byte slice: the
// grid parser reads fixed-width wall and pillar fields one byte at a time.
type byteScanner struct {
	data []byte
	pos  int
}

func (s *byteScanner) next() byte {
	if s.pos >= len(s.data) {
		return 0
	}
	c := s.data[s.pos]
	s.pos++
	return c
}

func (s *byteScanner) nextN(n int) string {
	end := s.pos + n
	if end > len(s.data) {
		end = len(s.data)
	}
	out := string(s.data[s.pos:end])
	s.pos = end
	return out
}

func (s *byteScanner) skip(n int) { s.pos += n }

func (s *byteScanner) skipUntil(c byte) {
	for s.pos < len(s.data) && s.data[s.pos] != c {
		s.pos++
	}
	if s.pos < len(s.data) {
		s.pos++
	}
}

func (s *byteScanner) skipUntilAnyOf(cs ...byte) {
	for s.pos < len(s.data) {
		for _, c := range cs {
			if s.data[s.pos] == c {
				s.pos++
				return
			}
		}
		s.pos++
	}
}

// Print renders m in the ASCII text format Parse reads back, with '.' for
// unknown walls.
func (m *Maze) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n := int8(m.size.N)
	for y := n; y >= 0; y-- {
		if y != n {
			fmt.Fprint(bw, "|")
			for x := int8(0); x < n; x++ {
				p := Position{X: x, Y: y}
				switch {
				case p == m.start:
					fmt.Fprint(bw, " S ")
				case m.isGoal(p):
					fmt.Fprint(bw, " G ")
				default:
					fmt.Fprint(bw, "   ")
				}
				fmt.Fprint(bw, wallGlyph(m.IsKnownAt(p, direction.East), m.IsWallAt(p, direction.East), '|'))
			}
			fmt.Fprintln(bw)
		}
		for x := int8(0); x < n; x++ {
			p := Position{X: x, Y: y}
			k, wl := m.IsKnownAt(p, direction.South), m.IsWallAt(p, direction.South)
			fmt.Fprint(bw, "+")
			if !k {
				fmt.Fprint(bw, " . ")
			} else if wl {
				fmt.Fprint(bw, "---")
			} else {
				fmt.Fprint(bw, "   ")
			}
		}
		fmt.Fprintln(bw, "+")
	}
	return bw.Flush()
}

// PrintPath renders m like Print, but overlays dirs — a direction sequence
// walked from start — by drawing each traversed wall as its direction
// glyph instead of a plain wall/space/dot, in ANSI yellow.
func (m *Maze) PrintPath(w io.Writer, start Position, dirs []direction.Direction) error {
	bw := bufio.NewWriter(w)
	n := int8(m.size.N)
	type trodden struct {
		idx WallIndex
		d   direction.Direction
	}
	var path []trodden
	p := start
	for _, d := range dirs {
		path = append(path, trodden{idx: NewWallIndex(p, d), d: d})
		p = p.Next(d)
	}
	find := func(i WallIndex) (direction.Direction, bool) {
		for _, t := range path {
			if t.idx == i {
				return t.d, true
			}
		}
		return 0, false
	}
	for y := n; y >= 0; y-- {
		if y != n {
			for x := int8(0); x <= n; x++ {
				wi := NewWallIndex(Position{X: x, Y: y}, direction.West)
				if d, ok := find(wi); ok {
					fmt.Fprintf(bw, "\x1b[33m%s\x1b[0m", d)
				} else {
					fmt.Fprint(bw, wallGlyph(m.IsKnownAt(Position{X: x, Y: y}, direction.West), m.IsWallAt(Position{X: x, Y: y}, direction.West), '|'))
				}
				if x == n {
					break
				}
				cell := Position{X: x, Y: y}
				switch {
				case cell == start:
					fmt.Fprint(bw, "\x1b[34m S \x1b[0m")
				case m.isGoal(cell):
					fmt.Fprint(bw, "\x1b[34m G \x1b[0m")
				default:
					fmt.Fprint(bw, "   ")
				}
			}
			fmt.Fprintln(bw)
		}
		for x := int8(0); x < n; x++ {
			fmt.Fprint(bw, "+")
			wi := NewWallIndex(Position{X: x, Y: y}, direction.South)
			if d, ok := find(wi); ok {
				fmt.Fprintf(bw, "\x1b[33m %s \x1b[0m", d)
			} else {
				k, wl := m.IsKnownAt(Position{X: x, Y: y}, direction.South), m.IsWallAt(Position{X: x, Y: y}, direction.South)
				if !k {
					fmt.Fprint(bw, "\x1b[31m . \x1b[0m")
				} else if wl {
					fmt.Fprint(bw, "---")
				} else {
					fmt.Fprint(bw, "   ")
				}
			}
		}
		fmt.Fprintln(bw, "+")
	}
	return bw.Flush()
}

// PrintPositions renders m like Print, highlighting each cell in positions
// with " X " in ANSI yellow.
func (m *Maze) PrintPositions(w io.Writer, positions []Position) error {
	bw := bufio.NewWriter(w)
	exists := func(p Position) bool {
		for _, q := range positions {
			if p == q {
				return true
			}
		}
		return false
	}
	n := int8(m.size.N)
	for y := n; y >= 0; y-- {
		if y != n {
			for x := int8(0); x <= n; x++ {
				cell := Position{X: x, Y: y}
				fmt.Fprint(bw, wallGlyph(m.IsKnownAt(cell, direction.West), m.IsWallAt(cell, direction.West), '|'))
				if x == n {
					break
				}
				switch {
				case cell == m.start:
					fmt.Fprint(bw, "\x1b[34m S \x1b[0m")
				case m.isGoal(cell):
					fmt.Fprint(bw, "\x1b[34m G \x1b[0m")
				case exists(cell):
					fmt.Fprint(bw, "\x1b[33m X \x1b[0m")
				default:
					fmt.Fprint(bw, "   ")
				}
			}
			fmt.Fprintln(bw)
		}
		for x := int8(0); x < n; x++ {
			fmt.Fprint(bw, "+")
			cell := Position{X: x, Y: y}
			k, wl := m.IsKnownAt(cell, direction.South), m.IsWallAt(cell, direction.South)
			if wl {
				fmt.Fprint(bw, "---")
			} else if k {
				fmt.Fprint(bw, "   ")
			} else {
				fmt.Fprint(bw, " . ")
			}
		}
		fmt.Fprintln(bw, "+")
	}
	return bw.Flush()
}

func wallGlyph(known, wall bool, wallChar byte) string {
	if !known {
		return "."
	}
	if wall {
		return string(wallChar)
	}
	return " "
}

func (m *Maze) isGoal(p Position) bool {
	for _, g := range m.goals {
		if g == p {
			return true
		}
	}
	return false
}
