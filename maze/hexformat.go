package maze

import "github.com/gomicromouse/mazecore/direction"

// ParseHex decodes the compact hex-grid format: data holds one row of
// mazeSize hex digits per string, each nibble packing the four along-wall
// bits of a cell in some fixed but externally unknown bit order and axis
// orientation. Because that order/orientation isn't recorded in the data
// itself, ParseHex brute-forces all 2×2×2×4×4×4×4 = 2048 combinations of
// (x reversed, y reversed, x/y transposed, bit→direction assignment) and
// accepts the first one that is internally consistent (fewer than
// mazeSize contradicting observations) and places the start cell's walls
// the conventional way: East present, North absent.
func ParseHex(data []string, mazeSize int) (*Maze, error) {
	m, err := New(mazeSize)
	if err != nil {
		return nil, err
	}
	along := direction.Along4()

	nibble := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		default:
			return 0, false
		}
	}

	for _, xr := range []bool{true, false} {
		for _, yr := range []bool{false, true} {
			for _, xy := range []bool{false, true} {
				for _, b0 := range along {
					for _, b1 := range along {
						for _, b2 := range along {
							for _, b3 := range along {
								bitToDir := [4]direction.Direction{b0, b1, b2, b3}
								m.Reset(false)
								diffs := 0
								for y := 0; y < mazeSize; y++ {
									for x := 0; x < mazeSize; x++ {
										xd, yd := x, y
										if !xr {
											xd = mazeSize - x - 1
										}
										if !yr {
											yd = mazeSize - y - 1
										}
										var c byte
										if xy {
											c = byteAt(data, xd, yd)
										} else {
											c = byteAt(data, yd, xd)
										}
										h, ok := nibble(c)
										if !ok {
											continue
										}
										p := Position{X: int8(x), Y: int8(y)}
										if !m.UpdateWall(p, bitToDir[0], h&0x01 != 0, false) {
											diffs++
										}
										if !m.UpdateWall(p, bitToDir[1], h&0x02 != 0, false) {
											diffs++
										}
										if !m.UpdateWall(p, bitToDir[2], h&0x04 != 0, false) {
											diffs++
										}
										if !m.UpdateWall(p, bitToDir[3], h&0x08 != 0, false) {
											diffs++
										}
									}
								}
								if diffs < mazeSize &&
									m.IsWallAt(Position{0, 0}, direction.East) &&
									!m.IsWallAt(Position{0, 0}, direction.North) {
									return m, nil
								}
							}
						}
					}
				}
			}
		}
	}
	return nil, ErrParseFailed
}

func byteAt(data []string, row, col int) byte {
	if row < 0 || row >= len(data) || col < 0 || col >= len(data[row]) {
		return 0
	}
	return data[row][col]
}
