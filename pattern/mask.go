package pattern

import "github.com/katalvlaran/jigsaw/bitgrid"

// NewMask builds a mask from arbitrary offsets, shifting them so the smallest
// row and column become 0 and dropping duplicates.
func NewMask(cells []Point) (Mask, error) {
	if len(cells) == 0 {
		return Mask{}, ErrEmptyMask
	}
	minR, minC := cells[0].Row, cells[0].Col
	for _, p := range cells[1:] {
		minR = min(minR, p.Row)
		minC = min(minC, p.Col)
	}

	var (
		m    Mask
		seen = make(map[Point]struct{}, len(cells))
	)
	for _, p := range cells {
		q := Point{Row: p.Row - minR, Col: p.Col - minC}
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		m.cells = append(m.cells, q)
		m.height = max(m.height, q.Row+1)
		m.width = max(m.width, q.Col+1)
	}

	return m, nil
}

// ParseMask reads a motif drawn with '#' for cells; every other character is
// background. Blank margins are trimmed.
func ParseMask(lines []string) (Mask, error) {
	var cells []Point
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			if line[c] == bitgrid.SetGlyph {
				cells = append(cells, Point{Row: r, Col: c})
			}
		}
	}

	return NewMask(cells)
}
