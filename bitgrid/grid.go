package bitgrid

import (
	"fmt"
	"strings"
)

// New returns an n×n grid with every pixel unset.
func New(n int) Grid {
	g := make(Grid, n)
	for r := range g {
		g[r] = make([]bool, n)
	}

	return g
}

// FromRows builds a grid from text rows of SetGlyph/UnsetGlyph characters.
// Returns ErrEmptyGrid, ErrNotSquare or ErrBadPixel (wrapped with the row index).
// Complexity: O(n²).
func FromRows(rows []string) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	g := make(Grid, n)
	for r, line := range rows {
		if len(line) != n {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", r, len(line), n, ErrNotSquare)
		}
		g[r] = make([]bool, n)
		for c := 0; c < n; c++ {
			switch line[c] {
			case SetGlyph:
				g[r][c] = true
			case UnsetGlyph:
			default:
				return nil, fmt.Errorf("row %d col %d %q: %w", r, c, line[c], ErrBadPixel)
			}
		}
	}

	return g, nil
}

// Size returns the side length of the grid.
func (g Grid) Size() int { return len(g) }

// InBounds reports whether (r,c) lies within the grid.
func (g Grid) InBounds(r, c int) bool {
	return r >= 0 && r < len(g) && c >= 0 && c < len(g)
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]bool, len(g[r]))
		copy(out[r], g[r])
	}

	return out
}

// Equal reports whether both grids have the same size and pixels.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(o[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != o[r][c] {
				return false
			}
		}
	}

	return true
}

// Count returns the number of set pixels.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		for _, px := range row {
			if px {
				n++
			}
		}
	}

	return n
}

// Interior returns the (n-2)×(n-2) block left after dropping the outer ring.
// Grids smaller than 3 have an empty interior.
func (g Grid) Interior() Grid {
	n := len(g) - 2
	if n <= 0 {
		return Grid{}
	}
	out := make(Grid, n)
	for r := 0; r < n; r++ {
		out[r] = make([]bool, n)
		copy(out[r], g[r+1][1:n+1])
	}

	return out
}

// String renders the grid as newline-separated rows of '#' and '.'.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g) * (len(g) + 1))
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, px := range row {
			if px {
				sb.WriteByte(SetGlyph)
			} else {
				sb.WriteByte(UnsetGlyph)
			}
		}
	}

	return sb.String()
}
