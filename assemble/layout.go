package assemble

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/jigsaw/bitgrid"
	"github.com/katalvlaran/jigsaw/tile"
)

// Layout is a solved G×G arrangement. It is read-only once returned.
type Layout struct {
	// Size is the grid side G.
	Size int
	// Cells[r][c] is the placement at row r, column c.
	Cells [][]Placement
	// Stats are the diagnostics of the search that produced the layout.
	Stats Stats

	idx *Index
}

func newLayout(idx *Index, n int, flat []Placement, stats Stats) *Layout {
	cells := make([][]Placement, n)
	for r := range cells {
		cells[r] = make([]Placement, n)
		copy(cells[r], flat[r*n:(r+1)*n])
	}

	return &Layout{Size: n, Cells: cells, Stats: stats, idx: idx}
}

// At returns the placement at (r, c).
func (l *Layout) At(r, c int) Placement { return l.Cells[r][c] }

// Corners returns the corner tile ids clockwise from the top-left:
// top-left, top-right, bottom-right, bottom-left.
func (l *Layout) Corners() [4]int {
	last := l.Size - 1

	return [4]int{
		l.Cells[0][0].ID,
		l.Cells[0][last].ID,
		l.Cells[last][last].ID,
		l.Cells[last][0].ID,
	}
}

// CornerProduct multiplies the four corner tile ids.
// Returns ErrCornerOverflow when the product does not fit in an int and
// ErrInvalidLayout for a negative corner id.
func (l *Layout) CornerProduct() (int, error) {
	corners := l.Corners()
	p := uint64(1)
	for _, id := range corners {
		if id < 0 {
			return 0, fmt.Errorf("corner id %d is negative: %w", id, ErrInvalidLayout)
		}
		hi, lo := bits.Mul64(p, uint64(id))
		if hi != 0 || lo > math.MaxInt {
			return 0, fmt.Errorf("corners %v: %w", corners, ErrCornerOverflow)
		}
		p = lo
	}

	return int(p), nil
}

// Tiles returns the oriented pixel grid of every cell, in layout order.
// The grids are shared with the index and must not be modified. A cell
// holding an unknown placement yields a nil grid.
func (l *Layout) Tiles() [][]bitgrid.Grid {
	out := make([][]bitgrid.Grid, l.Size)
	for r, row := range l.Cells {
		out[r] = make([]bitgrid.Grid, len(row))
		for c, p := range row {
			out[r][c], _ = l.idx.Oriented(p)
		}
	}

	return out
}

// Validate re-checks the layout: every indexed tile appears exactly once and
// every pair of neighbouring cells shares equal edge signatures.
// Returns ErrInvalidLayout wrapped with the first violation.
// Complexity: O(G²).
func (l *Layout) Validate() error {
	if l.idx == nil || l.Size*l.Size != l.idx.Len() || len(l.Cells) != l.Size {
		return fmt.Errorf("layout size %d: %w", l.Size, ErrInvalidLayout)
	}
	seen := make(map[int]struct{}, l.idx.Len())
	for r, row := range l.Cells {
		if len(row) != l.Size {
			return fmt.Errorf("row %d has %d cells: %w", r, len(row), ErrInvalidLayout)
		}
		for c, p := range row {
			if !l.idx.Has(p.ID) || !p.Orientation.Valid() {
				return fmt.Errorf("cell (%d,%d) holds unknown placement %s: %w", r, c, p, ErrInvalidLayout)
			}
			if _, dup := seen[p.ID]; dup {
				return fmt.Errorf("tile %d placed twice: %w", p.ID, ErrInvalidLayout)
			}
			seen[p.ID] = struct{}{}

			out := l.idx.outline(p)
			if c > 0 && l.idx.outline(row[c-1])[tile.Right] != out[tile.Left] {
				return fmt.Errorf("cells (%d,%d)-(%d,%d) left/right edges differ: %w", r, c-1, r, c, ErrInvalidLayout)
			}
			if r > 0 && l.idx.outline(l.Cells[r-1][c])[tile.Bottom] != out[tile.Top] {
				return fmt.Errorf("cells (%d,%d)-(%d,%d) top/bottom edges differ: %w", r-1, c, r, c, ErrInvalidLayout)
			}
		}
	}

	return nil
}

// String renders the tile ids row by row.
func (l *Layout) String() string {
	var sb strings.Builder
	for r, row := range l.Cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, p := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(p.ID))
		}
	}

	return sb.String()
}
