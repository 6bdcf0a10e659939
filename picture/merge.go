package picture

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jigsaw/bitgrid"
)

var (
	// ErrEmptyLayout indicates a layout without tiles.
	ErrEmptyLayout = errors.New("picture: empty layout")
	// ErrShape indicates a ragged layout or inconsistent tile sizes.
	ErrShape = errors.New("picture: inconsistent layout shape")
)

// Merge concatenates the interiors of tiles[r][c] into one square bitmap of
// side len(tiles)·(S−2).
// Complexity: O(G²·S²) time, O(G²·(S−2)²) memory.
func Merge(tiles [][]bitgrid.Grid) (bitgrid.Grid, error) {
	g := len(tiles)
	if g == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	s := tiles[0][0].Size()
	if s < 3 {
		return nil, fmt.Errorf("tile size %d: %w", s, ErrShape)
	}
	for r, row := range tiles {
		if len(row) != g {
			return nil, fmt.Errorf("layout row %d has %d tiles, want %d: %w", r, len(row), g, ErrShape)
		}
		for c, t := range row {
			if t.Size() != s {
				return nil, fmt.Errorf("tile (%d,%d) size %d, want %d: %w", r, c, t.Size(), s, ErrShape)
			}
		}
	}

	inner := s - 2
	out := bitgrid.New(g * inner)
	for tr, row := range tiles {
		for tc, t := range row {
			for i := 1; i <= inner; i++ {
				copy(out[tr*inner+i-1][tc*inner:(tc+1)*inner], t[i][1:s-1])
			}
		}
	}

	return out, nil
}
