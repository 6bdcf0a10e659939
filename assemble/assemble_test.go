package assemble_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/assemble"
	"github.com/katalvlaran/jigsaw/internal/fixture"
	"github.com/katalvlaran/jigsaw/tile"
)

func parse(t testing.TB, in string) []tile.Tile {
	t.Helper()
	tiles, err := tile.Parse(in)
	require.NoError(t, err)

	return tiles
}

func cornerProduct(t testing.TB, l *assemble.Layout) int {
	t.Helper()
	p, err := l.CornerProduct()
	require.NoError(t, err)

	return p
}

func TestAssemble_Sample(t *testing.T) {
	tiles := parse(t, fixture.Sample)
	l, err := assemble.Assemble(tiles)
	require.NoError(t, err)

	require.Equal(t, 3, l.Size)
	assert.Equal(t, fixture.SampleCornerProduct, cornerProduct(t, l))

	corners := l.Corners()
	got := corners[:]
	sort.Ints(got)
	assert.Equal(t, []int{1171, 1951, 2971, 3079}, got)
	assert.NoError(t, l.Validate())
	assert.Positive(t, l.Stats.Placements)
	assert.Equal(t, 8, l.Stats.Deepest)
	assert.Equal(t, 9, l.Stats.Placements-l.Stats.Backtracks, "every undone placement is counted once")
}

// TestAssemble_EveryIDOnce checks that the layout is a permutation of the input.
func TestAssemble_EveryIDOnce(t *testing.T) {
	tiles := parse(t, fixture.Sample)
	l, err := assemble.Assemble(tiles)
	require.NoError(t, err)

	want := make([]int, 0, len(tiles))
	for _, tl := range tiles {
		want = append(want, tl.ID)
	}
	var have []int
	for _, row := range l.Cells {
		for _, p := range row {
			have = append(have, p.ID)
		}
	}
	assert.ElementsMatch(t, want, have)
}

// TestAssemble_SharedEdgesMatch checks the adjacency property directly on pixels.
func TestAssemble_SharedEdgesMatch(t *testing.T) {
	l, err := assemble.Assemble(parse(t, fixture.Sample))
	require.NoError(t, err)

	grids := l.Tiles()
	for r := 0; r < l.Size; r++ {
		for c := 0; c < l.Size; c++ {
			cur := tile.EncodeOutline(grids[r][c])
			if c > 0 {
				assert.Equal(t, tile.EncodeOutline(grids[r][c-1])[tile.Right], cur[tile.Left], "(%d,%d)", r, c)
			}
			if r > 0 {
				assert.Equal(t, tile.EncodeOutline(grids[r-1][c])[tile.Bottom], cur[tile.Top], "(%d,%d)", r, c)
			}
		}
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	tiles := parse(t, fixture.Sample)
	a, err := assemble.Assemble(tiles)
	require.NoError(t, err)
	b, err := assemble.Assemble(tiles)
	require.NoError(t, err)

	assert.Equal(t, cornerProduct(t, a), cornerProduct(t, b))
	assert.Equal(t, a.String(), b.String())
}

func TestAssemble_UniformTiles(t *testing.T) {
	l, err := assemble.Assemble(parse(t, fixture.Uniform(4, 3, 10, true)))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Size)
	assert.Equal(t, 10*11*12*13, cornerProduct(t, l))
	assert.NoError(t, l.Validate())
	assert.Zero(t, l.Stats.Backtracks)
}

// TestAssemble_Errors maps input classes to sentinels.
func TestAssemble_Errors(t *testing.T) {
	ambiguous := fixture.Uniform(2, 3, 1, true) + "\n" + fixture.Uniform(2, 3, 3, false)
	cases := []struct {
		name  string
		tiles []tile.Tile
		err   error
	}{
		{"Empty", nil, assemble.ErrNoTiles},
		{"Three", parse(t, fixture.Uniform(3, 3, 1, true)), assemble.ErrNonSquareTileCount},
		{"Eight", parse(t, fixture.Uniform(8, 3, 1, false)), assemble.ErrNonSquareTileCount},
		{"Unsolvable", parse(t, ambiguous), assemble.ErrUnsolvable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := assemble.Assemble(tc.tiles)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestAssemble_UnsolvableNamesCell(t *testing.T) {
	ambiguous := fixture.Uniform(2, 3, 1, true) + "\n" + fixture.Uniform(2, 3, 3, false)
	_, err := assemble.Assemble(parse(t, ambiguous))
	require.ErrorIs(t, err, assemble.ErrUnsolvable)
	assert.Contains(t, err.Error(), "cell (")
}

func TestAssemble_RejectsInconsistentTiles(t *testing.T) {
	tiles := parse(t, fixture.Uniform(4, 3, 1, true))
	tiles[3].ID = tiles[0].ID
	_, err := assemble.Assemble(tiles)
	require.ErrorIs(t, err, tile.ErrDuplicateID)

	tiles = parse(t, fixture.Uniform(4, 3, 1, true))
	tiles[2] = parse(t, fixture.Uniform(1, 4, 99, true))[0]
	_, err = assemble.Assemble(tiles)
	require.ErrorIs(t, err, tile.ErrShape)
}

func TestAssemble_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := assemble.Assemble(parse(t, fixture.Sample), assemble.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestAssemble_OnPlaceHook(t *testing.T) {
	var calls int
	_, err := assemble.Assemble(parse(t, fixture.Sample), assemble.WithOnPlace(func(row, col int, p assemble.Placement) error {
		calls++
		return nil
	}))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls, 9)

	stop := errors.New("stop")
	_, err = assemble.Assemble(parse(t, fixture.Sample), assemble.WithOnPlace(func(row, col int, p assemble.Placement) error {
		if row == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestLayout_ValidateDetectsTampering(t *testing.T) {
	l, err := assemble.Assemble(parse(t, fixture.Sample))
	require.NoError(t, err)

	l.Cells[0][1] = l.Cells[0][0]
	require.ErrorIs(t, l.Validate(), assemble.ErrInvalidLayout)
}

func TestLayout_TilesUnknownCell(t *testing.T) {
	l, err := assemble.Assemble(parse(t, fixture.Sample))
	require.NoError(t, err)

	l.Cells[1][1] = assemble.Placement{ID: 42}
	grids := l.Tiles()
	assert.Nil(t, grids[1][1])
	assert.NotNil(t, grids[0][0])
	require.ErrorIs(t, l.Validate(), assemble.ErrInvalidLayout)
}

// TestAssemble_Scrambled solves generated puzzles whose search backtracks
// deeply and checks that every undo left the state exact: the layout is
// edge-consistent, a permutation of the input, and has the known corners.
func TestAssemble_Scrambled(t *testing.T) {
	cases := []struct {
		name       string
		side, size int
		seed       uint64
		long       bool
	}{
		{"4x4", 4, 10, 20, false},
		{"6x6", 6, 10, 3, false},
		{"12x12", 12, 10, 7, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.long && testing.Short() {
				t.Skip("deep search skipped in -short mode")
			}
			puzzle := fixture.Scrambled(tc.side, tc.size, tc.seed)
			tiles := parse(t, puzzle.Input)
			require.Len(t, tiles, tc.side*tc.side)

			l, err := assemble.Assemble(tiles)
			require.NoError(t, err)
			require.NoError(t, l.Validate())

			var have []int
			for _, row := range l.Cells {
				for _, p := range row {
					have = append(have, p.ID)
				}
			}
			assert.ElementsMatch(t, puzzle.IDs, have)
			corners := l.Corners()
			assert.ElementsMatch(t, puzzle.Corners[:], corners[:])
			assert.Equal(t, tc.side*tc.side, l.Stats.Placements-l.Stats.Backtracks,
				"placements left on the board equal the cell count")
		})
	}
}

// TestLayout_CornerProductOverflow uses ids large enough that the product
// of four corners exceeds 2^63.
func TestLayout_CornerProductOverflow(t *testing.T) {
	l, err := assemble.Assemble(parse(t, fixture.Uniform(4, 3, 100000, true)))
	require.NoError(t, err)

	_, err = l.CornerProduct()
	require.ErrorIs(t, err, assemble.ErrCornerOverflow)

	l, err = assemble.Assemble(parse(t, fixture.Uniform(4, 3, 50000, true)))
	require.NoError(t, err)
	p, err := l.CornerProduct()
	require.NoError(t, err)
	assert.Equal(t, 50000*50001*50002*50003, p)
}

func TestLayout_CornerProductNegativeID(t *testing.T) {
	tiles := parse(t, fixture.Uniform(4, 3, 1, true))
	for i := range tiles {
		tiles[i].ID = -1 - i
	}
	l, err := assemble.Assemble(tiles)
	require.NoError(t, err)

	_, err = l.CornerProduct()
	require.ErrorIs(t, err, assemble.ErrInvalidLayout)
}
