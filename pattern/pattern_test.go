package pattern_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/assemble"
	"github.com/katalvlaran/jigsaw/bitgrid"
	"github.com/katalvlaran/jigsaw/internal/fixture"
	"github.com/katalvlaran/jigsaw/pattern"
	"github.com/katalvlaran/jigsaw/picture"
	"github.com/katalvlaran/jigsaw/tile"
)

func sampleImage(t *testing.T) bitgrid.Grid {
	t.Helper()
	tiles, err := tile.Parse(fixture.Sample)
	require.NoError(t, err)
	l, err := assemble.Assemble(tiles)
	require.NoError(t, err)
	img, err := picture.Merge(l.Tiles())
	require.NoError(t, err)

	return img
}

// stamp draws m into an n×n empty grid at each given corner.
func stamp(n int, m pattern.Mask, at ...pattern.Point) bitgrid.Grid {
	g := bitgrid.New(n)
	for _, a := range at {
		for _, p := range m.Cells() {
			g[a.Row+p.Row][a.Col+p.Col] = true
		}
	}

	return g
}

func TestSeaMonster_Shape(t *testing.T) {
	m := pattern.SeaMonster
	assert.Equal(t, 15, m.Len())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 20, m.Width())

	parsed, err := pattern.ParseMask(strings.Split(m.String(), "\n"))
	require.NoError(t, err)
	assert.ElementsMatch(t, m.Cells(), parsed.Cells())
}

func TestParseMask_TrimsMargins(t *testing.T) {
	m, err := pattern.ParseMask([]string{"", "  #", "  ##", ""})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, "# \n##", m.String())

	_, err = pattern.ParseMask([]string{"   ", ".."})
	require.ErrorIs(t, err, pattern.ErrEmptyMask)
}

func TestNewMask_DropsDuplicates(t *testing.T) {
	m, err := pattern.NewMask([]pattern.Point{{5, 5}, {5, 5}, {6, 7}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []pattern.Point{{0, 0}, {1, 2}}, m.Cells())
}

// TestFind_InclusiveBounds places the motif flush with the bottom-right corner.
func TestFind_InclusiveBounds(t *testing.T) {
	m := pattern.SeaMonster
	g := stamp(20, m, pattern.Point{Row: 17, Col: 0})
	assert.Equal(t, []pattern.Point{{17, 0}}, pattern.Find(g, m))

	small := bitgrid.New(10)
	assert.Nil(t, pattern.Find(small, m), "mask wider than image")
	assert.Zero(t, pattern.Count(small, m))
}

func TestDetect_FindsRotatedMotif(t *testing.T) {
	m := pattern.SeaMonster
	upright := stamp(24, m, pattern.Point{Row: 4, Col: 2}, pattern.Point{Row: 12, Col: 3})
	rotated := upright.Rotate()

	d, err := pattern.Detect(rotated, m)
	require.NoError(t, err)
	assert.Equal(t, bitgrid.Rot270, d.Orientation)
	assert.True(t, d.Image.Equal(upright))
	assert.Equal(t, []pattern.Point{{4, 2}, {12, 3}}, d.Matches)
	assert.Zero(t, pattern.Roughness(d, m, pattern.Approximate))
}

func TestDetect_Errors(t *testing.T) {
	_, err := pattern.Detect(bitgrid.New(24), pattern.SeaMonster)
	require.ErrorIs(t, err, pattern.ErrPatternNotFound)

	_, err = pattern.Detect(bitgrid.New(24), pattern.Mask{})
	require.ErrorIs(t, err, pattern.ErrEmptyMask)
}

func TestDetect_Sample(t *testing.T) {
	img := sampleImage(t)
	d, err := pattern.Detect(img, pattern.SeaMonster)
	require.NoError(t, err)

	assert.Len(t, d.Matches, 2)
	assert.Equal(t, img.Count(), d.Image.Count())
	assert.Equal(t, fixture.SampleRoughness, pattern.Roughness(d, pattern.SeaMonster, pattern.Approximate))
	assert.Equal(t, fixture.SampleRoughness, pattern.Roughness(d, pattern.SeaMonster, pattern.ExactUnion))
}

// TestRoughness_OverlapModes shows where the two modes disagree: overlapping
// matches double-count shared pixels in Approximate mode.
func TestRoughness_OverlapModes(t *testing.T) {
	m, err := pattern.ParseMask([]string{"##"})
	require.NoError(t, err)
	g, err := bitgrid.FromRows([]string{
		"###",
		"...",
		"...",
	})
	require.NoError(t, err)

	d, err := pattern.Detect(g, m)
	require.NoError(t, err)
	require.Equal(t, bitgrid.Identity, d.Orientation)
	require.Len(t, d.Matches, 2)
	assert.Equal(t, -1, pattern.Roughness(d, m, pattern.Approximate))
	assert.Equal(t, 0, pattern.Roughness(d, m, pattern.ExactUnion))
	assert.Equal(t, 3, d.Covered(m).Count())
}

func TestParseOverlapMode(t *testing.T) {
	cases := map[string]pattern.OverlapMode{
		"":            pattern.Approximate,
		"approximate": pattern.Approximate,
		" Exact ":     pattern.ExactUnion,
		"union":       pattern.ExactUnion,
	}
	for in, want := range cases {
		got, err := pattern.ParseOverlapMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := pattern.ParseOverlapMode("fuzzy")
	require.ErrorIs(t, err, pattern.ErrUnknownOverlapMode)
	assert.Equal(t, "exact", pattern.ExactUnion.String())
}
