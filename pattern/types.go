package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/jigsaw/bitgrid"
)

var (
	// ErrEmptyMask indicates a mask without any cell.
	ErrEmptyMask = errors.New("pattern: mask has no cells")
	// ErrPatternNotFound indicates that no orientation of the image contains the mask.
	ErrPatternNotFound = errors.New("pattern: motif not found in any orientation")
	// ErrUnknownOverlapMode indicates an unrecognised overlap mode name.
	ErrUnknownOverlapMode = errors.New("pattern: unknown overlap mode")
)

// Point is a (row, col) position or offset.
type Point struct {
	Row, Col int
}

// Mask is a motif as relative cell offsets. Offsets are normalised so the
// smallest row and column are 0. The zero Mask is empty.
type Mask struct {
	cells  []Point
	height int
	width  int
}

// SeaMonster is the motif searched for by default:
//
//	                  #
//	#    ##    ##    ###
//	 #  #  #  #  #  #
var SeaMonster = Mask{
	cells: []Point{
		{0, 18},
		{1, 0}, {1, 5}, {1, 6}, {1, 11}, {1, 12}, {1, 17}, {1, 18}, {1, 19},
		{2, 1}, {2, 4}, {2, 7}, {2, 10}, {2, 13}, {2, 16},
	},
	height: 3,
	width:  20,
}

// Len returns the number of cells.
func (m Mask) Len() int { return len(m.cells) }

// Height returns the bounding row span.
func (m Mask) Height() int { return m.height }

// Width returns the bounding column span.
func (m Mask) Width() int { return m.width }

// Cells returns a copy of the offsets.
func (m Mask) Cells() []Point {
	out := make([]Point, len(m.cells))
	copy(out, m.cells)

	return out
}

// String draws the mask with '#' cells and spaces.
func (m Mask) String() string {
	rows := make([][]byte, m.height)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(" ", m.width))
	}
	for _, p := range m.cells {
		rows[p.Row][p.Col] = bitgrid.SetGlyph
	}
	lines := make([]string, m.height)
	for r, row := range rows {
		lines[r] = string(row)
	}

	return strings.Join(lines, "\n")
}

// OverlapMode selects how covered pixels are counted in Roughness.
type OverlapMode int

const (
	// Approximate subtracts mask size × match count, assuming matches are disjoint.
	Approximate OverlapMode = iota
	// ExactUnion subtracts the size of the union of all covered pixels.
	ExactUnion
)

func (m OverlapMode) String() string {
	switch m {
	case Approximate:
		return "approximate"
	case ExactUnion:
		return "exact"
	}

	return fmt.Sprintf("OverlapMode(%d)", int(m))
}

// ParseOverlapMode accepts "approximate" (or "") and "exact".
func ParseOverlapMode(s string) (OverlapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "approximate", "approx":
		return Approximate, nil
	case "exact", "union":
		return ExactUnion, nil
	}

	return Approximate, fmt.Errorf("%q: %w", s, ErrUnknownOverlapMode)
}

// Detection is the outcome of Detect.
type Detection struct {
	// Orientation of the input image in which the matches were found.
	Orientation bitgrid.Orientation
	// Image is the input image in that orientation.
	Image bitgrid.Grid
	// Matches holds the top-left corner of every match, row-major.
	Matches []Point
}
