// Package fixture holds shared test inputs.
package fixture

import (
	_ "embed"
	"strconv"
)

// Sample is the nine-tile 10×10 reference puzzle.
//
//go:embed sample.txt
var Sample string

// Sample answers.
const (
	SampleCornerProduct = 20899048083289
	SampleRoughness     = 273
	SampleCorners       = "1171 1951 2971 3079"
)

// Uniform returns count identical size×size tiles, ids starting at firstID,
// every pixel set when set is true. Any arrangement of such tiles is valid.
func Uniform(count, size, firstID int, set bool) string {
	glyph := byte('.')
	if set {
		glyph = '#'
	}
	row := make([]byte, size)
	for i := range row {
		row[i] = glyph
	}
	var out []byte
	for t := 0; t < count; t++ {
		if t > 0 {
			out = append(out, '\n')
		}
		out = append(out, "Tile "...)
		out = strconv.AppendInt(out, int64(firstID+t), 10)
		out = append(out, ":\n"...)
		for r := 0; r < size; r++ {
			out = append(out, row...)
			out = append(out, '\n')
		}
	}

	return string(out)
}
