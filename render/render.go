package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/katalvlaran/jigsaw/bitgrid"
)

// MonsterGlyph marks pixels covered by a motif match in Text output.
const MonsterGlyph = 'O'

// MaxScale bounds the pixel magnification of Image.
const MaxScale = 64

// ErrBadScale indicates a scale outside [1, MaxScale].
var ErrBadScale = errors.New("render: scale out of range")

// Palette indices used by Image.
const (
	Water uint8 = iota
	Rough
	Monster
)

// Palette colours water, rough (set, uncovered) and monster pixels.
var Palette = color.Palette{
	Water:   color.RGBA{R: 0x12, G: 0x2b, B: 0x4f, A: 0xff},
	Rough:   color.RGBA{R: 0x7f, G: 0xb8, B: 0xe6, A: 0xff},
	Monster: color.RGBA{R: 0x2e, G: 0xc2, B: 0x5b, A: 0xff},
}

// Text renders g with '#' for set pixels, '.' for unset ones and 'O' for
// pixels set in covered. covered may be nil.
func Text(g, covered bitgrid.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Size() * (g.Size() + 1))
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, px := range row {
			switch {
			case isCovered(covered, r, c):
				sb.WriteByte(MonsterGlyph)
			case px:
				sb.WriteByte(bitgrid.SetGlyph)
			default:
				sb.WriteByte(bitgrid.UnsetGlyph)
			}
		}
	}

	return sb.String()
}

// Image converts g into a paletted image, each pixel drawn as a scale×scale
// block. covered may be nil.
func Image(g, covered bitgrid.Grid, scale int) (*image.Paletted, error) {
	if scale < 1 || scale > MaxScale {
		return nil, fmt.Errorf("scale %d: %w", scale, ErrBadScale)
	}
	n := g.Size()
	img := image.NewPaletted(image.Rect(0, 0, n*scale, n*scale), Palette)
	for r, row := range g {
		for c, px := range row {
			idx := Water
			switch {
			case isCovered(covered, r, c):
				idx = Monster
			case px:
				idx = Rough
			}
			if idx == Water {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				off := img.PixOffset(c*scale, r*scale+dy)
				for dx := 0; dx < scale; dx++ {
					img.Pix[off+dx] = idx
				}
			}
		}
	}

	return img, nil
}

// WriteBMP encodes Image(g, covered, scale) as BMP to w.
func WriteBMP(w io.Writer, g, covered bitgrid.Grid, scale int) error {
	img, err := Image(g, covered, scale)
	if err != nil {
		return err
	}
	if err = bmp.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode bmp: %w", err)
	}

	return nil
}

func isCovered(covered bitgrid.Grid, r, c int) bool {
	return covered != nil && covered.InBounds(r, c) && covered[r][c]
}
