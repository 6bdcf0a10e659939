package jigsaw

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/jigsaw/assemble"
	"github.com/katalvlaran/jigsaw/bitgrid"
	"github.com/katalvlaran/jigsaw/pattern"
	"github.com/katalvlaran/jigsaw/picture"
	"github.com/katalvlaran/jigsaw/tile"
)

// Options configures Solve. The zero value searches for pattern.SeaMonster
// and counts covered pixels with pattern.Approximate.
type Options struct {
	// Mask is the motif to search for; an empty mask selects pattern.SeaMonster.
	Mask pattern.Mask
	// Overlap selects how covered pixels are subtracted.
	Overlap pattern.OverlapMode
	// OnPlace is forwarded to assemble.WithOnPlace when non-nil.
	OnPlace func(row, col int, p assemble.Placement) error
}

// Result carries both answers and the intermediate structures behind them.
type Result struct {
	Tiles     []tile.Tile
	Layout    *assemble.Layout
	Image     bitgrid.Grid
	Detection pattern.Detection
	// Mask is the motif that was searched for, after defaults.
	Mask pattern.Mask

	// CornerProduct is the product of the four corner tile ids.
	CornerProduct int
	// Roughness is the count of set pixels outside any motif match.
	Roughness int
}

// Answers returns CornerProduct and Roughness as decimal strings.
func (r *Result) Answers() (string, string) {
	return strconv.Itoa(r.CornerProduct), strconv.Itoa(r.Roughness)
}

// Covered returns the motif pixels of the detected orientation.
func (r *Result) Covered() bitgrid.Grid {
	return r.Detection.Covered(r.Mask)
}

func (o Options) mask() pattern.Mask {
	if o.Mask.Len() == 0 {
		return pattern.SeaMonster
	}

	return o.Mask
}

// Solve parses input and runs every stage. Errors from each stage are
// returned wrapped with the stage name; match them with errors.Is against
// the tile, assemble, picture and pattern sentinels.
func Solve(ctx context.Context, input string, opts Options) (*Result, error) {
	tiles, err := tile.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return SolveTiles(ctx, tiles, opts)
}

// SolveTiles runs assembly, merge and detection on already parsed tiles.
func SolveTiles(ctx context.Context, tiles []tile.Tile, opts Options) (*Result, error) {
	aopts := []assemble.Option{assemble.WithContext(ctx)}
	if opts.OnPlace != nil {
		aopts = append(aopts, assemble.WithOnPlace(opts.OnPlace))
	}
	layout, err := assemble.Assemble(tiles, aopts...)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	product, err := layout.CornerProduct()
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	img, err := picture.Merge(layout.Tiles())
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	mask := opts.mask()
	det, err := pattern.Detect(img, mask)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	return &Result{
		Tiles:         tiles,
		Layout:        layout,
		Image:         img,
		Detection:     det,
		Mask:          mask,
		CornerProduct: product,
		Roughness:     pattern.Roughness(det, mask, opts.Overlap),
	}, nil
}
