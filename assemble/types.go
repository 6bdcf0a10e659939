// SPDX-License-Identifier: MIT

package assemble

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/jigsaw/bitgrid"
)

// Sentinel errors for assembly.
var (
	// ErrNoTiles indicates an empty tile set.
	ErrNoTiles = errors.New("assemble: no tiles")
	// ErrNonSquareTileCount indicates the tile count is not a perfect square.
	ErrNonSquareTileCount = errors.New("assemble: tile count is not a perfect square")
	// ErrUnsolvable indicates that no complete edge-consistent layout exists.
	ErrUnsolvable = errors.New("assemble: no valid layout")
	// ErrInvalidLayout indicates a layout that breaks an edge or uniqueness constraint.
	ErrInvalidLayout = errors.New("assemble: invalid layout")
	// ErrCornerOverflow indicates a corner id product that does not fit in an int.
	ErrCornerOverflow = errors.New("assemble: corner product overflows int")
)

// Placement is one tile in one orientation.
type Placement struct {
	ID          int
	Orientation bitgrid.Orientation
}

func (p Placement) String() string {
	return fmt.Sprintf("%d/%s", p.ID, p.Orientation)
}

// Stats reports search diagnostics.
type Stats struct {
	// Placements counts tentative placements, including the successful ones.
	Placements int
	// Backtracks counts placements that were undone.
	Backtracks int
	// Deepest is the furthest row-major cell index the search entered.
	Deepest int
}

// Option configures Assemble.
type Option func(*Options)

// Options holds the optional search hooks.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnPlace, if non-nil, runs after each tentative placement at (row, col).
	// Returning an error aborts the search with that error.
	OnPlace func(row, col int, p Placement) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnPlace: nil,
	}
}

// WithContext sets the cancellation context. A nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPlace installs fn as the placement hook.
func WithOnPlace(fn func(row, col int, p Placement) error) Option {
	return func(o *Options) {
		o.OnPlace = fn
	}
}
