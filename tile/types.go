// SPDX-License-Identifier: MIT

package tile

import (
	"errors"

	"github.com/katalvlaran/jigsaw/bitgrid"
)

// Sentinel errors; wrapped with the offending block or tile id.
var (
	// ErrEmptyInput indicates the input contains no tile blocks.
	ErrEmptyInput = errors.New("tile: input contains no tiles")
	// ErrParse indicates a malformed header, id or pixel row.
	ErrParse = errors.New("tile: parse error")
	// ErrDuplicateID indicates two tiles carry the same id.
	ErrDuplicateID = errors.New("tile: duplicate tile id")
	// ErrShape indicates a tile whose size differs from the first tile or is out of range.
	ErrShape = errors.New("tile: inconsistent tile shape")
)

const (
	// MinSize keeps a non-empty interior once the border ring is dropped.
	MinSize = 3
	// MaxSize is the widest border that fits a Signature.
	MaxSize = 64
)

// Tile is an immutable square pixel grid tagged with a stable identifier.
type Tile struct {
	ID     int
	Pixels bitgrid.Grid
}

// Size returns the side length S.
func (t Tile) Size() int { return t.Pixels.Size() }

// Side names one border of a square.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides lists all four borders in index order.
var Sides = [4]Side{Top, Right, Bottom, Left}

// Opposite returns the border that touches s on a neighbouring tile.
func (s Side) Opposite() Side { return (s + 2) % 4 }

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}

	return "side?"
}

// Signature is one border read as a binary number, most significant bit first.
type Signature uint64

// Outline holds the four border signatures of an oriented grid, indexed by Side.
type Outline [4]Signature

// Get returns the signature on side s.
func (o Outline) Get(s Side) Signature { return o[s] }
