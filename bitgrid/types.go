package bitgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for bitgrid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("bitgrid: grid must have at least one row and one column")
	// ErrNotSquare indicates a row length differs from the row count.
	ErrNotSquare = errors.New("bitgrid: grid must be square")
	// ErrBadPixel indicates a character that is neither the set nor the unset glyph.
	ErrBadPixel = errors.New("bitgrid: unexpected pixel character")
)

// Pixel glyphs used by FromRows and String.
const (
	SetGlyph   = '#'
	UnsetGlyph = '.'
)

// Grid is a square matrix of pixels, Grid[row][col]. A nil or empty Grid has size 0.
type Grid [][]bool

// Orientation indexes one of the 8 area-preserving symmetries of a square.
type Orientation int

const (
	Identity Orientation = iota
	Rot90
	Rot180
	Rot270
	Mirrored
	MirroredRot90
	MirroredRot180
	MirroredRot270
)

// NumOrientations is the size of the symmetry group of a square.
const NumOrientations = 8

// Valid reports whether o is in [0, 8).
func (o Orientation) Valid() bool {
	return o >= 0 && o < NumOrientations
}

// Turns is the number of clockwise quarter turns applied after the optional mirror.
func (o Orientation) Turns() int { return int(o) % 4 }

// IsMirrored reports whether the orientation mirrors before rotating.
func (o Orientation) IsMirrored() bool { return o >= Mirrored }

// String renders o as e.g. "rot90" or "mirror+rot180".
func (o Orientation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	rot := [4]string{"identity", "rot90", "rot180", "rot270"}[o.Turns()]
	if !o.IsMirrored() {
		return rot
	}
	if o.Turns() == 0 {
		return "mirror"
	}

	return "mirror+" + rot
}
