package tile

import "github.com/katalvlaran/jigsaw/bitgrid"

// Orient returns t with its pixels transformed by o; the ID is unchanged.
func (t Tile) Orient(o bitgrid.Orientation) Tile {
	return Tile{ID: t.ID, Pixels: t.Pixels.Orient(o)}
}

// Orientations returns the 8 variants of t indexed by bitgrid.Orientation:
// four clockwise rotations, then four rotations of the mirrored grid.
func (t Tile) Orientations() [bitgrid.NumOrientations]Tile {
	var out [bitgrid.NumOrientations]Tile
	for i, g := range t.Pixels.Orientations() {
		out[i] = Tile{ID: t.ID, Pixels: g}
	}

	return out
}
