package assemble

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/bitgrid"
	"github.com/katalvlaran/jigsaw/tile"
)

// candidateSet keeps insertion order for deterministic branching and a
// membership map for intersections.
type candidateSet struct {
	list    []Placement
	members map[Placement]struct{}
}

func (cs *candidateSet) add(p Placement) {
	if _, ok := cs.members[p]; ok {
		return
	}
	cs.members[p] = struct{}{}
	cs.list = append(cs.list, p)
}

func (cs *candidateSet) has(p Placement) bool {
	if cs == nil {
		return false
	}
	_, ok := cs.members[p]

	return ok
}

// Index is the inverted edge index over every (tile, orientation) pair.
// It is immutable after NewIndex and safe for concurrent readers.
type Index struct {
	ids      []int       // input order
	slot     map[int]int // id -> position in ids
	size     int         // tile side S
	oriented [][bitgrid.NumOrientations]bitgrid.Grid
	outlines [][bitgrid.NumOrientations]tile.Outline
	sides    [4]map[tile.Signature]*candidateSet
}

// NewIndex derives all orientations and border signatures of tiles and
// indexes them per side.
// Returns ErrNoTiles, tile.ErrDuplicateID or tile.ErrShape.
// Complexity: O(8·N·S²).
func NewIndex(tiles []tile.Tile) (*Index, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	idx := &Index{
		ids:      make([]int, 0, len(tiles)),
		slot:     make(map[int]int, len(tiles)),
		size:     tiles[0].Size(),
		oriented: make([][bitgrid.NumOrientations]bitgrid.Grid, 0, len(tiles)),
		outlines: make([][bitgrid.NumOrientations]tile.Outline, 0, len(tiles)),
	}
	for s := range idx.sides {
		idx.sides[s] = make(map[tile.Signature]*candidateSet)
	}

	for _, t := range tiles {
		if _, dup := idx.slot[t.ID]; dup {
			return nil, fmt.Errorf("tile %d: %w", t.ID, tile.ErrDuplicateID)
		}
		if t.Size() != idx.size || t.Size() < tile.MinSize || t.Size() > tile.MaxSize {
			return nil, fmt.Errorf("tile %d: size %d, want %d: %w", t.ID, t.Size(), idx.size, tile.ErrShape)
		}
		idx.slot[t.ID] = len(idx.ids)
		idx.ids = append(idx.ids, t.ID)

		var (
			grids    = t.Pixels.Orientations()
			outlines [bitgrid.NumOrientations]tile.Outline
		)
		for o, g := range grids {
			outlines[o] = tile.EncodeOutline(g)
			p := Placement{ID: t.ID, Orientation: bitgrid.Orientation(o)}
			for _, side := range tile.Sides {
				idx.insert(side, outlines[o][side], p)
			}
		}
		idx.oriented = append(idx.oriented, grids)
		idx.outlines = append(idx.outlines, outlines)
	}

	return idx, nil
}

func (idx *Index) insert(side tile.Side, sig tile.Signature, p Placement) {
	cs, ok := idx.sides[side][sig]
	if !ok {
		cs = &candidateSet{members: make(map[Placement]struct{})}
		idx.sides[side][sig] = cs
	}
	cs.add(p)
}

// Len returns the number of indexed tiles.
func (idx *Index) Len() int { return len(idx.ids) }

// TileSize returns the common tile side S.
func (idx *Index) TileSize() int { return idx.size }

// IDs returns the tile ids in input order. The slice must not be modified.
func (idx *Index) IDs() []int { return idx.ids }

// Has reports whether id is indexed.
func (idx *Index) Has(id int) bool {
	_, ok := idx.slot[id]

	return ok
}

// Lookup returns the placements whose side exposes sig, in insertion order.
// The slice must not be modified.
func (idx *Index) Lookup(side tile.Side, sig tile.Signature) []Placement {
	if cs, ok := idx.sides[side][sig]; ok {
		return cs.list
	}

	return nil
}

// Outline returns the border signatures of p. ok is false when p.ID is not
// indexed or p.Orientation is invalid.
func (idx *Index) Outline(p Placement) (out tile.Outline, ok bool) {
	if !idx.known(p) {
		return out, false
	}

	return idx.outline(p), true
}

// Oriented returns the pixel grid of p; the grid must not be modified.
// ok is false when p.ID is not indexed or p.Orientation is invalid.
func (idx *Index) Oriented(p Placement) (bitgrid.Grid, bool) {
	if !idx.known(p) {
		return nil, false
	}

	return idx.oriented[idx.slot[p.ID]][p.Orientation], true
}

func (idx *Index) known(p Placement) bool {
	_, ok := idx.slot[p.ID]

	return ok && p.Orientation.Valid()
}

// outline is the unchecked lookup used on the search path, where every
// placement comes from the index itself.
func (idx *Index) outline(p Placement) tile.Outline {
	return idx.outlines[idx.slot[p.ID]][p.Orientation]
}

// Candidates returns the placements that may sit below above and right of
// left. A nil neighbour adds no constraint; with both nil every placement of
// every tile is returned. Used tiles are not filtered here. An unknown
// neighbour yields no candidates.
func (idx *Index) Candidates(above, left *Placement) []Placement {
	if (above != nil && !idx.known(*above)) || (left != nil && !idx.known(*left)) {
		return nil
	}
	switch {
	case above == nil && left == nil:
		all := make([]Placement, 0, len(idx.ids)*bitgrid.NumOrientations)
		for _, id := range idx.ids {
			for o := 0; o < bitgrid.NumOrientations; o++ {
				all = append(all, Placement{ID: id, Orientation: bitgrid.Orientation(o)})
			}
		}
		return all
	case left == nil:
		return idx.Lookup(tile.Top, idx.outline(*above)[tile.Bottom])
	case above == nil:
		return idx.Lookup(tile.Left, idx.outline(*left)[tile.Right])
	}

	var (
		tops  = idx.sides[tile.Top][idx.outline(*above)[tile.Bottom]]
		lefts = idx.sides[tile.Left][idx.outline(*left)[tile.Right]]
	)
	if tops == nil || lefts == nil {
		return nil
	}
	small, other := tops, lefts
	if len(lefts.list) < len(tops.list) {
		small, other = lefts, tops
	}
	out := make([]Placement, 0, len(small.list))
	for _, p := range small.list {
		if other.has(p) {
			out = append(out, p)
		}
	}

	return out
}
