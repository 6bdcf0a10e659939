package assemble

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/tile"
)

// ctxCheckMask sets how often the searcher polls its context (every 1024 placements).
const ctxCheckMask = 1023

// searcher owns the mutable search state: the row-major cells and the used
// flags. Every place/mark has an exact inverse on the failure path.
type searcher struct {
	idx   *Index
	opts  Options
	n     int         // grid side G
	cells []Placement // row-major, len n*n
	used  map[int]bool
	stats Stats
}

var emptyCell = Placement{ID: -1}

// Assemble arranges tiles into a square layout whose shared edges all match.
// The tile count must be a perfect square; this is checked before searching.
//
// Returns ErrNoTiles, ErrNonSquareTileCount, ErrUnsolvable (wrapped with the
// deepest cell reached), tile.ErrDuplicateID, tile.ErrShape, ctx.Err() or a
// hook error.
func Assemble(tiles []tile.Tile, opts ...Option) (*Layout, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	if _, ok := isqrt(len(tiles)); !ok {
		return nil, fmt.Errorf("%d tiles: %w", len(tiles), ErrNonSquareTileCount)
	}
	idx, err := NewIndex(tiles)
	if err != nil {
		return nil, err
	}

	return AssembleIndex(idx, opts...)
}

// AssembleIndex runs the search over a prebuilt index.
func AssembleIndex(idx *Index, opts ...Option) (*Layout, error) {
	if idx == nil || idx.Len() == 0 {
		return nil, ErrNoTiles
	}
	n, ok := isqrt(idx.Len())
	if !ok {
		return nil, fmt.Errorf("%d tiles: %w", idx.Len(), ErrNonSquareTileCount)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	s := &searcher{
		idx:   idx,
		opts:  o,
		n:     n,
		cells: make([]Placement, n*n),
		used:  make(map[int]bool, idx.Len()),
	}
	for i := range s.cells {
		s.cells[i] = emptyCell
	}

	solved, err := s.fill(0)
	if err != nil {
		return nil, err
	}
	if !solved {
		r, c := s.stats.Deepest/n, s.stats.Deepest%n
		return nil, fmt.Errorf("no valid placement at cell (%d,%d) of %dx%d: %w", r, c, n, n, ErrUnsolvable)
	}

	return newLayout(idx, n, s.cells, s.stats), nil
}

// fill tries every candidate for cell pos and recurses to pos+1.
// It reports true once the last cell has been filled.
func (s *searcher) fill(pos int) (bool, error) {
	if pos == len(s.cells) {
		return true, nil
	}
	if pos > s.stats.Deepest {
		s.stats.Deepest = pos
	}
	r, c := pos/s.n, pos%s.n

	var above, left *Placement
	if r > 0 {
		above = &s.cells[pos-s.n]
	}
	if c > 0 {
		left = &s.cells[pos-1]
	}

	for _, p := range s.idx.Candidates(above, left) {
		if s.used[p.ID] {
			continue
		}
		if err := s.place(pos, p); err != nil {
			return false, err
		}
		ok, err := s.fill(pos + 1)
		if err != nil || ok {
			return ok, err
		}
		s.unplace(pos, p)
	}

	return false, nil
}

func (s *searcher) place(pos int, p Placement) error {
	s.cells[pos] = p
	s.used[p.ID] = true
	s.stats.Placements++

	if s.stats.Placements&ctxCheckMask == 0 {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}
	}
	if s.opts.OnPlace != nil {
		if err := s.opts.OnPlace(pos/s.n, pos%s.n, p); err != nil {
			return fmt.Errorf("assemble: OnPlace hook at (%d,%d): %w", pos/s.n, pos%s.n, err)
		}
	}

	return nil
}

func (s *searcher) unplace(pos int, p Placement) {
	s.cells[pos] = emptyCell
	delete(s.used, p.ID)
	s.stats.Backtracks++
}

// isqrt returns the integer square root of n and whether n is a perfect square.
func isqrt(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}

	return r, r*r == n
}
