package pattern

import "github.com/katalvlaran/jigsaw/bitgrid"

// Find returns the top-left corner of every window of img in which all cells
// of m are set. Vertical starts run over 0..H−h and horizontal starts over
// 0..W−w, both inclusive.
func Find(img bitgrid.Grid, m Mask) []Point {
	n := img.Size()
	if m.Len() == 0 || m.height > n || m.width > n {
		return nil
	}

	var out []Point
	for r := 0; r+m.height <= n; r++ {
		for c := 0; c+m.width <= n; c++ {
			if matchesAt(img, m, r, c) {
				out = append(out, Point{Row: r, Col: c})
			}
		}
	}

	return out
}

// Count returns len(Find(img, m)).
func Count(img bitgrid.Grid, m Mask) int {
	return len(Find(img, m))
}

func matchesAt(img bitgrid.Grid, m Mask, r, c int) bool {
	for _, p := range m.cells {
		if !img[r+p.Row][c+p.Col] {
			return false
		}
	}

	return true
}

// Detect searches all 8 orientations of img for m and returns the one with
// the most matches; ties keep the lowest orientation index.
// Returns ErrEmptyMask or ErrPatternNotFound.
func Detect(img bitgrid.Grid, m Mask) (Detection, error) {
	if m.Len() == 0 {
		return Detection{}, ErrEmptyMask
	}

	var best Detection
	for o, g := range img.Orientations() {
		matches := Find(g, m)
		if len(matches) > len(best.Matches) {
			best = Detection{Orientation: bitgrid.Orientation(o), Image: g, Matches: matches}
		}
	}
	if len(best.Matches) == 0 {
		return Detection{}, ErrPatternNotFound
	}

	return best, nil
}

// Covered returns a grid the size of d.Image with every pixel covered by at
// least one match of m set.
func (d Detection) Covered(m Mask) bitgrid.Grid {
	out := bitgrid.New(d.Image.Size())
	for _, at := range d.Matches {
		for _, p := range m.cells {
			out[at.Row+p.Row][at.Col+p.Col] = true
		}
	}

	return out
}

// Roughness returns the set pixels of d.Image that are not part of the motif.
// Approximate assumes matches never share a pixel; ExactUnion counts the
// union of covered pixels.
func Roughness(d Detection, m Mask, mode OverlapMode) int {
	total := d.Image.Count()
	if mode == ExactUnion {
		return total - d.Covered(m).Count()
	}

	return total - m.Len()*len(d.Matches)
}
