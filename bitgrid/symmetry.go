package bitgrid

// Rotate returns the grid turned a quarter turn clockwise:
// out[r][c] = g[n-1-c][r]. Four rotations give back the original.
func (g Grid) Rotate() Grid {
	n := len(g)
	out := New(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[r][c] = g[n-1-c][r]
		}
	}

	return out
}

// Mirror returns the grid with every row reversed. Mirroring twice is the identity.
func (g Grid) Mirror() Grid {
	n := len(g)
	out := New(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[r][c] = g[r][n-1-c]
		}
	}

	return out
}

// Orient applies o to g. An invalid orientation returns a clone of g.
func (g Grid) Orient(o Orientation) Grid {
	if !o.Valid() {
		return g.Clone()
	}
	var out Grid
	if o.IsMirrored() {
		out = g.Mirror()
	} else {
		out = g.Clone()
	}
	for i := 0; i < o.Turns(); i++ {
		out = out.Rotate()
	}

	return out
}

// Orientations returns all eight symmetries, indexed by Orientation:
// four successive rotations of g, then four of g.Mirror().
// Complexity: O(8·n²).
func (g Grid) Orientations() [NumOrientations]Grid {
	var all [NumOrientations]Grid
	cur := g.Clone()
	for i := 0; i < 4; i++ {
		all[i] = cur
		cur = cur.Rotate()
	}
	cur = g.Mirror()
	for i := 4; i < NumOrientations; i++ {
		all[i] = cur
		cur = cur.Rotate()
	}

	return all
}
