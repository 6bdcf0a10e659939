package tile

import "github.com/katalvlaran/jigsaw/bitgrid"

// EncodeOutline reads the four borders of g. Top and bottom are read
// left→right across the first and last row; left and right are read
// top→bottom down the first and last column.
// Complexity: O(n).
func EncodeOutline(g bitgrid.Grid) Outline {
	n := g.Size()
	var o Outline
	if n == 0 {
		return o
	}
	for k := 0; k < n; k++ {
		o[Top] = o[Top]<<1 | bit(g[0][k])
		o[Bottom] = o[Bottom]<<1 | bit(g[n-1][k])
		o[Left] = o[Left]<<1 | bit(g[k][0])
		o[Right] = o[Right]<<1 | bit(g[k][n-1])
	}

	return o
}

// Outline returns the border signatures of t in its current orientation.
func (t Tile) Outline() Outline { return EncodeOutline(t.Pixels) }

func bit(b bool) Signature {
	if b {
		return 1
	}

	return 0
}
