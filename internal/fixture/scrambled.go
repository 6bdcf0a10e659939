package fixture

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/katalvlaran/jigsaw/bitgrid"
)

// ScrambledFirstID is the id of the top-left tile of a Scrambled puzzle.
// Ids grow row-major from there.
const ScrambledFirstID = 1000

// Puzzle is a generated tile set together with its known solution.
type Puzzle struct {
	// Input holds the tiles in the text format read by tile.Parse.
	Input string
	// IDs lists every tile id in row-major solution order.
	IDs []int
	// Corners are the solution's corner ids: top-left, top-right,
	// bottom-right, bottom-left.
	Corners [4]int
}

// Scrambled cuts a random side×side picture of size×size tiles whose
// neighbours share their border row or column, gives every tile a random
// orientation and shuffles the deck. The same seed gives the same puzzle.
func Scrambled(side, size int, seed uint64) Puzzle {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	cut := make([][]bitgrid.Grid, side)
	for r := range cut {
		cut[r] = make([]bitgrid.Grid, side)
		for c := range cut[r] {
			g := bitgrid.New(size)
			for i := range g {
				for j := range g[i] {
					g[i][j] = rng.IntN(2) == 1
				}
			}
			if c > 0 {
				left := cut[r][c-1]
				for i := 0; i < size; i++ {
					g[i][0] = left[i][size-1]
				}
			}
			if r > 0 {
				copy(g[0], cut[r-1][c][size-1])
			}
			cut[r][c] = g
		}
	}

	type piece struct {
		id int
		px bitgrid.Grid
	}
	var (
		deck = make([]piece, 0, side*side)
		ids  = make([]int, 0, side*side)
	)
	for r := range cut {
		for c := range cut[r] {
			id := ScrambledFirstID + r*side + c
			o := bitgrid.Orientation(rng.IntN(bitgrid.NumOrientations))
			deck = append(deck, piece{id: id, px: cut[r][c].Orient(o)})
			ids = append(ids, id)
		}
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	var sb strings.Builder
	for i, p := range deck {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("Tile ")
		sb.WriteString(strconv.Itoa(p.id))
		sb.WriteString(":\n")
		sb.WriteString(p.px.String())
		sb.WriteByte('\n')
	}

	last := side - 1

	return Puzzle{
		Input: sb.String(),
		IDs:   ids,
		Corners: [4]int{
			ScrambledFirstID,
			ScrambledFirstID + last,
			ScrambledFirstID + side*side - 1,
			ScrambledFirstID + last*side,
		},
	}
}
