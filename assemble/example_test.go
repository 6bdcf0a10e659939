package assemble_test

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/assemble"
	"github.com/katalvlaran/jigsaw/internal/fixture"
	"github.com/katalvlaran/jigsaw/tile"
)

// ExampleAssemble solves the nine-tile reference puzzle and multiplies the
// corner ids.
func ExampleAssemble() {
	tiles, _ := tile.Parse(fixture.Sample)
	l, err := assemble.Assemble(tiles)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("grid:", l.Size, "x", l.Size)
	product, err := l.CornerProduct()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("corner product:", product)
	fmt.Println("valid:", l.Validate() == nil)

	// Output:
	// grid: 3 x 3
	// corner product: 20899048083289
	// valid: true
}
