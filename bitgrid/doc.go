// Package bitgrid holds square boolean pixel grids and their eight
// rotation/mirror symmetries.
//
// What:
//
//   - Grid is a row-major [][]bool, Grid[r][c], always square.
//   - Rotate turns a grid a quarter turn clockwise, Mirror reverses every row.
//   - Orientation names one of the 8 symmetries: 0–3 are 0..3 clockwise
//     quarter turns, 4–7 are the same turns applied after a mirror.
//
// Why:
//
//   - Tiles and the merged picture share one representation, so the picture
//     can be oriented exactly the way tiles are.
//
// Complexity:
//
//   - Rotate, Mirror, Orient: O(n²) time and memory.
//   - Orientations:           O(8·n²).
//
// Errors:
//
//   - ErrEmptyGrid:  no rows or an empty first row.
//   - ErrNotSquare:  row count differs from a row length.
//   - ErrBadPixel:   a character outside the set/unset alphabet.
package bitgrid
