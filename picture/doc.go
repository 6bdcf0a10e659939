// Package picture stitches the interiors of placed tiles into one bitmap.
//
// Merge drops row and column 0 and S−1 of every tile and lays the remaining
// (S−2)×(S−2) blocks edge to edge in layout order, so a G×G layout of S×S
// tiles yields a square bitmap of side G·(S−2).
//
// Errors:
//
//   - ErrEmptyLayout: no rows, or a row without tiles.
//   - ErrShape:       ragged layout or tiles of differing or too small size.
package picture
