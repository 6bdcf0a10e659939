// Package assemble rebuilds a square picture from scrambled tiles by
// depth-first backtracking over an inverted index of edge signatures.
//
// What:
//
//   - Index maps, per Side, every edge Signature to the (tile, orientation)
//     Placements exposing it. Built once, read-only afterwards.
//   - Assemble fills a G×G Layout in row-major order. At each cell the
//     candidates are the intersection of the Top-index entries matching the
//     bottom edge above and the Left-index entries matching the right edge to
//     the left, minus tiles already used. Each tentative placement is undone
//     exactly on a dead end.
//   - Layout exposes the corner ids, their product, oriented tile grids and
//     a Validate pass that re-checks every shared edge.
//
// The search accepts the first complete fill: well-formed puzzles admit one
// tiling up to the 8 symmetries of the whole picture, and all of those share
// the same corner set.
//
// Complexity:
//
//   - NewIndex:  O(8·N·S²) time, O(8·N) memory.
//   - Assemble:  exponential worst case; with unique edges every cell after
//     the first has O(1) candidates and the search is close to O(8·N²).
//
// Options:
//
//   - WithContext(ctx)  sparse cancellation checks (every 1024 placements).
//   - WithOnPlace(fn)   hook on every tentative placement; an error aborts.
//
// Errors:
//
//   - ErrNoTiles:             empty tile set.
//   - ErrNonSquareTileCount:  N is not a perfect square (checked before search).
//   - ErrUnsolvable:          search exhausted; wrapped with the deepest cell.
//   - ErrInvalidLayout:       Validate found a mismatch.
//   - ErrCornerOverflow:      CornerProduct does not fit in an int.
//   - tile.ErrDuplicateID, tile.ErrShape: inconsistent input tiles.
package assemble
