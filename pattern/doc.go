// Package pattern searches a bitmap for a fixed multi-cell motif in all eight
// orientations and derives the count of set pixels left outside the motif.
//
// What:
//
//   - Mask is an immutable set of (row, col) offsets with a bounding box.
//     SeaMonster is the built-in 15-cell, 3×20 motif.
//   - Find slides the mask over every valid window (inclusive bounds) and
//     returns the top-left corner of each full match.
//   - Detect runs Find over the 8 orientations of an image and keeps the
//     orientation with the most matches (lowest index on ties).
//   - Roughness subtracts the motif pixels from the set-pixel count, either
//     as matches × mask size (Approximate) or as the exact union of covered
//     pixels (ExactUnion). The two agree whenever matches do not overlap.
//
// Complexity:
//
//   - Find:   O(H·W·k) for a k-cell mask on an H×W image.
//   - Detect: O(8·(n² + n²·k)).
//
// Errors:
//
//   - ErrEmptyMask:       a mask without cells.
//   - ErrPatternNotFound: no orientation yields a single match.
package pattern
