// Package tile models the square, id-tagged pixel tiles of a scrambled
// picture and the border signatures used to fit them together.
//
// What:
//
//   - Tile pairs a globally unique ID with an S×S bitgrid.Grid.
//   - Parse reads blocks of "Tile <id>:" followed by S rows of '#'/'.'.
//   - Orientations yields the 8 rotation/mirror variants of a tile.
//   - Outline encodes the four borders as Signatures (MSB first; top and
//     bottom read left→right, left and right read top→bottom).
//
// Signatures are direction-sensitive: a border read backwards is a different
// number. That is why all 8 orientations are needed instead of 4.
//
// Errors:
//
//   - ErrEmptyInput:  no tile blocks at all.
//   - ErrParse:       malformed header, id or pixel character.
//   - ErrDuplicateID: two blocks share an id.
//   - ErrShape:       a tile's size differs from the first tile, or S ∉ [3,64].
package tile
