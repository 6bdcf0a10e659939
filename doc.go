// Package jigsaw reassembles a picture from scrambled, rotated and mirrored
// square tiles, then hunts the picture for sea monsters.
//
// 🧩 What it does
//
//	Solve(ctx, input, opts) runs every stage and returns both answers:
//		• the product of the four corner tile ids of the assembled grid
//		• the number of set pixels not covered by any sea monster
//
// ✨ Stages, each in its own subpackage:
//
//	bitgrid/   square boolean grids and their 8 rotation/mirror symmetries
//	tile/      tile model, input parser, border signatures
//	assemble/  inverted edge index + depth-first backtracking assembler
//	picture/   border stripping and interior stitching
//	pattern/   motif masks, 8-orientation detection, roughness
//	render/    text and BMP output of the merged picture
//	config/    YAML settings for cmd/jigsaw
//
// Quick ASCII example of four assembled tiles sharing edges:
//
//	+----+----+
//	| 17 | 42 |
//	+----+----+
//	|  9 |  3 |
//	+----+----+
//
// The corners multiply to 17·42·3·9.
package jigsaw
