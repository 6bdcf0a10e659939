package tile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/jigsaw/bitgrid"
)

const (
	headerPrefix = "Tile "
	headerSuffix = ":"
)

// Parse reads every tile block of input. Blocks are separated by one or more
// blank lines; CRLF endings are accepted. The first tile fixes S for the run.
//
// Errors (wrapped with block number or tile id): ErrEmptyInput, ErrParse,
// ErrDuplicateID, ErrShape.
//
// Complexity: O(N·S²).
func Parse(input string) ([]Tile, error) {
	blocks := splitBlocks(input)
	if len(blocks) == 0 {
		return nil, ErrEmptyInput
	}

	var (
		tiles = make([]Tile, 0, len(blocks))
		seen  = make(map[int]struct{}, len(blocks))
		size  int
		t     Tile
		err   error
	)
	for i, block := range blocks {
		if t, err = parseBlock(block); err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("tile %d: %w", t.ID, ErrDuplicateID)
		}
		seen[t.ID] = struct{}{}

		if i == 0 {
			size = t.Size()
			if size < MinSize || size > MaxSize {
				return nil, fmt.Errorf("tile %d: size %d outside [%d,%d]: %w", t.ID, size, MinSize, MaxSize, ErrShape)
			}
		} else if t.Size() != size {
			return nil, fmt.Errorf("tile %d: size %d, want %d: %w", t.ID, t.Size(), size, ErrShape)
		}
		tiles = append(tiles, t)
	}

	return tiles, nil
}

// ParseID extracts the numeric id from a "Tile <id>:" header line.
func ParseID(header string) (int, error) {
	h := strings.TrimSpace(header)
	rest, ok := strings.CutPrefix(h, headerPrefix)
	if !ok {
		return 0, fmt.Errorf("header %q: missing %q: %w", h, headerPrefix, ErrParse)
	}
	rest, ok = strings.CutSuffix(rest, headerSuffix)
	if !ok {
		return 0, fmt.Errorf("header %q: missing %q: %w", h, headerSuffix, ErrParse)
	}
	id, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("header %q: bad id: %w", h, ErrParse)
	}

	return id, nil
}

func parseBlock(lines []string) (Tile, error) {
	id, err := ParseID(lines[0])
	if err != nil {
		return Tile{}, err
	}
	rows := lines[1:]
	if len(rows) == 0 {
		return Tile{}, fmt.Errorf("tile %d: no pixel rows: %w", id, ErrShape)
	}
	px, err := bitgrid.FromRows(rows)
	switch {
	case err == nil:
		return Tile{ID: id, Pixels: px}, nil
	case isShapeErr(err):
		return Tile{}, fmt.Errorf("tile %d: %v: %w", id, err, ErrShape)
	default:
		return Tile{}, fmt.Errorf("tile %d: %v: %w", id, err, ErrParse)
	}
}

func isShapeErr(err error) bool {
	return errors.Is(err, bitgrid.ErrNotSquare) || errors.Is(err, bitgrid.ErrEmptyGrid)
}

// splitBlocks groups non-blank lines into blocks separated by blank lines.
func splitBlocks(input string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r \t")
		if line == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}
