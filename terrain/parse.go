package terrain

import (
	"github.com/pkg/errors"
)

// Map text alphabet
//
//	#        impassable (also any unknown character)
//	[space]  buildable empty tile
//	n v > <  path heading north, south, east, west
//	x        path corner, turn inferred from neighbors
const (
	charEmpty  = ' '
	charNorth  = 'n'
	charSouth  = 'v'
	charEast   = '>'
	charWest   = '<'
	charCorner = 'x'
)

// Smallest accepted text: the border ring around a single visible cell
const minTextSize = 2*Border + 1

var (
	ErrMapTooSmall      = errors.New("map smaller than border ring plus one cell")
	ErrRaggedMap        = errors.New("map rows differ in width")
	ErrCornerOutOfRange = errors.New("corner on outer edge of map text")
	ErrAmbiguousCorner  = errors.New("corner does not join two path tiles")
	ErrNoEntrance       = errors.New("map has no entrance")
	ErrNoExit           = errors.New("map has no exit")
)

// Parse converts map text into a Grid
// Rows include the two-cell border ring; visible size is the text size minus the ring
func Parse(rows []string) (*Grid, error) {
	if len(rows) < minTextSize {
		return nil, errors.Wrapf(ErrMapTooSmall, "%d rows", len(rows))
	}
	width := len(rows[0])
	if width < minTextSize {
		return nil, errors.Wrapf(ErrMapTooSmall, "%d columns", width)
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrRaggedMap, "row %d has %d columns, want %d", i, len(row), width)
		}
	}

	g := &Grid{
		Width:  width - 2*Border,
		Height: len(rows) - 2*Border,
		tiles:  make([]Tile, 0, width*len(rows)),
	}

	for row := range rows {
		for col := 0; col < width; col++ {
			tile, err := parseCell(rows, row, col)
			if err != nil {
				return nil, err
			}
			g.tiles = append(g.tiles, tile)
		}
	}

	g.indexEndpoints()
	if len(g.entrances) == 0 {
		return nil, ErrNoEntrance
	}
	if len(g.exits) == 0 {
		return nil, ErrNoExit
	}
	return g, nil
}

// MustParse is Parse for compiled-in maps; it panics on malformed text
func MustParse(rows []string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func parseCell(rows []string, row, col int) (Tile, error) {
	switch rows[row][col] {
	case charEmpty:
		return Empty, nil
	case charNorth:
		return North, nil
	case charSouth:
		return South, nil
	case charEast:
		return East, nil
	case charWest:
		return West, nil
	case charCorner:
		return parseCorner(rows, row, col)
	}
	return OutOfBounds, nil
}

// parseCorner infers the turn of an 'x' cell from the characters around it
// Checked in order: a southbound run above, a northbound run below, an eastbound run to the left,
// and otherwise a westbound entry
func parseCorner(rows []string, row, col int) (Tile, error) {
	if row == 0 || col == 0 || row == len(rows)-1 || col == len(rows[row])-1 {
		return OutOfBounds, errors.Wrapf(ErrCornerOutOfRange, "row %d col %d", row, col)
	}

	up := rows[row-1][col]
	down := rows[row+1][col]
	left := rows[row][col-1]

	var tile Tile
	switch {
	case up == charSouth:
		if left == charWest {
			tile = SouthToWest
		} else {
			tile = SouthToEast
		}
	case down == charNorth:
		if left == charWest {
			tile = NorthToWest
		} else {
			tile = NorthToEast
		}
	case left == charEast:
		if up == charNorth {
			tile = EastToNorth
		} else {
			tile = EastToSouth
		}
	default:
		if up == charNorth {
			tile = WestToNorth
		} else {
			tile = WestToSouth
		}
	}

	// Approach cell sits behind the entry heading, departure cell ahead of the exit heading
	entrance, exit := tile.Corner()
	drow, dcol := entrance.Step()
	if !isPathChar(rows[row-drow][col-dcol]) {
		return OutOfBounds, errors.Wrapf(ErrAmbiguousCorner, "row %d col %d resolved %s without approach", row, col, tile)
	}
	drow, dcol = exit.Step()
	if !isPathChar(rows[row+drow][col+dcol]) {
		return OutOfBounds, errors.Wrapf(ErrAmbiguousCorner, "row %d col %d resolved %s without departure", row, col, tile)
	}
	return tile, nil
}

func isPathChar(c byte) bool {
	switch c {
	case charNorth, charSouth, charEast, charWest, charCorner:
		return true
	}
	return false
}
