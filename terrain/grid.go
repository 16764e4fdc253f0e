package terrain

import "math"

const (
	// TileSize is the world-space edge length of one tile
	TileSize = 32.0

	// Border is the ring of OutOfBounds cells around the visible map
	// Entrances and exits sit on the inner cell of the ring
	Border = 2
)

// Pos is a true-grid coordinate (border included)
type Pos struct {
	Row, Col int
}

// Grid is an immutable parsed map
// Row and column arguments are true coordinates unless a method says otherwise
type Grid struct {
	Width  int // Visible columns
	Height int // Visible rows

	tiles     []Tile
	entrances []Pos
	exits     []Pos
}

// TrueWidth returns the column count including the border ring
func (g *Grid) TrueWidth() int {
	return g.Width + 2*Border
}

// TrueHeight returns the row count including the border ring
func (g *Grid) TrueHeight() int {
	return g.Height + 2*Border
}

// At returns the tile at a true coordinate, OutOfBounds when off the grid
func (g *Grid) At(row, col int) Tile {
	if row < 0 || col < 0 || row >= g.TrueHeight() || col >= g.TrueWidth() {
		return OutOfBounds
	}
	return g.tiles[row*g.TrueWidth()+col]
}

// AtVisible returns the tile at a visible coordinate
func (g *Grid) AtVisible(row, col int) Tile {
	return g.At(row+Border, col+Border)
}

// Index flattens a true coordinate, -1 when off the grid
func (g *Grid) Index(row, col int) int {
	if row < 0 || col < 0 || row >= g.TrueHeight() || col >= g.TrueWidth() {
		return -1
	}
	return row*g.TrueWidth() + col
}

// Entrances lists inward-pointing tiles on the ring, row-major
func (g *Grid) Entrances() []Pos {
	out := make([]Pos, len(g.entrances))
	copy(out, g.entrances)
	return out
}

// Exits lists outward-pointing tiles on the ring, row-major
func (g *Grid) Exits() []Pos {
	out := make([]Pos, len(g.exits))
	copy(out, g.exits)
	return out
}

// InBounds reports whether a world position lies on the visible map
func (g *Grid) InBounds(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(g.Width)*TileSize && y < float64(g.Height)*TileSize
}

// atEdgeDistance reports whether a true coordinate lies on the ring d cells in from the outer edge
// 0 is the outer edge, 1 holds entrances and exits, 2 is the visible edge
func (g *Grid) atEdgeDistance(d, row, col int) bool {
	return row == d || col == d || row == g.TrueHeight()-1-d || col == g.TrueWidth()-1-d
}

// destination returns the cell a straight tile points into, the cell itself otherwise
func (g *Grid) destination(row, col int) (int, int) {
	drow, dcol := g.At(row, col).Heading().Step()
	return row + drow, col + dcol
}

func (g *Grid) isEntrance(row, col int) bool {
	if !g.atEdgeDistance(1, row, col) || !g.At(row, col).IsStraight() {
		return false
	}
	r, c := g.destination(row, col)
	return g.atEdgeDistance(2, r, c)
}

func (g *Grid) isExit(row, col int) bool {
	if !g.atEdgeDistance(1, row, col) || !g.At(row, col).IsStraight() {
		return false
	}
	r, c := g.destination(row, col)
	return g.atEdgeDistance(0, r, c)
}

func (g *Grid) indexEndpoints() {
	g.entrances = g.entrances[:0]
	g.exits = g.exits[:0]
	for row := 0; row < g.TrueHeight(); row++ {
		for col := 0; col < g.TrueWidth(); col++ {
			switch {
			case g.isEntrance(row, col):
				g.entrances = append(g.entrances, Pos{Row: row, Col: col})
			case g.isExit(row, col):
				g.exits = append(g.exits, Pos{Row: row, Col: col})
			}
		}
	}
}

// TrueRowCol maps a world position to the true coordinate of the tile containing it
func TrueRowCol(x, y float64) (row, col int) {
	return int(math.Floor(y/TileSize)) + Border, int(math.Floor(x/TileSize)) + Border
}

// TileCenter returns the world center of a visible tile
func TileCenter(row, col int) (x, y float64) {
	return (float64(col) + 0.5) * TileSize, (float64(row) + 0.5) * TileSize
}

// TrueTileCenter returns the world center of a true tile
func TrueTileCenter(row, col int) (x, y float64) {
	return (float64(col) - Border + 0.5) * TileSize, (float64(row) - Border + 0.5) * TileSize
}

// TileOrigin returns the top-left world corner of a true tile
func TileOrigin(row, col int) (x, y float64) {
	return float64(col-Border) * TileSize, float64(row-Border) * TileSize
}
