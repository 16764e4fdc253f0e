package navigation

import (
	"github.com/lixenwraith/vi-defense/terrain"
)

// Distance is the discrete path distance from a tile to the nearest entrance or exit
// Rotation counts net quarter turns, counter-clockwise positive, measured along the
// entrance to exit direction regardless of which way an entity is moving
type Distance struct {
	Tiles    uint16
	Rotation int16
}

// Field holds one Distance per true grid cell
// Cells off the path are never reached
type Field struct {
	Width     int // True grid width
	Height    int // True grid height
	Distances []Distance
	Reached   []bool
}

// NewField creates an empty field for the given true dimensions
func NewField(width, height int) *Field {
	size := width * height
	return &Field{
		Width:     width,
		Height:    height,
		Distances: make([]Distance, size),
		Reached:   make([]bool, size),
	}
}

// At returns the distance at a true coordinate, false when unreached or off the grid
func (f *Field) At(row, col int) (Distance, bool) {
	if row < 0 || col < 0 || row >= f.Height || col >= f.Width {
		return Distance{}, false
	}
	idx := row*f.Width + col
	if !f.Reached[idx] {
		return Distance{}, false
	}
	return f.Distances[idx], true
}

// neighborFunc selects the next cell to expand from a path tile
type neighborFunc func(tile terrain.Tile, row, col int) (int, int)

// compute runs a breadth-first search from roots over path tiles only
// First reached wins: the path has one direction of travel per tile
func (f *Field) compute(g *terrain.Grid, roots []terrain.Pos, next neighborFunc) {
	for i := range f.Reached {
		f.Reached[i] = false
		f.Distances[i] = Distance{}
	}

	frontier := make([]terrain.Pos, 0, len(roots))
	for _, p := range roots {
		idx := p.Row*f.Width + p.Col
		f.Reached[idx] = true
		frontier = append(frontier, p)
	}

	var nextFrontier []terrain.Pos
	for len(frontier) > 0 {
		nextFrontier = nextFrontier[:0]
		for _, p := range frontier {
			tile := g.At(p.Row, p.Col)
			if !tile.IsPath() {
				continue
			}
			nr, nc := next(tile, p.Row, p.Col)
			nIdx := g.Index(nr, nc)
			if nIdx < 0 || f.Reached[nIdx] || !g.At(nr, nc).IsPath() {
				continue
			}
			d := f.Distances[p.Row*f.Width+p.Col]
			f.Distances[nIdx] = Distance{
				Tiles:    d.Tiles + 1,
				Rotation: d.Rotation + int16(tile.Rotation()),
			}
			f.Reached[nIdx] = true
			nextFrontier = append(nextFrontier, terrain.Pos{Row: nr, Col: nc})
		}
		frontier, nextFrontier = nextFrontier, frontier
	}
}

// FromExit computes distances to the nearest exit
// Expands backward: the predecessor of a tile lies behind its entry heading
func FromExit(g *terrain.Grid) *Field {
	f := NewField(g.TrueWidth(), g.TrueHeight())
	f.compute(g, g.Exits(), func(tile terrain.Tile, row, col int) (int, int) {
		entrance, _ := tile.Corner()
		drow, dcol := entrance.Step()
		return row - drow, col - dcol
	})
	return f
}

// FromEntrance computes distances to the nearest entrance
// Expands forward: the successor of a tile lies ahead of its exit heading
func FromEntrance(g *terrain.Grid) *Field {
	f := NewField(g.TrueWidth(), g.TrueHeight())
	f.compute(g, g.Entrances(), func(tile terrain.Tile, row, col int) (int, int) {
		_, exit := tile.Corner()
		drow, dcol := exit.Step()
		return row + drow, col + dcol
	})
	return f
}

// Fields pairs the two distance fields of a level
type Fields struct {
	Entrance *Field
	Exit     *Field
}

// NewFields computes both fields once at level load
func NewFields(g *terrain.Grid) *Fields {
	return &Fields{
		Entrance: FromEntrance(g),
		Exit:     FromExit(g),
	}
}

// PathLength returns the entrance to exit length in tiles, 0 when no entrance reaches an exit
// Every path point's entrance plus exit distance equals PathLength*TileSize
func (fs *Fields) PathLength(g *terrain.Grid) int {
	for _, p := range g.Entrances() {
		if d, ok := fs.Exit.At(p.Row, p.Col); ok {
			return int(d.Tiles)
		}
	}
	return 0
}
