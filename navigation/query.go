package navigation

import (
	"math"

	"github.com/lixenwraith/vi-defense/terrain"
)

// WalkDirection returns the heading of the path at a world position
// Corners switch from the entry heading to the exit heading where the entry edge
// center stops being closer (Chebyshev) than the exit edge center
func WalkDirection(g *terrain.Grid, x, y float64) terrain.Direction {
	row, col := terrain.TrueRowCol(x, y)
	tile := g.At(row, col)
	switch {
	case tile.IsStraight():
		return tile.Heading()
	case !tile.IsCorner():
		return terrain.DirNone
	}

	entrance, exit := tile.Corner()
	cx, cy := terrain.TrueTileCenter(row, col)

	// Entry edge lies behind the entry heading, exit edge ahead of the exit heading
	entryX := cx - 0.5*terrain.TileSize*entrance.DX
	entryY := cy - 0.5*terrain.TileSize*entrance.DY
	exitX := cx + 0.5*terrain.TileSize*exit.DX
	exitY := cy + 0.5*terrain.TileSize*exit.DY

	toEntry := math.Max(math.Abs(entryX-x), math.Abs(entryY-y))
	toExit := math.Max(math.Abs(exitX-x), math.Abs(exitY-y))
	if toEntry < toExit {
		return entrance
	}
	return exit
}

// exitCornerDiff corrects the rotation of a corner tile for distance-to-exit queries
// Depends on whether the entity is still on the entry leg of the turn
func exitCornerDiff(tile terrain.Tile, dir terrain.Direction) int {
	switch {
	case tile == terrain.EastToNorth && dir == terrain.DirEast,
		tile == terrain.WestToSouth && dir == terrain.DirWest,
		tile == terrain.NorthToWest && dir == terrain.DirNorth,
		tile == terrain.SouthToEast && dir == terrain.DirSouth:
		return 1
	case tile == terrain.EastToSouth && dir == terrain.DirEast,
		tile == terrain.WestToNorth && dir == terrain.DirWest,
		tile == terrain.NorthToEast && dir == terrain.DirNorth,
		tile == terrain.SouthToWest && dir == terrain.DirSouth:
		return -1
	}
	return 0
}

// entranceCornerDiff corrects the rotation of a corner tile for distance-to-entrance queries
// Applies on the exit leg of the turn
func entranceCornerDiff(tile terrain.Tile, dir terrain.Direction) int {
	switch {
	case tile == terrain.EastToNorth && dir == terrain.DirNorth,
		tile == terrain.WestToSouth && dir == terrain.DirSouth,
		tile == terrain.SouthToEast && dir == terrain.DirEast,
		tile == terrain.NorthToWest && dir == terrain.DirWest:
		return 1
	case tile == terrain.WestToNorth && dir == terrain.DirNorth,
		tile == terrain.EastToSouth && dir == terrain.DirSouth,
		tile == terrain.NorthToEast && dir == terrain.DirEast,
		tile == terrain.SouthToWest && dir == terrain.DirWest:
		return -1
	}
	return 0
}

// offsets splits a position's offset from its tile center into forward and lateral parts
// Lateral is measured toward the clockwise side of the walk direction
func offsets(row, col int, dir terrain.Direction, x, y float64) (forward, lateral float64) {
	cx, cy := terrain.TrueTileCenter(row, col)
	rx, ry := x-cx, y-cy
	right := dir.Clockwise()
	forward = rx*dir.DX + ry*dir.DY
	lateral = rx*right.DX + ry*right.DY
	return forward, lateral
}

// DistFromExit returns the continuous path distance from (x, y) to the nearest exit
// +Inf off the path
func DistFromExit(g *terrain.Grid, f *Field, x, y float64) float64 {
	row, col := terrain.TrueRowCol(x, y)
	d, ok := f.At(row, col)
	if !ok {
		return math.Inf(1)
	}
	dir := WalkDirection(g, x, y)
	forward, lateral := offsets(row, col, dir, x, y)
	rotation := int(d.Rotation) + exitCornerDiff(g.At(row, col), dir)

	// Moving forward closes on the exit; the outer side of a counter-clockwise turn is longer
	return float64(d.Tiles)*terrain.TileSize - forward + lateral*float64(rotation)
}

// DistFromEntrance returns the continuous path distance from (x, y) back to the nearest entrance
// +Inf off the path
func DistFromEntrance(g *terrain.Grid, f *Field, x, y float64) float64 {
	row, col := terrain.TrueRowCol(x, y)
	d, ok := f.At(row, col)
	if !ok {
		return math.Inf(1)
	}
	dir := WalkDirection(g, x, y)
	forward, lateral := offsets(row, col, dir, x, y)
	rotation := int(d.Rotation) + entranceCornerDiff(g.At(row, col), dir)

	return float64(d.Tiles)*terrain.TileSize + forward + lateral*float64(rotation)
}
