package physics

import (
	"math"

	"github.com/lixenwraith/vi-defense/terrain"
	"github.com/lixenwraith/vi-defense/vmath"
)

// neighborhood is the 2x2 block of tiles around the grid corner nearest to a point
// Border flags mark the edges between tiles of the block that separate path from non-path
type neighborhood struct {
	cornerX, cornerY float64

	lowVertical    bool // between the two upper tiles
	highVertical   bool // between the two lower tiles
	lowHorizontal  bool // between the two left tiles
	highHorizontal bool // between the two right tiles
}

func (n *neighborhood) any() bool {
	return n.lowVertical || n.highVertical || n.lowHorizontal || n.highHorizontal
}

func neighborhoodAt(g *terrain.Grid, x, y float64) neighborhood {
	lowRow := int(math.Floor(y/terrain.TileSize + 0.5 + terrain.Border - 1))
	lowCol := int(math.Floor(x/terrain.TileSize + 0.5 + terrain.Border - 1))
	highRow, highCol := lowRow+1, lowCol+1

	cornerX, cornerY := terrain.TileOrigin(highRow, highCol)

	upperLeft := g.At(lowRow, lowCol)
	upperRight := g.At(lowRow, highCol)
	lowerLeft := g.At(highRow, lowCol)
	lowerRight := g.At(highRow, highCol)

	return neighborhood{
		cornerX:        cornerX,
		cornerY:        cornerY,
		lowVertical:    terrain.HasBorder(upperLeft, upperRight),
		highVertical:   terrain.HasBorder(lowerLeft, lowerRight),
		lowHorizontal:  terrain.HasBorder(upperLeft, lowerLeft),
		highHorizontal: terrain.HasBorder(upperRight, lowerRight),
	}
}

// ResolveCollisions pushes a circle of the given radius out of the path borders around it
// Returns the corrected position and the correction applied
// Radius must not exceed half a tile, larger circles can reach past the 2x2 neighborhood
func ResolveCollisions(g *terrain.Grid, x, y, radius float64) (nx, ny, dx, dy float64) {
	n := neighborhoodAt(g, x, y)
	if !n.any() {
		return x, y, 0, 0
	}

	nx, ny = x, y
	borderDistX := math.Abs(n.cornerX - x)
	borderDistY := math.Abs(n.cornerY - y)

	resolveX := func() {
		if borderDistX >= radius {
			return
		}
		if (ny < n.cornerY && n.lowVertical) || (ny > n.cornerY && n.highVertical) {
			nx = n.cornerX + vmath.Signum(nx-n.cornerX)*radius
		}
	}
	resolveY := func() {
		if borderDistY >= radius {
			return
		}
		if (nx < n.cornerX && n.lowHorizontal) || (nx > n.cornerX && n.highHorizontal) {
			ny = n.cornerY + vmath.Signum(ny-n.cornerY)*radius
		}
	}

	// Nearer border first, the second axis sees the corrected coordinate
	if borderDistX < borderDistY {
		resolveX()
		resolveY()
	} else {
		resolveY()
		resolveX()
	}

	// Corner tip: push radially away from the shared corner
	offX, offY := nx-n.cornerX, ny-n.cornerY
	distSq := offX*offX + offY*offY
	if distSq > 0 && distSq < radius*radius {
		dist := math.Sqrt(distSq)
		nx = n.cornerX + offX/dist*radius
		ny = n.cornerY + offY/dist*radius
	}

	return nx, ny, nx - x, ny - y
}
