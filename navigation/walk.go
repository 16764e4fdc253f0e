package navigation

import (
	"math"

	"github.com/lixenwraith/vi-defense/terrain"
	"github.com/lixenwraith/vi-defense/vmath"
)

// WalkEpsilon is the residual speed below which a step is considered spent
const WalkEpsilon = 0.005

// Walk advances a position along the path starting from the tile that contains it
func Walk(g *terrain.Grid, x, y, speed float64) (float64, float64) {
	row, col := terrain.TrueRowCol(x, y)
	return WalkTile(g, row, col, x, y, speed)
}

// WalkTile advances (x, y) by speed along the path, starting on true tile (row, col)
// Negative speed walks toward the entrance. The step is split at every tile boundary and
// corner turning point so that arbitrarily large speeds still follow every turn exactly.
// Movement stops silently when the walk leaves the path.
func WalkTile(g *terrain.Grid, row, col int, x, y, speed float64) (float64, float64) {
	dir := WalkDirection(g, x, y)
	if dir.IsZero() {
		return x, y
	}

	for math.Abs(speed) > WalkEpsilon {
		tile := g.At(row, col)
		if !tile.IsPath() {
			return x, y
		}

		tileX, tileY := terrain.TileOrigin(row, col)
		var nx, ny float64

		if tile.IsStraight() {
			nx, ny = x+speed*dir.DX, y+speed*dir.DY
		} else {
			nx, ny, speed, dir = turnCorner(tile, tileX, tileY, x, y, speed, dir)
		}

		// Overshoot past the tile rectangle carries into the next tile
		cx := vmath.Clamp(nx, tileX, tileX+terrain.TileSize)
		cy := vmath.Clamp(ny, tileY, tileY+terrain.TileSize)
		speed = vmath.Signum(speed) * (math.Abs(nx-cx) + math.Abs(ny-cy))
		x, y = cx, cy

		drow, dcol := dir.Step()
		sign := int(vmath.Signum(speed))
		row += sign * drow
		col += sign * dcol
	}

	return x, y
}

// turnCorner moves through a corner tile
// The turning point is where the motion line meets the diagonal joining the inner and outer corners.
// Returns the unclamped target, the speed measured from the point the target is projected from,
// and the heading after the move.
func turnCorner(tile terrain.Tile, tileX, tileY, x, y, speed float64, dir terrain.Direction) (float64, float64, float64, terrain.Direction) {
	entrance, exit := tile.Corner()
	centerX := tileX + terrain.TileSize/2
	centerY := tileY + terrain.TileSize/2

	// forward picks the heading for the side of the turn the motion ends on
	forward := func(pastTurn bool) terrain.Direction {
		if pastTurn == (speed > 0) {
			return exit
		}
		return entrance
	}

	// Diagonal through the center; the determinant against a cardinal heading is always ±1
	diagX := entrance.DY - exit.DY
	diagY := entrance.DX - exit.DX
	det := dir.DX*diagY - diagX*dir.DY
	if det == 0 {
		return x + speed*dir.DX, y + speed*dir.DY, speed, dir
	}
	a := (diagY*(centerX-x) - diagX*(centerY-y)) / det

	switch {
	case a*vmath.Signum(speed) <= 0:
		// Turning point already behind
		dir = forward(true)
		return x + speed*dir.DX, y + speed*dir.DY, speed, dir
	case math.Abs(speed) < math.Abs(a):
		dir = forward(false)
		return x + speed*dir.DX, y + speed*dir.DY, speed, dir
	case math.Abs(speed) == math.Abs(a):
		nx, ny := x+speed*dir.DX, y+speed*dir.DY
		return nx, ny, speed, forward(true)
	}

	// Crossing mid-step: consume up to the turning point, carry the remainder round the turn
	turnX, turnY := x+a*dir.DX, y+a*dir.DY
	speed -= a
	dir = forward(true)
	return turnX + speed*dir.DX, turnY + speed*dir.DY, speed, dir
}
