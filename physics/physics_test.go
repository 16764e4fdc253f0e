package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-defense/terrain"
	"github.com/lixenwraith/vi-defense/vmath"
)

func TestResolveOpenLaneUntouched(t *testing.T) {
	g := terrain.MustParse(terrain.Straights)

	x, y, dx, dy := ResolveCollisions(g, 100, 352, 8)
	if x != 100 || y != 352 || dx != 0 || dy != 0 {
		t.Errorf("Expected no correction between lanes, got (%v,%v) moved (%v,%v)", x, y, dx, dy)
	}
}

func TestResolveStraightWall(t *testing.T) {
	g := terrain.MustParse(terrain.Straights)

	// Eastbound road starts at y=320, empty ground above
	x, y, dx, dy := ResolveCollisions(g, 100, 325, 8)
	if x != 100 || y != 328 {
		t.Errorf("Expected (100,328), got (%v,%v)", x, y)
	}
	if dx != 0 || dy != 3 {
		t.Errorf("Expected correction (0,3), got (%v,%v)", dx, dy)
	}
}

func TestResolveCornerTip(t *testing.T) {
	g := terrain.MustParse(terrain.Switchback)

	// Empty tile tip at (32,96) pokes into the path
	x, y, _, _ := ResolveCollisions(g, 34, 90, 8)
	if d := math.Hypot(x-32, y-96); math.Abs(d-8) > 1e-9 {
		t.Errorf("Expected radius distance from corner, got %v", d)
	}
	if x <= 32 || y >= 96 {
		t.Errorf("Expected push up and right, got (%v,%v)", x, y)
	}
	// Direction from the corner is preserved
	if cross := (x-32)*(90-96) - (y-96)*(34-32); math.Abs(cross) > 1e-9 {
		t.Errorf("Expected radial push, cross product %v", cross)
	}
}

func TestResolveExactlyOnCorner(t *testing.T) {
	g := terrain.MustParse(terrain.Switchback)

	x, y, dx, dy := ResolveCollisions(g, 32, 96, 8)
	if math.IsNaN(x) || math.IsNaN(y) {
		t.Fatalf("Expected finite result, got (%v,%v)", x, y)
	}
	if dx != 0 || dy != 0 {
		t.Errorf("Expected no correction at the corner point, got (%v,%v)", dx, dy)
	}
}

// rectDistance is the distance from a point to the true tile's square
func rectDistance(x, y float64, row, col int) float64 {
	x0, y0 := terrain.TileOrigin(row, col)
	dx := math.Max(0, math.Max(x0-x, x-(x0+terrain.TileSize)))
	dy := math.Max(0, math.Max(y0-y, y-(y0+terrain.TileSize)))
	return math.Hypot(dx, dy)
}

func TestResolveContainment(t *testing.T) {
	maps := map[string][]string{
		"switchback": terrain.Switchback,
		"straights":  terrain.Straights,
	}

	for name, rows := range maps {
		g := terrain.MustParse(rows)
		width := float64(g.Width) * terrain.TileSize
		height := float64(g.Height) * terrain.TileSize

		for _, radius := range []float64{8, 0.3 * terrain.TileSize, terrain.TileSize / 2} {
			rng := vmath.NewFastRand(11)
			for i := 0; i < 20000; i++ {
				x, y := rng.Range(0, width), rng.Range(0, height)
				row, col := terrain.TrueRowCol(x, y)
				if !g.At(row, col).IsPath() {
					continue
				}

				nx, ny, _, _ := ResolveCollisions(g, x, y, radius)
				row, col = terrain.TrueRowCol(nx, ny)
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if g.At(row+dr, col+dc).IsPath() {
							continue
						}
						if d := rectDistance(nx, ny, row+dr, col+dc); d < radius-1e-6 {
							t.Fatalf("%s r=%v: (%v,%v) resolved to (%v,%v), still %v from tile (%d,%d)",
								name, radius, x, y, nx, ny, d, row+dr, col+dc)
						}
					}
				}
			}
		}
	}
}

func TestAccelGeometricConverges(t *testing.T) {
	x, speed := 0.0, 0.0
	for i := 0; i < 2000; i++ {
		x, speed = AccelGeometric(x, speed, 0.03, 0.0005)
	}
	if math.Abs(speed-0.03) > 1e-9 {
		t.Errorf("Expected speed to settle at 0.03, got %v", speed)
	}
	if x <= 0 {
		t.Errorf("Expected forward progress, got %v", x)
	}
}

func TestDecayGeometric(t *testing.T) {
	x, speed := 1.0, 0.03
	for i := 0; i < 2000; i++ {
		x, speed = DecayGeometric(x, speed, 0.03, 0.0005)
	}
	if speed <= 0 || speed > 1e-9 {
		t.Errorf("Expected speed to decay toward zero, got %v", speed)
	}
	// Coasting distance is bounded by speed/(1-r)
	if x <= 1 || x > 1+0.03*61+1e-9 {
		t.Errorf("Expected bounded coasting, got %v", x)
	}

	if x, speed := DecayGeometric(2, 0, 0.03, 0.0005); x != 2 || speed != 0 {
		t.Errorf("Expected (2,0), got (%v,%v)", x, speed)
	}
}

func TestWrapAngle(t *testing.T) {
	if got := WrapAngle(3 * math.Pi / 2); math.Abs(got+math.Pi/2) > 1e-12 {
		t.Errorf("Expected -pi/2, got %v", got)
	}
	if got := WrapAngle(0.5); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
}
