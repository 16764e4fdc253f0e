package system

import (
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/terrain"
)

// WrapSystem moves walkers that left the map by more than half a tile to the opposite edge
// Old positions shift with them so interpolation keeps the motion vector
type WrapSystem struct {
	world *engine.World
}

func NewWrapSystem(world *engine.World) engine.System {
	return &WrapSystem{world: world}
}

func (s *WrapSystem) Name() string {
	return "wrap"
}

func (s *WrapSystem) Priority() int {
	return parameter.PriorityWrap
}

func (s *WrapSystem) Update() {
	st := s.world.State
	g := s.world.Level.Grid
	const half = terrain.TileSize / 2
	width := float64(g.Width) * terrain.TileSize
	height := float64(g.Height) * terrain.TileSize

	for i := 0; i < st.Walkers.Len(); i++ {
		mob := st.Mobs.Ptr(st.Walkers.KeyAt(i))
		if mob == nil {
			continue
		}

		x := wrapCoord(mob.X, width, half)
		y := wrapCoord(mob.Y, height, half)
		mob.OldX += x - mob.X
		mob.OldY += y - mob.Y
		mob.X, mob.Y = x, y
	}
}

// wrapCoord carries v across to the other side of [0, size] once it is more than half outside
func wrapCoord(v, size, half float64) float64 {
	switch {
	case v > size+half:
		return -half
	case v < -half:
		return size + half
	}
	return v
}
