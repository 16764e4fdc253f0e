package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/navigation"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/terrain"
)

// WalkSystem advances every walker along the path by its speed
type WalkSystem struct {
	world *engine.World

	statWalkers *atomic.Int64
}

func NewWalkSystem(world *engine.World) engine.System {
	s := &WalkSystem{world: world}
	s.statWalkers = world.Status.Ints.Get("walker.count")
	return s
}

func (s *WalkSystem) Name() string {
	return "walk"
}

func (s *WalkSystem) Priority() int {
	return parameter.PriorityWalk
}

func (s *WalkSystem) Update() {
	st := s.world.State
	g := s.world.Level.Grid

	for i := 0; i < st.Walkers.Len(); i++ {
		e, walker := st.Walkers.At(i)
		mob := st.Mobs.Ptr(e)
		if mob == nil {
			continue
		}

		row, col := terrain.TrueRowCol(mob.X, mob.Y)
		x, y := navigation.WalkTile(g, row, col, mob.X, mob.Y, walker.Speed)
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		mob.X, mob.Y = x, y
	}
	s.statWalkers.Store(int64(st.Walkers.Len()))
}
