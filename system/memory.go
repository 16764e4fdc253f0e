package system

import (
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/parameter"
)

// MemorySystem records every mob's position before anything moves this tick
type MemorySystem struct {
	world *engine.World
}

func NewMemorySystem(world *engine.World) engine.System {
	return &MemorySystem{world: world}
}

func (s *MemorySystem) Name() string {
	return "memory"
}

func (s *MemorySystem) Priority() int {
	return parameter.PriorityMemory
}

func (s *MemorySystem) Update() {
	mobs := s.world.State.Mobs
	for i := 0; i < mobs.Len(); i++ {
		m := mobs.PtrAt(i)
		m.OldX, m.OldY = m.X, m.Y
	}
}
