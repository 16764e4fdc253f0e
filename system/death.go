package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/parameter"
)

// DeathSystem removes every entity whose health dropped to zero
type DeathSystem struct {
	world *engine.World

	statKilled *atomic.Int64
}

func NewDeathSystem(world *engine.World) engine.System {
	s := &DeathSystem{world: world}
	s.statKilled = world.Status.Ints.Get("death.killed")
	return s
}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

func (s *DeathSystem) Update() {
	st := s.world.State
	var dead []core.Entity
	for i := 0; i < st.Healths.Len(); i++ {
		e, h := st.Healths.At(i)
		if h.Current <= 0 {
			dead = append(dead, e)
		}
	}
	for _, e := range dead {
		st.DestroyEntity(e)
	}
	s.statKilled.Add(int64(len(dead)))
}

// Damage subtracts health, the entity is removed by the death system later this tick
func Damage(w *engine.World, e core.Entity, amount float64) bool {
	h := w.State.Healths.Ptr(e)
	if h == nil {
		return false
	}
	h.Current -= amount
	return true
}
