package system

import (
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/parameter"
)

// PusillanimitySystem runs the flee state machine of timid walkers
// Idle (0) and threatened: dash with boosted speed, then cool down before fleeing again
type PusillanimitySystem struct {
	world *engine.World
}

func NewPusillanimitySystem(world *engine.World) engine.System {
	return &PusillanimitySystem{world: world}
}

func (s *PusillanimitySystem) Name() string {
	return "pusillanimity"
}

func (s *PusillanimitySystem) Priority() int {
	return parameter.PriorityStatusEffect
}

func (s *PusillanimitySystem) Update() {
	st := s.world.State
	for i := 0; i < st.Pusillanimous.Len(); i++ {
		e := st.Pusillanimous.KeyAt(i)
		p := st.Pusillanimous.PtrAt(i)

		switch p.Duration {
		case 0:
			if st.Threats.Has(e) {
				p.Duration = parameter.FleeDashTicks + parameter.FleeCooldownTicks - 1
				if w := st.Walkers.Ptr(e); w != nil {
					w.Speed *= parameter.FleeSpeedMultiplier
				}
			}
		case 1:
			p.Duration = 0
			st.Threats.Remove(e)
		case parameter.FleeCooldownTicks:
			p.Duration--
			if w := st.Walkers.Ptr(e); w != nil {
				w.Speed /= parameter.FleeSpeedMultiplier
			}
		default:
			p.Duration--
		}
	}
}
