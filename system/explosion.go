package system

import (
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/vmath"
)

// ExplosionSystem grows explosions along a sine ease and kicks walkers crossing the edge
// A walker already inside the previous tick's radius is not kicked again
type ExplosionSystem struct {
	world *engine.World

	statActive *atomic.Int64
}

func NewExplosionSystem(world *engine.World) engine.System {
	s := &ExplosionSystem{world: world}
	s.statActive = world.Status.Ints.Get("explosion.active")
	return s
}

func (s *ExplosionSystem) Name() string {
	return "explosion"
}

func (s *ExplosionSystem) Priority() int {
	return parameter.PriorityExplosion
}

func (s *ExplosionSystem) Update() {
	st := s.world.State
	var expired []core.Entity

	for i := 0; i < st.Explosions.Len(); i++ {
		e := st.Explosions.KeyAt(i)
		ex := st.Explosions.PtrAt(i)

		if ex.Age >= parameter.ExplosionTicks {
			expired = append(expired, e)
			continue
		}

		if !(ex.MaxRadius > 0) {
			expired = append(expired, e)
			continue
		}

		ex.Age++
		progress := float64(ex.Age) / parameter.ExplosionTicks
		ex.OldRadius = ex.Radius
		ex.Radius = ex.MaxRadius * math.Sin(progress*math.Pi/2)

		s.kick(st, ex)
	}

	for _, e := range expired {
		st.DestroyEntity(e)
	}
	s.statActive.Store(int64(st.Explosions.Len()))
}

func (s *ExplosionSystem) kick(st *engine.CoreState, ex *component.ExplosionComponent) {
	center := mgl64.Vec2{ex.X, ex.Y}
	reach := parameter.EnemyRadius + ex.Radius
	oldReach := parameter.EnemyRadius + ex.OldRadius
	strength := 1.5 - 0.5*ex.Radius/ex.MaxRadius

	for i := 0; i < st.Impulses.Len(); i++ {
		mob, ok := st.Mobs.Get(st.Impulses.KeyAt(i))
		if !ok {
			continue
		}

		offset := mgl64.Vec2{mob.X, mob.Y}.Sub(center)
		oldOffset := mgl64.Vec2{mob.OldX, mob.OldY}.Sub(center)
		if offset.Dot(offset) > reach*reach {
			continue
		}
		if ex.OldRadius != 0 && oldOffset.Dot(oldOffset) <= oldReach*oldReach {
			continue
		}

		dist := offset.Len()
		if dist == 0 {
			continue
		}

		imp := st.Impulses.PtrAt(i)
		v := mgl64.Vec2{imp.DX, imp.DY}.Add(offset.Mul(strength / dist))
		if mag := vmath.FastDistance(v.X(), v.Y()); mag > parameter.ExplosionImpulseMax {
			v = v.Mul(parameter.ExplosionImpulseMax / mag)
		}
		imp.DX, imp.DY = v.X(), v.Y()
	}
}

// SpawnExplosion creates an explosion at a world position
// A non-positive or NaN radius creates nothing and returns 0
func SpawnExplosion(w *engine.World, x, y, maxRadius float64) core.Entity {
	if !(maxRadius > 0) || math.IsInf(maxRadius, 1) {
		return 0
	}
	st := w.State
	e := st.IDs.Create()
	st.Explosions.Set(e, component.ExplosionComponent{X: x, Y: y, MaxRadius: maxRadius})
	return e
}
