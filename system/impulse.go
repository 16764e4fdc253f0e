package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/physics"
)

// ImpulseSystem applies decaying impulses to walkers and resolves their wall collisions
// Collisions absorb momentum: the impulse becomes the realized displacement plus a bounce
type ImpulseSystem struct {
	world *engine.World
}

func NewImpulseSystem(world *engine.World) engine.System {
	return &ImpulseSystem{world: world}
}

func (s *ImpulseSystem) Name() string {
	return "impulse"
}

func (s *ImpulseSystem) Priority() int {
	return parameter.PriorityImpulse
}

func (s *ImpulseSystem) Update() {
	st := s.world.State
	g := s.world.Level.Grid

	for i := 0; i < st.Impulses.Len(); i++ {
		e := st.Impulses.KeyAt(i)
		imp := st.Impulses.PtrAt(i)
		v := mgl64.Vec2{imp.DX, imp.DY}

		if mob := st.Mobs.Ptr(e); mob != nil && st.Walkers.Has(e) {
			origin := mgl64.Vec2{mob.X, mob.Y}
			moved := origin.Add(v)

			x, y, dx, dy := physics.ResolveCollisions(g, moved.X(), moved.Y(), parameter.EnemyRadius)
			mob.X, mob.Y = x, y

			realized := mgl64.Vec2{x, y}.Sub(origin)
			v = realized.Add(mgl64.Vec2{dx, dy}.Mul(parameter.ImpactBounce))
		}

		v = v.Mul(parameter.ImpulseDecay)
		imp.DX, imp.DY = v.X(), v.Y()
	}
}

// Push adds an impulse to an entity, creating the impulse row when missing
func Push(w *engine.World, e core.Entity, dx, dy float64) {
	st := w.State
	if imp := st.Impulses.Ptr(e); imp != nil {
		imp.DX += dx
		imp.DY += dy
		return
	}
	if st.Mobs.Has(e) {
		st.Impulses.Set(e, component.ImpulseComponent{DX: dx, DY: dy})
	}
}
