package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/navigation"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/physics"
	"github.com/lixenwraith/vi-defense/terrain"
	"github.com/lixenwraith/vi-defense/vmath"
)

var enemyTints = [component.EnemyKindCount]RGB{
	component.EnemyCircle:   {230, 90, 80},
	component.EnemyTriangle: {240, 200, 70},
	component.EnemySquare:   {150, 110, 220},
}

var explosionTint = RGB{255, 160, 40}

// Collect builds the frame for the current state
// fudge is the fraction of the tick interval elapsed since the last Step, clamped to [0, 1]
func Collect(w *engine.World, fudge float64) Frame {
	st := w.State
	fudge = vmath.Clamp(fudge, 0, 1)
	if !w.Interpolating() {
		fudge = 1
	}

	f := Frame{
		Tick:    st.Tick,
		Run:     w.Run,
		Sprites: make([]Sprite, 0, st.Towers.Len()+st.Walkers.Len()+st.Explosions.Len()),
		Meters:  make([]Meter, 0, len(st.BuildQueue)),
	}

	collectTowers(w, &f)
	collectWalkers(w, &f, fudge)
	collectExplosions(w, &f, fudge)

	for i := range st.BuildQueue {
		o := &st.BuildQueue[i]
		x, y := terrain.TileCenter(o.Row, o.Col)
		f.Meters = append(f.Meters, Meter{
			Row:      o.Row,
			Col:      o.Col,
			X:        x,
			Y:        y,
			Fraction: o.Fraction(),
			Upgrade:  o.Type.Kind == component.BuildUpgrade,
		})
	}
	return f
}

func collectTowers(w *engine.World, f *Frame) {
	st := w.State
	for i := 0; i < st.Towers.Len(); i++ {
		e, t := st.Towers.At(i)
		x, y := terrain.TileCenter(t.Row, t.Col)

		s := Sprite{
			Entity: e,
			Layer:  LayerTower,
			X:      x,
			Y:      y,
			Alpha:  1,
			Radius: terrain.TileSize / 2,
			Health: 1,
		}
		if typ, ok := w.Level.TowerType(t.TypeIndex); ok {
			s.Kind = typ.Kind
			s.Tint = HexRGB(typ.Color)
		}
		if t.Status == component.TowerQueued {
			s.Alpha = parameter.QueuedAlpha
		}
		if fc, ok := st.Factories.Get(e); ok {
			s.Rotation = fc.Rotation
		}
		f.Sprites = append(f.Sprites, s)
	}
}

func collectWalkers(w *engine.World, f *Frame, fudge float64) {
	st := w.State
	for i := 0; i < st.Walkers.Len(); i++ {
		e, walker := st.Walkers.At(i)
		mob, ok := st.Mobs.Get(e)
		if !ok {
			continue
		}

		s := Sprite{
			Entity:   e,
			Layer:    LayerEnemy,
			Kind:     walker.Kind.String(),
			X:        interpolate(mob.OldX, mob.X, fudge),
			Y:        interpolate(mob.OldY, mob.Y, fudge),
			Rotation: heading(w.Level.Grid, mob, walker.Speed),
			Alpha:    1,
			Radius:   parameter.EnemyRadius,
			Tint:     enemyTints[walker.Kind%component.EnemyKindCount],
			Health:   1,
		}
		if h, ok := st.Healths.Get(e); ok && h.Max > 0 {
			s.Health = vmath.Clamp(h.Current/h.Max, 0, 1)
		}
		f.Sprites = append(f.Sprites, s)
	}
}

func collectExplosions(w *engine.World, f *Frame, fudge float64) {
	st := w.State
	for i := 0; i < st.Explosions.Len(); i++ {
		e, ex := st.Explosions.At(i)
		f.Sprites = append(f.Sprites, Sprite{
			Entity: e,
			Layer:  LayerExplosion,
			Kind:   "explosion",
			X:      ex.X,
			Y:      ex.Y,
			Alpha:  1 - float64(ex.Age)/parameter.ExplosionTicks,
			Radius: vmath.Lerp(ex.OldRadius, ex.Radius, fudge),
			Tint:   explosionTint,
			Health: 1,
		})
	}
}

// interpolate blends a coordinate, jumps longer than a tile (wrap, rewind) snap
func interpolate(old, cur, fudge float64) float64 {
	if math.Abs(cur-old) > terrain.TileSize {
		return cur
	}
	return vmath.Lerp(old, cur, fudge)
}

// heading faces the last tick's motion, falling back to the path direction when still
func heading(g *terrain.Grid, mob component.MobComponent, speed float64) float64 {
	motion := mgl64.Vec2{mob.X - mob.OldX, mob.Y - mob.OldY}
	if motion.Len() > 1e-9 {
		return math.Atan2(motion.Y(), motion.X())
	}

	dir := navigation.WalkDirection(g, mob.X, mob.Y)
	if dir.IsZero() {
		return 0
	}
	angle := math.Atan2(dir.DY, dir.DX)
	if speed < 0 {
		angle = physics.WrapAngle(angle + math.Pi)
	}
	return angle
}
