package system

import (
	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/navigation"
	"github.com/lixenwraith/vi-defense/vmath"
)

// TargetStrategy chooses among walkers in range
type TargetStrategy uint8

const (
	// TargetClosest picks the walker nearest to the query point
	TargetClosest TargetStrategy = iota
	// TargetFirst picks the walker furthest along the path
	TargetFirst
)

// FindTarget returns the walker within radius of (x, y) preferred by strategy
// Ties keep the earliest walker in table order
func FindTarget(w *engine.World, x, y, radius float64, strategy TargetStrategy) (core.Entity, bool) {
	st := w.State
	level := w.Level

	var best core.Entity
	bestScore := 0.0
	found := false

	for i := 0; i < st.Walkers.Len(); i++ {
		e := st.Walkers.KeyAt(i)
		mob, ok := st.Mobs.Get(e)
		if !ok {
			continue
		}
		d2 := vmath.DistanceSquared(x, y, mob.X, mob.Y)
		if d2 > radius*radius {
			continue
		}

		score := d2
		if strategy == TargetFirst {
			score = navigation.DistFromExit(level.Grid, level.Fields.Exit, mob.X, mob.Y)
		}
		if !found || score < bestScore {
			best, bestScore, found = e, score, true
		}
	}
	return best, found
}

// Threaten marks a walker so timid walkers start fleeing next tick
func Threaten(w *engine.World, e core.Entity) bool {
	st := w.State
	if !st.Walkers.Has(e) {
		return false
	}
	st.Threats.Set(e, component.ThreatComponent{})
	return true
}
