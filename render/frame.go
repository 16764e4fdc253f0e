package render

import (
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
)

// Layer determines draw order, lower values draw first
type Layer uint8

const (
	LayerTower Layer = iota
	LayerEnemy
	LayerExplosion
)

// Sprite is one visual entity in world coordinates
type Sprite struct {
	Entity   core.Entity
	Layer    Layer
	Kind     string // Tower kind, enemy shape or "explosion"
	X, Y     float64
	Rotation float64 // Radians, 0 faces east
	Alpha    float64
	Radius   float64
	Tint     RGB
	Health   float64 // Remaining fraction, 1 when the entity has no health
}

// Meter is a build progress bar anchored on a tower cell
type Meter struct {
	Row, Col int
	X, Y     float64
	Fraction float64
	Upgrade  bool
}

// Frame is a read-only view of one settled tick, interpolated toward the next
type Frame struct {
	Tick    uint64
	Run     engine.RunState
	Sprites []Sprite
	Meters  []Meter
}
