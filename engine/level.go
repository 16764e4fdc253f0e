package engine

import (
	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/navigation"
	"github.com/lixenwraith/vi-defense/terrain"
)

// Level is the immutable data a world is built from
// Grid and distance fields never change after construction and are shared by snapshots
type Level struct {
	Name   string
	Seed   uint64
	Grid   *terrain.Grid
	Fields *navigation.Fields
	Towers []component.TowerType
	Waves  []component.Wave
}

// NewLevel computes the distance fields for a parsed grid
func NewLevel(name string, seed uint64, g *terrain.Grid, towers []component.TowerType, waves []component.Wave) *Level {
	return &Level{
		Name:   name,
		Seed:   seed,
		Grid:   g,
		Fields: navigation.NewFields(g),
		Towers: towers,
		Waves:  waves,
	}
}

// TowerType returns the type at index, false when out of range
func (l *Level) TowerType(i int) (*component.TowerType, bool) {
	if i < 0 || i >= len(l.Towers) {
		return nil, false
	}
	return &l.Towers[i], true
}

// PathLength is the entrance to exit length of every path, in tiles
func (l *Level) PathLength() int {
	return l.Fields.PathLength(l.Grid)
}
