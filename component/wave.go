package component

import "github.com/lixenwraith/vi-defense/terrain"

// WaveGroup is a run of identical enemies inside a wave
type WaveGroup struct {
	Size int
	Kind EnemyKind
}

// Wave is the enemy list released at one wave start, in group order
type Wave struct {
	Groups []WaveGroup
}

// Count returns the total number of enemies in the wave
func (w Wave) Count() int {
	n := 0
	for _, g := range w.Groups {
		n += g.Size
	}
	return n
}

// QueuedEnemy waits in the spawner until its tick
type QueuedEnemy struct {
	Entrance  terrain.Pos
	SpawnTick uint64
	Kind      EnemyKind
}

// WaveSpawner holds the map entrances and the enemies not yet spawned
type WaveSpawner struct {
	Entrances []terrain.Pos
	Queue     []QueuedEnemy
}
