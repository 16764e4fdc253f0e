package system

import (
	"log"
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/terrain"
)

// SpawnSystem queues a wave at every wave start and releases queued enemies on their tick
// Enemies of a wave are dealt round-robin across entrances, SpawnIntervalTicks apart per entrance
type SpawnSystem struct {
	world *engine.World

	statWave    *atomic.Int64
	statQueued  *atomic.Int64
	statSpawned *atomic.Int64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{world: world}
	s.statWave = world.Status.Ints.Get("wave.index")
	s.statQueued = world.Status.Ints.Get("wave.queued")
	s.statSpawned = world.Status.Ints.Get("wave.spawned")
	return s
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	st := s.world.State

	if st.Tick%parameter.WaveTicks == 0 {
		i := st.Tick / parameter.WaveTicks
		if i < uint64(len(s.world.Level.Waves)) {
			s.queueWave(st, s.world.Level.Waves[i])
			s.statWave.Store(int64(i) + 1)
			log.Printf("[SPAWN] wave %d queued at tick %d", i+1, st.Tick)
		}
	}

	spawned := 0
	for _, q := range st.Waves.Queue {
		if q.SpawnTick <= st.Tick {
			SpawnEnemy(s.world, q.Entrance, q.Kind)
			spawned++
		}
	}
	if spawned > 0 {
		st.Waves.Queue = slices.DeleteFunc(st.Waves.Queue, func(q component.QueuedEnemy) bool {
			return q.SpawnTick <= st.Tick
		})
		s.statSpawned.Add(int64(spawned))
	}
	s.statQueued.Store(int64(len(st.Waves.Queue)))
}

func (s *SpawnSystem) queueWave(st *engine.CoreState, wave component.Wave) {
	entrances := st.Waves.Entrances
	if len(entrances) == 0 {
		return
	}

	i := 0
	for _, group := range wave.Groups {
		for n := 0; n < group.Size; n++ {
			delay := uint64(i/len(entrances)) * parameter.SpawnIntervalTicks
			st.Waves.Queue = append(st.Waves.Queue, component.QueuedEnemy{
				Entrance:  entrances[i%len(entrances)],
				SpawnTick: st.Tick + delay,
				Kind:      group.Kind,
			})
			i++
		}
	}
}

// SpawnEnemy creates a walker at an entrance tile with a seeded sideways offset
func SpawnEnemy(w *engine.World, entrance terrain.Pos, kind component.EnemyKind) core.Entity {
	st := w.State
	stats := kind.Stats()

	x, y := terrain.TrueTileCenter(entrance.Row, entrance.Col)
	lateral := w.Level.Grid.At(entrance.Row, entrance.Col).Heading().Clockwise()
	jitter := st.Rng.Range(-parameter.SpawnJitter, parameter.SpawnJitter) * terrain.TileSize
	x += lateral.DX * jitter
	y += lateral.DY * jitter

	e := st.IDs.Create()
	st.Mobs.Set(e, component.NewMob(x, y))
	st.Walkers.Set(e, component.WalkerComponent{Speed: stats.Speed, Kind: kind})
	st.Impulses.Set(e, component.ImpulseComponent{})
	st.Healths.Set(e, component.HealthComponent{Current: stats.Health, Max: stats.Health})
	if stats.Timid {
		st.Pusillanimous.Set(e, component.PusillanimousComponent{})
	}
	return e
}
