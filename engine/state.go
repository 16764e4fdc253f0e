package engine

import (
	"hash/fnv"
	"slices"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/terrain"
	"github.com/lixenwraith/vi-defense/vmath"
)

// EntityIDs issues entity ids, starting at 1 and never reusing one
type EntityIDs struct {
	Next core.Entity
}

func NewEntityIDs() EntityIDs {
	return EntityIDs{Next: 1}
}

// Create returns a fresh id
func (ids *EntityIDs) Create() core.Entity {
	id := ids.Next
	ids.Next++
	return id
}

// CoreState is the complete mutable simulation state
// It is the unit of snapshotting, everything outside it is immutable level data or presentation
type CoreState struct {
	Tick uint64
	IDs  EntityIDs
	Rng  vmath.FastRand

	Mobs          *Table[core.Entity, component.MobComponent]
	Walkers       *Table[core.Entity, component.WalkerComponent]
	Impulses      *Table[core.Entity, component.ImpulseComponent]
	Healths       *Table[core.Entity, component.HealthComponent]
	Pusillanimous *Table[core.Entity, component.PusillanimousComponent]
	Threats       *Table[core.Entity, component.ThreatComponent]
	Towers        *Table[core.Entity, component.TowerComponent]
	Factories     *Table[core.Entity, component.FactoryComponent]
	Explosions    *Table[core.Entity, component.ExplosionComponent]

	// TowersByPos indexes Towers by visible grid cell
	TowersByPos *Table[terrain.Pos, core.Entity]

	BuildQueue []component.BuildOrder
	Waves      component.WaveSpawner
}

// NewCoreState creates an empty state for a level
func NewCoreState(seed uint64, entrances []terrain.Pos) *CoreState {
	return &CoreState{
		IDs:           NewEntityIDs(),
		Rng:           vmath.NewFastRand(seed),
		Mobs:          NewStore[component.MobComponent](),
		Walkers:       NewStore[component.WalkerComponent](),
		Impulses:      NewStore[component.ImpulseComponent](),
		Healths:       NewStore[component.HealthComponent](),
		Pusillanimous: NewStore[component.PusillanimousComponent](),
		Threats:       NewStore[component.ThreatComponent](),
		Towers:        NewStore[component.TowerComponent](),
		Factories:     NewStore[component.FactoryComponent](),
		Explosions:    NewStore[component.ExplosionComponent](),
		TowersByPos:   NewTable[terrain.Pos, core.Entity](),
		Waves: component.WaveSpawner{
			Entrances: slices.Clone(entrances),
		},
	}
}

// Stores lists every entity-keyed table
func (s *CoreState) Stores() []AnyStore {
	return []AnyStore{
		s.Mobs,
		s.Walkers,
		s.Impulses,
		s.Healths,
		s.Pusillanimous,
		s.Threats,
		s.Towers,
		s.Factories,
		s.Explosions,
	}
}

// Alive reports whether any table still holds the entity
func (s *CoreState) Alive(e core.Entity) bool {
	for _, store := range s.Stores() {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// DestroyEntity removes the entity from every table, the tower index and the build queue
func (s *CoreState) DestroyEntity(e core.Entity) {
	if tower, ok := s.Towers.Get(e); ok {
		pos := terrain.Pos{Row: tower.Row, Col: tower.Col}
		if owner, ok := s.TowersByPos.Get(pos); ok && owner == e {
			s.TowersByPos.Remove(pos)
		}
	}
	for _, store := range s.Stores() {
		store.Remove(e)
	}
	s.BuildQueue = slices.DeleteFunc(s.BuildQueue, func(o component.BuildOrder) bool {
		return o.Tower == e
	})
}

// TowerAt returns the tower occupying a visible cell
func (s *CoreState) TowerAt(row, col int) (core.Entity, bool) {
	return s.TowersByPos.Get(terrain.Pos{Row: row, Col: col})
}

// Clone deep-copies the state
func (s *CoreState) Clone() *CoreState {
	return &CoreState{
		Tick:          s.Tick,
		IDs:           s.IDs,
		Rng:           s.Rng,
		Mobs:          s.Mobs.Clone(),
		Walkers:       s.Walkers.Clone(),
		Impulses:      s.Impulses.Clone(),
		Healths:       s.Healths.Clone(),
		Pusillanimous: s.Pusillanimous.Clone(),
		Threats:       s.Threats.Clone(),
		Towers:        s.Towers.Clone(),
		Factories:     s.Factories.Clone(),
		Explosions:    s.Explosions.Clone(),
		TowersByPos:   s.TowersByPos.Clone(),
		BuildQueue:    slices.Clone(s.BuildQueue),
		Waves: component.WaveSpawner{
			Entrances: slices.Clone(s.Waves.Entrances),
			Queue:     slices.Clone(s.Waves.Queue),
		},
	}
}

// Checksum digests the msgpack encoding of the full state
// Two states with equal checksums are treated as identical by determinism checks
func (s *CoreState) Checksum() (uint64, error) {
	h := fnv.New64a()
	if err := msgpack.NewEncoder(h).Encode(s); err != nil {
		return 0, errors.Wrap(err, "encode core state")
	}
	return h.Sum64(), nil
}
