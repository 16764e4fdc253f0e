package system

import (
	"log"
	"math"
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/physics"
	"github.com/lixenwraith/vi-defense/terrain"
)

// BuildSystem progresses the build queue and spins factories
//
// Each tick every order adjacent to an idle operational factory gains FactoryBuildRate per factory,
// a factory helping at most one order. The player adds PlayerBuildRate to the first buildable order
// with no adjacent factory, or to the front order when every order has one.
// Orders complete on the tick after reaching their cost.
type BuildSystem struct {
	world *engine.World

	statQueue    *atomic.Int64
	statBuilt    *atomic.Int64
	statRejected *atomic.Int64
}

func NewBuildSystem(world *engine.World) engine.System {
	s := &BuildSystem{world: world}

	s.statQueue = world.Status.Ints.Get("build.queue")
	s.statBuilt = world.Status.Ints.Get("build.completed")
	s.statRejected = world.Status.Ints.Get("build.rejected")

	world.Handle(engine.CommandPlaceTower, func(w *engine.World, cmd engine.Command) {
		s.QueueTower(cmd.Row, cmd.Col, cmd.Index)
	})
	world.Handle(engine.CommandUpgrade, func(w *engine.World, cmd engine.Command) {
		s.QueueUpgrade(cmd.Row, cmd.Col, cmd.Index)
	})
	world.Handle(engine.CommandCancel, func(w *engine.World, cmd engine.Command) {
		s.Cancel(cmd.Row, cmd.Col)
	})
	return s
}

func (s *BuildSystem) Name() string {
	return "build"
}

func (s *BuildSystem) Priority() int {
	return parameter.PriorityBuild
}

func (s *BuildSystem) reject(format string, args ...any) bool {
	s.statRejected.Add(1)
	log.Printf("[BUILD] rejected: "+format, args...)
	return false
}

// QueueTower places a queued tower and appends its build order
// An unstarted tower order on the same cell is replaced; any other occupancy rejects
func (s *BuildSystem) QueueTower(row, col, typeIndex int) bool {
	w := s.world
	st := w.State

	typ, ok := w.Level.TowerType(typeIndex)
	if !ok {
		return s.reject("tower type %d at (%d,%d)", typeIndex, row, col)
	}
	if e, ok := st.TowerAt(row, col); ok {
		if t, _ := st.Towers.Get(e); t.Status != component.TowerQueued {
			return s.reject("(%d,%d) occupied by %s tower", row, col, t.Status)
		}
	}
	if tile := w.Level.Grid.AtVisible(row, col); tile != terrain.Empty {
		return s.reject("(%d,%d) is %s", row, col, tile)
	}

	var replace core.Entity
	for _, o := range st.BuildQueue {
		if o.Row != row || o.Col != col {
			continue
		}
		if o.Type.Kind == component.BuildTower && o.Progress == 0 {
			replace = o.Tower
			break
		}
		return s.reject("(%d,%d) already under construction", row, col)
	}

	w.Resume()

	if replace != 0 {
		st.BuildQueue = slices.DeleteFunc(st.BuildQueue, func(o component.BuildOrder) bool {
			return o.Row == row && o.Col == col
		})
		st.DestroyEntity(replace)
	}

	e := st.IDs.Create()
	st.Towers.Set(e, component.TowerComponent{
		Row:       row,
		Col:       col,
		Range:     typ.Range,
		TypeIndex: typeIndex,
		Status:    component.TowerQueued,
	})
	st.TowersByPos.Set(terrain.Pos{Row: row, Col: col}, e)
	if typ.IsFactory() {
		st.Factories.Set(e, component.FactoryComponent{})
	}

	st.BuildQueue = append(st.BuildQueue, component.BuildOrder{
		Cost:  math.Trunc(typ.Cost * parameter.BuildTicksPerCost),
		Row:   row,
		Col:   col,
		Tower: e,
		Type:  component.BuildType{Kind: component.BuildTower},
	})
	s.statQueue.Store(int64(len(st.BuildQueue)))
	return true
}

// QueueUpgrade appends an upgrade order for a finished tower
// slot selects the upgrade flag bit; each flag can be built once
func (s *BuildSystem) QueueUpgrade(row, col, slot int) bool {
	w := s.world
	st := w.State

	if slot < 0 || slot >= parameter.MaxUpgradeSlots {
		return s.reject("upgrade slot %d", slot)
	}
	flag := uint32(1) << uint(slot)

	e, ok := st.TowerAt(row, col)
	if !ok {
		return s.reject("no tower at (%d,%d) to upgrade", row, col)
	}
	tower, _ := st.Towers.Get(e)
	if tower.Status == component.TowerQueued || tower.Status == component.TowerBuilding {
		return s.reject("(%d,%d) tower is %s", row, col, tower.Status)
	}
	if tower.Upgrades&flag != 0 {
		return s.reject("(%d,%d) upgrade %d already built", row, col, slot)
	}
	for _, o := range st.BuildQueue {
		if o.Tower == e && o.Type.Kind == component.BuildUpgrade && o.Type.UpgradeFlag == flag {
			return s.reject("(%d,%d) upgrade %d already queued", row, col, slot)
		}
	}

	cost := 0.0
	if typ, ok := w.Level.TowerType(tower.TypeIndex); ok {
		cost = math.Trunc(typ.Cost * parameter.BuildTicksPerCost * parameter.UpgradeCostFactor)
	}

	w.Resume()
	st.BuildQueue = append(st.BuildQueue, component.BuildOrder{
		Cost:  cost,
		Row:   row,
		Col:   col,
		Tower: e,
		Type: component.BuildType{
			Kind:        component.BuildUpgrade,
			CanBuild:    tower.Status == component.TowerOperational,
			UpgradeFlag: flag,
		},
	})
	s.statQueue.Store(int64(len(st.BuildQueue)))
	return true
}

// Cancel removes the first order on a cell
// Cancelling a tower order destroys the tower with all its orders; cancelling an upgrade
// removes every upgrade order on the cell and leaves the tower standing
func (s *BuildSystem) Cancel(row, col int) bool {
	w := s.world
	st := w.State

	i := slices.IndexFunc(st.BuildQueue, func(o component.BuildOrder) bool {
		return o.Row == row && o.Col == col
	})
	if i < 0 {
		return s.reject("nothing to cancel at (%d,%d)", row, col)
	}
	order := st.BuildQueue[i]

	if order.Type.Kind == component.BuildTower {
		st.DestroyEntity(order.Tower)
		st.BuildQueue = slices.DeleteFunc(st.BuildQueue, func(o component.BuildOrder) bool {
			return o.Row == row && o.Col == col
		})
	} else {
		st.BuildQueue = slices.DeleteFunc(st.BuildQueue, func(o component.BuildOrder) bool {
			return o.Row == row && o.Col == col && o.Type.Kind == component.BuildUpgrade
		})
		if t := st.Towers.Ptr(order.Tower); t != nil && t.Status == component.TowerUpgrading {
			t.Status = component.TowerOperational
		}
	}

	if len(st.BuildQueue) == 0 {
		w.AutoPause()
	}
	s.statQueue.Store(int64(len(st.BuildQueue)))
	return true
}

func (s *BuildSystem) Update() {
	w := s.world
	st := w.State

	playerBusy := false
	var completed []int

	for i := range st.BuildQueue {
		order := &st.BuildQueue[i]

		if order.Complete() {
			s.complete(st, i)
			completed = append(completed, i)
			continue
		}

		nearFactory := false
		for _, n := range neighbors(order.Row, order.Col) {
			fe, ok := st.TowerAt(n.Row, n.Col)
			if !ok {
				continue
			}
			f := st.Factories.Ptr(fe)
			if f == nil {
				continue
			}
			// Queued factories still claim the order, only idle operational ones help
			nearFactory = true
			if t, ok := st.Towers.Get(fe); ok && t.Status == component.TowerOperational && !f.Constructing && order.Type.Buildable() {
				f.Constructing = true
				s.begin(st, i)
				order.Progress += parameter.FactoryBuildRate
			}
		}

		if !playerBusy && !nearFactory && order.Type.Buildable() {
			playerBusy = true
			s.begin(st, i)
			order.Progress += parameter.PlayerBuildRate
		}
	}

	removed := len(completed) > 0
	for j := len(completed) - 1; j >= 0; j-- {
		st.BuildQueue = slices.Delete(st.BuildQueue, completed[j], completed[j]+1)
	}

	if !playerBusy && len(st.BuildQueue) > 0 {
		front := &st.BuildQueue[0]
		if front.Complete() {
			s.complete(st, 0)
			st.BuildQueue = slices.Delete(st.BuildQueue, 0, 1)
			removed = true
		} else if front.Type.Buildable() {
			s.begin(st, 0)
			front.Progress += parameter.PlayerBuildRate
		}
	}

	if removed && len(st.BuildQueue) == 0 {
		w.AutoPause()
	}

	s.spinFactories(st)
	s.statQueue.Store(int64(len(st.BuildQueue)))
}

func neighbors(row, col int) [4]terrain.Pos {
	return [4]terrain.Pos{
		{Row: row - 1, Col: col},
		{Row: row + 1, Col: col},
		{Row: row, Col: col + 1},
		{Row: row, Col: col - 1},
	}
}

// begin marks the tower of order i as under construction
// A started upgrade blocks the tower's other upgrades until it completes
func (s *BuildSystem) begin(st *engine.CoreState, i int) {
	order := &st.BuildQueue[i]
	tower := st.Towers.Ptr(order.Tower)
	if tower == nil {
		return
	}

	switch order.Type.Kind {
	case component.BuildTower:
		if tower.Status == component.TowerQueued {
			tower.Status = component.TowerBuilding
		}
	case component.BuildUpgrade:
		tower.Status = component.TowerUpgrading
		for j := range st.BuildQueue {
			o := &st.BuildQueue[j]
			if j != i && o.Tower == order.Tower && o.Type.Kind == component.BuildUpgrade {
				o.Type.CanBuild = false
			}
		}
	}
}

// complete finishes order i and unblocks the tower's pending upgrades
func (s *BuildSystem) complete(st *engine.CoreState, i int) {
	order := &st.BuildQueue[i]
	tower := st.Towers.Ptr(order.Tower)
	if tower == nil {
		return
	}

	if order.Type.Kind == component.BuildUpgrade {
		tower.Upgrades |= order.Type.UpgradeFlag
	}
	tower.Status = component.TowerOperational

	for j := range st.BuildQueue {
		o := &st.BuildQueue[j]
		if j != i && o.Tower == order.Tower && o.Type.Kind == component.BuildUpgrade {
			o.Type.CanBuild = true
		}
	}
	s.statBuilt.Add(1)
	log.Printf("[BUILD] completed order at (%d,%d) on tick %d", order.Row, order.Col, st.Tick)
}

func (s *BuildSystem) spinFactories(st *engine.CoreState) {
	for i := 0; i < st.Factories.Len(); i++ {
		f := st.Factories.PtrAt(i)
		if f.Constructing {
			f.Rotation, f.RotationSpeed = physics.AccelGeometric(f.Rotation, f.RotationSpeed,
				parameter.FactoryMaxRotationSpeed, parameter.FactoryRotationAccel)
		} else {
			f.Rotation, f.RotationSpeed = physics.DecayGeometric(f.Rotation, f.RotationSpeed,
				parameter.FactoryMaxRotationSpeed, parameter.FactoryRotationAccel)
		}
		f.Rotation = physics.WrapAngle(f.Rotation)
		f.Constructing = false
	}
}
