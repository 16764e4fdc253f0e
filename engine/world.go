package engine

import (
	"fmt"
	"log"
	"sort"
	"sync/atomic"

	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/status"
)

// RunState gates the tick loop
type RunState uint8

const (
	Playing RunState = iota
	Paused
	AutoPaused // Build queue drained, resumes when something is queued
)

func (s RunState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case AutoPaused:
		return "autopaused"
	default:
		return fmt.Sprintf("RunState(%d)", uint8(s))
	}
}

// System is one stage of the tick loop
// Systems must read w.State on every Update, rewind replaces it
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// World owns the simulation state and drives the fixed-order tick loop
// Step is single-threaded; only Push and the status registry are safe from other goroutines
type World struct {
	State  *CoreState
	Level  *Level
	Run    RunState
	Status *status.Registry

	systems  []System
	commands *CommandQueue
	handlers map[CommandKind]CommandHandler
	history  *History

	// Cleared by rewind so renderers draw settled positions until the next tick
	interpolate bool

	statTick     *atomic.Int64
	statEntities *atomic.Int64
	statHistory  *atomic.Int64
	statRewinds  *atomic.Int64
	statPaused   *atomic.Bool
	statRun      *status.AtomicString
	statDropped  *atomic.Int64
}

// NewWorld creates a playing world at tick 0 for a level
func NewWorld(level *Level) *World {
	w := &World{
		State:    NewCoreState(level.Seed, level.Grid.Entrances()),
		Level:    level,
		Run:      Playing,
		Status:   status.NewRegistry(),
		commands: NewCommandQueue(),
		handlers: make(map[CommandKind]CommandHandler),
		history:  NewHistory(parameter.HistoryCapacity),
	}

	w.statTick = w.Status.Ints.Get("tick")
	w.statEntities = w.Status.Ints.Get("entity.next")
	w.statHistory = w.Status.Ints.Get("history.depth")
	w.statRewinds = w.Status.Ints.Get("rewind.count")
	w.statPaused = w.Status.Bools.Get("run.paused")
	w.statRun = w.Status.Strings.Get("run.state")
	w.statDropped = w.Status.Ints.Get("command.dropped")
	w.Status.Strings.Get("level.name").Store(level.Name)

	w.Handle(CommandRewind, func(w *World, _ Command) { w.Rewind() })
	w.Handle(CommandTogglePause, func(w *World, _ Command) { w.TogglePause() })

	w.publish()
	return w
}

// AddSystem registers a system, keeping registration order among equal priorities
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Handle routes a command kind to fn, replacing any earlier handler
func (w *World) Handle(kind CommandKind, fn CommandHandler) {
	w.handlers[kind] = fn
}

// Push queues a command for the next tick boundary, safe from any goroutine
// Returns false when the command queue is full and the command was dropped
func (w *World) Push(cmd Command) bool {
	if !w.commands.Push(cmd) {
		log.Printf("[WORLD] command queue full, %s command dropped", cmd.Kind)
		return false
	}
	return true
}

// Step applies pending commands and, when playing, advances one tick
func (w *World) Step() {
	for _, cmd := range w.commands.Consume() {
		w.Apply(cmd)
	}

	if w.Run == Playing {
		if w.waveStarts() {
			w.Checkpoint()
		}

		for _, s := range w.systems {
			s.Update()
		}
		w.State.Tick++
		w.interpolate = true
	}

	w.publish()
}

// Apply runs a command immediately on the calling goroutine
func (w *World) Apply(cmd Command) {
	fn, ok := w.handlers[cmd.Kind]
	if !ok {
		log.Printf("[WORLD] no handler for %s command, dropped", cmd.Kind)
		return
	}
	fn(w, cmd)
}

// Interpolating reports whether old positions may be blended toward current ones
func (w *World) Interpolating() bool {
	return w.interpolate
}

// TogglePause flips between playing and paused, autopause resumes
func (w *World) TogglePause() {
	if w.Run == Playing {
		w.Run = Paused
	} else {
		w.Run = Playing
	}
}

// Resume leaves autopause, explicit pause is left alone
func (w *World) Resume() {
	if w.Run == AutoPaused {
		w.Run = Playing
	}
}

// AutoPause pauses a playing world whose build queue drained
func (w *World) AutoPause() {
	if w.Run == Playing {
		w.Run = AutoPaused
	}
}

// waveStarts reports whether this tick opens a configured wave not yet checkpointed
func (w *World) waveStarts() bool {
	tick := w.State.Tick
	if tick%parameter.WaveTicks != 0 || tick/parameter.WaveTicks >= uint64(len(w.Level.Waves)) {
		return false
	}
	if top, ok := w.history.Peek(); ok && top.Tick == tick {
		return false
	}
	return true
}

// Checkpoint pushes a copy of the current state onto the history
func (w *World) Checkpoint() {
	w.history.Push(w.State.Clone())
	log.Printf("[WORLD] checkpoint at tick %d, depth %d", w.State.Tick, w.history.Len())
}

// HistoryDepth returns the number of stored checkpoints
func (w *World) HistoryDepth() int {
	return w.history.Len()
}

// Rewind restores the most recent checkpoint, skipping back further when
// that checkpoint is younger than RewindMergeTicks
// The world is paused afterwards; returns false when there is nothing to restore
func (w *World) Rewind() bool {
	restored := false
	for {
		snapshot, ok := w.history.Pop()
		if !ok {
			break
		}
		current := w.State.Tick
		w.State = snapshot
		restored = true
		if current-snapshot.Tick > parameter.RewindMergeTicks || w.history.Len() == 0 {
			break
		}
	}
	if !restored {
		return false
	}

	w.Run = Paused
	w.interpolate = false
	w.statRewinds.Add(1)
	log.Printf("[WORLD] rewound to tick %d, depth %d", w.State.Tick, w.history.Len())
	return true
}

func (w *World) publish() {
	w.statTick.Store(int64(w.State.Tick))
	w.statEntities.Store(int64(w.State.IDs.Next))
	w.statHistory.Store(int64(w.history.Len()))
	w.statPaused.Store(w.Run != Playing)
	w.statRun.Store(w.Run.String())
	w.statDropped.Store(w.commands.Dropped())
}
