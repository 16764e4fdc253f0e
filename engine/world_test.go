package engine

import (
	"sync"
	"testing"

	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/terrain"
)

func newTestWorld() *World {
	level := NewLevel("test", 1, terrain.MustParse(terrain.Switchback), nil, make([]component.Wave, 3))
	return NewWorld(level)
}

type recorder struct {
	name     string
	priority int
	log      *[]string
}

func (r *recorder) Name() string  { return r.name }
func (r *recorder) Priority() int { return r.priority }
func (r *recorder) Update()       { *r.log = append(*r.log, r.name) }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := newTestWorld()
	var log []string
	w.AddSystem(&recorder{"build", parameter.PriorityBuild, &log})
	w.AddSystem(&recorder{"walk", parameter.PriorityWalk, &log})
	w.AddSystem(&recorder{"memory", parameter.PriorityMemory, &log})
	w.AddSystem(&recorder{"walk2", parameter.PriorityWalk, &log})

	w.Step()

	want := []string{"memory", "walk", "walk2", "build"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if w.State.Tick != 1 {
		t.Errorf("Expected tick 1, got %d", w.State.Tick)
	}
}

func TestPausedWorldDoesNotTick(t *testing.T) {
	w := newTestWorld()
	var log []string
	w.AddSystem(&recorder{"walk", parameter.PriorityWalk, &log})

	w.Push(Command{Kind: CommandTogglePause})
	w.Step()
	if w.Run != Paused {
		t.Fatalf("Expected paused, got %s", w.Run)
	}
	if len(log) != 0 || w.State.Tick != 0 {
		t.Errorf("Expected no systems while paused, ran %v at tick %d", log, w.State.Tick)
	}

	w.Push(Command{Kind: CommandTogglePause})
	w.Step()
	if w.Run != Playing || w.State.Tick != 1 {
		t.Errorf("Expected playing at tick 1, got %s at %d", w.Run, w.State.Tick)
	}
}

func TestAutoPauseResume(t *testing.T) {
	w := newTestWorld()
	w.AutoPause()
	if w.Run != AutoPaused {
		t.Fatalf("Expected autopaused, got %s", w.Run)
	}
	w.Resume()
	if w.Run != Playing {
		t.Errorf("Expected playing, got %s", w.Run)
	}

	// Resume never overrides an explicit pause
	w.TogglePause()
	w.Resume()
	if w.Run != Paused {
		t.Errorf("Expected paused, got %s", w.Run)
	}
	// Pause toggle leaves autopause as well
	w.Run = AutoPaused
	w.TogglePause()
	if w.Run != Playing {
		t.Errorf("Expected playing, got %s", w.Run)
	}
}

func TestCommandsApplyBeforeTick(t *testing.T) {
	w := newTestWorld()
	var seen []uint64
	w.Handle(CommandPlaceTower, func(w *World, cmd Command) {
		seen = append(seen, w.State.Tick)
	})

	w.Step()
	w.Push(Command{Kind: CommandPlaceTower})
	w.Push(Command{Kind: CommandUpgrade}) // No handler, dropped
	w.Step()

	if len(seen) != 1 || seen[0] != 1 {
		t.Errorf("Expected one command at tick 1, got %v", seen)
	}
}

func TestCheckpointAtWaveStart(t *testing.T) {
	w := newTestWorld()
	w.Step()
	if w.HistoryDepth() != 1 {
		t.Fatalf("Expected checkpoint at tick 0, got depth %d", w.HistoryDepth())
	}
	for w.State.Tick < parameter.WaveTicks+1 {
		w.Step()
	}
	if w.HistoryDepth() != 2 {
		t.Errorf("Expected second checkpoint, got depth %d", w.HistoryDepth())
	}
}

func TestCheckpointOnlyForConfiguredWaves(t *testing.T) {
	level := NewLevel("test", 1, terrain.MustParse(terrain.Switchback), nil, make([]component.Wave, 1))
	w := NewWorld(level)
	for w.State.Tick < 2*parameter.WaveTicks+1 {
		w.Step()
	}
	if w.HistoryDepth() != 1 {
		t.Errorf("Expected one checkpoint for one wave, got %d", w.HistoryDepth())
	}
}

func TestCheckpointNotRepeatedForSameTick(t *testing.T) {
	w := newTestWorld()
	w.Checkpoint()
	w.Step()
	if w.HistoryDepth() != 1 {
		t.Errorf("Expected existing tick 0 checkpoint reused, got depth %d", w.HistoryDepth())
	}
}

func runTo(w *World, tick uint64) {
	for w.State.Tick < tick {
		w.Step()
	}
}

func TestRewindToLastCheckpoint(t *testing.T) {
	w := newTestWorld()
	runTo(w, parameter.WaveTicks+parameter.RewindMergeTicks+1)

	if !w.Rewind() {
		t.Fatal("Expected rewind to succeed")
	}
	if w.State.Tick != parameter.WaveTicks {
		t.Errorf("Expected tick %d, got %d", parameter.WaveTicks, w.State.Tick)
	}
	if w.Run != Paused {
		t.Errorf("Expected paused after rewind, got %s", w.Run)
	}
	if w.Interpolating() {
		t.Error("Expected interpolation latch cleared")
	}
	if w.HistoryDepth() != 1 {
		t.Errorf("Expected one checkpoint left, got %d", w.HistoryDepth())
	}
}

func TestRewindMergesRecentCheckpoint(t *testing.T) {
	w := newTestWorld()
	runTo(w, parameter.WaveTicks+parameter.RewindMergeTicks)

	// Within the merge window, skip to the checkpoint before
	if !w.Rewind() {
		t.Fatal("Expected rewind to succeed")
	}
	if w.State.Tick != 0 {
		t.Errorf("Expected tick 0, got %d", w.State.Tick)
	}
	if w.HistoryDepth() != 0 {
		t.Errorf("Expected empty history, got %d", w.HistoryDepth())
	}
}

func TestRewindOnlyCheckpointWithinWindow(t *testing.T) {
	w := newTestWorld()
	runTo(w, 10)
	if !w.Rewind() || w.State.Tick != 0 {
		t.Errorf("Expected rewind to tick 0, got %d", w.State.Tick)
	}
	if w.Rewind() {
		t.Error("Expected empty history to refuse rewind")
	}
}

func TestRewindReplayRecheckpoints(t *testing.T) {
	w := newTestWorld()
	runTo(w, 50)
	w.Push(Command{Kind: CommandRewind})
	w.Step()
	if w.State.Tick != 0 || w.Run != Paused {
		t.Fatalf("Expected paused at 0, got %s at %d", w.Run, w.State.Tick)
	}

	w.TogglePause()
	w.Step()
	if w.HistoryDepth() != 1 || !w.Interpolating() {
		t.Errorf("Expected checkpoint re-taken and latch set, depth %d", w.HistoryDepth())
	}
}

func TestCommandQueueFIFO(t *testing.T) {
	q := NewCommandQueue()
	for i := 0; i < 5; i++ {
		q.Push(Command{Kind: CommandPlaceTower, Index: i})
	}
	if q.Len() != 5 {
		t.Errorf("Expected 5 pending, got %d", q.Len())
	}
	got := q.Consume()
	for i, cmd := range got {
		if cmd.Index != i {
			t.Errorf("Position %d: expected index %d, got %d", i, i, cmd.Index)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue")
	}
}

func TestCommandQueueRejectsWhenFull(t *testing.T) {
	q := NewCommandQueue()
	total := parameter.CommandQueueSize + 10
	accepted := 0
	for i := 0; i < total; i++ {
		if q.Push(Command{Index: i}) {
			accepted++
		}
	}
	if accepted != parameter.CommandQueueSize {
		t.Errorf("Expected %d accepted, got %d", parameter.CommandQueueSize, accepted)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}

	got := q.Consume()
	if len(got) != parameter.CommandQueueSize {
		t.Fatalf("Expected %d commands, got %d", parameter.CommandQueueSize, len(got))
	}
	if got[0].Index != 0 || got[len(got)-1].Index != parameter.CommandQueueSize-1 {
		t.Errorf("Expected oldest commands kept, got %d..%d", got[0].Index, got[len(got)-1].Index)
	}
	if !q.Push(Command{Index: total}) {
		t.Error("Expected space after consume")
	}
}

func TestWorldPushReportsFullQueue(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < parameter.CommandQueueSize; i++ {
		if !w.Push(Command{Kind: CommandUpgrade}) {
			t.Fatalf("Expected push %d accepted", i)
		}
	}
	if w.Push(Command{Kind: CommandUpgrade}) {
		t.Error("Expected push on full queue to fail")
	}
	w.Step()
	if v := w.Status.Ints.Get("command.dropped").Load(); v != 1 {
		t.Errorf("Expected dropped metric 1, got %d", v)
	}
	if w.commands.Len() != 0 {
		t.Errorf("Expected queue drained by step, got %d", w.commands.Len())
	}
}

func TestCommandQueueConcurrentProducers(t *testing.T) {
	q := NewCommandQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Push(Command{Row: p, Index: i})
			}
		}(p)
	}
	wg.Wait()

	last := map[int]int{0: -1, 1: -1, 2: -1, 3: -1}
	got := q.Consume()
	if len(got) != 200 {
		t.Fatalf("Expected 200 commands, got %d", len(got))
	}
	for _, cmd := range got {
		if cmd.Index <= last[cmd.Row] {
			t.Fatalf("Producer %d out of order: %d after %d", cmd.Row, cmd.Index, last[cmd.Row])
		}
		last[cmd.Row] = cmd.Index
	}
}
