package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/vi-defense/parameter"
)

// CommandKind identifies a player command
type CommandKind uint8

const (
	CommandPlaceTower CommandKind = iota
	CommandCancel
	CommandUpgrade
	CommandRewind
	CommandTogglePause
)

func (k CommandKind) String() string {
	switch k {
	case CommandPlaceTower:
		return "place"
	case CommandCancel:
		return "cancel"
	case CommandUpgrade:
		return "upgrade"
	case CommandRewind:
		return "rewind"
	case CommandTogglePause:
		return "pause"
	default:
		return fmt.Sprintf("CommandKind(%d)", uint8(k))
	}
}

// Command is a player request applied at the next tick boundary
// Row and Col are visible grid coordinates; Index is the tower type or upgrade slot
type Command struct {
	Kind     CommandKind
	Row, Col int
	Index    int
}

// CommandHandler applies one command to the world on the tick goroutine
type CommandHandler func(w *World, cmd Command)

// CommandQueue is a bounded MPSC ring of player commands
// Producers reserve a slot by CAS on tail and then mark it ready; the tick loop is the only consumer
// A full queue rejects the command, accepted commands are never overwritten
type CommandQueue struct {
	slots   [parameter.CommandQueueSize]commandSlot
	head    atomic.Uint64 // Next slot to consume, written by the consumer only
	tail    atomic.Uint64 // Next slot to reserve
	dropped atomic.Int64
}

type commandSlot struct {
	cmd   Command
	ready atomic.Bool
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Push reserves a slot for cmd, returns false when the queue is full
func (q *CommandQueue) Push(cmd Command) bool {
	for {
		tail := q.tail.Load()
		if tail-q.head.Load() >= parameter.CommandQueueSize {
			q.dropped.Add(1)
			return false
		}
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}
		slot := &q.slots[tail&parameter.CommandBufferMask]
		slot.cmd = cmd
		slot.ready.Store(true)
		return true
	}
}

// Consume drains ready commands in reservation order
// Stops at a slot whose producer has not finished writing, the rest waits for the next call
func (q *CommandQueue) Consume() []Command {
	head := q.head.Load()
	tail := q.tail.Load()

	var out []Command
	for ; head < tail; head++ {
		slot := &q.slots[head&parameter.CommandBufferMask]
		if !slot.ready.Load() {
			break
		}
		out = append(out, slot.cmd)
		slot.ready.Store(false)
	}
	q.head.Store(head)
	return out
}

// Len returns the number of reserved slots not yet consumed
func (q *CommandQueue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(tail - head)
}

// Dropped returns how many commands were rejected on a full queue
func (q *CommandQueue) Dropped() int64 {
	return q.dropped.Load()
}
