package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// TickInterval is the wall-clock duration of one simulation tick
	TickInterval = time.Second / TicksPerSecond

	// FrameUpdateInterval is the viewer redraw interval
	FrameUpdateInterval = 16 * time.Millisecond
)

// Command Queue
const (
	// CommandQueueSize is the fixed capacity of the command ring buffer
	CommandQueueSize = 256

	// CommandBufferMask is the bitmask for fast modulo operations (256 - 1)
	CommandBufferMask = 255
)

// Snapshot History
const (
	// HistoryCapacity is the number of checkpoints kept, oldest dropped first
	HistoryCapacity = 32

	// RewindMergeTicks folds a rewind into the previous checkpoint when the current one is younger than this
	RewindMergeTicks = 3 * TicksPerSecond
)
