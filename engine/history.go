package engine

// History is a bounded stack of state snapshots, the oldest is dropped when full
type History struct {
	snapshots []*CoreState
	capacity  int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		snapshots: make([]*CoreState, 0, capacity),
		capacity:  capacity,
	}
}

// Push stores a snapshot the caller no longer mutates
func (h *History) Push(s *CoreState) {
	if len(h.snapshots) == h.capacity {
		copy(h.snapshots, h.snapshots[1:])
		h.snapshots = h.snapshots[:len(h.snapshots)-1]
	}
	h.snapshots = append(h.snapshots, s)
}

// Pop removes and returns the newest snapshot
func (h *History) Pop() (*CoreState, bool) {
	n := len(h.snapshots)
	if n == 0 {
		return nil, false
	}
	s := h.snapshots[n-1]
	h.snapshots[n-1] = nil
	h.snapshots = h.snapshots[:n-1]
	return s, true
}

// Peek returns the newest snapshot without removing it
func (h *History) Peek() (*CoreState, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	return h.snapshots[len(h.snapshots)-1], true
}

func (h *History) Len() int {
	return len(h.snapshots)
}
