package cpu

const (
	HISTORY_LIMIT = 10 // Number of history registers.
)

// History is a ring of past ALU results.
//
// Recall walks backwards from the most recent write. Each write restarts
// the walk, and the walk ends once every written slot has been visited.
type History struct {
	Data [HISTORY_LIMIT]int

	WriteIndex int // Next slot to write.
	ReadIndex  int // Slot just past the next one to recall.
	Size       int // Number of slots ever written, up to HISTORY_LIMIT.

	unread int // Slots left in the current recall walk.
}

// Push records a value, returning the slot it was written to.
func (h *History) Push(value int) (slot int) {
	slot = h.WriteIndex
	h.Data[slot] = value

	h.WriteIndex++
	if h.WriteIndex == HISTORY_LIMIT {
		h.WriteIndex = 0
	}

	if h.Size < HISTORY_LIMIT {
		h.Size++
	}

	h.ReadIndex = h.WriteIndex
	h.unread = h.Size

	return
}

// Recall returns the next older value of the current recall walk.
func (h *History) Recall() (value int, ok bool) {
	if h.unread == 0 {
		return
	}

	h.ReadIndex--
	if h.ReadIndex < 0 {
		h.ReadIndex = HISTORY_LIMIT - 1
	}
	h.unread--

	return h.Data[h.ReadIndex], true
}

// Empty is true if nothing was ever written.
func (h *History) Empty() bool {
	return h.Size == 0
}

// Reset clears all history.
func (h *History) Reset() {
	clear(h.Data[:])
	h.WriteIndex = 0
	h.ReadIndex = 0
	h.Size = 0
	h.unread = 0
}
