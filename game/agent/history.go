package agent

import (
	"fmt"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"
)

// Record is one successful action and the location it left the agent on.
type Record struct {
	Seq       int            `json:"seq"`
	Kind      ActionKind     `json:"kind"`
	Direction grid.Direction `json:"direction,omitempty"`
	Location  string         `json:"location"`
}

// history keeps the last size records.
type history struct {
	size    int
	seq     int
	entries []Record
}

func newHistory(size int) history {
	return history{size: size, entries: make([]Record, 0, size)}
}

func (h *history) add(r Record) {
	h.seq++
	r.Seq = h.seq
	if h.size == 0 {
		return
	}
	if len(h.entries) == h.size {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.size-1]
	}
	h.entries = append(h.entries, r)
}

func (h *history) records() []Record {
	out := make([]Record, len(h.entries))
	copy(out, h.entries)
	return out
}

// String renders the record as a display line, e.g. "Moved E to B".
func (r Record) String() string {
	switch r.Kind {
	case MoveKind:
		return fmt.Sprintf("Moved %s to %s", r.Direction, r.Location)
	case SuckKind:
		return fmt.Sprintf("Sucked dirt at %s", r.Location)
	case EmptyKind:
		return "Emptied bag at home"
	default:
		return r.Kind.String()
	}
}
