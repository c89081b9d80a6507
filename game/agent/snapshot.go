package agent

import "github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Location      string
	Position      grid.Position
	Dirt          [grid.Size][grid.Size]bool
	DirtyCount    int
	Energy        int
	DisplayEnergy int
	InitialEnergy int
	Bag           int
	BagCapacity   int
	Actions       int
	Cleaned       int
	Completed     bool
	Status        Status
	ReturningHome bool
	Percept       Percept
	History       []Record
}

// Snapshot captures the agent and grid state.
func (a *Agent) Snapshot() Snapshot {
	return Snapshot{
		Location:      a.Location(),
		Position:      a.pos,
		Dirt:          a.grid.Dirt(),
		DirtyCount:    a.grid.DirtyCount(),
		Energy:        a.energy,
		DisplayEnergy: a.DisplayEnergy(),
		InitialEnergy: a.opts.Energy,
		Bag:           a.bag,
		BagCapacity:   a.opts.BagCapacity,
		Actions:       a.actions,
		Cleaned:       a.cleaned,
		Completed:     a.completed,
		Status:        a.status,
		ReturningHome: a.committed,
		Percept:       a.Percept(),
		History:       a.history.records(),
	}
}
