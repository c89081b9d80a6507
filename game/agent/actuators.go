package agent

import "github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"

// Move shifts the agent one cell in direction d.
// It returns false, changing nothing, when the move would leave the grid.
func (a *Agent) Move(d grid.Direction) bool {
	to := a.pos.Step(d)
	if !d.Valid() || !grid.InBound(to) {
		return false
	}

	a.pos = to
	a.spend(a.opts.Costs.Move)
	a.history.add(Record{Kind: MoveKind, Direction: d, Location: a.Location()})
	return true
}

// Suck collects the dirt on the current cell.
// It returns false when the cell is clean or the bag is full.
func (a *Agent) Suck() bool {
	if !a.grid.IsDirty(a.pos) || a.bag >= a.opts.BagCapacity {
		return false
	}

	a.grid.ClearDirt(a.pos)
	a.bag++
	a.cleaned++
	a.spend(a.opts.Costs.Suck)
	a.history.add(Record{Kind: SuckKind, Location: a.Location()})
	return true
}

// Empty empties the bag. It only works at home.
func (a *Agent) Empty() bool {
	if a.pos != grid.Home {
		return false
	}

	a.bag = 0
	a.spend(a.opts.Costs.Empty)
	a.clearRoute()
	a.history.add(Record{Kind: EmptyKind, Location: a.Location()})
	return true
}

// Execute dispatches action to its actuator and reports whether it succeeded.
func (a *Agent) Execute(action Action) bool {
	switch action.Kind {
	case MoveKind:
		return a.Move(action.Direction)
	case SuckKind:
		return a.Suck()
	case EmptyKind:
		return a.Empty()
	default:
		return false
	}
}

func (a *Agent) spend(cost int) {
	a.energy -= cost
	a.actions++
}

// Step runs one decide-then-act cycle. It returns false, without acting, once
// the agent is out of energy or the goal is achieved.
func (a *Agent) Step() bool {
	if a.energy <= 0 {
		a.status = OutOfEnergy
		return false
	}

	if a.IsGoalAchieved() {
		a.completed = true
		a.status = Completed
		a.clearRoute()
		return false
	}

	a.Execute(a.Decide())
	return true
}

// Run steps until the agent cannot continue or limit steps were taken.
// It returns the number of steps that acted.
func (a *Agent) Run(limit int) int {
	steps := 0
	for steps < limit && a.Step() {
		steps++
	}
	return steps
}
