package agent

import "github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"

// Decide picks the next action. Rules are evaluated top to bottom and the
// first match wins:
//
//  1. everything is clean but the agent is away: follow the route home
//  2. the bag is full: empty it at home, otherwise follow the route home
//  3. the current cell is dirty: suck
//  4. otherwise head for the nearest dirty cell
//
// The only state Decide changes is the committed route home.
func (a *Agent) Decide() Action {
	atHome := a.pos == grid.Home

	if a.grid.AllClean() && !atHome {
		if d, ok := a.followRouteHome(); ok {
			return MoveAction(d)
		}
		return MoveAction(grid.North)
	}

	if a.bag >= a.opts.BagCapacity {
		if atHome {
			return EmptyAction()
		}
		if d, ok := a.followRouteHome(); ok {
			return MoveAction(d)
		}
		return EmptyAction()
	}

	if a.grid.IsDirty(a.pos) {
		return SuckAction()
	}

	// The current cell is clean here, so a found route always has a first move.
	if route, found := NearestDirt(a.grid, a.pos); found {
		if d, _, ok := route.Next(); ok {
			return MoveAction(d)
		}
	}

	return MoveAction(grid.North)
}

// followRouteHome commits to a shortest route home if none is committed yet,
// then consumes its next move.
func (a *Agent) followRouteHome() (grid.Direction, bool) {
	if !a.committed {
		a.route = PathHome(a.pos)
		a.committed = true
	}

	d, rest, ok := a.route.Next()
	if ok {
		a.route = rest
	}
	return d, ok
}

func (a *Agent) clearRoute() {
	a.route = Route{}
	a.committed = false
}

// PlannedRoute returns the remaining committed route home, if any.
func (a *Agent) PlannedRoute() (Route, bool) {
	return a.route, a.committed
}
