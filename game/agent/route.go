package agent

import (
	"slices"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"
	"github.com/zyedidia/generic/mapset"
)

// Route is an ordered sequence of moves. Routes are values: Next never
// mutates the receiver, it hands back the remainder as a new Route.
type Route struct {
	steps []grid.Direction
}

// NewRoute builds a route from a copy of steps.
func NewRoute(steps ...grid.Direction) Route {
	return Route{steps: slices.Clone(steps)}
}

// Len returns the number of remaining moves.
func (r Route) Len() int {
	return len(r.steps)
}

// Steps returns a copy of the remaining moves.
func (r Route) Steps() []grid.Direction {
	return slices.Clone(r.steps)
}

// Next splits the route into its first move and the rest.
// ok is false when the route is exhausted.
func (r Route) Next() (d grid.Direction, rest Route, ok bool) {
	if len(r.steps) == 0 {
		return "", r, false
	}
	return r.steps[0], Route{steps: r.steps[1:]}, true
}

// Destination returns the cell the route ends on when followed from start.
func (r Route) Destination(start grid.Position) grid.Position {
	for _, d := range r.steps {
		start = start.Step(d)
	}
	return start
}

type frontierNode struct {
	pos  grid.Position
	path []grid.Direction
}

// search runs a breadth-first search from start over the 4-connected grid and
// returns the path to the first dequeued cell satisfying goal. Neighbors are
// expanded in grid.Directions order and the first discovery of a cell wins, so
// ties always resolve the same way.
func search(start grid.Position, goal func(grid.Position) bool) (Route, bool) {
	visited := mapset.New[grid.Position]()
	visited.Put(start)
	queue := []frontierNode{{pos: start}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if goal(current.pos) {
			return Route{steps: current.path}, true
		}

		for _, move := range grid.Neighbors(current.pos) {
			if visited.Has(move.To) {
				continue
			}
			visited.Put(move.To)
			path := append(slices.Clone(current.path), move.Direction)
			queue = append(queue, frontierNode{pos: move.To, path: path})
		}
	}

	return Route{}, false
}

// PathHome returns a shortest route from `from` to grid.Home.
func PathHome(from grid.Position) Route {
	route, _ := search(from, func(p grid.Position) bool { return p == grid.Home })
	return route
}

// NearestDirt returns the route to the closest dirty cell other than from.
// ok is false when no other cell holds dirt.
func NearestDirt(g *grid.Grid, from grid.Position) (Route, bool) {
	return search(from, func(p grid.Position) bool {
		return p != from && g.IsDirty(p)
	})
}
