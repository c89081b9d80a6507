package grid

// Size is the number of rows and columns of the world.
const Size = 4

// Home is the cell the agent starts on and returns to for emptying its bag.
var Home = Position{X: 0, Y: 0}

var labels = [Size][Size]string{
	{"A", "B", "C", "D"},
	{"E", "F", "G", "H"},
	{"I", "J", "K", "L"},
	{"M", "N", "O", "P"},
}

// Direction is a single-cell move on the grid.
type Direction string

const (
	North Direction = "N"
	South Direction = "S"
	East  Direction = "E"
	West  Direction = "W"
)

// Directions lists every direction in search expansion order.
// Searches rely on this order for tie-breaking.
var Directions = []Direction{North, South, East, West}

var deltas = map[Direction]Position{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	_, ok := deltas[d]
	return ok
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// Position is a cell coordinate: X is the column, Y is the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the position one cell away in direction d.
// The result may be out of bound; use InBound to check it.
func (p Position) Step(d Direction) Position {
	delta := deltas[d]
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// InBound reports whether p lies on the grid.
func InBound(p Position) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Label returns the letter naming p, or "" when p is off the grid.
func Label(p Position) string {
	if !InBound(p) {
		return ""
	}
	return labels[p.Y][p.X]
}

// PositionOf resolves a location letter back to its cell.
func PositionOf(label string) (Position, bool) {
	for y := range Size {
		for x := range Size {
			if labels[y][x] == label {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// Manhattan returns the lattice distance between two cells.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Move is a transition from one cell to an adjacent one.
type Move struct {
	From      Position
	To        Position
	Direction Direction
}

// Neighbors finds all in-bound moves from p, in Directions order.
func Neighbors(p Position) []Move {
	result := make([]Move, 0, len(Directions))
	for _, dir := range Directions {
		to := p.Step(dir)
		if InBound(to) {
			result = append(result, Move{From: p, To: to, Direction: dir})
		}
	}
	return result
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
