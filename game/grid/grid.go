/*
Package grid models the world the cleaning agent lives in.

The world is a fixed Size×Size lattice with no obstacles. Each cell carries a dirt flag
and a static letter label assigned row-major (A at the home corner, P at the far one).

Dirt is placed once, when the grid is created, either by sampling a random subset of the
non-home cells or from an explicit list of cells. The home cell is never dirty.
*/
package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDirtRange = errors.New("invalid dirt range")
	ErrOutOfBound       = errors.New("cell is out of the grid")
	ErrDirtyHome        = errors.New("home cell cannot hold dirt")
)

// DefaultDirtRange is the number of dirty cells a random world starts with.
var DefaultDirtRange = DirtRange{Min: 6, Max: 10}

// DirtRange bounds, inclusively, how many cells start dirty.
type DirtRange struct {
	Min int
	Max int
}

// Validate checks that the range can be satisfied by the non-home cells.
func (r DirtRange) Validate() error {
	if r.Min < 0 || r.Min > r.Max || r.Max > Size*Size-1 {
		return fmt.Errorf("%w: %d-%d", ErrInvalidDirtRange, r.Min, r.Max)
	}
	return nil
}

// Random is the randomness a grid needs to place dirt.
// *rand.Rand from math/rand satisfies it.
type Random interface {
	Intn(n int) int
	Perm(n int) []int
}

// Grid holds the dirt state of every cell.
type Grid struct {
	dirt [Size][Size]bool // indexed [y][x]
}

// New creates a grid whose dirty cell count is drawn uniformly from r,
// sampling cells without replacement from everything except Home.
func New(r DirtRange, rng Random) (*Grid, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]Position, 0, Size*Size-1)
	for y := range Size {
		for x := range Size {
			p := Position{X: x, Y: y}
			if p != Home {
				candidates = append(candidates, p)
			}
		}
	}

	count := r.Min + rng.Intn(r.Max-r.Min+1)
	g := &Grid{}
	for _, idx := range rng.Perm(len(candidates))[:count] {
		p := candidates[idx]
		g.dirt[p.Y][p.X] = true
	}

	return g, nil
}

// FromCells creates a grid where exactly the given cells are dirty.
func FromCells(cells ...Position) (*Grid, error) {
	g := &Grid{}
	for _, p := range cells {
		if !InBound(p) {
			return nil, fmt.Errorf("%w: %d,%d", ErrOutOfBound, p.X, p.Y)
		}
		if p == Home {
			return nil, ErrDirtyHome
		}
		g.dirt[p.Y][p.X] = true
	}
	return g, nil
}

// FromLabels is FromCells addressed by location letters.
func FromLabels(names ...string) (*Grid, error) {
	cells := make([]Position, 0, len(names))
	for _, name := range names {
		p, ok := PositionOf(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown location %q", ErrOutOfBound, name)
		}
		cells = append(cells, p)
	}
	return FromCells(cells...)
}

// IsDirty reports whether the cell at p holds dirt. p must be in bound.
func (g *Grid) IsDirty(p Position) bool {
	return g.dirt[p.Y][p.X]
}

// ClearDirt marks the cell at p clean. p must be in bound.
func (g *Grid) ClearDirt(p Position) {
	g.dirt[p.Y][p.X] = false
}

// DirtyCount returns how many cells still hold dirt.
func (g *Grid) DirtyCount() int {
	count := 0
	for y := range Size {
		for x := range Size {
			if g.dirt[y][x] {
				count++
			}
		}
	}
	return count
}

// AllClean reports whether no cell holds dirt.
func (g *Grid) AllClean() bool {
	return g.DirtyCount() == 0
}

// Dirt returns a copy of the dirt matrix, indexed [y][x].
func (g *Grid) Dirt() [Size][Size]bool {
	return g.dirt
}

// DirtyCells lists the dirty cells in row-major order.
func (g *Grid) DirtyCells() []Position {
	var cells []Position
	for y := range Size {
		for x := range Size {
			if g.dirt[y][x] {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

// String provides a textual representation of the grid.
// Dirty cells show '*' next to their label.
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("----+", Size) + "\n")
	for y := range Size {
		b.WriteString("|")
		for x := range Size {
			mark := " "
			if g.dirt[y][x] {
				mark = "*"
			}
			fmt.Fprintf(&b, " %s%s |", labels[y][x], mark)
		}
		b.WriteString("\n+" + strings.Repeat("----+", Size) + "\n")
	}

	return b.String()
}
