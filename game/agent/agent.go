// Package agent implements the cleaning agent: its state, its decision policy
// and the actuators that change the world.
//
// An Agent owns its grid. The pair lives for one simulation run; starting over
// means building a new Agent, there is no partial reset.
package agent

import (
	"errors"
	"fmt"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"
)

var ErrInvalidOptions = errors.New("invalid agent options")

const (
	defaultEnergy      = 100
	defaultBagCapacity = 10
	defaultHistorySize = 6
)

// Costs is the energy each actuator consumes on success.
type Costs struct {
	Move  int
	Suck  int
	Empty int
}

// Options configures a new agent.
type Options struct {
	Energy      int   // Starting energy
	BagCapacity int   // Dirt units the bag holds before it must be emptied
	HistorySize int   // Number of recent actions kept for display
	Costs       Costs // Energy cost per action
}

// DefaultOptions returns 100 energy, a 10 unit bag, 6 history entries and unit costs.
func DefaultOptions() Options {
	return Options{
		Energy:      defaultEnergy,
		BagCapacity: defaultBagCapacity,
		HistorySize: defaultHistorySize,
		Costs:       Costs{Move: 1, Suck: 1, Empty: 1},
	}
}

// Validate checks the options for values the agent cannot run with.
func (o Options) Validate() error {
	switch {
	case o.Energy <= 0:
		return fmt.Errorf("%w: energy must be positive", ErrInvalidOptions)
	case o.BagCapacity <= 0:
		return fmt.Errorf("%w: bag capacity must be positive", ErrInvalidOptions)
	case o.HistorySize < 0:
		return fmt.Errorf("%w: history size cannot be negative", ErrInvalidOptions)
	case o.Costs.Move < 0 || o.Costs.Suck < 0 || o.Costs.Empty < 0:
		return fmt.Errorf("%w: action costs cannot be negative", ErrInvalidOptions)
	}
	return nil
}

// Status is the state of the step machine.
type Status int

const (
	Running Status = iota
	OutOfEnergy
	Completed
)

func (s Status) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case OutOfEnergy:
		return "OUT_OF_ENERGY"
	case Completed:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Agent is a goal-based cleaner with full observability of its grid.
type Agent struct {
	grid *grid.Grid
	opts Options

	pos       grid.Position
	energy    int
	bag       int
	actions   int
	cleaned   int
	completed bool
	status    Status

	route     Route // committed route home, meaningful only when committed is set
	committed bool

	history history
}

// New places an agent at grid.Home of g.
func New(g *grid.Grid, opts Options) (*Agent, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidOptions)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Agent{
		grid:    g,
		opts:    opts,
		pos:     grid.Home,
		energy:  opts.Energy,
		status:  Running,
		history: newHistory(opts.HistorySize),
	}, nil
}

// NewWorld creates a fresh agent together with a randomly dirtied grid.
func NewWorld(r grid.DirtRange, opts Options, rng grid.Random) (*Agent, error) {
	g, err := grid.New(r, rng)
	if err != nil {
		return nil, err
	}
	return New(g, opts)
}

// Location returns the label of the agent's cell.
func (a *Agent) Location() string { return grid.Label(a.pos) }

// Position returns the agent's cell.
func (a *Agent) Position() grid.Position { return a.pos }

// Grid exposes the world for read-only queries.
func (a *Agent) Grid() *grid.Grid { return a.grid }

// Dirt returns a snapshot of the dirt matrix, indexed [y][x].
func (a *Agent) Dirt() [grid.Size][grid.Size]bool { return a.grid.Dirt() }

// Energy returns the raw energy, which may reach zero or below.
func (a *Agent) Energy() int { return a.energy }

// DisplayEnergy returns the energy clamped to [0, starting energy].
func (a *Agent) DisplayEnergy() int {
	return max(0, min(a.energy, a.opts.Energy))
}

// InitialEnergy returns the energy the agent started with.
func (a *Agent) InitialEnergy() int { return a.opts.Energy }

// Bag returns the current bag fill level.
func (a *Agent) Bag() int { return a.bag }

// BagCapacity returns the bag size.
func (a *Agent) BagCapacity() int { return a.opts.BagCapacity }

// Actions returns how many actions succeeded.
func (a *Agent) Actions() int { return a.actions }

// Cleaned returns the cumulative number of dirt units sucked.
func (a *Agent) Cleaned() int { return a.cleaned }

// Completed reports whether the goal has been reached. Once set it stays set.
func (a *Agent) Completed() bool { return a.completed }

// Status returns the step machine state.
func (a *Agent) Status() Status { return a.status }

// ReturningHome reports whether a route home is committed.
func (a *Agent) ReturningHome() bool { return a.committed }

// History returns the most recent actions, oldest first.
func (a *Agent) History() []Record { return a.history.records() }

// IsGoalAchieved reports whether every cell is clean and the agent is home.
func (a *Agent) IsGoalAchieved() bool {
	return a.pos == grid.Home && a.grid.AllClean()
}

// Percept is what the agent senses on its current cell.
type Percept struct {
	Location string `json:"location"`
	Dirty    bool   `json:"dirty"`
}

func (p Percept) String() string {
	state := "Clean"
	if p.Dirty {
		state = "Dirty"
	}
	return fmt.Sprintf("[%s, %s]", p.Location, state)
}

// Percept returns the location and dirt percept for the current cell.
func (a *Agent) Percept() Percept {
	return Percept{Location: a.Location(), Dirty: a.grid.IsDirty(a.pos)}
}

// Performance summarises the run against the performance measure:
// clean everything and return home using as little energy as possible.
type Performance struct {
	Cleaned     int  `json:"cleaned"`
	EnergySpent int  `json:"energy_spent"`
	Actions     int  `json:"actions"`
	Completed   bool `json:"completed"`
}

// Performance returns the run's performance figures so far.
func (a *Agent) Performance() Performance {
	return Performance{
		Cleaned:     a.cleaned,
		EnergySpent: a.opts.Energy - a.energy,
		Actions:     a.actions,
		Completed:   a.completed,
	}
}
