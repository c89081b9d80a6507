package i

import (
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/agent"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"
	"github.com/google/uuid"
)

// SimulationParams describes how a run builds its agent and grid.
type SimulationParams struct {
	DirtRange grid.DirtRange
	Agent     agent.Options
	Seed      *int64   // Fixed seed for reproducible layouts; nil draws one from the clock
	Dirty     []string // Explicit dirty locations; overrides DirtRange when set
}

// StepResult reports the outcome of a batch of steps.
type StepResult struct {
	Taken     int  // Steps that performed an action
	Continued bool // Whether the run may continue
	Snapshot  agent.Snapshot
}

// SimulationManager owns independent simulation runs, each with exactly one agent and grid.
type SimulationManager interface {
	// NewSimulation builds a fresh agent and grid and returns the run's ID.
	NewSimulation(params SimulationParams) (uuid.UUID, agent.Snapshot, error)

	// Step runs up to n steps, stopping at the first one that cannot continue.
	Step(id uuid.UUID, n int) (StepResult, error)

	// Reset discards the run's agent and grid and builds new ones with the same parameters.
	Reset(id uuid.UUID) (agent.Snapshot, error)

	// Snapshot returns the current state of the run.
	Snapshot(id uuid.UUID) (agent.Snapshot, error)

	// Remove forgets the run.
	Remove(id uuid.UUID) error

	// List returns the IDs of all runs.
	List() []uuid.UUID

	// Defaults returns the parameters used when a request does not override them.
	Defaults() SimulationParams
}
