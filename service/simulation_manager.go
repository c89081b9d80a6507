package service

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/agent"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/service/i"
	"github.com/google/uuid"
)

var (
	ErrSimulationNotFound = errors.New("simulation not found")
	ErrInvalidStepCount   = errors.New("step count must be positive")
	ErrNilLogger          = errors.New("simulation manager needs a logger")
)

var _ i.SimulationManager = &SimulationManager{}

// session is one run: its parameters, its random source and the current agent.
type session struct {
	params  i.SimulationParams
	rng     *rand.Rand
	agent   *agent.Agent
	created time.Time
}

// SimulationManager keeps simulation runs in memory, keyed by ID.
// Every operation holds the lock for its whole duration, so a reset never
// interleaves with a step of the same run.
type SimulationManager struct {
	sessions map[uuid.UUID]*session
	defaults i.SimulationParams
	logger   i.Logger
	clock    func() time.Time
	sync.RWMutex
}

// Config holds what a SimulationManager needs.
type Config struct {
	Defaults i.SimulationParams
	Logger   i.Logger
	Clock    func() time.Time // Seeds runs without an explicit seed; defaults to time.Now
}

// NewSimulationManager creates an empty manager.
func NewSimulationManager(c *Config) (*SimulationManager, error) {
	if c.Logger == nil {
		return nil, ErrNilLogger
	}
	if err := validateParams(c.Defaults); err != nil {
		return nil, fmt.Errorf("invalid defaults: %w", err)
	}

	clock := c.Clock
	if clock == nil {
		clock = time.Now
	}

	return &SimulationManager{
		sessions: make(map[uuid.UUID]*session),
		defaults: c.Defaults,
		logger:   c.Logger,
		clock:    clock,
	}, nil
}

// Defaults implements i.SimulationManager.
func (m *SimulationManager) Defaults() i.SimulationParams {
	return m.defaults
}

// NewSimulation implements i.SimulationManager.
func (m *SimulationManager) NewSimulation(params i.SimulationParams) (uuid.UUID, agent.Snapshot, error) {
	if err := validateParams(params); err != nil {
		m.logger.Error(fmt.Sprintf("rejected simulation parameters: %s", err))
		return uuid.Nil, agent.Snapshot{}, err
	}

	seed := m.clock().UnixNano()
	if params.Seed != nil {
		seed = *params.Seed
	}
	s := &session{
		params:  params,
		rng:     rand.New(rand.NewSource(seed)),
		created: m.clock(),
	}

	a, err := s.build()
	if err != nil {
		m.logger.Error(fmt.Sprintf("building simulation: %s", err))
		return uuid.Nil, agent.Snapshot{}, err
	}
	s.agent = a

	m.Lock()
	defer m.Unlock()

	id := uuid.New()
	for {
		if _, ok := m.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	m.sessions[id] = s

	m.logger.Info(fmt.Sprintf("started simulation %s (seed %d, %d dirty cells)", id, seed, a.Grid().DirtyCount()))
	return id, a.Snapshot(), nil
}

// Step implements i.SimulationManager.
func (m *SimulationManager) Step(id uuid.UUID, n int) (i.StepResult, error) {
	if n <= 0 {
		return i.StepResult{}, ErrInvalidStepCount
	}

	m.Lock()
	defer m.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return i.StepResult{}, ErrSimulationNotFound
	}

	result := i.StepResult{Continued: true}
	for result.Taken < n {
		if !s.agent.Step() {
			result.Continued = false
			break
		}
		result.Taken++
	}
	result.Snapshot = s.agent.Snapshot()

	if !result.Continued {
		m.logger.Info(fmt.Sprintf("simulation %s stopped: %s after %d actions", id, s.agent.Status(), s.agent.Actions()))
	}
	return result, nil
}

// Reset implements i.SimulationManager.
func (m *SimulationManager) Reset(id uuid.UUID) (agent.Snapshot, error) {
	m.Lock()
	defer m.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return agent.Snapshot{}, ErrSimulationNotFound
	}

	a, err := s.build()
	if err != nil {
		m.logger.Error(fmt.Sprintf("resetting simulation %s: %s", id, err))
		return agent.Snapshot{}, err
	}
	s.agent = a

	m.logger.Info(fmt.Sprintf("reset simulation %s (%d dirty cells)", id, a.Grid().DirtyCount()))
	return a.Snapshot(), nil
}

// Snapshot implements i.SimulationManager.
func (m *SimulationManager) Snapshot(id uuid.UUID) (agent.Snapshot, error) {
	m.RLock()
	defer m.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return agent.Snapshot{}, ErrSimulationNotFound
	}
	return s.agent.Snapshot(), nil
}

// Remove implements i.SimulationManager.
func (m *SimulationManager) Remove(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSimulationNotFound
	}
	delete(m.sessions, id)

	m.logger.Info(fmt.Sprintf("removed simulation %s", id))
	return nil
}

// List implements i.SimulationManager. Oldest runs come first.
func (m *SimulationManager) List() []uuid.UUID {
	m.RLock()
	defer m.RUnlock()

	ids := make([]uuid.UUID, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		if c := m.sessions[a].created.Compare(m.sessions[b].created); c != 0 {
			return c
		}
		return slices.Compare(a[:], b[:])
	})
	return ids
}

// build creates a fresh agent and grid from the session parameters.
func (s *session) build() (*agent.Agent, error) {
	if len(s.params.Dirty) > 0 {
		g, err := grid.FromLabels(s.params.Dirty...)
		if err != nil {
			return nil, err
		}
		return agent.New(g, s.params.Agent)
	}
	return agent.NewWorld(s.params.DirtRange, s.params.Agent, s.rng)
}

func validateParams(p i.SimulationParams) error {
	if err := p.Agent.Validate(); err != nil {
		return err
	}
	if len(p.Dirty) > 0 {
		_, err := grid.FromLabels(p.Dirty...)
		return err
	}
	return p.DirtRange.Validate()
}
