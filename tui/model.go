// Package tui is the interactive terminal driver for a single run.
package tui

import (
	"errors"
	"time"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/agent"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/service/i"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
)

const (
	MinSpeed = 1
	MaxSpeed = 10
)

var ErrNilManager = errors.New("terminal driver needs a simulation manager")

// Config holds what the terminal driver needs.
type Config struct {
	Manager i.SimulationManager
	Params  i.SimulationParams
	Speed   int           // Steps per tick in auto mode, clamped to [MinSpeed, MaxSpeed]
	Tick    time.Duration // Auto mode interval; defaults to one second
	Colors  bool
}

// Model is the bubbletea model of one run.
type Model struct {
	manager i.SimulationManager
	id      uuid.UUID
	snap    agent.Snapshot
	auto    bool
	gen     int
	speed   int
	tick    time.Duration
	au      aurora.Aurora
	err     error
}

var _ tea.Model = Model{}

type tickMsg struct {
	gen int
}

// New starts a run on the manager and wraps it in a Model.
func New(c Config) (Model, error) {
	if c.Manager == nil {
		return Model{}, ErrNilManager
	}

	id, snap, err := c.Manager.NewSimulation(c.Params)
	if err != nil {
		return Model{}, err
	}

	tick := c.Tick
	if tick <= 0 {
		tick = time.Second
	}

	return Model{
		manager: c.Manager,
		id:      id,
		snap:    snap,
		speed:   clampSpeed(c.Speed),
		tick:    tick,
		au:      aurora.NewAurora(c.Colors),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if !m.auto || msg.gen != m.gen {
			return m, nil
		}
		m.step(m.speed)
		if !m.running() {
			m.auto = false
			return m, nil
		}
		return m, m.nextTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ":
		if m.running() {
			m.step(1)
		}

	case "a":
		m.auto = !m.auto
		m.gen++
		if m.auto && m.running() {
			return m, m.nextTick()
		}
		m.auto = false

	case "up":
		m.speed = clampSpeed(m.speed + 1)

	case "down":
		m.speed = clampSpeed(m.speed - 1)

	case "r":
		m.auto = false
		m.gen++
		snap, err := m.manager.Reset(m.id)
		if err != nil {
			m.err = err
			break
		}
		m.snap = snap
		m.err = nil
	}

	return m, nil
}

func (m *Model) step(n int) {
	res, err := m.manager.Step(m.id, n)
	if err != nil {
		m.err = err
		m.auto = false
		return
	}
	m.snap = res.Snapshot
}

func (m Model) running() bool {
	return m.err == nil && m.snap.Status == agent.Running
}

func (m Model) nextTick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.tick, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Snapshot returns the state currently displayed.
func (m Model) Snapshot() agent.Snapshot {
	return m.snap
}

// Auto reports whether auto mode is on.
func (m Model) Auto() bool {
	return m.auto
}

// Speed returns the steps run per auto tick.
func (m Model) Speed() int {
	return m.speed
}

func clampSpeed(s int) int {
	return min(max(s, MinSpeed), MaxSpeed)
}

// Run blocks until the user quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
