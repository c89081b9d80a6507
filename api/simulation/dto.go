// Package simulation exposes vacuum-world runs over HTTP.
package simulation

import (
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/agent"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/service/i"
	"github.com/google/uuid"
)

// CreateRequest overrides the server defaults for one run. Every field is optional.
type CreateRequest struct {
	MinDirt     *int     `json:"min_dirt"`
	MaxDirt     *int     `json:"max_dirt"`
	Energy      *int     `json:"energy"`
	BagCapacity *int     `json:"bag_capacity"`
	Seed        *int64   `json:"seed"`
	Dirty       []string `json:"dirty"`
}

// params merges the request onto defaults.
func (r CreateRequest) params(defaults i.SimulationParams) i.SimulationParams {
	p := defaults
	if r.MinDirt != nil {
		p.DirtRange.Min = *r.MinDirt
	}
	if r.MaxDirt != nil {
		p.DirtRange.Max = *r.MaxDirt
	}
	if r.Energy != nil {
		p.Agent.Energy = *r.Energy
	}
	if r.BagCapacity != nil {
		p.Agent.BagCapacity = *r.BagCapacity
	}
	p.Seed = r.Seed
	p.Dirty = r.Dirty
	return p
}

// SimulationResponse is the JSON view of one run.
type SimulationResponse struct {
	ID            string                     `json:"id"`
	Location      string                     `json:"location"`
	Position      grid.Position              `json:"position"`
	Dirt          [grid.Size][grid.Size]bool `json:"dirt"`
	DirtyCells    []string                   `json:"dirty_cells"`
	Energy        int                        `json:"energy"`
	InitialEnergy int                        `json:"initial_energy"`
	Bag           int                        `json:"bag"`
	BagCapacity   int                        `json:"bag_capacity"`
	Actions       int                        `json:"actions"`
	Cleaned       int                        `json:"cleaned"`
	Completed     bool                       `json:"completed"`
	Status        string                     `json:"status"`
	ReturningHome bool                       `json:"returning_home"`
	Percept       string                     `json:"percept"`
	History       []string                   `json:"history"`
}

// StepResponse reports how many steps ran and the state they left.
type StepResponse struct {
	Taken      int                `json:"taken"`
	Continued  bool               `json:"continued"`
	Simulation SimulationResponse `json:"simulation"`
}

// ListResponse lists run IDs, oldest first.
type ListResponse struct {
	IDs []string `json:"ids"`
}

func newSimulationResponse(id uuid.UUID, s agent.Snapshot) SimulationResponse {
	res := SimulationResponse{
		ID:            id.String(),
		Location:      s.Location,
		Position:      s.Position,
		Dirt:          s.Dirt,
		DirtyCells:    []string{},
		Energy:        s.Energy,
		InitialEnergy: s.InitialEnergy,
		Bag:           s.Bag,
		BagCapacity:   s.BagCapacity,
		Actions:       s.Actions,
		Cleaned:       s.Cleaned,
		Completed:     s.Completed,
		Status:        s.Status.String(),
		ReturningHome: s.ReturningHome,
		Percept:       s.Percept.String(),
		History:       make([]string, 0, len(s.History)),
	}

	for y := range grid.Size {
		for x := range grid.Size {
			if s.Dirt[y][x] {
				res.DirtyCells = append(res.DirtyCells, grid.Label(grid.Position{X: x, Y: y}))
			}
		}
	}
	for _, r := range s.History {
		res.History = append(res.History, r.String())
	}
	return res
}
