package agent

import (
	"math/rand"
	"testing"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgent(t *testing.T, opts Options, dirty ...string) *Agent {
	t.Helper()
	g, err := grid.FromLabels(dirty...)
	require.NoError(t, err)
	a, err := New(g, opts)
	require.NoError(t, err)
	return a
}

// runTokens steps the agent until it stops and returns the token of every action taken.
func runTokens(t *testing.T, a *Agent, limit int) []string {
	t.Helper()
	var tokens []string
	for i := 0; i < limit; i++ {
		before := a.Actions()
		if !a.Step() {
			return tokens
		}
		require.Equal(t, before+1, a.Actions(), "every policy action should succeed")
		h := a.History()
		last := h[len(h)-1]
		if last.Kind == MoveKind {
			tokens = append(tokens, string(last.Direction))
		} else {
			tokens = append(tokens, last.Kind.String())
		}
	}
	t.Fatalf("agent still running after %d steps", limit)
	return nil
}

func TestNew(t *testing.T) {
	t.Run("starts at home with full energy", func(t *testing.T) {
		a := newAgent(t, DefaultOptions(), "D")

		assert.Equal(t, "A", a.Location())
		assert.Equal(t, 100, a.Energy())
		assert.Equal(t, 0, a.Bag())
		assert.Equal(t, 10, a.BagCapacity())
		assert.Equal(t, Running, a.Status())
		assert.False(t, a.Completed())
		assert.False(t, a.ReturningHome())
		assert.Empty(t, a.History())
	})

	t.Run("rejects bad options", func(t *testing.T) {
		g, err := grid.FromCells()
		require.NoError(t, err)

		bad := []Options{
			{Energy: 0, BagCapacity: 1},
			{Energy: 10, BagCapacity: 0},
			{Energy: 10, BagCapacity: 1, HistorySize: -1},
			{Energy: 10, BagCapacity: 1, Costs: Costs{Move: -1}},
		}
		for _, opts := range bad {
			_, err := New(g, opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		}

		_, err = New(nil, DefaultOptions())
		assert.ErrorIs(t, err, ErrInvalidOptions)
	})

	t.Run("random world respects the dirt range", func(t *testing.T) {
		a, err := NewWorld(grid.DefaultDirtRange, DefaultOptions(), rand.New(rand.NewSource(7)))
		require.NoError(t, err)

		count := a.Grid().DirtyCount()
		assert.GreaterOrEqual(t, count, 6)
		assert.LessOrEqual(t, count, 10)
		assert.False(t, a.Grid().IsDirty(grid.Home))
	})
}

func TestSingleDirtScenario(t *testing.T) {
	a := newAgent(t, DefaultOptions(), "D")

	tokens := runTokens(t, a, 50)

	assert.Equal(t, []string{"E", "E", "E", "SUCK", "W", "W", "W"}, tokens)
	assert.Equal(t, 93, a.Energy())
	assert.Equal(t, 7, a.Actions())
	assert.Equal(t, 1, a.Cleaned())
	assert.Equal(t, "A", a.Location())
	assert.Equal(t, 0, a.Grid().DirtyCount())
	assert.True(t, a.IsGoalAchieved())
	assert.True(t, a.Completed())
	assert.Equal(t, Completed, a.Status())
	assert.False(t, a.ReturningHome())

	t.Run("terminal step takes no action", func(t *testing.T) {
		assert.False(t, a.Step())
		assert.Equal(t, 7, a.Actions())
		assert.Equal(t, 93, a.Energy())
	})
}

func TestBagForcedReturn(t *testing.T) {
	opts := DefaultOptions()
	opts.BagCapacity = 1
	a := newAgent(t, opts, "B", "C")

	tokens := runTokens(t, a, 50)

	assert.Equal(t, []string{"E", "SUCK", "W", "EMPTY", "E", "E", "SUCK", "W", "W"}, tokens)
	assert.True(t, a.Completed())
	assert.Equal(t, 2, a.Cleaned())
	assert.Equal(t, 1, a.Bag())
}

func TestExploreTieBreaking(t *testing.T) {
	t.Run("south is expanded before east", func(t *testing.T) {
		a := newAgent(t, DefaultOptions(), "B", "E")
		assert.Equal(t, MoveAction(grid.South), a.Decide())
	})

	t.Run("north is expanded before west", func(t *testing.T) {
		a := newAgent(t, DefaultOptions(), "B", "E")
		require.True(t, a.Move(grid.East))
		require.True(t, a.Move(grid.South))
		require.Equal(t, "F", a.Location())

		assert.Equal(t, MoveAction(grid.North), a.Decide())
	})

	t.Run("nearest dirt wins over expansion order", func(t *testing.T) {
		a := newAgent(t, DefaultOptions(), "B", "I")
		assert.Equal(t, MoveAction(grid.East), a.Decide())
	})
}

func TestDecideRules(t *testing.T) {
	t.Run("falls back to north when nothing is left to find", func(t *testing.T) {
		a := newAgent(t, DefaultOptions())
		assert.Equal(t, MoveAction(grid.North), a.Decide())
		assert.False(t, a.ReturningHome())
	})

	t.Run("sucks a dirty cell", func(t *testing.T) {
		a := newAgent(t, DefaultOptions(), "B")
		require.True(t, a.Move(grid.East))
		assert.Equal(t, SuckAction(), a.Decide())
	})

	t.Run("empties a full bag at home", func(t *testing.T) {
		opts := DefaultOptions()
		opts.BagCapacity = 1
		a := newAgent(t, opts, "B", "C")
		require.True(t, a.Move(grid.East))
		require.True(t, a.Suck())
		require.True(t, a.Move(grid.West))

		assert.Equal(t, EmptyAction(), a.Decide())
	})

	t.Run("commits a route home once everything is clean", func(t *testing.T) {
		a := newAgent(t, DefaultOptions())
		require.True(t, a.Move(grid.South))
		require.True(t, a.Move(grid.East))

		assert.Equal(t, MoveAction(grid.North), a.Decide())
		assert.True(t, a.ReturningHome())
		route, committed := a.PlannedRoute()
		assert.True(t, committed)
		assert.Equal(t, []grid.Direction{grid.West}, route.Steps())
	})

	t.Run("falls back to north when the committed route is exhausted", func(t *testing.T) {
		a := newAgent(t, DefaultOptions())
		require.True(t, a.Move(grid.East))
		require.True(t, a.Move(grid.East))

		require.True(t, a.Execute(a.Decide())) // W, one W left in the route
		require.True(t, a.Move(grid.East))     // pushed off the route
		require.True(t, a.Execute(a.Decide())) // consumes the last W

		assert.Equal(t, "B", a.Location())
		assert.Equal(t, MoveAction(grid.North), a.Decide())
	})

	t.Run("falls back to empty when a full bag route is exhausted", func(t *testing.T) {
		opts := DefaultOptions()
		opts.BagCapacity = 1
		a := newAgent(t, opts, "B", "C")
		require.True(t, a.Move(grid.East))
		require.True(t, a.Suck())

		require.True(t, a.Execute(a.Decide())) // W home
		require.True(t, a.Move(grid.East))

		assert.Equal(t, EmptyAction(), a.Decide())
	})
}

func TestActuators(t *testing.T) {
	t.Run("move off the grid fails", func(t *testing.T) {
		a := newAgent(t, DefaultOptions(), "D")

		assert.False(t, a.Move(grid.North))
		assert.False(t, a.Move(grid.West))
		assert.False(t, a.Move(grid.Direction("X")))
		assert.Equal(t, 100, a.Energy())
		assert.Equal(t, 0, a.Actions())
		assert.Empty(t, a.History())
	})

	t.Run("suck on a clean cell fails", func(t *testing.T) {
		a := newAgent(t, DefaultOptions(), "D")

		assert.False(t, a.Suck())
		assert.Equal(t, 0, a.Bag())
		assert.Equal(t, 100, a.Energy())
	})

	t.Run("suck with a full bag fails", func(t *testing.T) {
		opts := DefaultOptions()
		opts.BagCapacity = 1
		a := newAgent(t, opts, "B", "C")
		require.True(t, a.Move(grid.East))
		require.True(t, a.Suck())
		require.True(t, a.Move(grid.East))

		assert.False(t, a.Suck())
		assert.True(t, a.Grid().IsDirty(a.Position()))
		assert.Equal(t, 1, a.Bag())
	})

	t.Run("empty away from home fails", func(t *testing.T) {
		a := newAgent(t, DefaultOptions(), "B")
		require.True(t, a.Move(grid.East))
		require.True(t, a.Suck())

		assert.False(t, a.Empty())
		assert.Equal(t, 1, a.Bag())
	})

	t.Run("costs are charged per success", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Costs = Costs{Move: 2, Suck: 3, Empty: 5}
		a := newAgent(t, opts, "B")

		require.True(t, a.Move(grid.East))
		require.True(t, a.Suck())
		require.True(t, a.Move(grid.West))
		require.True(t, a.Empty())

		assert.Equal(t, 100-2-3-2-5, a.Energy())
		assert.Equal(t, 4, a.Actions())
		assert.Equal(t, Performance{Cleaned: 1, EnergySpent: 12, Actions: 4}, a.Performance())
	})
}

func TestOutOfEnergy(t *testing.T) {
	opts := DefaultOptions()
	opts.Energy = 3
	a := newAgent(t, opts, "D")

	assert.Equal(t, 3, a.Run(100))
	assert.Equal(t, 0, a.Energy())
	assert.Equal(t, OutOfEnergy, a.Status())
	assert.False(t, a.Completed())
	assert.False(t, a.Step())
	assert.Equal(t, 0, a.DisplayEnergy())
}

func TestHistory(t *testing.T) {
	a := newAgent(t, DefaultOptions(), "D")
	a.Run(100)

	h := a.History()
	require.Len(t, h, 6)
	assert.Equal(t, 2, h[0].Seq)
	assert.Equal(t, 7, h[5].Seq)
	assert.Equal(t, Record{Seq: 4, Kind: SuckKind, Location: "D"}, h[2])
	assert.Equal(t, Record{Seq: 7, Kind: MoveKind, Direction: grid.West, Location: "A"}, h[5])

	t.Run("display lines", func(t *testing.T) {
		assert.Equal(t, "Sucked dirt at D", h[2].String())
		assert.Equal(t, "Moved W to A", h[5].String())
		assert.Equal(t, "Emptied bag at home", Record{Kind: EmptyKind, Location: "A"}.String())
	})

	t.Run("zero size keeps nothing", func(t *testing.T) {
		opts := DefaultOptions()
		opts.HistorySize = 0
		b := newAgent(t, opts, "D")
		b.Run(100)
		assert.Empty(t, b.History())
		assert.True(t, b.Completed())
	})
}

func TestPercept(t *testing.T) {
	a := newAgent(t, DefaultOptions(), "B")
	assert.Equal(t, "[A, Clean]", a.Percept().String())

	require.True(t, a.Move(grid.East))
	assert.Equal(t, "[B, Dirty]", a.Percept().String())
}

func TestSnapshot(t *testing.T) {
	a := newAgent(t, DefaultOptions(), "B", "P")
	require.True(t, a.Step())

	s := a.Snapshot()
	assert.Equal(t, "B", s.Location)
	assert.Equal(t, 2, s.DirtyCount)
	assert.True(t, s.Dirt[0][1])
	assert.True(t, s.Dirt[3][3])
	assert.Equal(t, 99, s.Energy)
	assert.Equal(t, 99, s.DisplayEnergy)
	assert.Equal(t, 1, s.Actions)
	assert.Equal(t, Running, s.Status)
	assert.True(t, s.Percept.Dirty)
	require.Len(t, s.History, 1)

	s.Dirt[0][1] = false
	assert.True(t, a.Grid().IsDirty(grid.Position{X: 1, Y: 0}))
}

func TestRandomRuns(t *testing.T) {
	// Each dirt unit costs at most one suck plus a round trip home; the bound is loose on purpose.
	const limit = grid.Size * grid.Size * 20

	configs := map[string]Options{
		"default bag": DefaultOptions(),
		"tiny bag": func() Options {
			o := DefaultOptions()
			o.BagCapacity = 1
			return o
		}(),
		"two slot bag": func() Options {
			o := DefaultOptions()
			o.BagCapacity = 2
			return o
		}(),
	}

	for name, opts := range configs {
		t.Run(name, func(t *testing.T) {
			for seed := int64(0); seed < 100; seed++ {
				a, err := NewWorld(grid.DefaultDirtRange, opts, rand.New(rand.NewSource(seed)))
				require.NoError(t, err)

				steps := 0
				for {
					prevEnergy := a.Energy()
					prevPos := a.Position()
					bagFull := a.Bag() >= a.BagCapacity()
					if a.Energy() <= 0 || a.IsGoalAchieved() {
						require.False(t, a.Step())
						break
					}

					action := a.Decide()
					if bagFull && prevPos != grid.Home {
						require.Equal(t, MoveKind, action.Kind, "seed %d", seed)
						next := prevPos.Step(action.Direction)
						assert.Less(t, grid.Manhattan(next, grid.Home), grid.Manhattan(prevPos, grid.Home), "seed %d", seed)
					}
					require.True(t, a.Execute(action), "seed %d: %s failed", seed, action)

					assert.LessOrEqual(t, a.Energy(), prevEnergy)
					assert.LessOrEqual(t, a.Bag(), a.BagCapacity())
					assert.GreaterOrEqual(t, a.DisplayEnergy(), 0)

					steps++
					require.Less(t, steps, limit, "seed %d did not terminate", seed)
				}

				assert.Contains(t, []Status{Completed, OutOfEnergy}, a.Status())
				if a.Status() == Completed {
					assert.Equal(t, 0, a.Grid().DirtyCount())
					assert.Equal(t, grid.Home, a.Position())
				}
			}
		})
	}
}
