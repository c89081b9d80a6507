// Package report turns a finished run into an HTML chart.
package report

import (
	"errors"
	"io"
	"strconv"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/agent"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var ErrEmptyTrace = errors.New("trace has no samples")

// Sample is the agent state after one action.
type Sample struct {
	Action   int
	Location string
	Energy   int
	Bag      int
	Dirt     int
}

// Trace records samples of a single run.
type Trace struct {
	title   string
	samples []Sample
}

// NewTrace creates an empty trace.
func NewTrace(title string) *Trace {
	return &Trace{title: title}
}

// Record appends a sample. Snapshots with an action count already
// recorded are ignored, so the terminal step does not duplicate a point.
func (t *Trace) Record(s agent.Snapshot) {
	if n := len(t.samples); n > 0 && t.samples[n-1].Action == s.Actions {
		return
	}
	t.samples = append(t.samples, Sample{
		Action:   s.Actions,
		Location: s.Location,
		Energy:   s.Energy,
		Bag:      s.Bag,
		Dirt:     s.DirtyCount,
	})
}

// Samples returns a copy of the recorded samples.
func (t *Trace) Samples() []Sample {
	out := make([]Sample, len(t.samples))
	copy(out, t.samples)
	return out
}

// Render writes an HTML page charting energy, bag load and remaining dirt.
func (t *Trace) Render(w io.Writer) error {
	if len(t.samples) == 0 {
		return ErrEmptyTrace
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    t.title,
			Subtitle: "energy, bag load and remaining dirt per action",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "action"}),
	)

	steps := make([]string, 0, len(t.samples))
	energy := make([]opts.LineData, 0, len(t.samples))
	bag := make([]opts.LineData, 0, len(t.samples))
	dirt := make([]opts.LineData, 0, len(t.samples))
	for _, s := range t.samples {
		steps = append(steps, strconv.Itoa(s.Action))
		energy = append(energy, opts.LineData{Value: s.Energy, Name: s.Location})
		bag = append(bag, opts.LineData{Value: s.Bag, Name: s.Location})
		dirt = append(dirt, opts.LineData{Value: s.Dirt, Name: s.Location})
	}

	line.SetXAxis(steps).
		AddSeries("Energy", energy).
		AddSeries("Bag", bag).
		AddSeries("Remaining dirt", dirt)

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}
