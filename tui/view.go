package tui

import (
	"fmt"
	"strings"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"
)

const (
	barWidth     = 20
	historyLines = 6
	help         = "SPACE step  A auto  UP/DOWN speed  R reset  Q quit"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	s := m.snap

	b.WriteString(m.au.Bold("Rational Vacuum Cleaner").String() + "\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	fmt.Fprintf(&b, "Energy   %s %d/%d\n", m.energyBar(), s.DisplayEnergy, s.InitialEnergy)
	fmt.Fprintf(&b, "Bag      %d/%d\n", s.Bag, s.BagCapacity)
	fmt.Fprintf(&b, "Actions  %d   Cleaned %d   Dirt left %d\n", s.Actions, s.Cleaned, s.DirtyCount)

	status := s.Status.String()
	if s.ReturningHome {
		status += " (returning home)"
	}
	fmt.Fprintf(&b, "Location %s   Status %s\n", s.Location, status)
	fmt.Fprintf(&b, "Percept  %s\n", s.Percept)

	mode := "manual"
	if m.auto {
		mode = "auto"
	}
	fmt.Fprintf(&b, "Mode     %s   Speed %d steps/tick\n", mode, m.speed)

	if m.err != nil {
		b.WriteString(m.au.Red("error: "+m.err.Error()).String() + "\n")
	}

	b.WriteString("\nRecent actions\n")
	history := s.History
	if len(history) > historyLines {
		history = history[len(history)-historyLines:]
	}
	if len(history) == 0 {
		b.WriteString("  -\n")
	}
	for _, r := range history {
		fmt.Fprintf(&b, "  %d. %s\n", r.Seq, r)
	}

	b.WriteString("\n" + m.au.Faint(help).String() + "\n")
	return b.String()
}

// renderGrid draws the board; '@' marks the agent and '*' marks dirt.
func (m Model) renderGrid() string {
	var b strings.Builder
	border := "+" + strings.Repeat("-----+", grid.Size) + "\n"

	b.WriteString(border)
	for y := range grid.Size {
		b.WriteString("|")
		for x := range grid.Size {
			p := grid.Position{X: x, Y: y}
			agentMark, dirtMark := " ", " "
			if p == m.snap.Position {
				agentMark = "@"
			}
			if m.snap.Dirt[y][x] {
				dirtMark = "*"
			}

			cell := agentMark + grid.Label(p) + dirtMark
			switch {
			case p == m.snap.Position:
				cell = m.au.Cyan(cell).String()
			case m.snap.Dirt[y][x]:
				cell = m.au.Yellow(cell).String()
			}
			b.WriteString(" " + cell + " |")
		}
		b.WriteString("\n" + border)
	}
	return b.String()
}

func (m Model) energyBar() string {
	filled := 0
	if m.snap.InitialEnergy > 0 {
		filled = m.snap.DisplayEnergy * barWidth / m.snap.InitialEnergy
	}

	bar := strings.Repeat("#", filled)
	switch {
	case filled*4 <= barWidth:
		bar = m.au.Red(bar).String()
	case filled*2 <= barWidth:
		bar = m.au.Yellow(bar).String()
	default:
		bar = m.au.Green(bar).String()
	}
	return "[" + bar + strings.Repeat("-", barWidth-filled) + "]"
}
