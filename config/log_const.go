package config

import "github.com/logrusorgru/aurora"

// Logger prefix colors, one per component.
const (
	ColorApp        = aurora.GreenFg
	ColorSimulation = aurora.CyanFg
	ColorHTTP       = aurora.BlueFg
	ColorReport     = aurora.MagentaFg
)
