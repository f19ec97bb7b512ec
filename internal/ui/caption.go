package ui

import "lifeterm/internal/render"

// PanelHeight is the height in pixels of the status strip under the grid.
const PanelHeight = 20

// Caption formats the status strip text.
func Caption(generation, population int, paused, done bool) string {
	s := render.StatusLine(generation, population)
	switch {
	case done:
		s += "  [done]"
	case paused:
		s += "  [paused]"
	}
	return s
}

// Help lists the viewer key bindings.
const Help = "space pause  n step  r reset  s reseed  q quit"

// clampWidth truncates s to fit maxCols characters of a fixed-width font.
func clampWidth(s string, maxCols int) string {
	if maxCols <= 0 {
		return ""
	}
	if len(s) <= maxCols {
		return s
	}
	if maxCols <= 3 {
		return s[:maxCols]
	}
	return s[:maxCols-3] + "..."
}
