// Package colors maps risk levels to the colours used by the terminal report
// and by exported calendar events, so both surfaces agree.
package colors

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/harrisonrobin/planus/pkg/risk"
)

// Swatch is the colour of one risk level on every output surface.
type Swatch struct {
	// EventColorID is a Google Calendar event colour ID ("1".."11").
	EventColorID string
	// Terminal is a hex colour for lipgloss.
	Terminal lipgloss.Color
}

// Unknown is used for levels outside 1..5.
var Unknown = Swatch{EventColorID: "8", Terminal: lipgloss.Color("#808080")} // Graphite

var palette = map[risk.Level]Swatch{
	risk.LevelVeryLow:  {EventColorID: "10", Terminal: lipgloss.Color("#04B575")}, // Basil
	risk.LevelLow:      {EventColorID: "2", Terminal: lipgloss.Color("#A3BE8C")},  // Sage
	risk.LevelMedium:   {EventColorID: "5", Terminal: lipgloss.Color("#EBCB8B")},  // Banana
	risk.LevelHigh:     {EventColorID: "6", Terminal: lipgloss.Color("#FF8C00")},  // Tangerine
	risk.LevelCritical: {EventColorID: "11", Terminal: lipgloss.Color("#FF4D4D")}, // Tomato
}

// ForLevel returns the swatch of level l.
func ForLevel(l risk.Level) Swatch {
	if s, ok := palette[l]; ok {
		return s
	}
	return Unknown
}

// EventColorID is shorthand for ForLevel(l).EventColorID.
func EventColorID(l risk.Level) string {
	return ForLevel(l).EventColorID
}

// Style returns a bold style in the level's terminal colour. The renderer
// decides whether colour is emitted for its output.
func Style(r *lipgloss.Renderer, l risk.Level) lipgloss.Style {
	return r.NewStyle().Bold(true).Foreground(ForLevel(l).Terminal)
}
