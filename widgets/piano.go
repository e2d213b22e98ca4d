package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go-pitchroll/midi"
	"go-pitchroll/theme"
)

// PianoWidth is the rendered width of a key label
const PianoWidth = 4

// RenderPianoKey renders one row label of the key column. Black keys use the
// surface color, white keys the foreground.
func RenderPianoKey(th *theme.Theme, key midi.Key) string {
	style := lipgloss.NewStyle().
		Width(PianoWidth).
		Foreground(th.BG()).
		Background(th.FG())
	if key.Black {
		style = style.Foreground(th.FG()).Background(th.Surface())
	}
	return style.Render(fmt.Sprintf("%-3s", key.Name))
}

// PianoLabels returns the unstyled key names for keys
func PianoLabels(keys []midi.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprintf("%-*s", PianoWidth, k.Name)
	}
	return out
}
