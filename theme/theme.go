package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	// Notes
	NoteBody   rune // █ note block
	NoteHandle rune // ▐ resize handle
	NoteSel    rune // ▓ selected note block
	Preview    rune // ░ note being drawn

	// Curves
	Curve     rune // • flattened curve vertex
	NoteCurve rune // ∙ note control curve
	Anchor    rune // ◆ draggable anchor
	AnchorHot rune // ◇ anchor being dragged

	// Grid
	GridBeat rune // │ beat line
	GridSub  rune // ┊ subdivision line
	RowLine  rune // · empty cell
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			NoteBody:   '█',
			NoteHandle: '▐',
			NoteSel:    '▓',
			Preview:    '░',

			Curve:     '•',
			NoteCurve: '∙',
			Anchor:    '◆',
			AnchorHot: '◇',

			GridBeat: '│',
			GridSub:  '┊',
			RowLine:  '·',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0 // deepest shade
	RoleSurface = 0.1 // black keys, grid
	RoleMuted   = 0.2 // help text
	RoleFG      = 0.4 // readable text
	RoleAccent  = 0.5 // curve
	RoleCursor  = 0.6 // anchors
	RoleActive  = 0.7 // notes
	RoleWarning = 0.8 // selection
	RoleSuccess = 1.0 // preview, labels
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return t.Color(RoleBG)
}

func (t *Theme) Surface() lipgloss.Color {
	return t.Color(RoleSurface)
}

func (t *Theme) FG() lipgloss.Color {
	return t.Color(RoleFG)
}

func (t *Theme) Accent() lipgloss.Color {
	return t.Color(RoleAccent)
}

func (t *Theme) Muted() lipgloss.Color {
	return t.Color(RoleMuted)
}

func (t *Theme) Active() lipgloss.Color {
	return t.Color(RoleActive)
}

func (t *Theme) Cursor() lipgloss.Color {
	return t.Color(RoleCursor)
}

func (t *Theme) Warning() lipgloss.Color {
	return t.Color(RoleWarning)
}

func (t *Theme) Success() lipgloss.Color {
	return t.Color(RoleSuccess)
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return lipgloss.Color(t.Palette.Lookup(norm).Hex())
}

// Cents colors a cents offset in [-50, 50]: flat is cool, sharp is warm
func (t *Theme) Cents(cents int) lipgloss.Color {
	norm := RoleAccent + float64(cents)/100
	return t.Color(norm)
}
