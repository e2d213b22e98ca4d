package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-pitchroll/curve"
	"go-pitchroll/debug"
	"go-pitchroll/editor"
	"go-pitchroll/geom"
	"go-pitchroll/midi"
	"go-pitchroll/theme"
	"go-pitchroll/widgets"
)

// header and footer lines around the canvas
const (
	headerHeight = 2
	footerHeight = 2
)

var keySections = []widgets.KeySection{
	{Title: "Edit", Keys: []widgets.KeyBinding{
		{Key: "tab", Desc: "layer"},
		{Key: "u", Desc: "undo"},
		{Key: "x", Desc: "delete note"},
		{Key: "m", Desc: "curve mode"},
	}},
	{Title: "View", Keys: []widgets.KeyBinding{
		{Key: "hjkl", Desc: "scroll"},
		{Key: "p", Desc: "midi preview"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	}},
}

type Model struct {
	Actor *editor.Actor
	Theme *theme.Theme

	settings editor.Settings
	keys     []midi.Key
	frame    editor.Frame
	vp       Viewport
	inside   bool // pointer is over the canvas
	status   string
	midi     []string // preview lines, nil when hidden
	help     bool
	quitting bool
}

type UpdateMsg struct{}

type midiMsg []string

// midiPreviewLines caps the preview panel
const midiPreviewLines = 8

func NewModel(actor *editor.Actor, settings editor.Settings, th *theme.Theme, colWidth float64) Model {
	return Model{
		Actor:    actor,
		Theme:    th,
		settings: settings,
		keys:     midi.Keys(settings.Rows),
		vp: Viewport{
			ColWidth:  colWidth,
			RowHeight: settings.RowHeight,
			Cols:      80,
			Rows:      settings.Rows,
		},
	}
}

func ListenForUpdates(actor *editor.Actor) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-actor.Updates():
			return UpdateMsg{}
		case <-actor.Done():
			return nil
		}
	}
}

// Init pulls the first frame; each UpdateMsg re-arms the listener
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return UpdateMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.vp.Cols = max(1, msg.Width-widgets.PianoWidth)
		m.vp.Rows = geom.Clamp(msg.Height-headerHeight-footerHeight, 1, m.settings.Rows)
		m.vp.TopRow = geom.Clamp(m.vp.TopRow, 0, m.settings.Rows-m.vp.Rows)

	case UpdateMsg:
		if f, ok := m.Actor.Frame(); ok {
			m.frame = f
		}
		return m, ListenForUpdates(m.Actor)

	case midiMsg:
		m.midi = msg
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scroll := 8 * m.vp.ColWidth
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		next := editor.LayerPoints
		if m.frame.Layer == editor.LayerPoints {
			next = editor.LayerNotes
		}
		m.Actor.Do(func(s *editor.Session) { s.SetLayer(next) })

	case "u":
		m.Actor.Do(func(s *editor.Session) { s.Undo() })

	case "x":
		m.Actor.Do(func(s *editor.Session) {
			if id := s.Notes().Selected(); id != "" {
				s.Notes().Delete(id)
			}
		})

	case "m":
		next := nextShape(m.frame.Shape)
		m.Actor.Do(func(s *editor.Session) { s.SetShape(next) })
		m.status = "curve: " + next.String()

	case "h", "left":
		m.vp.ScrollX = geom.Clamp(m.vp.ScrollX-scroll, 0, m.maxScroll())
	case "l", "right":
		m.vp.ScrollX = geom.Clamp(m.vp.ScrollX+scroll, 0, m.maxScroll())
	case "k", "up":
		m.vp.TopRow = max(0, m.vp.TopRow-1)
	case "j", "down":
		m.vp.TopRow = min(m.settings.Rows-m.vp.Rows, m.vp.TopRow+1)

	case "?":
		m.help = !m.help

	case "p":
		if m.midi != nil {
			m.midi = nil
			return m, nil
		}
		return m, m.previewMidi()
	}
	return m, nil
}

func (m Model) maxScroll() float64 {
	return max(0, m.settings.Width-float64(m.vp.Cols)*m.vp.ColWidth)
}

func nextShape(s curve.Shape) curve.Shape {
	for i, sh := range curve.Shapes {
		if sh == s {
			return curve.Shapes[(i+1)%len(curve.Shapes)]
		}
	}
	return curve.Shapes[0]
}

// handleMouse forwards terminal mouse events over the canvas as pointer
// events. Leaving the canvas sends a leave so a drag is committed.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	col := msg.X - widgets.PianoWidth
	row := msg.Y - headerHeight
	over := col >= 0 && col < m.vp.Cols && row >= 0 && row < m.vp.Rows
	p := m.vp.ToCanvas(col, row)

	if !over {
		if m.inside {
			m.Actor.Send(editor.Leave(p.X, p.Y))
			debug.Log(debug.CatTUI, "leave at %d,%d", msg.X, msg.Y)
		}
		m.inside = false
		return
	}
	m.inside = true

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.Actor.Send(editor.Down(p.X, p.Y))
		}
	case tea.MouseActionRelease:
		m.Actor.Send(editor.Up(p.X, p.Y))
	case tea.MouseActionMotion:
		m.Actor.Send(editor.Move(p.X, p.Y))
	}
}

// previewMidi lists the first messages the notes and pitch curve would send
// to a synth
func (m Model) previewMidi() tea.Cmd {
	actor := m.Actor
	return func() tea.Msg {
		var notes []editor.Note
		var settings editor.Settings
		var sampler *curve.Sampler
		actor.Read(func(s *editor.Session) {
			notes = s.Notes().Notes()
			settings = s.Settings()
			sampler, _ = s.Sampler()
		})

		var bend midi.CurveFunc
		if sampler != nil {
			bend = func(x float64) (float64, bool) { return sampler.At(x), true }
		}
		events := midi.Messages(notes, settings, bend, midi.DefaultOptions())
		debug.Log(debug.CatTUI, "midi preview: %d events", len(events))

		lines := []string{fmt.Sprintf("%d midi events", len(events))}
		for i, ev := range events {
			if i == midiPreviewLines {
				lines = append(lines, "...")
				break
			}
			line := fmt.Sprintf("%6d  %s", ev.Tick, ev.Message)
			if ev.Lyric != "" {
				line += "  " + ev.Lyric
			}
			lines = append(lines, line)
		}
		return midiMsg(lines)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	statusStyle := lipgloss.NewStyle().
		Foreground(m.Theme.FG()).
		Background(m.Theme.Surface()).
		Padding(0, 1)

	f := m.frame
	undo := "-"
	if f.CanUndo {
		undo = "u"
	}
	title := "go-pitchroll"
	if debug.Enabled() {
		title += " [debug]"
	}
	header := headerStyle.Render(fmt.Sprintf(
		"%s  %s  %s  notes:%d@%d points:%d@%d  undo:%s  %s  x:%.0f",
		title, f.Layer, f.Shape, len(f.Notes), f.NotesIndex, len(f.Points), f.PointsIndex, undo, f.Cursor, m.vp.ScrollX,
	))

	canvas := Rasterize(f, m.settings, m.vp, m.Theme.Symbols).Render(m.Theme)

	var out strings.Builder
	out.WriteString(header)
	out.WriteString("\n\n")
	for r, line := range canvas {
		if k := m.vp.TopRow + r; k < len(m.keys) {
			out.WriteString(widgets.RenderPianoKey(m.Theme, m.keys[k]))
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	if m.help {
		out.WriteString(dimStyle.Render(widgets.RenderKeyHelp(keySections)))
	} else {
		out.WriteString(dimStyle.Render(widgets.RenderKeyLine(keySections)))
	}
	if m.status != "" {
		out.WriteString("\n")
		out.WriteString(statusStyle.Render(m.status))
	}
	for _, line := range m.midi {
		out.WriteString("\n")
		out.WriteString(dimStyle.Render(line))
	}

	return out.String()
}
