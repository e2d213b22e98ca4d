package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pitchroll/curve"
	"go-pitchroll/editor"
	"go-pitchroll/theme"
	"go-pitchroll/widgets"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	settings := editor.DefaultSettings()
	actor := editor.NewActor(editor.NewSession(settings))
	go actor.Run(ctx)

	m := NewModel(actor, settings, theme.New(theme.Default()), 12.5)
	return update(m, tea.WindowSizeMsg{Width: 84, Height: 48})
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func mouse(col, row int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{
		X:      col + widgets.PianoWidth,
		Y:      row + headerHeight,
		Action: action,
		Button: tea.MouseButtonLeft,
	}
}

func key(k string) tea.KeyMsg {
	if k == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func frame(t *testing.T, m Model) editor.Frame {
	f, ok := m.Actor.Frame()
	require.True(t, ok)
	return f
}

func TestModelDrawAndUndo(t *testing.T) {
	assert := assert.New(t)
	m := newTestModel(t)
	assert.Equal(80, m.vp.Cols)
	assert.Equal(44, m.vp.Rows)

	m = update(m, mouse(0, 20, tea.MouseActionPress))
	m = update(m, mouse(4, 20, tea.MouseActionMotion))
	m = update(m, mouse(4, 20, tea.MouseActionRelease))

	f := frame(t, m)
	require.Len(t, f.Notes, 1)
	assert.Equal(23, f.Notes[0].Pitch)
	assert.Equal(6.25, f.Notes[0].StartTime)
	assert.Equal(50.0, f.Notes[0].Duration)

	m = update(m, key("u"))
	assert.Empty(frame(t, m).Notes)
}

func TestModelLeavingCanvasCommitsDrag(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key("tab"))
	m = update(m, UpdateMsg{})
	require.Equal(t, editor.LayerPoints, m.frame.Layer)

	m = update(m, mouse(10, 10, tea.MouseActionPress))
	m = update(m, mouse(12, 10, tea.MouseActionMotion))
	m = update(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})

	f := frame(t, m)
	require.Len(t, f.Points, 1)
	assert.Equal(t, editor.Point{X: 156.25, Y: 275}, f.Points[0])
	assert.Equal(t, 2, f.PointsIndex)
}

func TestModelDeleteSelectedNote(t *testing.T) {
	m := newTestModel(t)
	m.Actor.Do(func(s *editor.Session) {
		id := s.Notes().Add(editor.NewNote("", 0, 100, 43, "a"))
		s.Notes().Select(id)
	})
	m = update(m, key("x"))
	assert.Empty(t, frame(t, m).Notes)
}

func TestModelKeys(t *testing.T) {
	assert := assert.New(t)
	m := newTestModel(t)
	m = update(m, UpdateMsg{})
	require.Equal(t, curve.Bezier, m.frame.Shape)

	m = update(m, key("m"))
	assert.Equal(curve.Linear, frame(t, m).Shape)

	m = update(m, key("l"))
	assert.Equal(100.0, m.vp.ScrollX)
	m = update(m, key("h"))
	m = update(m, key("h"))
	assert.Equal(0.0, m.vp.ScrollX)

	m = update(m, key("j"))
	assert.Equal(0, m.vp.TopRow, "every row already visible")

	m = update(m, UpdateMsg{})
	view := m.View()
	assert.True(strings.Contains(view, "go-pitchroll"))
	assert.Contains(view, "C6")

	next, cmd := m.Update(key("q"))
	assert.NotNil(cmd)
	assert.Empty(next.View())
}

func TestModelMidiPreview(t *testing.T) {
	assert := assert.New(t)
	m := newTestModel(t)
	m.Actor.Do(func(s *editor.Session) {
		s.Notes().Add(editor.NewNote("", 0, 100, 20, "ka"))
	})

	_, cmd := m.Update(key("p"))
	require.NotNil(t, cmd)
	m = update(m, cmd())
	require.Len(t, m.midi, 3)
	assert.Equal("2 midi events", m.midi[0])
	assert.Contains(m.midi[1], "ka")
	assert.Contains(m.View(), "midi events")

	m = update(m, key("p"))
	assert.Nil(m.midi)
}

func TestNextShapeCycles(t *testing.T) {
	s := curve.Shapes[0]
	for range curve.Shapes {
		s = nextShape(s)
	}
	assert.Equal(t, curve.Shapes[0], s)
}

func TestModelHelpPanel(t *testing.T) {
	m := newTestModel(t)
	m = update(m, UpdateMsg{})
	assert.Contains(t, m.View(), "u:undo")

	m = update(m, key("?"))
	view := m.View()
	assert.Contains(t, view, "Edit")
	assert.Contains(t, view, "curve mode")
	assert.NotContains(t, view, "u:undo")

	m = update(m, key("?"))
	assert.Contains(t, m.View(), "u:undo")
}
