package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pitchroll/curve"
	"go-pitchroll/editor"
	"go-pitchroll/geom"
	"go-pitchroll/theme"
)

func testViewport() Viewport {
	return Viewport{ColWidth: 12.5, RowHeight: 25, Cols: 16, Rows: 44}
}

func runeAt(lines []string, col, row int) rune {
	return []rune(lines[row])[col]
}

func TestViewportMapping(t *testing.T) {
	assert := assert.New(t)
	vp := testViewport()

	assert.Equal(geom.Point{X: 6.25, Y: 25}, vp.ToCanvas(0, 0))
	col, row, ok := vp.ToCell(vp.ToCanvas(5, 7))
	assert.True(ok)
	assert.Equal(5, col)
	assert.Equal(7, row)

	_, _, ok = vp.ToCell(geom.Point{X: 1000, Y: 25})
	assert.False(ok)

	vp.ScrollX, vp.TopRow = 100, 10
	assert.Equal(geom.Point{X: 106.25, Y: 275}, vp.ToCanvas(0, 0))
}

func TestViewportRowsMatchPitch(t *testing.T) {
	s := editor.DefaultSettings()
	vp := testViewport()
	for row := 0; row < vp.Rows; row++ {
		assert.Equal(t, s.MaxPitch()-row, s.PitchAt(vp.ToCanvas(0, row).Y), "row %d", row)
	}
}

func TestRasterizeNote(t *testing.T) {
	s := editor.DefaultSettings()
	sym := theme.New(theme.Default()).Symbols
	f := editor.Frame{Notes: []editor.Note{editor.NewNote("a", 0, 62.5, 43, "la")}}

	lines := Rasterize(f, s, testViewport(), sym).Lines()
	require.Len(t, lines, 44)
	assert.Equal(t, "la██▐", string([]rune(lines[0])[:5]))
	assert.Equal(t, sym.GridSub, runeAt(lines, 5, 0))
	assert.Equal(t, sym.GridBeat, runeAt(lines, 8, 0))
	assert.Equal(t, sym.GridBeat, runeAt(lines, 0, 1))
}

func TestRasterizeSelectionAndPreview(t *testing.T) {
	s := editor.DefaultSettings()
	sym := theme.New(theme.Default()).Symbols
	f := editor.Frame{
		Notes:    []editor.Note{editor.NewNote("a", 0, 62.5, 20, "")},
		Selected: "a",
		Preview:  &geom.Rect{X: 0, Y: 1087.5, Width: 25, Height: 25},
	}

	lines := Rasterize(f, s, testViewport(), sym).Lines()
	assert.Equal(t, sym.NoteSel, runeAt(lines, 0, 23))
	assert.Equal(t, sym.NoteHandle, runeAt(lines, 4, 23))
	assert.Equal(t, sym.Preview, runeAt(lines, 0, 43))
	assert.Equal(t, sym.Preview, runeAt(lines, 1, 43))
	assert.NotEqual(t, sym.Preview, runeAt(lines, 2, 43))
}

func TestRasterizeCurveAndAnchors(t *testing.T) {
	s := editor.DefaultSettings()
	sym := theme.New(theme.Default()).Symbols
	pts := []geom.Point{{X: 0, Y: 300}, {X: 100, Y: 300}}
	anchors := []geom.Point{{X: 100, Y: 50}, {X: 150, Y: 60}}
	f := editor.Frame{
		Curve:     pts,
		Points:    anchors,
		DragIndex: 1,
		Labels:    curve.Labels(anchors, s.RowHeight),
	}

	lines := Rasterize(f, s, testViewport(), sym).Lines()
	for col := 0; col <= 8; col++ {
		assert.Equal(t, sym.Curve, runeAt(lines, col, 11), "col %d", col)
	}
	assert.Equal(t, sym.Anchor, runeAt(lines, 8, 1))
	assert.Equal(t, sym.AnchorHot, runeAt(lines, 12, 1))
	assert.Equal(t, "-40", string([]rune(lines[1])[13:16]))
}

func TestRender(t *testing.T) {
	th := theme.New(theme.Default())
	f := editor.Frame{Notes: []editor.Note{editor.NewNote("a", 0, 62.5, 43, "la")}}
	out := Rasterize(f, editor.DefaultSettings(), testViewport(), th.Symbols).Render(th)
	require.Len(t, out, 44)
	for _, line := range out {
		assert.Equal(t, 16, lipgloss.Width(line))
	}
}

func TestRasterizeGridFollowsSubdivision(t *testing.T) {
	s := editor.DefaultSettings()
	s.Subdivision = geom.Half
	sym := theme.New(theme.Default()).Symbols

	lines := Rasterize(editor.Frame{}, s, testViewport(), sym).Lines()
	assert.Equal(t, sym.GridBeat, runeAt(lines, 0, 0))
	assert.Equal(t, sym.GridBeat, runeAt(lines, 4, 0))
	assert.Equal(t, sym.RowLine, runeAt(lines, 2, 0), "no sub lines coarser than a beat")
	assert.Equal(t, sym.RowLine, runeAt(lines, 1, 0))
}

func TestRenderTintsCentsLabels(t *testing.T) {
	th := theme.New(theme.Default())
	s := editor.DefaultSettings()
	anchors := []geom.Point{{X: 150, Y: 60}}
	f := editor.Frame{DragIndex: -1, Points: anchors, Labels: curve.Labels(anchors, s.RowHeight)}

	c := Rasterize(f, s, testViewport(), th.Symbols)
	assert.Equal(t, -40, c.cells[1][13].cents)
	assert.Equal(t, roleLabel, c.cells[1][13].role)
	assert.Equal(t, th.Symbols.Anchor, c.cells[1][12].r)
	assert.Len(t, c.Render(th), 44)
}
