package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-pitchroll/editor"
	"go-pitchroll/geom"
	"go-pitchroll/theme"
)

// Viewport maps terminal cells onto the canvas. Cell row r shows pitch row
// TopRow+r counted from the top, centred on the note row line.
type Viewport struct {
	ScrollX   float64 // canvas px at the left edge
	ColWidth  float64 // canvas px per column
	RowHeight float64
	TopRow    int
	Cols      int
	Rows      int
}

// ToCanvas is the canvas point at the centre of cell (col, row)
func (v Viewport) ToCanvas(col, row int) geom.Point {
	return geom.Point{
		X: v.ScrollX + (float64(col)+0.5)*v.ColWidth,
		Y: float64(v.TopRow+row+1) * v.RowHeight,
	}
}

// ToCell finds the cell containing a canvas point
func (v Viewport) ToCell(p geom.Point) (col, row int, ok bool) {
	col = int(math.Floor((p.X - v.ScrollX) / v.ColWidth))
	row = int(math.Round(p.Y/v.RowHeight)) - 1 - v.TopRow
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
	return col, row, ok
}

type role int

const (
	roleEmpty role = iota
	roleGrid
	roleNote
	roleSelected
	rolePreview
	roleNoteCurve
	roleCurve
	roleAnchor
	roleLabel
)

type cell struct {
	r     rune
	role  role
	cents int // label tint
}

// Canvas is a rasterized frame
type Canvas struct {
	vp    Viewport
	cells [][]cell
}

// Rasterize draws a frame into terminal cells, back to front: grid, notes,
// preview, note curve, anchor curve, anchors and their cents labels.
func Rasterize(f editor.Frame, s editor.Settings, vp Viewport, sym theme.Symbols) *Canvas {
	c := &Canvas{vp: vp, cells: make([][]cell, vp.Rows)}
	for r := range c.cells {
		c.cells[r] = make([]cell, vp.Cols)
		for col := range c.cells[r] {
			c.cells[r][col] = cell{r: ' ', role: roleEmpty}
		}
	}

	c.grid(s, sym)

	for _, n := range f.Notes {
		rl := roleNote
		body := sym.NoteBody
		if n.ID == f.Selected {
			rl, body = roleSelected, sym.NoteSel
		}
		c.rect(s.NoteRect(n), body, rl)
		if col, row, ok := c.vp.ToCell(geom.Point{X: n.End() - c.vp.ColWidth/2, Y: s.RowY(n.Pitch)}); ok {
			c.set(col, row, sym.NoteHandle, rl)
		}
		c.text(geom.Point{X: n.StartTime + c.vp.ColWidth/2, Y: s.RowY(n.Pitch)}, n.Lyric, rl, int(n.Duration/c.vp.ColWidth)-1)
	}

	if f.Preview != nil {
		c.rect(*f.Preview, sym.Preview, rolePreview)
	}

	for _, sub := range f.NoteCurve {
		c.polyline(sub, sym.NoteCurve, roleNoteCurve)
	}
	c.polyline(f.Curve, sym.Curve, roleCurve)

	for i, p := range f.Points {
		if i == f.DragIndex {
			c.plot(p, sym.AnchorHot, roleAnchor)
		} else {
			c.plot(p, sym.Anchor, roleAnchor)
		}
		if i < len(f.Labels) && f.Labels[i].Cents != 0 {
			cents := f.Labels[i].Cents
			c.text(geom.Point{X: p.X + c.vp.ColWidth, Y: p.Y}, fmt.Sprintf("%+d", cents), roleLabel, 4)
			c.tint(geom.Point{X: p.X + c.vp.ColWidth, Y: p.Y}, cents, 4)
		}
	}
	return c
}

func (c *Canvas) set(col, row int, r rune, rl role) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = cell{r: r, role: rl}
}

func (c *Canvas) plot(p geom.Point, r rune, rl role) {
	if col, row, ok := c.vp.ToCell(p); ok {
		c.set(col, row, r, rl)
	}
}

// grid draws subdivision lines, then beat lines over them
func (c *Canvas) grid(s editor.Settings, sym theme.Symbols) {
	c.column(sym.RowLine, 0, c.vp.Cols)
	for _, x := range geom.GridLines(s.Width, s.GridUnit, s.Subdivision) {
		c.line(x, sym.GridSub)
	}
	for _, x := range geom.GridLines(s.Width, s.GridUnit, geom.Quarter) {
		c.line(x, sym.GridBeat)
	}
}

// line fills the column holding canvas x
func (c *Canvas) line(x float64, r rune) {
	col := int(math.Floor((x - c.vp.ScrollX) / c.vp.ColWidth))
	if col >= 0 && col < c.vp.Cols {
		c.column(r, col, col+1)
	}
}

func (c *Canvas) column(r rune, from, to int) {
	for col := from; col < to; col++ {
		for row := 0; row < c.vp.Rows; row++ {
			c.set(col, row, r, roleGrid)
		}
	}
}

// rect fills every cell whose centre lies inside r
func (c *Canvas) rect(r geom.Rect, ch rune, rl role) {
	for row := 0; row < c.vp.Rows; row++ {
		for col := 0; col < c.vp.Cols; col++ {
			if r.Contains(c.vp.ToCanvas(col, row)) {
				c.set(col, row, ch, rl)
			}
		}
	}
}

// polyline plots each vertex and fills in cells crossed between them
func (c *Canvas) polyline(pts []geom.Point, ch rune, rl role) {
	for i, p := range pts {
		c.plot(p, ch, rl)
		if i == 0 {
			continue
		}
		prev := pts[i-1]
		steps := int(math.Ceil(math.Max(
			math.Abs(p.X-prev.X)/c.vp.ColWidth,
			math.Abs(p.Y-prev.Y)/c.vp.RowHeight,
		)))
		for k := 1; k < steps; k++ {
			c.plot(prev.Lerp(p, float64(k)/float64(steps)), ch, rl)
		}
	}
}

// text writes s starting at p, at most limit runes
func (c *Canvas) text(p geom.Point, s string, rl role, limit int) {
	col, row, ok := c.vp.ToCell(p)
	if !ok {
		return
	}
	for i, r := range []rune(s) {
		if i >= limit {
			break
		}
		c.set(col+i, row, r, rl)
	}
}

// tint sets the cents of n label cells starting at p
func (c *Canvas) tint(p geom.Point, cents, n int) {
	col, row, ok := c.vp.ToCell(p)
	if !ok {
		return
	}
	for i := col; i < col+n && i < c.vp.Cols; i++ {
		if c.cells[row][i].role == roleLabel {
			c.cells[row][i].cents = cents
		}
	}
}

// Lines returns the unstyled rows
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.cells))
	for i, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
		out[i] = b.String()
	}
	return out
}

// Render styles the rows, one lipgloss span per run of equal roles
func (c *Canvas) Render(th *theme.Theme) []string {
	styles := map[role]lipgloss.Style{
		roleEmpty:     lipgloss.NewStyle(),
		roleGrid:      lipgloss.NewStyle().Foreground(th.Surface()),
		roleNote:      lipgloss.NewStyle().Foreground(th.Active()),
		roleSelected:  lipgloss.NewStyle().Foreground(th.Warning()).Bold(true),
		rolePreview:   lipgloss.NewStyle().Foreground(th.Success()),
		roleNoteCurve: lipgloss.NewStyle().Foreground(th.FG()),
		roleCurve:     lipgloss.NewStyle().Foreground(th.Accent()),
		roleAnchor:    lipgloss.NewStyle().Foreground(th.Cursor()).Bold(true),
		roleLabel:     lipgloss.NewStyle().Foreground(th.Success()),
	}

	out := make([]string, len(c.cells))
	for i, row := range c.cells {
		var b strings.Builder
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && row[j].role == row[start].role && row[j].cents == row[start].cents {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:j] {
				run.WriteRune(cl.r)
			}
			style := styles[row[start].role]
			if row[start].role == roleLabel {
				style = style.Foreground(th.Cents(row[start].cents))
			}
			b.WriteString(style.Render(run.String()))
			start = j
		}
		out[i] = b.String()
	}
	return out
}
