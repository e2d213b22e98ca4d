package editor

import (
	"go-pitchroll/curve"
	"go-pitchroll/geom"
)

// Frame is everything a renderer needs to draw one state of the session
type Frame struct {
	Layer     Layer
	Shape     curve.Shape
	Points    []Point
	DragIndex int // anchor being dragged, -1 when idle
	Curve     []Point
	Labels    []curve.Label
	Notes     []Note
	NoteCurve [][]Point
	Preview   *geom.Rect
	Cursor    Cursor
	Selected  string

	PointsIndex int
	NotesIndex  int
	CanUndo     bool
}

// Frame snapshots the session for rendering. The frame shares no memory
// with the session.
func (s *Session) Frame() Frame {
	f := Frame{
		Layer:       s.layer,
		Shape:       s.settings.Shape,
		Points:      s.points.Points(),
		DragIndex:   s.points.DragIndex(),
		Curve:       s.Curve().Flatten(curve.Tolerance),
		Labels:      curve.Labels(s.points.points, s.settings.RowHeight),
		Notes:       s.notes.Notes(),
		NoteCurve:   s.NoteCurve().Subpaths(curve.Tolerance),
		Cursor:      s.notes.Cursor(),
		Selected:    s.notes.Selected(),
		PointsIndex: s.points.HistoryIndex(),
		NotesIndex:  s.notes.HistoryIndex(),
		CanUndo:     s.CanUndo(),
	}
	if r, ok := s.notes.Preview(); ok {
		f.Preview = &r
	}
	return f
}
