package editor

import (
	"fmt"

	"go-pitchroll/curve"
	"go-pitchroll/debug"
)

// Layer picks which controller receives pointer events
type Layer int

const (
	LayerNotes Layer = iota
	LayerPoints
)

func (l Layer) String() string {
	if l == LayerPoints {
		return "points"
	}
	return "notes"
}

// ParseLayer looks a layer up by name
func ParseLayer(name string) (Layer, error) {
	switch name {
	case "notes":
		return LayerNotes, nil
	case "points":
		return LayerPoints, nil
	}
	return LayerNotes, fmt.Errorf("unknown layer %q", name)
}

// Session owns the anchor and note collections, their histories and the
// interaction state. It is not safe for concurrent use; see Actor.
type Session struct {
	settings Settings
	points   *PointController
	notes    *NoteController
	layer    Layer
}

// NewSession creates an empty session
func NewSession(settings Settings) *Session {
	return &Session{
		settings: settings,
		points:   newPointController(settings),
		notes:    newNoteController(settings),
		layer:    LayerNotes,
	}
}

// Handle routes a pointer event to the active layer
func (s *Session) Handle(ev PointerEvent) {
	switch s.layer {
	case LayerPoints:
		s.points.Handle(ev)
	default:
		s.notes.Handle(ev)
	}
}

// SetLayer switches layers, abandoning any gesture in progress
func (s *Session) SetLayer(l Layer) {
	if l == s.layer {
		return
	}
	s.Reset()
	s.layer = l
	debug.Log(debug.CatSession, "layer=%s", l)
}

func (s *Session) Layer() Layer {
	return s.layer
}

// Reset drops every in-progress drag, resize or draw
func (s *Session) Reset() {
	s.points.Reset()
	s.notes.Reset()
}

// Undo steps the note history back if it has anything to undo, otherwise
// the point history. The two logs are not interleaved by time.
func (s *Session) Undo() bool {
	s.Reset()
	if s.notes.HistoryIndex() > 0 {
		return s.notes.Undo()
	}
	return s.points.Undo()
}

// CanUndo reports whether either history can step back
func (s *Session) CanUndo() bool {
	return s.notes.HistoryIndex() > 0 || s.points.HistoryIndex() > 0
}

// SetShape changes the interpolation of the anchor curve
func (s *Session) SetShape(shape curve.Shape) {
	s.settings.Shape = shape
}

func (s *Session) Settings() Settings {
	return s.settings
}

// Points is the anchor controller
func (s *Session) Points() *PointController {
	return s.points
}

// Notes is the note controller
func (s *Session) Notes() *NoteController {
	return s.notes
}

// Curve is the renderable path through the anchors
func (s *Session) Curve() curve.Path {
	return curve.Interpolate(s.points.points, s.settings.Shape, s.settings.Curve)
}

// NoteCurve is the path through every note's control points
func (s *Session) NoteCurve() curve.Path {
	spans := make([]curve.Span, len(s.notes.notes))
	for i, n := range s.notes.notes {
		spans[i] = curve.Span{
			Start:   n.StartTime,
			End:     n.End(),
			Anchors: s.settings.Anchors(n),
		}
	}
	return curve.NoteCurve(spans, s.settings.MinNoteWidth(), s.settings.Curve)
}

// Sampler reads the anchor curve as y(x); false without anchors
func (s *Session) Sampler() (*curve.Sampler, bool) {
	return curve.NewSampler(s.Curve().Flatten(curve.Tolerance))
}

// CurveAt is the anchor curve's y at x
func (s *Session) CurveAt(x float64) (float64, bool) {
	sm, ok := s.Sampler()
	if !ok {
		return 0, false
	}
	return sm.At(x), true
}
