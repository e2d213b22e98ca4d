package editor

import (
	"go-pitchroll/curve"
	"go-pitchroll/geom"
)

// Point is a pitch curve anchor in canvas pixels
type Point = geom.Point

// ControlPoint is a note-local curve anchor
type ControlPoint struct {
	X         float64     `json:"x"` // px from the note start
	Y         float64     `json:"y"` // pitch offset in cents
	Shape     curve.Shape `json:"shape"`
	Connected bool        `json:"connected"`
}

// Vibrato modifies synthesis only; it plays no part in hit-testing
type Vibrato struct {
	Length    float64 `json:"length"` // ms
	Period    float64 `json:"period"` // ms
	Depth     float64 `json:"depth"`  // cents
	FadeIn    float64 `json:"fadeIn"` // ms
	FadeOut   float64 `json:"fadeOut"`
	Phase     float64 `json:"phase"` // [0,1)
	AutoPhase bool    `json:"autoPhase"`
}

// Note is a block on the piano roll
type Note struct {
	ID            string         `json:"id"`
	StartTime     float64        `json:"startTime"`
	Duration      float64        `json:"duration"`
	Pitch         int            `json:"pitch"` // row index, 0 at the bottom
	Lyric         string         `json:"lyric"`
	Vibrato       *Vibrato       `json:"vibrato,omitempty"`
	ControlPoints []ControlPoint `json:"controlPoints"`
}

// NewNote creates a note with the default start and end control points
func NewNote(id string, start, duration float64, pitch int, lyric string) Note {
	return Note{
		ID:            id,
		StartTime:     start,
		Duration:      duration,
		Pitch:         pitch,
		Lyric:         lyric,
		ControlPoints: DefaultControlPoints(duration),
	}
}

// DefaultControlPoints returns unconnected zero-offset anchors at both ends
func DefaultControlPoints(duration float64) []ControlPoint {
	return []ControlPoint{
		{X: 0, Y: 0, Shape: curve.Linear},
		{X: duration, Y: 0, Shape: curve.Linear},
	}
}

// End returns the note end time
func (n Note) End() float64 {
	return n.StartTime + n.Duration
}

// SetDuration resizes the note, stretching control points along with it
func (n *Note) SetDuration(d float64) {
	if n.Duration > 0 {
		scale := d / n.Duration
		for i := range n.ControlPoints {
			n.ControlPoints[i].X *= scale
		}
	}
	n.Duration = d
}

// Copy returns a deep copy of the note
func (n Note) Copy() Note {
	out := n
	if n.Vibrato != nil {
		v := *n.Vibrato
		out.Vibrato = &v
	}
	if n.ControlPoints != nil {
		out.ControlPoints = make([]ControlPoint, len(n.ControlPoints))
		copy(out.ControlPoints, n.ControlPoints)
	}
	return out
}

func clonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	return out
}

func cloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = n.Copy()
	}
	return out
}

func findNote(notes []Note, id string) int {
	for i := range notes {
		if notes[i].ID == id {
			return i
		}
	}
	return -1
}
