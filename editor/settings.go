package editor

import (
	"errors"
	"fmt"
	"math"

	"go-pitchroll/curve"
	"go-pitchroll/geom"
)

// Settings is the canvas geometry and interaction tuning of a session
type Settings struct {
	RowHeight float64
	Rows      int
	GridUnit  float64 // px per beat
	Width     float64

	// Subdivision is the snapping and grid line density
	Subdivision geom.Subdivision

	PointThreshold   float64
	CurveThreshold   float64
	MaxSegmentLength float64 // 0 disables the cutoff

	ResizeHandle   float64
	MinResizeWidth float64
	DefaultLyric   string

	Shape curve.Shape // interpolation of the anchor curve
	Curve curve.Options
}

// DefaultSettings mirrors the stock 44-row canvas
func DefaultSettings() Settings {
	return Settings{
		RowHeight:      geom.RowHeight,
		Rows:           geom.NumRows,
		GridUnit:       geom.GridUnit,
		Width:          geom.CanvasWidth,
		Subdivision:    geom.Sixteenth,
		PointThreshold: 10,
		CurveThreshold: 15,
		ResizeHandle:   10,
		MinResizeWidth: 30,
		DefaultLyric:   "a",
		Shape:          curve.Bezier,
		Curve:          curve.DefaultOptions(),
	}
}

// Validate rejects geometry the controllers cannot honour
func (s Settings) Validate() error {
	switch {
	case s.RowHeight <= 0:
		return errors.New("row height must be positive")
	case s.Rows <= 0:
		return errors.New("rows must be positive")
	case s.GridUnit <= 0:
		return errors.New("grid unit must be positive")
	case s.Width <= 0:
		return errors.New("width must be positive")
	case s.MaxSegmentLength < 0:
		return errors.New("max segment length must not be negative")
	}
	if _, err := geom.ParseSubdivision(string(s.Subdivision)); err != nil {
		return err
	}
	if s.MinResizeWidth < 0 {
		return fmt.Errorf("min resize width %g must not be negative", s.MinResizeWidth)
	}
	return nil
}

// Height is the canvas height in px
func (s Settings) Height() float64 {
	return float64(s.Rows) * s.RowHeight
}

// MaxPitch is the highest pitch row index
func (s Settings) MaxPitch() int {
	return s.Rows - 1
}

// MinNoteWidth is the shortest allowed note, one snapping step
func (s Settings) MinNoteWidth() float64 {
	return geom.MinimumNoteWidth(s.GridUnit, s.Subdivision)
}

// SnapUnit is the width of one snapping step
func (s Settings) SnapUnit() float64 {
	return s.Subdivision.Pixels(s.GridUnit)
}

// RowY is the centre line of a pitch row
func (s Settings) RowY(pitch int) float64 {
	return s.Height() - float64(pitch)*s.RowHeight
}

// PitchAt maps a y coordinate to a clamped pitch row
func (s Settings) PitchAt(y float64) int {
	pitch := int(math.Floor((s.Height() - y) / s.RowHeight))
	return geom.Clamp(pitch, 0, s.MaxPitch())
}

// NoteRect is the drawn and hit-tested rectangle of a note
func (s Settings) NoteRect(n Note) geom.Rect {
	return geom.Rect{
		X:      n.StartTime,
		Y:      s.RowY(n.Pitch) - s.RowHeight/2,
		Width:  n.Duration,
		Height: s.RowHeight,
	}
}

// Anchors resolves a note's control points to canvas coordinates. 100 cents
// is one row.
func (s Settings) Anchors(n Note) []curve.Anchor {
	anchors := make([]curve.Anchor, len(n.ControlPoints))
	for i, cp := range n.ControlPoints {
		anchors[i] = curve.Anchor{
			Point: Point{
				X: n.StartTime + cp.X,
				Y: s.RowY(n.Pitch) - cp.Y/100*s.RowHeight,
			},
			Shape:     cp.Shape,
			Connected: cp.Connected,
		}
	}
	return anchors
}
