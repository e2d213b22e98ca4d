package geom

import (
	"fmt"
	"math"
)

// Canvas defaults
const (
	RowHeight    = 25.0 // px per pitch row
	GridUnit     = 50.0 // px per beat column
	NumRows      = 44   // C6 down to F2
	CanvasWidth  = 10000.0
	CanvasHeight = NumRows * RowHeight
)

// TicksPerBeat is the musical-time resolution
const TicksPerBeat = 480

// Subdivision names a grid line density
type Subdivision string

const (
	Whole     Subdivision = "whole"
	Half      Subdivision = "half"
	Quarter   Subdivision = "quarter"
	Eighth    Subdivision = "eighth"
	Sixteenth Subdivision = "sixteenth"
)

// subdivisionBeats is the length of each subdivision in beats
var subdivisionBeats = map[Subdivision]float64{
	Whole:     4,
	Half:      2,
	Quarter:   1,
	Eighth:    0.5,
	Sixteenth: 0.25,
}

// Subdivisions lists all subdivisions from coarsest to finest
var Subdivisions = []Subdivision{Whole, Half, Quarter, Eighth, Sixteenth}

// Ticks returns the subdivision length in ticks
func (s Subdivision) Ticks() int {
	return int(subdivisionBeats[s] * TicksPerBeat)
}

// Beats returns the subdivision length in beats
func (s Subdivision) Beats() float64 {
	return subdivisionBeats[s]
}

// Pixels returns the subdivision width for a grid unit of one beat
func (s Subdivision) Pixels(gridUnit float64) float64 {
	return subdivisionBeats[s] * gridUnit
}

// ParseSubdivision validates a subdivision name
func ParseSubdivision(name string) (Subdivision, error) {
	s := Subdivision(name)
	if _, ok := subdivisionBeats[s]; !ok {
		return "", fmt.Errorf("unknown subdivision %q", name)
	}
	return s, nil
}

// SnapToGrid rounds value to the nearest multiple of unit
func SnapToGrid(value, unit float64) float64 {
	if unit <= 0 {
		return value
	}
	return math.Round(value/unit) * unit
}

// MinimumNoteWidth is one grid subdivision
func MinimumNoteWidth(gridUnit float64, sub Subdivision) float64 {
	return sub.Pixels(gridUnit)
}

// GridLines returns the x positions of vertical grid lines in [0, width]
func GridLines(width, gridUnit float64, sub Subdivision) []float64 {
	step := sub.Pixels(gridUnit)
	if step <= 0 || width < 0 {
		return nil
	}
	var xs []float64
	for i := 0; float64(i)*step <= width; i++ {
		xs = append(xs, float64(i)*step)
	}
	return xs
}
