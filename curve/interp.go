package curve

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"go-pitchroll/geom"
)

// Shape selects how a segment is interpolated
type Shape int

const (
	Linear Shape = iota
	Bezier
	Hermite
	Exponential
	// Sigmoid follows the logistic y0+(y1-y0)·σ(10(t-0.5)), rescaled so the
	// segment starts at y0 and ends at y1 exactly. The raw logistic misses
	// each endpoint by about 0.7% of y1-y0.
	Sigmoid
)

var shapeNames = map[Shape]string{
	Linear:      "linear",
	Bezier:      "bezier",
	Hermite:     "hermite",
	Exponential: "exponential",
	Sigmoid:     "sigmoid",
}

// Shapes lists every shape in cycle order
var Shapes = []Shape{Bezier, Linear, Hermite, Exponential, Sigmoid}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape looks a shape up by name
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if n == name {
			return s, nil
		}
	}
	return Linear, fmt.Errorf("unknown interpolation %q", name)
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Options carries the tuning constants of the shaped segments
type Options struct {
	Tension  float64 // hermite tangent scale
	Exponent float64 // exponential power
	Samples  int     // vertices per sampled segment
}

// DefaultOptions returns tension 0.5, exponent 2 and 16 samples
func DefaultOptions() Options {
	return Options{
		Tension:  0.5,
		Exponent: 2,
		Samples:  16,
	}
}

// smoothing is the Catmull-Rom style control point offset factor
const smoothing = 0.2

// sigmoidSteepness is the slope of the S-curve at its midpoint
const sigmoidSteepness = 10

// Interpolate builds a path through points ordered by x. Ties in x keep
// insertion order. Fewer than two points produce no path.
func Interpolate(points []geom.Point, shape Shape, opts Options) Path {
	if len(points) < 2 {
		return nil
	}

	sorted := make([]geom.Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	path := Path{MoveTo(sorted[0])}

	if shape == Bezier {
		return appendBezier(path, sorted)
	}

	for i := 1; i < len(sorted); i++ {
		path = appendSegment(path, sorted[i-1], sorted[i], shape, opts)
	}
	return path
}

// appendBezier smooths through the points: quadratic end segments and cubic
// middle segments with control points from the neighbouring anchors
func appendBezier(path Path, pts []geom.Point) Path {
	if len(pts) == 2 {
		return append(path, LineTo(pts[1]))
	}

	last := len(pts) - 2
	for i := 0; i <= last; i++ {
		curr := pts[i]
		next := pts[i+1]

		switch {
		case i == 0:
			afterNext := pts[i+2]
			c := next.Sub(afterNext.Sub(curr).Mul(smoothing))
			path = append(path, QuadTo(c, next))
		case i == last:
			prev := pts[i-1]
			c := curr.Add(next.Sub(prev).Mul(smoothing))
			path = append(path, QuadTo(c, next))
		default:
			prev := pts[i-1]
			afterNext := pts[i+2]
			c1 := curr.Add(next.Sub(prev).Mul(smoothing))
			c2 := next.Sub(afterNext.Sub(curr).Mul(smoothing))
			path = append(path, CubicTo(c1, c2, next))
		}
	}
	return path
}

// appendSegment adds the segment from -> to. The pen must already be at from.
func appendSegment(path Path, from, to geom.Point, shape Shape, opts Options) Path {
	switch shape {
	case Hermite, Exponential, Sigmoid:
		samples := Segment(from, to, shape, opts)
		for _, p := range samples[1:] {
			path = append(path, LineTo(p))
		}
		return path
	default:
		// bezier has no neighbours on a lone segment
		return append(path, LineTo(to))
	}
}

// Segment samples a single shaped segment, both endpoints included
func Segment(p0, p1 geom.Point, shape Shape, opts Options) []geom.Point {
	n := opts.Samples
	if n < 1 || shape == Linear || shape == Bezier {
		return []geom.Point{p0, p1}
	}

	ts := floats.Span(make([]float64, n+1), 0, 1)
	out := make([]geom.Point, len(ts))
	for i, t := range ts {
		out[i] = shapeAt(p0, p1, shape, t, opts)
	}
	// pin the ends against rounding
	out[0] = p0
	out[n] = p1
	return out
}

func shapeAt(p0, p1 geom.Point, shape Shape, t float64, opts Options) geom.Point {
	switch shape {
	case Hermite:
		m := p1.Sub(p0).Mul(opts.Tension)
		t2 := t * t
		t3 := t2 * t
		h00 := 2*t3 - 3*t2 + 1
		h10 := t3 - 2*t2 + t
		h01 := -2*t3 + 3*t2
		h11 := t3 - t2
		return p0.Mul(h00).Add(m.Mul(h10)).Add(p1.Mul(h01)).Add(m.Mul(h11))
	case Exponential:
		k := opts.Exponent
		if k <= 0 {
			k = 1
		}
		return geom.Point{
			X: p0.X + (p1.X-p0.X)*t,
			Y: p0.Y + (p1.Y-p0.Y)*math.Pow(t, k),
		}
	case Sigmoid:
		return geom.Point{
			X: p0.X + (p1.X-p0.X)*t,
			Y: p0.Y + (p1.Y-p0.Y)*sCurve(t),
		}
	default:
		return p0.Lerp(p1, t)
	}
}

// sCurve is the logistic function over [0,1], rescaled so sCurve(0)=0 and
// sCurve(1)=1
func sCurve(t float64) float64 {
	lo := sigmoid(-sigmoidSteepness / 2)
	hi := sigmoid(sigmoidSteepness / 2)
	return (sigmoid(sigmoidSteepness*(t-0.5)) - lo) / (hi - lo)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
