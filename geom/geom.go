package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Point is a canvas-pixel coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect is an axis-aligned rectangle, X/Y is the top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// NearestPointIndex returns the index of the first point closer than threshold
// to pos. Points are scanned in collection order, so an earlier point wins over
// a closer later one.
func NearestPointIndex(points []Point, pos Point, threshold float64) (int, bool) {
	for i, p := range points {
		if Distance(p, pos) < threshold {
			return i, true
		}
	}
	return -1, false
}

// SegmentOptions tunes NearestSegment
type SegmentOptions struct {
	Threshold float64
	// MaxLength skips segments longer than this; 0 disables the cutoff
	MaxLength float64
}

// NearestSegment projects pos onto each consecutive pair of points and returns
// the insert index (i+1) of the first segment within threshold. With fewer
// than two points there is no segment and the insert index is len(points).
func NearestSegment(points []Point, pos Point, opts SegmentOptions) (int, bool) {
	for i := 0; i < len(points)-1; i++ {
		p1 := points[i]
		p2 := points[i+1]

		if opts.MaxLength > 0 && Distance(p1, p2) > opts.MaxLength {
			continue
		}

		if dist, _ := SegmentDistance(pos, p1, p2); dist < opts.Threshold {
			return i + 1, true
		}
	}
	return len(points), false
}

// SegmentDistance returns the distance from p to segment ab and the clamped
// projection parameter along ab
func SegmentDistance(p, a, b Point) (float64, float64) {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		// degenerate segment
		return Distance(p, a), 0
	}

	param := Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	closest := a.Add(ab.Mul(param))
	return Distance(p, closest), param
}

// Clamp limits v to [lo, hi]
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
