package curve

import (
	"fmt"
	"math"

	"go-pitchroll/geom"
)

// Tolerance is the default flattening tolerance in px
const Tolerance = 0.25

// maxDepth bounds bezier subdivision
const maxDepth = 12

// Kind identifies a path element
type Kind int

const (
	MoveToKind Kind = iota + 1 // start a new subpath
	LineToKind
	QuadToKind
	CubicToKind
)

// Element is one path command. P0 is the control point for curves and the
// destination for MoveTo/LineTo; the destination of a curve is its last point.
type Element struct {
	Kind Kind
	P0   geom.Point
	P1   geom.Point
	P2   geom.Point
}

func MoveTo(p geom.Point) Element {
	return Element{Kind: MoveToKind, P0: p}
}

func LineTo(p geom.Point) Element {
	return Element{Kind: LineToKind, P0: p}
}

func QuadTo(c, p geom.Point) Element {
	return Element{Kind: QuadToKind, P0: c, P1: p}
}

func CubicTo(c1, c2, p geom.Point) Element {
	return Element{Kind: CubicToKind, P0: c1, P1: c2, P2: p}
}

// End returns the point the element finishes on
func (el Element) End() geom.Point {
	switch el.Kind {
	case QuadToKind:
		return el.P1
	case CubicToKind:
		return el.P2
	default:
		return el.P0
	}
}

func (el Element) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%g,%g)", el.P0.X, el.P0.Y)
	case LineToKind:
		return fmt.Sprintf("LineTo(%g,%g)", el.P0.X, el.P0.Y)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%g,%g %g,%g)", el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%g,%g %g,%g %g,%g)", el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
	default:
		return "InvalidElement"
	}
}

// Path is a sequence of elements; every subpath begins with MoveTo
type Path []Element

// Subpaths flattens the path into one polyline per subpath
func (p Path) Subpaths(tolerance float64) [][]geom.Point {
	var out [][]geom.Point
	var cur []geom.Point
	var pen geom.Point

	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = []geom.Point{el.P0}
		case LineToKind:
			cur = append(cur, el.P0)
		case QuadToKind:
			flattenQuad(pen, el.P0, el.P1, tolerance, 0, &cur)
		case CubicToKind:
			flattenCubic(pen, el.P0, el.P1, el.P2, tolerance, 0, &cur)
		}
		pen = el.End()
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Flatten returns all vertices of the path in order
func (p Path) Flatten(tolerance float64) []geom.Point {
	var out []geom.Point
	for _, sub := range p.Subpaths(tolerance) {
		out = append(out, sub...)
	}
	return out
}

func flattenQuad(p0, p1, p2 geom.Point, tolerance float64, depth int, out *[]geom.Point) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		*out = append(*out, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuad(p0, q0, q2, tolerance, depth+1, out)
	flattenQuad(q2, q1, p2, tolerance, depth+1, out)
}

func flattenCubic(p0, p1, p2, p3 geom.Point, tolerance float64, depth int, out *[]geom.Point) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || dist < tolerance {
		*out = append(*out, p3)
		return
	}

	// de Casteljau split at t=0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, depth+1, out)
	flattenCubic(s, r1, q2, p3, tolerance, depth+1, out)
}

func distanceToLine(p, a, b geom.Point) float64 {
	d, _ := geom.SegmentDistance(p, a, b)
	return d
}
