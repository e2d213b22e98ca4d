package curve

import (
	"math"
	"sort"

	"go-pitchroll/geom"
)

// Anchor is a note control point resolved to canvas coordinates
type Anchor struct {
	Point     geom.Point
	Shape     Shape // shape of the segment arriving at this anchor
	Connected bool  // may join the neighbouring note's matching end
}

// Span is one note's contribution to a cross-note curve
type Span struct {
	Start, End float64
	Anchors    []Anchor // ordered by x
}

// NoteCurve joins the anchors of every span into one path. Consecutive spans
// are joined only when the gap between them is under maxGap and both facing
// anchors are connected; otherwise a new subpath starts. Each segment is
// shaped by its destination anchor.
func NoteCurve(spans []Span, maxGap float64, opts Options) Path {
	ordered := make([]Span, 0, len(spans))
	for _, s := range spans {
		if len(s.Anchors) > 0 {
			ordered = append(ordered, s)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	var path Path
	for i, span := range ordered {
		first := span.Anchors[0]
		if i > 0 && joins(ordered[i-1], span, maxGap) {
			prev := ordered[i-1].Anchors[len(ordered[i-1].Anchors)-1]
			path = appendSegment(path, prev.Point, first.Point, first.Shape, opts)
		} else {
			path = append(path, MoveTo(first.Point))
		}

		for j := 1; j < len(span.Anchors); j++ {
			a := span.Anchors[j]
			path = appendSegment(path, span.Anchors[j-1].Point, a.Point, a.Shape, opts)
		}
	}
	return path
}

func joins(prev, next Span, maxGap float64) bool {
	gap := next.Start - prev.End
	if math.Abs(gap) >= maxGap {
		return false
	}
	return prev.Anchors[len(prev.Anchors)-1].Connected && next.Anchors[0].Connected
}
