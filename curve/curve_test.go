package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pitchroll/geom"
)

func TestInterpolateDegenerate(t *testing.T) {
	opts := DefaultOptions()
	for _, shape := range Shapes {
		assert.Empty(t, Interpolate(nil, shape, opts), shape.String())
		assert.Empty(t, Interpolate([]geom.Point{{X: 1, Y: 2}}, shape, opts), shape.String())
	}
}

func TestInterpolateTwoPointsIsStraight(t *testing.T) {
	a := geom.Point{X: 10, Y: 20}
	b := geom.Point{X: 110, Y: 70}

	path := Interpolate([]geom.Point{a, b}, Bezier, DefaultOptions())
	require.Len(t, path, 2)
	assert.Equal(t, MoveTo(a), path[0])
	assert.Equal(t, LineTo(b), path[1])
	assert.Equal(t, []geom.Point{a, b}, path.Flatten(Tolerance))
}

func TestInterpolateSortsByX(t *testing.T) {
	path := Interpolate([]geom.Point{{X: 200, Y: 0}, {X: 0, Y: 0}}, Linear, DefaultOptions())
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 200, Y: 0}}, path.Flatten(Tolerance))
}

func TestInterpolateBezierElements(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 200, Y: 0}, {X: 300, Y: 50}}
	path := Interpolate(pts, Bezier, DefaultOptions())

	require.Len(t, path, 4)
	assert.Equal(t, MoveToKind, path[0].Kind)
	assert.Equal(t, QuadToKind, path[1].Kind)
	assert.Equal(t, CubicToKind, path[2].Kind)
	assert.Equal(t, QuadToKind, path[3].Kind)

	// first control point: next - (afterNext - curr) * 0.2
	assert.InDelta(t, 60.0, path[1].P0.X, 1e-9)
	assert.InDelta(t, 50.0, path[1].P0.Y, 1e-9)

	for i, p := range pts[1:] {
		assert.Equal(t, p, path[i+1].End())
	}
}

func TestFlattenPassesThroughAnchors(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 200, Y: 0}}
	flat := Interpolate(pts, Bezier, DefaultOptions()).Flatten(Tolerance)

	require.NotEmpty(t, flat)
	assert.Equal(t, pts[0], flat[0])
	assert.Equal(t, pts[2], flat[len(flat)-1])
	assert.Contains(t, flat, pts[1])
}

func TestSegmentShapes(t *testing.T) {
	p0 := geom.Point{X: 0, Y: 0}
	p1 := geom.Point{X: 100, Y: 100}
	opts := DefaultOptions()

	for _, shape := range []Shape{Hermite, Exponential, Sigmoid} {
		t.Run(shape.String(), func(t *testing.T) {
			s := Segment(p0, p1, shape, opts)
			require.Len(t, s, opts.Samples+1)
			assert.Equal(t, p0, s[0])
			assert.Equal(t, p1, s[len(s)-1])
			for i := 1; i < len(s); i++ {
				assert.GreaterOrEqual(t, s[i].Y, s[i-1].Y-1e-9)
			}
		})
	}

	assert.Equal(t, []geom.Point{p0, p1}, Segment(p0, p1, Linear, opts))
}

func TestExponentialMidpoint(t *testing.T) {
	opts := DefaultOptions()
	opts.Samples = 2
	s := Segment(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 100}, Exponential, opts)
	// t=0.5, k=2
	assert.InDelta(t, 50.0, s[1].X, 1e-9)
	assert.InDelta(t, 25.0, s[1].Y, 1e-9)
}

func TestSigmoidIsSymmetric(t *testing.T) {
	opts := DefaultOptions()
	opts.Samples = 2
	s := Segment(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 100}, Sigmoid, opts)
	assert.InDelta(t, 50.0, s[1].Y, 1e-9)
}

func TestSigmoidHitsEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, sCurve(0))
	assert.InDelta(t, 1.0, sCurve(1), 1e-12)
	// the unscaled logistic stops short of both ends
	assert.InDelta(t, 0.0067, sigmoid(-sigmoidSteepness/2), 1e-4)
	assert.Less(t, sCurve(0.25), sigmoid(sigmoidSteepness*(0.25-0.5))+1e-9)
}

func TestParseShape(t *testing.T) {
	for _, shape := range Shapes {
		parsed, err := ParseShape(shape.String())
		assert.NoError(t, err)
		assert.Equal(t, shape, parsed)
	}
	_, err := ParseShape("cosine")
	assert.Error(t, err)
}

func TestNoteCurveJoinsConnectedNeighbours(t *testing.T) {
	spans := []Span{
		{Start: 0, End: 100, Anchors: []Anchor{
			{Point: geom.Point{X: 0, Y: 50}},
			{Point: geom.Point{X: 100, Y: 50}, Connected: true},
		}},
		{Start: 105, End: 200, Anchors: []Anchor{
			{Point: geom.Point{X: 105, Y: 25}, Connected: true},
			{Point: geom.Point{X: 200, Y: 25}},
		}},
	}

	subs := NoteCurve(spans, 12.5, DefaultOptions()).Subpaths(Tolerance)
	require.Len(t, subs, 1)
	assert.Len(t, subs[0], 4)
}

func TestNoteCurveBreaks(t *testing.T) {
	first := Span{Start: 0, End: 100, Anchors: []Anchor{
		{Point: geom.Point{X: 0, Y: 50}},
		{Point: geom.Point{X: 100, Y: 50}, Connected: true},
	}}

	cases := map[string]Span{
		"gap too wide": {Start: 150, End: 200, Anchors: []Anchor{
			{Point: geom.Point{X: 150, Y: 25}, Connected: true},
			{Point: geom.Point{X: 200, Y: 25}},
		}},
		"not connected": {Start: 100, End: 200, Anchors: []Anchor{
			{Point: geom.Point{X: 100, Y: 25}},
			{Point: geom.Point{X: 200, Y: 25}},
		}},
	}

	for name, second := range cases {
		t.Run(name, func(t *testing.T) {
			// order of input must not matter
			subs := NoteCurve([]Span{second, first}, 12.5, DefaultOptions()).Subpaths(Tolerance)
			require.Len(t, subs, 2)
			assert.Equal(t, geom.Point{X: 0, Y: 50}, subs[0][0])
		})
	}
}

func TestNoteCurveUsesDestinationShape(t *testing.T) {
	opts := DefaultOptions()
	spans := []Span{{Start: 0, End: 100, Anchors: []Anchor{
		{Point: geom.Point{X: 0, Y: 0}, Shape: Linear},
		{Point: geom.Point{X: 100, Y: 100}, Shape: Exponential},
	}}}
	flat := NoteCurve(spans, 12.5, opts).Flatten(Tolerance)
	assert.Len(t, flat, opts.Samples+1)
}

func TestCents(t *testing.T) {
	assert.Equal(t, 0, Cents(50, 25))
	assert.Equal(t, 20, Cents(45, 25))
	assert.Equal(t, -20, Cents(55, 25))
	assert.Equal(t, 0, Cents(55, 0))

	labels := Labels([]geom.Point{{X: 1, Y: 45}}, 25)
	require.Len(t, labels, 1)
	assert.Equal(t, 20, labels[0].Cents)
}

func TestSampler(t *testing.T) {
	_, ok := NewSampler(nil)
	assert.False(t, ok)

	s, ok := NewSampler([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 100, Y: 300}})
	require.True(t, ok)
	assert.InDelta(t, 50.0, s.At(50), 1e-9)
	assert.InDelta(t, 0.0, s.At(-10), 1e-9)
	assert.InDelta(t, 100.0, s.At(500), 1e-9)

	single, ok := NewSampler([]geom.Point{{X: 3, Y: 7}})
	require.True(t, ok)
	assert.Equal(t, 7.0, single.At(1000))
}
