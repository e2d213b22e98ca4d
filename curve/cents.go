package curve

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"

	"go-pitchroll/geom"
)

// Label is the cents overlay for one anchor
type Label struct {
	Point geom.Point
	Cents int
}

// Cents returns the offset of y from its nearest row boundary, in cents.
// A full row is one semitone, so the result lies in [-50, 50].
func Cents(y, rowHeight float64) int {
	if rowHeight <= 0 {
		return 0
	}
	base := math.Round(y/rowHeight) * rowHeight
	return int(math.Round(100 * (base - y) / rowHeight))
}

// Labels computes the cents overlay for every anchor
func Labels(points []geom.Point, rowHeight float64) []Label {
	labels := make([]Label, len(points))
	for i, p := range points {
		labels[i] = Label{Point: p, Cents: Cents(p.Y, rowHeight)}
	}
	return labels
}

// Sampler reads a flattened curve as a function of x
type Sampler struct {
	pred interp.Predictor
}

// NewSampler fits vertices ordered by x. Vertices sharing an x keep the first
// one. It reports false when there is nothing to sample.
func NewSampler(vertices []geom.Point) (*Sampler, bool) {
	if len(vertices) == 0 {
		return nil, false
	}

	sorted := make([]geom.Point, len(vertices))
	copy(sorted, vertices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	xs := []float64{sorted[0].X}
	ys := []float64{sorted[0].Y}
	for _, p := range sorted[1:] {
		if p.X > xs[len(xs)-1] {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	if len(xs) < 2 {
		return &Sampler{pred: interp.Constant(ys[0])}, true
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, false
	}
	return &Sampler{pred: pl}, true
}

// At returns y at x, holding the end values outside the curve
func (s *Sampler) At(x float64) float64 {
	return s.pred.Predict(x)
}
