package submodel

import (
	"math"

	"github.com/BigDataAnalyticsGroup/rmi-go/shared"
)

// CubicSpline fits a monotone Hermite cubic (Fritsch-Carlson correction)
// through the training range's endpoints, expressed in original key-space.
// Ported from original_source/include/rmi/models.hpp's CubicSpline.
type CubicSpline[K shared.Key] struct {
	A, B, C, D float64
}

// FitCubicSpline trains on keys[offset : offset+n), mapping point i to
// y-coordinate (offset+i)*compression. n == 0 yields the zero predictor;
// the other degenerate inputs (n == 1, or a constant training key) collapse
// to the constant predictor d = offset*compression, matching
// LinearSpline/LinearRegression's n == 0 and n == 1 cases.
//
// After fitting, the cubic is compared against a freshly fit LinearSpline
// on the same points by total absolute residual; if the spline wins, the
// cubic's coefficients are replaced by (0, 0, ls.Slope, ls.Intercept) so
// CubicSpline never predicts worse than LinearSpline would have.
func FitCubicSpline[K shared.Key](keys []K, offset, n int, compression float64) CubicSpline[K] {
	if n == 0 {
		return CubicSpline[K]{}
	}
	if n == 1 || keys[offset] == keys[offset+n-1] {
		return CubicSpline[K]{D: float64(offset) * compression}
	}

	xmin := float64(keys[offset])
	ymin := float64(offset) * compression
	xmax := float64(keys[offset+n-1])
	ymax := float64(offset+n-1) * compression

	// Endpoint tangent estimators: find the first training point whose
	// normalized x differs from the left endpoint (for m1) and from the
	// right endpoint (for m2). Both scans start at i=0 in the reference,
	// so m2 is in practice computed from the first key whose normalized x
	// is < 1, i.e. essentially any non-maximal key — ported as-is, per
	// spec.md's note that this may be intentional.
	var sxn, syn float64
	for i := 0; i != n; i++ {
		x := float64(keys[offset+i])
		y := float64(offset+i) * compression
		sxn = (x - xmin) / (xmax - xmin)
		if sxn > 0.0 {
			syn = (y - ymin) / (ymax - ymin)
			break
		}
	}
	m1 := (syn - 0.0) / (sxn - 0.0)

	var sxp, syp float64
	for i := 0; i != n; i++ {
		x := float64(keys[offset+i])
		y := float64(offset+i) * compression
		sxp = (x - xmin) / (xmax - xmin)
		if sxp < 1.0 {
			syp = (y - ymin) / (ymax - ymin)
			break
		}
	}
	m2 := (1.0 - syp) / (1.0 - sxp)

	if m1*m1+m2*m2 > 9.0 {
		tau := 3.0 / math.Sqrt(m1*m1+m2*m2)
		m1 *= tau
		m2 *= tau
	}

	span := xmax - xmin
	span3 := span * span * span

	a := (m1 + m2 - 2.0) / span3
	b := -(xmax*(2.0*m1+m2-3.0) + xmin*(m1+2.0*m2-3.0)) / span3
	c := (m1*xmax*xmax + m2*xmin*xmin + xmax*xmin*(2.0*m1+2.0*m2-6.0)) / span3
	d := -xmin*(m1*xmax*xmax+xmax*xmin*(m2-3.0)+xmin*xmin) / span3

	yspan := ymax - ymin
	a *= yspan
	b *= yspan
	c *= yspan
	d *= yspan
	d += ymin

	self := CubicSpline[K]{A: a, B: b, C: c, D: d}

	ls := FitLinearSpline(keys, offset, n, compression)
	var lsError, csError float64
	for i := 0; i != n; i++ {
		key := keys[offset+i]
		y := float64(offset+i) * compression
		lsError += math.Abs(ls.Predict(key) - y)
		csError += math.Abs(self.Predict(key) - y)
	}

	if lsError < csError {
		self.A = 0
		self.B = 0
		self.C = ls.Slope
		self.D = ls.Intercept
	}

	return self
}

func (self CubicSpline[K]) Predict(key K) float64 {
	x := float64(key)
	v1 := math.FMA(self.A, x, self.B)
	v2 := math.FMA(v1, x, self.C)
	v3 := math.FMA(v2, x, self.D)
	return v3
}

func (self CubicSpline[K]) SizeInBytes() int64 {
	return 4 * 8
}
