package vizmath

import "math"

// epsilon for treating two real points as equal. Chord slope computation
// divides by (x2 - x1); near-equal points must take the tangent branch
// instead of blowing up on float noise.
const curveEpsilon = 1e-10

// Point2 is a point in the real plane.
type Point2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RealCurve is a short Weierstrass curve y² = x³ + ax + b over the reals,
// used for the chord-and-tangent addition picture.
type RealCurve struct {
	A float64
	B float64
}

// Y2 evaluates the right-hand side x³ + ax + b.
func (c RealCurve) Y2(x float64) float64 {
	return x*x*x + c.A*x + c.B
}

// YAt returns the non-negative branch y = +sqrt(x³+ax+b) and whether the
// curve exists at this x (the radicand is non-negative).
func (c RealCurve) YAt(x float64) (float64, bool) {
	r := c.Y2(x)
	if r < 0 {
		return 0, false
	}
	return math.Sqrt(r), true
}

// Slope returns the slope of the line used to add p and q: the tangent slope
// (3x² + a) / 2y when the points coincide within epsilon, the chord slope
// otherwise. ok is false when the line is vertical (distinct points sharing
// an x, or a tangent at y = 0).
func (c RealCurve) Slope(p, q Point2) (float64, bool) {
	if math.Abs(p.X-q.X) < curveEpsilon && math.Abs(p.Y-q.Y) < curveEpsilon {
		if math.Abs(p.Y) < curveEpsilon {
			return 0, false
		}
		return (3*p.X*p.X + c.A) / (2 * p.Y), true
	}
	if math.Abs(q.X-p.X) < curveEpsilon {
		// Vertical chord: p + (-p).
		return 0, false
	}
	return (q.Y - p.Y) / (q.X - p.X), true
}

// Add performs chord-and-tangent addition of p and q. The second return is
// false when the result is the point at infinity (vertical chord or tangent
// at a point with y = 0).
func (c RealCurve) Add(p, q Point2) (Point2, bool) {
	slope, ok := c.Slope(p, q)
	if !ok {
		return Point2{}, false
	}
	rx := slope*slope - p.X - q.X
	ry := slope*(p.X-rx) - p.Y
	return Point2{X: rx, Y: ry}, true
}

// Sample walks x over [xmin, xmax] in n steps and returns the points of both
// square-root branches, upper branch first. Gaps where the curve does not
// exist are simply skipped, which is what a plot wants.
func (c RealCurve) Sample(xmin, xmax float64, n int) (upper, lower []Point2) {
	if n < 2 {
		n = 2
	}
	dx := (xmax - xmin) / float64(n-1)
	for i := 0; i < n; i++ {
		x := xmin + float64(i)*dx
		y, ok := c.YAt(x)
		if !ok {
			continue
		}
		upper = append(upper, Point2{X: x, Y: y})
		lower = append(lower, Point2{X: x, Y: -y})
	}
	return upper, lower
}
