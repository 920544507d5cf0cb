package vizmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onCurve(t *testing.T, c RealCurve, p Point2) {
	t.Helper()
	require.InDelta(t, p.Y*p.Y, c.Y2(p.X), 1e-6, "point (%v, %v) must satisfy the curve equation", p.X, p.Y)
}

func TestRealCurve_AddIsSymmetric(t *testing.T) {
	c := RealCurve{A: -2, B: 2}
	py, ok := c.YAt(0)
	require.True(t, ok)
	qy, ok := c.YAt(2)
	require.True(t, ok)
	p := Point2{X: 0, Y: py}
	q := Point2{X: 2, Y: qy}

	r1, ok1 := c.Add(p, q)
	r2, ok2 := c.Add(q, p)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.InDelta(t, r1.X, r2.X, 1e-9)
	assert.InDelta(t, r1.Y, r2.Y, 1e-9)
	onCurve(t, c, r1)
}

func TestRealCurve_DoublingBranch(t *testing.T) {
	c := RealCurve{A: -2, B: 2}
	y, ok := c.YAt(1)
	require.True(t, ok)
	p := Point2{X: 1, Y: y}

	// Exactly equal points and nearly-equal points must both take the
	// tangent branch instead of dividing by ~0.
	d1, ok := c.Add(p, p)
	require.True(t, ok)
	d2, ok := c.Add(p, Point2{X: p.X + 1e-12, Y: p.Y})
	require.True(t, ok)
	assert.InDelta(t, d1.X, d2.X, 1e-6)
	onCurve(t, c, d1)
}

func TestRealCurve_SlopeMatchesAddBranch(t *testing.T) {
	c := RealCurve{A: -2, B: 2}
	y, ok := c.YAt(1)
	require.True(t, ok)
	p := Point2{X: 1, Y: y}

	// Points equal within epsilon take the tangent slope, the same branch
	// Add uses; a naive chord quotient would explode here.
	tangent := (3*p.X*p.X + c.A) / (2 * p.Y)
	m, finite := c.Slope(p, Point2{X: p.X + 1e-12, Y: p.Y})
	require.True(t, finite)
	assert.InDelta(t, tangent, m, 1e-6)

	// Distinct points keep the chord slope.
	qy, ok := c.YAt(2)
	require.True(t, ok)
	q := Point2{X: 2, Y: qy}
	m, finite = c.Slope(p, q)
	require.True(t, finite)
	assert.InDelta(t, (q.Y-p.Y)/(q.X-p.X), m, 1e-12)

	_, finite = c.Slope(q, Point2{X: q.X, Y: -q.Y})
	assert.False(t, finite, "vertical chord has no finite slope")
}

func TestRealCurve_VerticalChordIsInfinity(t *testing.T) {
	c := RealCurve{A: -2, B: 2}
	y, ok := c.YAt(2)
	require.True(t, ok)
	_, finite := c.Add(Point2{X: 2, Y: y}, Point2{X: 2, Y: -y})
	assert.False(t, finite, "P + (-P) is the point at infinity")
}

func TestRealCurve_DoublingAtYZeroIsInfinity(t *testing.T) {
	// y² = x³ - 1 has y = 0 at x = 1.
	c := RealCurve{A: 0, B: -1}
	_, finite := c.Add(Point2{X: 1, Y: 0}, Point2{X: 1, Y: 0})
	assert.False(t, finite)
}

func TestRealCurve_SampleBranches(t *testing.T) {
	c := RealCurve{A: -2, B: 2}
	upper, lower := c.Sample(-3, 3, 100)
	require.NotEmpty(t, upper)
	require.Equal(t, len(upper), len(lower))
	for i := range upper {
		assert.GreaterOrEqual(t, upper[i].Y, 0.0)
		assert.InDelta(t, -upper[i].Y, lower[i].Y, 1e-12)
		assert.False(t, math.IsNaN(upper[i].Y))
	}
}
