package vizmath

// FieldPoint is a curve point over a prime field, both coordinates in [0, p).
type FieldPoint struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// FieldCurve is y² = x³ + ax + b over GF(p) for a small prime p. Brute-force
// enumeration is the point: the diagrams show every point on a lattice grid.
type FieldCurve struct {
	A int64
	B int64
	P int64
}

// RHS evaluates x³ + ax + b mod p.
func (c FieldCurve) RHS(x int64) int64 {
	p := c.P
	x = ((x % p) + p) % p
	v := (x * x % p) * x % p
	v = (v + ((c.A%p+p)%p)*x) % p
	v = (v + ((c.B%p + p) % p)) % p
	return v
}

// On reports whether (x, y) satisfies the curve equation mod p.
func (c FieldCurve) On(x, y int64) bool {
	p := c.P
	y = ((y % p) + p) % p
	return y*y%p == c.RHS(x)
}

// Points enumerates every affine point on the curve. A quadratic-residue
// table maps each square value to its roots, so the scan is O(p) table
// lookups instead of O(p²) equation checks.
func (c FieldCurve) Points() []FieldPoint {
	p := c.P
	if p < 2 {
		return nil
	}
	// roots[v] lists the y in [0, p) with y² ≡ v.
	roots := make([][]int64, p)
	for y := int64(0); y < p; y++ {
		v := y * y % p
		roots[v] = append(roots[v], y)
	}
	var pts []FieldPoint
	for x := int64(0); x < p; x++ {
		for _, y := range roots[c.RHS(x)] {
			pts = append(pts, FieldPoint{X: x, Y: y})
		}
	}
	return pts
}

// IsPrime is a trial-division primality check, adequate for the small moduli
// these diagrams use.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// NearestPrimeAtMost returns the largest prime <= n, or 2 when n < 2. Slider
// values land on arbitrary integers; diagrams that need a prime modulus snap
// down with this.
func NearestPrimeAtMost(n int64) int64 {
	if n < 2 {
		return 2
	}
	for ; n >= 2; n-- {
		if IsPrime(n) {
			return n
		}
	}
	return 2
}
