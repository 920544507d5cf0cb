package vizmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldCurve_EnumerationMatchesBruteForce(t *testing.T) {
	// y² = x³ + 7 mod 23, the toy version of the secp256k1 equation.
	c := FieldCurve{A: 0, B: 7, P: 23}
	pts := c.Points()

	seen := make(map[FieldPoint]bool, len(pts))
	for _, pt := range pts {
		require.True(t, c.On(pt.X, pt.Y), "returned point (%d, %d) not on curve", pt.X, pt.Y)
		require.False(t, seen[pt], "duplicate point (%d, %d)", pt.X, pt.Y)
		seen[pt] = true
	}

	// Full O(p²) scan must find exactly the same set.
	count := 0
	for x := int64(0); x < c.P; x++ {
		for y := int64(0); y < c.P; y++ {
			if y*y%c.P == c.RHS(x) {
				count++
				assert.True(t, seen[FieldPoint{X: x, Y: y}], "enumeration missed (%d, %d)", x, y)
			}
		}
	}
	assert.Equal(t, count, len(pts))
}

func TestFieldCurve_SmallPrime(t *testing.T) {
	c := FieldCurve{A: 2, B: 3, P: 7}
	for _, pt := range c.Points() {
		assert.True(t, c.On(pt.X, pt.Y))
		assert.Less(t, pt.X, c.P)
		assert.Less(t, pt.Y, c.P)
	}
}

func TestFieldCurve_DegenerateModulus(t *testing.T) {
	assert.Nil(t, FieldCurve{A: 1, B: 1, P: 1}.Points())
	assert.Nil(t, FieldCurve{A: 1, B: 1, P: 0}.Points())
}

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 23, 97}
	for _, p := range primes {
		assert.Truef(t, IsPrime(p), "%d is prime", p)
	}
	composites := []int64{-7, 0, 1, 4, 9, 91, 100}
	for _, n := range composites {
		assert.Falsef(t, IsPrime(n), "%d is not prime", n)
	}
}

func TestNearestPrimeAtMost(t *testing.T) {
	assert.Equal(t, int64(23), NearestPrimeAtMost(23))
	assert.Equal(t, int64(23), NearestPrimeAtMost(28))
	assert.Equal(t, int64(97), NearestPrimeAtMost(100))
	assert.Equal(t, int64(2), NearestPrimeAtMost(1), "floor snaps up to the smallest prime")
}
