package vizmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bruteModPow(base, exp, m int64) int64 {
	b := ((base % m) + m) % m
	r := int64(1)
	for i := int64(0); i < exp; i++ {
		r = r * b % m
	}
	return r
}

func TestModPow_MatchesBruteForce(t *testing.T) {
	cases := []struct{ base, exp, m int64 }{
		{17, 23, 7},
		{5, 0, 23},
		{2, 10, 1024},
		{-3, 5, 11},
		{23, 22, 23},
		{6, 13, 97},
	}
	for _, c := range cases {
		got := ModPow(c.base, c.exp, c.m)
		want := bruteModPow(c.base, c.exp, c.m)
		assert.Equalf(t, want, got, "ModPow(%d, %d, %d)", c.base, c.exp, c.m)
		assert.GreaterOrEqual(t, got, int64(0))
		assert.Less(t, got, c.m)
	}
}

func TestModPow_Edges(t *testing.T) {
	assert.Equal(t, int64(0), ModPow(5, 3, 1), "mod 1 collapses to 0")
	assert.Equal(t, int64(1), ModPow(9, 0, 7), "b^0 is 1 mod m")
	assert.Equal(t, int64(0), ModPow(5, -1, 7), "negative exponent degrades to 0")
	assert.Equal(t, int64(0), ModPow(5, 3, 0), "non-positive modulus degrades to 0")
}

func TestModInverse(t *testing.T) {
	const p = int64(23)
	for a := int64(1); a < p; a++ {
		inv := ModInverse(a, p)
		require.Equal(t, int64(1), a*inv%p, "a * a^-1 must be 1 mod p")
	}
	assert.Equal(t, int64(0), ModInverse(0, p))
	assert.Equal(t, int64(0), ModInverse(p, p), "p ≡ 0 has no inverse")
}
