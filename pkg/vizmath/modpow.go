package vizmath

// ModPow computes base^exp mod m using square-and-multiply.
//
// m <= 0 and exp < 0 are degenerate inputs from free-form UI fields; both
// return 0 rather than panicking. Negative bases are normalized into [0, m)
// before exponentiation.
func ModPow(base, exp, m int64) int64 {
	if m <= 0 || exp < 0 {
		return 0
	}
	if m == 1 {
		return 0
	}
	b := ((base % m) + m) % m
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * b) % m
		}
		b = (b * b) % m
		exp >>= 1
	}
	return result
}

// ModInverse returns the multiplicative inverse of a mod p for prime p, using
// Fermat's little theorem. Returns 0 when a ≡ 0 (no inverse exists).
func ModInverse(a, p int64) int64 {
	a = ((a % p) + p) % p
	if a == 0 {
		return 0
	}
	return ModPow(a, p-2, p)
}
