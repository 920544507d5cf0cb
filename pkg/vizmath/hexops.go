package vizmath

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// XORHex XORs two hex strings nibble by nibble. The output length is the
// length of the shorter input, so callers can fold a short key into a longer
// block without padding.
func XORHex(a, b string) (string, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		av, err := nibble(a[i])
		if err != nil {
			return "", err
		}
		bv, err := nibble(b[i])
		if err != nil {
			return "", err
		}
		sb.WriteByte(hexDigits[av^bv])
	}
	return sb.String(), nil
}

func nibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", c)
}

// PseudoHash folds input and key into a short hex digest via repeated
// multiply-xor mixing. It is deterministic and avalanche-y enough to look
// like a hash on screen; it is emphatically not one. Collisions are expected
// and irrelevant.
func PseudoHash(input, key string, digits int) string {
	if digits <= 0 {
		digits = 8
	}
	// FNV-style seed, remixed with the key so that the same input under two
	// keys diverges visibly.
	state := uint64(0xcbf29ce484222325)
	for _, c := range key {
		state = (state ^ uint64(c)) * 0x100000001b3
	}
	for _, c := range input {
		state = (state ^ uint64(c)) * 0x100000001b3
		state ^= state >> 29
	}
	var sb strings.Builder
	sb.Grow(digits)
	for i := 0; i < digits; i++ {
		sb.WriteByte(hexDigits[state&0xf])
		state = (state >> 4) ^ (state * 0x9e3779b97f4a7c15)
	}
	return sb.String()
}
