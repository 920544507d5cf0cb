package diagrams

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockwalk/blockwalk/pkg/domain"
	"github.com/blockwalk/blockwalk/pkg/primitives"
	"github.com/blockwalk/blockwalk/pkg/vizmath"
)

// stateFor builds a default state for a diagram at a given position.
func stateFor(d Diagram, pos int) *domain.State {
	s := domain.NewState(d.Info().Mode, d.Params())
	s.Position = pos
	return s
}

func boxValue(f *primitives.Frame, label string) (string, bool) {
	for _, b := range f.Boxes {
		if b.Label == label {
			return b.Value, true
		}
	}
	return "", false
}

func TestDiffieHellman_SharedSecretsAgree(t *testing.T) {
	d := NewDiffieHellman()
	s := stateFor(d, len(d.Steps())-1)
	for a := 1.0; a <= 21; a += 4 {
		for b := 1.0; b <= 21; b += 4 {
			s.Params["a"] = a
			s.Params["b"] = b
			f := d.Frame(s)
			alice, ok := boxValue(f, "Alice: B^a mod p")
			require.True(t, ok)
			bob, ok := boxValue(f, "Bob: A^b mod p")
			require.True(t, ok)
			assert.Equalf(t, alice, bob, "a=%v b=%v", a, b)
		}
	}
}

func TestDiffieHellman_ProgressiveReveal(t *testing.T) {
	d := NewDiffieHellman()
	early := d.Frame(stateFor(d, 0))
	_, hasShared := boxValue(early, "Alice: B^a mod p")
	assert.False(t, hasShared, "shared secret must stay hidden before the exchange steps")
	assert.Empty(t, early.Arrows, "no exchange arrows before step 3")

	late := d.Frame(stateFor(d, 3))
	assert.Len(t, late.Arrows, 2)
}

func TestCipherModes_ECBLeaksRepetition(t *testing.T) {
	ecb, cbc := encryptUpTo(len(cipherBlocks))
	require.Len(t, ecb, 4)

	// Blocks 0, 1 and 3 share plaintext: ECB must collide, CBC must not.
	assert.Equal(t, ecb[0], ecb[1])
	assert.Equal(t, ecb[0], ecb[3])
	assert.NotEqual(t, cbc[0], cbc[1])
	assert.NotEqual(t, cbc[0], cbc[3])
	assert.NotEqual(t, cbc[1], cbc[3])
}

func TestCipherModes_RevealFollowsPosition(t *testing.T) {
	d := NewCipherModes()
	for pos := 0; pos < len(d.Steps()); pos++ {
		f := d.Frame(stateFor(d, pos))
		require.Len(t, f.Grids, 1)
		revealed := 0
		for _, row := range f.Grids[0].Rows {
			if row[1].Text != "·" {
				revealed++
			}
		}
		want := pos
		if want > len(cipherBlocks) {
			want = len(cipherBlocks)
		}
		assert.Equalf(t, want, revealed, "position %d", pos)
	}
}

func TestECAddition_ResultOnCurve(t *testing.T) {
	d := NewECAddition()
	s := stateFor(d, 5)
	f := d.Frame(s)
	val, ok := boxValue(f, "R = P + Q")
	require.True(t, ok)

	c := vizmath.RealCurve{A: s.Param("a"), B: s.Param("b")}
	py, okP := c.YAt(s.Param("px"))
	require.True(t, okP)
	qy, okQ := c.YAt(s.Param("qx"))
	require.True(t, okQ)
	r, finite := c.Add(vizmath.Point2{X: s.Param("px"), Y: py}, vizmath.Point2{X: s.Param("qx"), Y: qy})
	require.True(t, finite)
	assert.Equal(t, fmt.Sprintf("(%.2f, %.2f)", r.X, r.Y), val)
	assert.InDelta(t, r.Y*r.Y, c.Y2(r.X), 1e-6, "R must land back on the curve")
}

func TestECAddition_NearEqualPointsShowTangentSlope(t *testing.T) {
	d := NewECAddition()
	s := stateFor(d, 3)
	// px and qx equal within the doubling epsilon but not identical: the
	// displayed slope must be the tangent Add actually used, not a chord
	// quotient over a ~0 denominator.
	s.Params["px"] = 1
	s.Params["qx"] = 1 + 1e-12
	f := d.Frame(s)
	val, ok := boxValue(f, "slope m")
	require.True(t, ok)

	c := vizmath.RealCurve{A: s.Param("a"), B: s.Param("b")}
	y, okY := c.YAt(1)
	require.True(t, okY)
	tangent := (3*1 + c.A) / (2 * y)
	assert.Equal(t, fmt.Sprintf("%.3f", tangent), val)
}

func TestECAddition_OffCurveParamsDegradeGracefully(t *testing.T) {
	d := NewECAddition()
	s := stateFor(d, 5)
	// y² = x³ - 5x - 5 is negative at x = 0.
	s.Params["a"] = -5
	s.Params["b"] = -5
	s.Params["px"] = 0
	f := d.Frame(s)
	require.NotNil(t, f)
	assert.NotEmpty(t, f.Notes, "missing curve point explained, not crashed")
}

func TestECField_PointCountMatchesEnumeration(t *testing.T) {
	d := NewECField()
	s := stateFor(d, 2)
	s.Params["p"] = 23
	s.Params["b"] = 7
	f := d.Frame(s)
	val, ok := boxValue(f, "points on curve")
	require.True(t, ok)
	want := len(vizmath.FieldCurve{A: 0, B: 7, P: 23}.Points())
	assert.Equal(t, fmt.Sprintf("%d (+1 at infinity)", want), val)
}

func TestECField_SnapsToPrime(t *testing.T) {
	d := NewECField()
	s := stateFor(d, 0)
	s.Params["p"] = 28
	f := d.Frame(s)
	val, ok := boxValue(f, "p")
	require.True(t, ok)
	assert.Equal(t, "23", val)
}

func TestAMMSwap_InvariantPreserved(t *testing.T) {
	d := NewAMMSwap()
	s := stateFor(d, 3)
	for _, dx := range []float64{0, 50, 100, 500} {
		s.Params["dx"] = dx
		_, _, _, newX, newY, dy := d.swapMath(s)
		assert.InDeltaf(t, ammK, newX*newY, 1e-6, "dx=%v", dx)
		assert.GreaterOrEqual(t, dy, 0.0)
		assert.Less(t, dy, ammY, "pool can never be drained past its reserve")
	}
}

func TestAMMSwap_FeeReducesOutput(t *testing.T) {
	d := NewAMMSwap()
	s := stateFor(d, 3)
	s.Params["dx"] = 200

	s.Params["fee"] = 0
	_, _, _, _, _, noFee := d.swapMath(s)
	s.Params["fee"] = 100
	_, _, _, _, _, withFee := d.swapMath(s)
	assert.Greater(t, noFee, withFee)
}

func TestHashChain_TamperCascades(t *testing.T) {
	clean := buildChain(false, 0)
	for i, row := range clean {
		assert.Truef(t, row.valid, "untampered block %d", i)
	}

	for tamper := 1; tamper < len(chainData); tamper++ {
		rows := buildChain(true, tamper)
		for i, row := range rows {
			if i < tamper {
				assert.Truef(t, row.valid, "tamper=%d block %d should still verify", tamper, i)
			} else {
				assert.Falsef(t, row.valid, "tamper=%d block %d should be broken", tamper, i)
			}
		}
	}
}

func TestHashChain_FrameShowsBrokenLinks(t *testing.T) {
	d := NewHashChain()
	s := stateFor(d, 4)
	s.Params["tamper"] = 2
	f := d.Frame(s)
	val, ok := boxValue(f, "links broken")
	require.True(t, ok)
	assert.Equal(t, "3 of 4", val)
}

func TestZKSchnorr_HonestProverAccepted(t *testing.T) {
	d := NewZKSchnorr()
	s := stateFor(d, 4)
	for x := 1.0; x <= 21; x += 5 {
		for c := 0.0; c <= 12; c += 3 {
			s.Params["x"] = x
			s.Params["c"] = c
			f := d.Frame(s)
			verdict, ok := boxValue(f, "verdict")
			require.True(t, ok)
			assert.Equalf(t, "ACCEPT", verdict, "x=%v c=%v", x, c)
		}
	}
}

func TestUTXO_AmountsBalance(t *testing.T) {
	assert.InDelta(t, utxoIn1+utxoIn2, utxoPay+utxoSpare+utxoFee, 1e-9)

	d := NewUTXO()
	f := d.Frame(stateFor(d, 5))
	// Final step shows all five arrows: two in, three out.
	assert.Len(t, f.Arrows, 5)
}

func TestAccountCounter_AddressIsDeterministic(t *testing.T) {
	d := NewAccountCounter()
	f := d.Frame(stateFor(d, 1))
	val, ok := boxValue(f, "derivation")
	require.True(t, ok)

	addr := vizmath.PseudoHash(counterSeed+":"+counterAuthority, "pda", 8)
	assert.Equal(t, fmt.Sprintf("address(%q, %q) = %s", counterSeed, counterAuthority, addr), val)

	// Same seeds, same address, every time.
	again, _ := boxValue(d.Frame(stateFor(d, 1)), "derivation")
	assert.Equal(t, val, again)
}

func TestAccountCounter_UnauthorizedSignerLeavesStateUntouched(t *testing.T) {
	d := NewAccountCounter()
	s := stateFor(d, 4)
	s.Params["signer"] = 0
	s.Params["n"] = 7
	f := d.Frame(s)

	check, ok := boxValue(f, "authority check")
	require.True(t, ok)
	assert.Equal(t, "Unauthorized", check)

	count, ok := boxValue(f, "count")
	require.True(t, ok)
	assert.Equal(t, "0", count, "a rejected instruction must not mutate the account")
	assert.NotEmpty(t, f.Notes)
}

func TestAccountCounter_AuthorizedIncrements(t *testing.T) {
	d := NewAccountCounter()
	s := stateFor(d, 4)
	s.Params["n"] = 7
	f := d.Frame(s)

	check, ok := boxValue(f, "authority check")
	require.True(t, ok)
	assert.Equal(t, "signer == stored authority", check)

	count, ok := boxValue(f, "count")
	require.True(t, ok)
	assert.Equal(t, "7", count)
}

func TestAccountCounter_OverflowIsAnError(t *testing.T) {
	d := NewAccountCounter()
	f := d.Frame(stateFor(d, 5))

	val, ok := boxValue(f, "checked_add(1)")
	require.True(t, ok)
	assert.Equal(t, "Overflow", val)

	max, ok := boxValue(f, "count at u64 max")
	require.True(t, ok)
	assert.Equal(t, counterU64Max, max)
}

func TestAccountCounter_StepValues(t *testing.T) {
	d := NewAccountCounter()
	steps := d.Steps()
	require.Len(t, steps, 6)
	assert.Equal(t, "49 bytes", steps[2].Values["space"])
	assert.Equal(t, counterSeed, steps[1].Values["seed"])
	assert.Equal(t, counterU64Max, steps[5].Values["u64 max"])
}
