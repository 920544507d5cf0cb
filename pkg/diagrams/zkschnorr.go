package diagrams

import (
	"fmt"

	"github.com/blockwalk/blockwalk/pkg/domain"
	"github.com/blockwalk/blockwalk/pkg/primitives"
	"github.com/blockwalk/blockwalk/pkg/vizmath"
)

// Same toy group as the Diffie-Hellman walkthrough. 5 generates the full
// multiplicative group mod 23, so exponents live mod 22.
const (
	zkPrime = 23
	zkBase  = 5
	zkOrder = zkPrime - 1
	zkNonce = 11 // prover's commitment nonce r, fixed for reproducible frames
)

// ZKSchnorr walks the 3-move Schnorr identification protocol: commit,
// challenge, respond, verify — proving knowledge of x with y = gˣ without
// revealing x.
type ZKSchnorr struct {
	steps []domain.Step
}

// NewZKSchnorr builds the walkthrough.
func NewZKSchnorr() *ZKSchnorr {
	return &ZKSchnorr{
		steps: []domain.Step{
			{
				ID:    "setup",
				Title: "The claim",
				Description: "Peggy knows a secret `x` and publishes **y = gˣ mod p**. She wants to " +
					"convince Victor she knows x — without him learning anything about it.",
			},
			{
				ID:    "commit",
				Title: "Commitment",
				Description: "Peggy picks a fresh random nonce `r` and sends **t = gʳ mod p**. " +
					"The nonce hides everything that follows; reusing it would leak x.",
			},
			{
				ID:    "challenge",
				Title: "Challenge",
				Description: "Victor replies with a random challenge `c` (the slider). Peggy could not " +
					"have predicted it, which is what makes the next message convincing.",
			},
			{
				ID:    "response",
				Title: "Response",
				Description: "Peggy sends **s = r + c·x mod (p−1)**. The secret x is in there, but " +
					"blinded by r — to Victor, s alone is just a uniform-looking number.",
			},
			{
				ID:    "verify",
				Title: "Verification",
				Description: "Victor checks **gˢ ≟ t · yᶜ mod p**. Both sides equal g^(r+cx), so a " +
					"genuine Peggy always passes; a fake one passes only by guessing c in advance.",
			},
			{
				ID:    "zero-knowledge",
				Title: "Why Victor learns nothing",
				Description: "Victor could have generated the transcript (t, c, s) himself: pick s and c " +
					"first, set t = gˢ·y⁻ᶜ. A conversation he can forge alone carries no knowledge.",
			},
		},
	}
}

// Info implements Diagram.
func (d *ZKSchnorr) Info() Info {
	return Info{
		Slug:    "zk-schnorr",
		Title:   "Schnorr zero-knowledge proof",
		Summary: "The commit–challenge–response dance, with numbers small enough to check by hand.",
		Mode:    domain.NavHistory,
	}
}

// Steps implements Diagram.
func (d *ZKSchnorr) Steps() []domain.Step { return d.steps }

// Params implements Diagram.
func (d *ZKSchnorr) Params() []domain.ParamSpec {
	return []domain.ParamSpec{
		{Name: "x", Label: "Peggy's secret x", Min: 1, Max: 21, Default: 7, Step: 1},
		{Name: "c", Label: "Victor's challenge c", Min: 0, Max: 12, Default: 3, Step: 1},
	}
}

// Frame implements Diagram.
func (d *ZKSchnorr) Frame(s *domain.State) *primitives.Frame {
	pos := s.Position
	x := int64(s.Param("x"))
	c := int64(s.Param("c"))

	y := vizmath.ModPow(zkBase, x, zkPrime)
	t := vizmath.ModPow(zkBase, zkNonce, zkPrime)
	resp := (zkNonce + c*x) % zkOrder
	left := vizmath.ModPow(zkBase, resp, zkPrime)
	right := t * vizmath.ModPow(y, c, zkPrime) % zkPrime

	f := &primitives.Frame{Title: "Schnorr identification over GF(23)"}
	f.AddNode(primitives.FlowNode{
		ID: "peggy", Label: "Peggy (prover)",
		Detail:  fmt.Sprintf("knows x = %d", x),
		Variant: primitives.VariantPrimary,
		Active:  pos == 1 || pos == 3,
	})
	f.AddNode(primitives.FlowNode{
		ID: "victor", Label: "Victor (verifier)",
		Detail:  fmt.Sprintf("knows y = %d", y),
		Variant: primitives.VariantAccent,
		Active:  pos == 2 || pos == 4,
	})

	f.AddBox(primitives.DataBox{Label: "public y = g^x mod p", Value: fmt.Sprintf("%d", y)})
	if pos >= 1 {
		f.AddArrow(primitives.Arrow{From: "peggy", To: "victor", Label: fmt.Sprintf("t = %d", t)})
		f.AddBox(primitives.DataBox{Label: "commitment t = g^r", Value: fmt.Sprintf("%d (r = %d)", t, int64(zkNonce))})
	}
	if pos >= 2 {
		f.AddArrow(primitives.Arrow{From: "victor", To: "peggy", Label: fmt.Sprintf("c = %d", c)})
	}
	if pos >= 3 {
		f.AddArrow(primitives.Arrow{From: "peggy", To: "victor", Label: fmt.Sprintf("s = %d", resp)})
		f.AddBox(primitives.DataBox{Label: "response s = r + c·x mod (p−1)", Value: fmt.Sprintf("%d", resp)})
	}
	if pos >= 4 {
		f.AddBox(primitives.DataBox{Label: "g^s mod p", Value: fmt.Sprintf("%d", left), Variant: primitives.VariantPrimary})
		f.AddBox(primitives.DataBox{Label: "t·y^c mod p", Value: fmt.Sprintf("%d", right), Variant: primitives.VariantAccent})
		verdict := primitives.DataBox{Label: "verdict", Value: "ACCEPT", Variant: primitives.VariantSuccess}
		if left != right {
			verdict = primitives.DataBox{Label: "verdict", Value: "REJECT", Variant: primitives.VariantDanger}
		}
		f.AddBox(verdict)
	}
	if pos >= 5 {
		f.AddNote(primitives.Note{Text: "The transcript (t, c, s) is simulatable without x — that is the zero-knowledge property."})
	}
	return f
}
