package diagrams

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/blockwalk/blockwalk/pkg/domain"
	"github.com/blockwalk/blockwalk/pkg/primitives"
	"github.com/blockwalk/blockwalk/pkg/vizmath"
)

// Toy group parameters, small enough to verify by hand. 5 is a primitive
// root mod 23.
const (
	dhPrime = 23
	dhBase  = 5
)

// DiffieHellman walks through the classic key exchange with pocket-size
// numbers: both parties raise g to a secret exponent, swap the results, and
// raise again.
type DiffieHellman struct {
	steps []domain.Step
}

// NewDiffieHellman builds the walkthrough.
func NewDiffieHellman() *DiffieHellman {
	return &DiffieHellman{
		steps: []domain.Step{
			{
				ID:    "public-params",
				Title: "Public parameters",
				Description: "Alice and Bob agree on a prime **p = 23** and a generator **g = 5**. " +
					"Both values travel in the clear; the security lives entirely in the exponents.",
			},
			{
				ID:    "alice-secret",
				Title: "Alice picks a secret",
				Description: "Alice picks a secret exponent `a` (drag the slider) and computes her " +
					"public value **A = gᵃ mod p**. Recovering `a` from A is the discrete log problem.",
			},
			{
				ID:          "bob-secret",
				Title:       "Bob picks a secret",
				Description: "Bob does the same with his own secret `b`, producing **B = gᵇ mod p**.",
			},
			{
				ID:    "exchange",
				Title: "Exchange public values",
				Description: "A and B cross the wire. An eavesdropper sees p, g, A and B — " +
					"but none of the secrets.",
			},
			{
				ID:          "alice-shared",
				Title:       "Alice derives the shared secret",
				Description: "Alice raises Bob's value to her secret: **s = Bᵃ mod p**.",
			},
			{
				ID:    "bob-shared",
				Title: "Bob derives the same secret",
				Description: "Bob computes **s = Aᵇ mod p**. Both arrive at gᵃᵇ mod p, " +
					"so the two results always match.",
			},
		},
	}
}

// Info implements Diagram.
func (d *DiffieHellman) Info() Info {
	return Info{
		Slug:    "diffie-hellman",
		Title:   "Diffie–Hellman key exchange",
		Summary: "Two parties derive a shared secret over a public channel using modular exponentiation.",
		Mode:    domain.NavLinear,
	}
}

// Steps implements Diagram.
func (d *DiffieHellman) Steps() []domain.Step { return d.steps }

// Params implements Diagram.
func (d *DiffieHellman) Params() []domain.ParamSpec {
	return []domain.ParamSpec{
		{Name: "a", Label: "Alice's secret a", Min: 1, Max: 21, Default: 6, Step: 1},
		{Name: "b", Label: "Bob's secret b", Min: 1, Max: 21, Default: 15, Step: 1},
	}
}

// Frame implements Diagram.
func (d *DiffieHellman) Frame(s *domain.State) *primitives.Frame {
	a := int64(s.Param("a"))
	b := int64(s.Param("b"))
	pubA := vizmath.ModPow(dhBase, a, dhPrime)
	pubB := vizmath.ModPow(dhBase, b, dhPrime)
	sharedA := vizmath.ModPow(pubB, a, dhPrime)
	sharedB := vizmath.ModPow(pubA, b, dhPrime)
	pos := s.Position

	f := &primitives.Frame{Title: "Diffie–Hellman over GF(23)"}
	f.AddNode(primitives.FlowNode{
		ID: "alice", Label: "Alice",
		Detail:  fmt.Sprintf("secret a = %d", a),
		Variant: primitives.VariantPrimary,
		Active:  pos == 1 || pos == 4,
	})
	f.AddNode(primitives.FlowNode{
		ID: "bob", Label: "Bob",
		Detail:  fmt.Sprintf("secret b = %d", b),
		Variant: primitives.VariantAccent,
		Active:  pos == 2 || pos == 5,
	})

	f.AddBox(primitives.DataBox{Label: "p", Value: fmt.Sprintf("%d", int64(dhPrime))})
	f.AddBox(primitives.DataBox{Label: "g", Value: fmt.Sprintf("%d", int64(dhBase))})
	if pos >= 1 {
		f.AddBox(primitives.DataBox{Label: "A = g^a mod p", Value: fmt.Sprintf("%d", pubA), Variant: primitives.VariantPrimary})
	}
	if pos >= 2 {
		f.AddBox(primitives.DataBox{Label: "B = g^b mod p", Value: fmt.Sprintf("%d", pubB), Variant: primitives.VariantAccent})
	}
	if pos >= 3 {
		f.AddArrow(primitives.Arrow{From: "alice", To: "bob", Label: fmt.Sprintf("A = %d", pubA)})
		f.AddArrow(primitives.Arrow{From: "bob", To: "alice", Label: fmt.Sprintf("B = %d", pubB)})
	}
	if pos >= 4 {
		f.AddBox(primitives.DataBox{Label: "Alice: B^a mod p", Value: fmt.Sprintf("%d", sharedA), Variant: primitives.VariantSuccess})
	}
	if pos >= 5 {
		f.AddBox(primitives.DataBox{Label: "Bob: A^b mod p", Value: fmt.Sprintf("%d", sharedB), Variant: primitives.VariantSuccess})
		f.AddNote(primitives.Note{Text: fmt.Sprintf("Both sides hold s = %d without ever sending it.", sharedA)})
	}
	return f
}

// Chart plots gˣ mod p for every exponent, the picture of why the discrete
// log looks like noise.
func (d *DiffieHellman) Chart(s *domain.State) components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "g^x mod p jumps around",
			Subtitle: fmt.Sprintf("g = %d, p = %d", int64(dhBase), int64(dhPrime)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "g^x mod p"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
	)

	xs := make([]string, 0, dhPrime-1)
	ys := make([]opts.LineData, 0, dhPrime-1)
	for x := int64(1); x < dhPrime; x++ {
		xs = append(xs, fmt.Sprintf("%d", x))
		ys = append(ys, opts.LineData{Value: vizmath.ModPow(dhBase, x, dhPrime)})
	}
	line.SetXAxis(xs).AddSeries("g^x mod p", ys)
	return line
}
