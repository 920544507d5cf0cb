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

// ECField enumerates every point of y² = x³ + b over a small prime field.
// The continuous curve dissolves into a symmetric scatter of lattice points,
// which is the picture real curve cryptography actually lives in.
type ECField struct {
	steps []domain.Step
}

// NewECField builds the walkthrough.
func NewECField() *ECField {
	return &ECField{
		steps: []domain.Step{
			{
				ID:    "equation",
				Title: "Same equation, finite world",
				Description: "Take **y² = x³ + b** but compute everything **mod p**. The slider value " +
					"for `p` snaps down to the nearest prime, because the field construction needs one.",
			},
			{
				ID:    "residues",
				Title: "Which values are squares?",
				Description: "For each y in [0, p) square it mod p. Only about half of all residues ever " +
					"appear — those are the quadratic residues. The lookup table built here turns the " +
					"point search from O(p²) into O(p).",
			},
			{
				ID:    "enumerate",
				Title: "Enumerate the points",
				Description: "For each x, compute x³ + b mod p and read the matching y values out of " +
					"the residue table. Every hit is a point on the curve.",
			},
			{
				ID:    "symmetry",
				Title: "The mirror line",
				Description: "If (x, y) is on the curve so is (x, p−y): the scatter is symmetric about " +
					"y = p/2. Together with a point at infinity these points form a finite group.",
			},
		},
	}
}

// Info implements Diagram.
func (d *ECField) Info() Info {
	return Info{
		Slug:    "ec-field",
		Title:   "Elliptic curve over a prime field",
		Summary: "Brute-force enumeration of all curve points mod p, residue table included.",
		Mode:    domain.NavLinear,
	}
}

// Steps implements Diagram.
func (d *ECField) Steps() []domain.Step { return d.steps }

// Params implements Diagram.
func (d *ECField) Params() []domain.ParamSpec {
	return []domain.ParamSpec{
		{Name: "p", Label: "field size (snaps to a prime)", Min: 5, Max: 97, Default: 23, Step: 1},
		{Name: "b", Label: "curve b", Min: 1, Max: 10, Default: 7, Step: 1},
	}
}

func (d *ECField) curve(s *domain.State) vizmath.FieldCurve {
	p := vizmath.NearestPrimeAtMost(int64(s.Param("p")))
	return vizmath.FieldCurve{A: 0, B: int64(s.Param("b")), P: p}
}

// Frame implements Diagram.
func (d *ECField) Frame(s *domain.State) *primitives.Frame {
	pos := s.Position
	c := d.curve(s)

	f := &primitives.Frame{Title: "Curve points over GF(p)"}
	f.AddBox(primitives.DataBox{Label: "equation", Value: fmt.Sprintf("y² ≡ x³ + %d (mod %d)", c.B, c.P)})
	f.AddBox(primitives.DataBox{Label: "p", Value: fmt.Sprintf("%d", c.P), Variant: primitives.VariantPrimary})

	if pos >= 1 {
		// Count distinct quadratic residues.
		seen := make(map[int64]bool)
		for y := int64(0); y < c.P; y++ {
			seen[y*y%c.P] = true
		}
		f.AddBox(primitives.DataBox{Label: "quadratic residues", Value: fmt.Sprintf("%d of %d", len(seen), c.P)})
	}
	if pos >= 2 {
		pts := c.Points()
		f.AddBox(primitives.DataBox{
			Label:   "points on curve",
			Value:   fmt.Sprintf("%d (+1 at infinity)", len(pts)),
			Variant: primitives.VariantSuccess,
		})
		// For pocket-size fields, list the points outright.
		if c.P <= 13 {
			grid := primitives.Grid{Title: "All points", Headers: []string{"x", "y"}}
			for _, pt := range pts {
				grid.Rows = append(grid.Rows, []primitives.Cell{
					{Text: fmt.Sprintf("%d", pt.X)},
					{Text: fmt.Sprintf("%d", pt.Y)},
				})
			}
			f.AddGrid(grid)
		}
	}
	if pos >= 3 {
		f.AddNote(primitives.Note{Text: fmt.Sprintf("Every point (x, y) with y ≠ 0 has a mirror partner (x, %d − y).", c.P)})
	}
	return f
}

// Chart scatters the enumerated points on the [0, p) lattice.
func (d *ECField) Chart(s *domain.State) components.Charter {
	c := d.curve(s)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("y² ≡ x³ + %d (mod %d)", c.B, c.P),
			Subtitle: "each dot is a curve point",
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x", Max: int(c.P)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "y", Max: int(c.P)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	var data []opts.ScatterData
	for _, pt := range c.Points() {
		data = append(data, opts.ScatterData{Value: []any{pt.X, pt.Y}, SymbolSize: 8})
	}
	sc.AddSeries("points", data)
	return sc
}
