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

// ECAddition shows chord-and-tangent point addition on a real Weierstrass
// curve: pick P and Q by their x coordinates, draw the chord, reflect the
// third intersection.
type ECAddition struct {
	steps []domain.Step
}

// NewECAddition builds the walkthrough.
func NewECAddition() *ECAddition {
	return &ECAddition{
		steps: []domain.Step{
			{
				ID:    "curve",
				Title: "The curve",
				Description: "An elliptic curve **y² = x³ + ax + b** over the reals. Adjust `a` and `b` " +
					"to reshape it — the addition rule below works for any non-singular shape.",
			},
			{
				ID:          "pick-p",
				Title:       "Pick point P",
				Description: "Slide `px` to choose P on the upper branch: P = (px, +√(px³+a·px+b)).",
			},
			{
				ID:          "pick-q",
				Title:       "Pick point Q",
				Description: "Choose a second point Q the same way with `qx`.",
			},
			{
				ID:    "chord",
				Title: "Draw the chord",
				Description: "The line through P and Q has slope **(y₂−y₁)/(x₂−x₁)**. When P = Q " +
					"(within floating point) the tangent slope **(3x²+a)/2y** is used instead.",
			},
			{
				ID:    "third-point",
				Title: "Find the third intersection",
				Description: "A line meets a cubic in three points. The third one has " +
					"**x₃ = m² − x₁ − x₂**.",
			},
			{
				ID:    "reflect",
				Title: "Reflect to get P + Q",
				Description: "Mirror the third intersection across the x-axis: " +
					"**R = (x₃, m(x₁−x₃) − y₁)**. That reflection is what makes the operation a group law.",
			},
		},
	}
}

// Info implements Diagram.
func (d *ECAddition) Info() Info {
	return Info{
		Slug:    "ec-addition",
		Title:   "Elliptic curve point addition",
		Summary: "The chord-and-tangent rule: add two curve points geometrically.",
		Mode:    domain.NavLinear,
	}
}

// Steps implements Diagram.
func (d *ECAddition) Steps() []domain.Step { return d.steps }

// Params implements Diagram.
func (d *ECAddition) Params() []domain.ParamSpec {
	return []domain.ParamSpec{
		{Name: "a", Label: "curve a", Min: -5, Max: 5, Default: -2, Step: 1},
		{Name: "b", Label: "curve b", Min: -5, Max: 5, Default: 2, Step: 1},
		{Name: "px", Label: "x of P", Min: -3, Max: 4, Default: 0, Step: 0.1},
		{Name: "qx", Label: "x of Q", Min: -3, Max: 4, Default: 2, Step: 0.1},
	}
}

// points resolves P, Q and R for the current parameters. ok is false when
// the curve does not exist at one of the chosen x values.
func (d *ECAddition) points(s *domain.State) (c vizmath.RealCurve, p, q, r vizmath.Point2, rOK, ok bool) {
	c = vizmath.RealCurve{A: s.Param("a"), B: s.Param("b")}
	py, pOK := c.YAt(s.Param("px"))
	qy, qOK := c.YAt(s.Param("qx"))
	if !pOK || !qOK {
		return c, p, q, r, false, false
	}
	p = vizmath.Point2{X: s.Param("px"), Y: py}
	q = vizmath.Point2{X: s.Param("qx"), Y: qy}
	r, rOK = c.Add(p, q)
	return c, p, q, r, rOK, true
}

// Frame implements Diagram.
func (d *ECAddition) Frame(s *domain.State) *primitives.Frame {
	pos := s.Position
	c, p, q, r, rOK, ok := d.points(s)

	f := &primitives.Frame{Title: "Chord-and-tangent addition"}
	f.AddBox(primitives.DataBox{Label: "curve", Value: fmt.Sprintf("y² = x³ + %.1fx + %.1f", c.A, c.B)})

	if !ok {
		f.AddNote(primitives.Note{Text: "The curve has no point at the chosen x — move px/qx to where x³+ax+b ≥ 0."})
		return f
	}
	if pos >= 1 {
		f.AddBox(primitives.DataBox{Label: "P", Value: fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y), Variant: primitives.VariantPrimary})
	}
	if pos >= 2 {
		f.AddBox(primitives.DataBox{Label: "Q", Value: fmt.Sprintf("(%.2f, %.2f)", q.X, q.Y), Variant: primitives.VariantAccent})
	}
	if pos >= 3 {
		if !rOK {
			f.AddNote(primitives.Note{Text: "P and Q are vertical mirrors: the chord never comes back to the curve. P + Q is the point at infinity."})
			return f
		}
		// Same branch selection as Add, so the displayed slope is always the
		// one R was computed from.
		if m, finite := c.Slope(p, q); finite {
			f.AddBox(primitives.DataBox{Label: "slope m", Value: fmt.Sprintf("%.3f", m)})
		}
	}
	if pos >= 4 && rOK {
		f.AddBox(primitives.DataBox{Label: "third intersection", Value: fmt.Sprintf("(%.2f, %.2f)", r.X, -r.Y)})
	}
	if pos >= 5 && rOK {
		f.AddBox(primitives.DataBox{Label: "R = P + Q", Value: fmt.Sprintf("(%.2f, %.2f)", r.X, r.Y), Variant: primitives.VariantSuccess})
		f.AddNote(primitives.Note{Text: "Swap P and Q and nothing changes: the construction is symmetric."})
	}
	return f
}

// Chart draws both square-root branches of the curve plus the highlighted
// points for the current step.
func (d *ECAddition) Chart(s *domain.State) components.Charter {
	c, p, q, r, rOK, ok := d.points(s)
	pos := s.Position

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "y² = x³ + ax + b",
			Subtitle: fmt.Sprintf("a = %.1f, b = %.1f", c.A, c.B),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "y"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	upper, lower := c.Sample(-4, 5, 400)
	curvePts := make([]opts.ScatterData, 0, len(upper)+len(lower))
	for _, pt := range upper {
		curvePts = append(curvePts, opts.ScatterData{Value: []any{pt.X, pt.Y}, SymbolSize: 3})
	}
	for _, pt := range lower {
		curvePts = append(curvePts, opts.ScatterData{Value: []any{pt.X, pt.Y}, SymbolSize: 3})
	}
	sc.AddSeries("curve", curvePts)

	if ok {
		var marked []opts.ScatterData
		if pos >= 1 {
			marked = append(marked, opts.ScatterData{Value: []any{p.X, p.Y}, SymbolSize: 12, Name: "P"})
		}
		if pos >= 2 {
			marked = append(marked, opts.ScatterData{Value: []any{q.X, q.Y}, SymbolSize: 12, Name: "Q"})
		}
		if pos >= 5 && rOK {
			marked = append(marked, opts.ScatterData{Value: []any{r.X, r.Y}, SymbolSize: 12, Name: "P+Q"})
		}
		if len(marked) > 0 {
			sc.AddSeries("points", marked)
		}
	}
	return sc
}
