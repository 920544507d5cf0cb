package diagrams

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/blockwalk/blockwalk/pkg/domain"
	"github.com/blockwalk/blockwalk/pkg/primitives"
)

// Starting pool reserves. k = ammX * ammY is the invariant the whole
// walkthrough revolves around.
const (
	ammX = 1000.0 // TOKEN reserve
	ammY = 500.0  // ETH reserve
	ammK = ammX * ammY
)

// AMMSwap steps through one constant-product swap: fee off the top, xy = k
// on what remains, price impact as the visible consequence.
type AMMSwap struct {
	steps []domain.Step
}

// NewAMMSwap builds the walkthrough.
func NewAMMSwap() *AMMSwap {
	return &AMMSwap{
		steps: []domain.Step{
			{
				ID:    "pool",
				Title: "The pool and its invariant",
				Description: "A constant-product pool holds 1000 TOKEN and 500 ETH. The product " +
					"**k = x·y = 500,000** must never decrease — that single rule prices every trade.",
			},
			{
				ID:    "trade-in",
				Title: "A trader sends TOKEN in",
				Description: "The trader deposits `dx` TOKEN (drag the slider). The pool does not " +
					"quote a price; the invariant will decide what comes out.",
			},
			{
				ID:    "fee",
				Title: "The fee comes off the top",
				Description: "A fee of `fee` basis points is withheld from the input. Only the " +
					"remainder **dx·(1−fee)** participates in the swap; the fee stays in the pool " +
					"and accrues to liquidity providers.",
			},
			{
				ID:    "rebalance",
				Title: "Solve xy = k",
				Description: "The TOKEN reserve grows to x + dx·(1−fee), so the ETH reserve must " +
					"shrink to **y' = k / (x + dx·(1−fee))**. The difference is the trader's output.",
			},
			{
				ID:    "impact",
				Title: "Price impact",
				Description: "The bigger the trade relative to the pool, the further the execution " +
					"price drifts from the spot price. That drift — not a spread — is the cost of " +
					"trading against a curve.",
			},
		},
	}
}

// Info implements Diagram.
func (d *AMMSwap) Info() Info {
	return Info{
		Slug:    "amm-swap",
		Title:   "Constant-product AMM swap",
		Summary: "How xy = k turns reserve arithmetic into a price, fee and slippage included.",
		Mode:    domain.NavLinear,
	}
}

// Steps implements Diagram.
func (d *AMMSwap) Steps() []domain.Step { return d.steps }

// Params implements Diagram.
func (d *AMMSwap) Params() []domain.ParamSpec {
	return []domain.ParamSpec{
		{Name: "dx", Label: "TOKEN in", Min: 0, Max: 500, Default: 100, Step: 10},
		{Name: "fee", Label: "fee (bps)", Min: 0, Max: 100, Default: 30, Step: 5},
	}
}

// swapMath resolves the derived quantities for the current parameters.
func (d *AMMSwap) swapMath(s *domain.State) (dx, feeBps, dxEff, newX, newY, dy float64) {
	dx = s.Param("dx")
	feeBps = s.Param("fee")
	dxEff = dx * (1 - feeBps/10000)
	newX = ammX + dxEff
	newY = ammK / newX
	dy = ammY - newY
	return
}

// Frame implements Diagram.
func (d *AMMSwap) Frame(s *domain.State) *primitives.Frame {
	pos := s.Position
	dx, feeBps, dxEff, newX, newY, dy := d.swapMath(s)

	f := &primitives.Frame{Title: "Swap against xy = k"}
	f.AddNode(primitives.FlowNode{
		ID: "trader", Label: "Trader",
		Detail: fmt.Sprintf("sends %.0f TOKEN", dx),
		Active: pos == 1,
	})
	f.AddNode(primitives.FlowNode{
		ID: "pool", Label: "Pool",
		Detail:  fmt.Sprintf("%.0f TOKEN / %.0f ETH", ammX, ammY),
		Variant: primitives.VariantPrimary,
		Active:  pos >= 2 && pos <= 3,
	})

	f.AddBox(primitives.DataBox{Label: "k = x·y", Value: fmt.Sprintf("%.0f", ammK)})
	if pos >= 1 {
		f.AddArrow(primitives.Arrow{From: "trader", To: "pool", Label: fmt.Sprintf("%.0f TOKEN", dx)})
	}
	if pos >= 2 {
		f.AddBox(primitives.DataBox{Label: "fee withheld", Value: fmt.Sprintf("%.2f TOKEN (%.0f bps)", dx-dxEff, feeBps)})
		f.AddBox(primitives.DataBox{Label: "effective in", Value: fmt.Sprintf("%.2f TOKEN", dxEff)})
	}
	if pos >= 3 {
		f.AddBox(primitives.DataBox{Label: "new reserves", Value: fmt.Sprintf("%.2f TOKEN / %.2f ETH", newX, newY)})
		f.AddBox(primitives.DataBox{Label: "ETH out", Value: fmt.Sprintf("%.4f", dy), Variant: primitives.VariantSuccess})
		f.AddArrow(primitives.Arrow{From: "pool", To: "trader", Label: fmt.Sprintf("%.4f ETH", dy)})
	}
	if pos >= 4 {
		spot := ammY / ammX
		var exec, impact float64
		if dxEff > 0 {
			exec = dy / dx
			impact = (spot - exec) / spot * 100
		}
		f.AddBox(primitives.DataBox{Label: "spot price", Value: fmt.Sprintf("%.4f ETH/TOKEN", spot)})
		if dxEff > 0 {
			f.AddBox(primitives.DataBox{Label: "execution price", Value: fmt.Sprintf("%.4f ETH/TOKEN", exec)})
			f.AddBox(primitives.DataBox{
				Label:   "price impact",
				Value:   fmt.Sprintf("%.2f%%", impact),
				Variant: primitives.VariantWarning,
			})
		} else {
			f.AddNote(primitives.Note{Text: "With dx = 0 there is no trade — slide the input up to see the impact."})
		}
	}
	return f
}

// Chart plots the reserve curve y = k/x and marks the pool before and after
// the swap.
func (d *AMMSwap) Chart(s *domain.State) components.Charter {
	_, _, _, newX, newY, _ := d.swapMath(s)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "xy = k", Subtitle: "the pool slides along the curve"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "TOKEN reserve"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "ETH reserve"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	var curve []opts.ScatterData
	for x := 600.0; x <= 1800; x += 10 {
		curve = append(curve, opts.ScatterData{Value: []any{x, ammK / x}, SymbolSize: 3})
	}
	sc.AddSeries("y = k/x", curve)
	sc.AddSeries("pool", []opts.ScatterData{
		{Value: []any{ammX, ammY}, SymbolSize: 14, Name: "before"},
		{Value: []any{newX, newY}, SymbolSize: 14, Name: "after"},
	})
	return sc
}
