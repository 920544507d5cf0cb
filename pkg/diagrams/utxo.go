package diagrams

import (
	"fmt"

	"github.com/blockwalk/blockwalk/pkg/domain"
	"github.com/blockwalk/blockwalk/pkg/primitives"
)

// Fixed demo amounts, chosen so the arithmetic is obvious: 0.8 + 0.5 in,
// 1.0 to Bob, 0.25 change, 0.05 fee.
const (
	utxoIn1   = 0.8
	utxoIn2   = 0.5
	utxoPay   = 1.0
	utxoFee   = 0.05
	utxoSpare = utxoIn1 + utxoIn2 - utxoPay - utxoFee
)

// UTXO walks one Bitcoin-style transaction: coins are not balances but
// unspent outputs that get consumed whole and reminted.
type UTXO struct {
	steps []domain.Step
}

// NewUTXO builds the walkthrough.
func NewUTXO() *UTXO {
	return &UTXO{
		steps: []domain.Step{
			{
				ID:    "wallet",
				Title: "Alice's wallet",
				Description: "A wallet is not an account balance. Alice owns two **unspent transaction " +
					"outputs** (UTXOs): one worth 0.8 and one worth 0.5. She wants to pay Bob 1.0.",
			},
			{
				ID:    "select",
				Title: "Select inputs",
				Description: "Neither UTXO covers 1.0 alone, so the transaction consumes **both**. " +
					"UTXOs are spent whole — like handing over two banknotes.",
			},
			{
				ID:    "unlock",
				Title: "Unlock the inputs",
				Description: "Each input carries a signature proving Alice may spend it. The signature " +
					"commits to this exact transaction, so nobody can redirect the outputs in flight.",
			},
			{
				ID:          "outputs",
				Title:       "Create the outputs",
				Description: "The transaction mints fresh outputs: **1.0 locked to Bob's key**.",
			},
			{
				ID:    "change",
				Title: "Return the change",
				Description: "Inputs total 1.3, so a second output sends **0.25 back to Alice** — " +
					"a brand new UTXO, indistinguishable from any other.",
			},
			{
				ID:    "fee",
				Title: "The miner keeps the rest",
				Description: "Inputs minus outputs leaves **0.05 unclaimed**. That gap is the fee: " +
					"whoever mines the block collects it.",
			},
		},
	}
}

// Info implements Diagram.
func (d *UTXO) Info() Info {
	return Info{
		Slug:    "utxo",
		Title:   "Anatomy of a UTXO transaction",
		Summary: "Inputs consumed whole, outputs minted fresh, change and fee falling out of the difference.",
		Mode:    domain.NavHistory,
	}
}

// Steps implements Diagram.
func (d *UTXO) Steps() []domain.Step { return d.steps }

// Params implements Diagram.
func (d *UTXO) Params() []domain.ParamSpec { return nil }

// Frame implements Diagram.
func (d *UTXO) Frame(s *domain.State) *primitives.Frame {
	pos := s.Position

	f := &primitives.Frame{Title: "One transaction, start to finish"}
	f.AddNode(primitives.FlowNode{
		ID: "utxo1", Label: "UTXO #1",
		Detail:  fmt.Sprintf("%.2f BTC", utxoIn1),
		Variant: primitives.VariantPrimary,
		Active:  pos == 1,
	})
	f.AddNode(primitives.FlowNode{
		ID: "utxo2", Label: "UTXO #2",
		Detail:  fmt.Sprintf("%.2f BTC", utxoIn2),
		Variant: primitives.VariantPrimary,
		Active:  pos == 1,
	})
	f.AddNode(primitives.FlowNode{
		ID: "tx", Label: "Transaction",
		Detail: "inputs → outputs",
		Active: pos >= 2 && pos <= 3,
	})

	if pos >= 1 {
		f.AddArrow(primitives.Arrow{From: "utxo1", To: "tx", Label: fmt.Sprintf("%.2f", utxoIn1)})
		f.AddArrow(primitives.Arrow{From: "utxo2", To: "tx", Label: fmt.Sprintf("%.2f", utxoIn2)})
		f.AddBox(primitives.DataBox{Label: "inputs", Value: fmt.Sprintf("%.2f", utxoIn1+utxoIn2)})
	}
	if pos >= 2 {
		f.AddNote(primitives.Note{Target: "tx", Text: "Both inputs carry signatures binding them to this transaction."})
	}
	if pos >= 3 {
		f.AddNode(primitives.FlowNode{
			ID: "bob", Label: "Bob",
			Detail:  fmt.Sprintf("%.2f BTC", utxoPay),
			Variant: primitives.VariantSuccess,
			Active:  pos == 3,
		})
		f.AddArrow(primitives.Arrow{From: "tx", To: "bob", Label: fmt.Sprintf("%.2f", utxoPay)})
	}
	if pos >= 4 {
		f.AddNode(primitives.FlowNode{
			ID: "change", Label: "Alice (change)",
			Detail:  fmt.Sprintf("%.2f BTC", utxoSpare),
			Variant: primitives.VariantAccent,
			Active:  pos == 4,
		})
		f.AddArrow(primitives.Arrow{From: "tx", To: "change", Label: fmt.Sprintf("%.2f", utxoSpare)})
	}
	if pos >= 5 {
		f.AddNode(primitives.FlowNode{
			ID: "miner", Label: "Miner",
			Detail:  fmt.Sprintf("%.2f BTC fee", utxoFee),
			Variant: primitives.VariantWarning,
			Active:  true,
		})
		f.AddArrow(primitives.Arrow{From: "tx", To: "miner", Label: fmt.Sprintf("%.2f", utxoFee)})
		f.AddBox(primitives.DataBox{
			Label:   "inputs − outputs",
			Value:   fmt.Sprintf("%.2f + %.2f − %.2f − %.2f = %.2f", utxoIn1, utxoIn2, utxoPay, utxoSpare, utxoFee),
			Variant: primitives.VariantWarning,
		})
	}
	return f
}
