package diagrams

import (
	"fmt"

	"github.com/blockwalk/blockwalk/pkg/domain"
	"github.com/blockwalk/blockwalk/pkg/primitives"
	"github.com/blockwalk/blockwalk/pkg/vizmath"
)

// Solana-style program/account split: the seed string and the account layout
// come straight from a minimal counter program. Space is 8 (discriminator) +
// 32 (authority pubkey) + 8 (u64 count) + 1 (bump) = 49 bytes.
const (
	counterSeed      = "counter"
	counterAuthority = "alice"
	counterIntruder  = "mallory"
	counterSpace     = 49
	counterU64Max    = "18446744073709551615"
)

// AccountCounter contrasts the account model with UTXOs: programs are
// stateless code, all state lives in addressed accounts, and a counter
// account is derived, initialized, and mutated under an authority check.
type AccountCounter struct {
	steps []domain.Step
}

// NewAccountCounter builds the walkthrough.
func NewAccountCounter() *AccountCounter {
	return &AccountCounter{
		steps: []domain.Step{
			{
				ID:    "split",
				Title: "Programs hold code, accounts hold state",
				Description: "Unlike a UTXO chain, this model separates logic from data: the **program** " +
					"is immutable code, and every piece of state lives in an **account** the program owns. " +
					"Our program manages one counter per user.",
			},
			{
				ID:    "derive",
				Title: "Derive the counter's address",
				Description: "The counter account has no keypair. Its address is **derived** from the " +
					"program, the seed `\"counter\"`, and the authority's key — so every user maps to " +
					"exactly one counter, and the program can find it without storing a lookup table.",
				Values: map[string]string{
					"seed":      counterSeed,
					"authority": counterAuthority,
				},
			},
			{
				ID:    "initialize",
				Title: "Initialize the account",
				Description: "The first instruction allocates the account and writes its initial state: " +
					"`count = 0`, the authority's key, and the derivation bump (stored so it never has " +
					"to be re-derived).",
				Values: map[string]string{
					"space":  fmt.Sprintf("%d bytes", counterSpace),
					"layout": "8 discriminator + 32 authority + 8 count + 1 bump",
				},
			},
			{
				ID:    "gate",
				Title: "Only the authority may write",
				Description: "Every increment instruction checks that the **signer matches the stored " +
					"authority**. Flip `signer` to 0 to sign as a stranger and watch the program reject " +
					"the write instead of mutating state.",
			},
			{
				ID:    "increment",
				Title: "Increment with a checked add",
				Description: "Each authorized call adds one. The addition is **checked**: the program " +
					"asks whether the add overflowed rather than letting the counter silently wrap.",
			},
			{
				ID:    "overflow",
				Title: "Overflow is an error, not a wrap",
				Description: "At the top of the u64 range a checked add returns nothing to store, so the " +
					"instruction fails with an **Overflow** error and the account keeps its old value. " +
					"Silent wraparound is how token balances get minted out of thin air.",
				Values: map[string]string{
					"u64 max": counterU64Max,
				},
			},
		},
	}
}

// Info implements Diagram.
func (d *AccountCounter) Info() Info {
	return Info{
		Slug:    "account-counter",
		Title:   "A program-owned counter account",
		Summary: "The account model: derived addresses, authority-gated writes, checked arithmetic.",
		Mode:    domain.NavLinear,
	}
}

// Steps implements Diagram.
func (d *AccountCounter) Steps() []domain.Step { return d.steps }

// Params implements Diagram.
func (d *AccountCounter) Params() []domain.ParamSpec {
	return []domain.ParamSpec{
		{Name: "n", Label: "increments", Min: 0, Max: 12, Default: 3, Step: 1},
		{Name: "signer", Label: "signer (1 = authority)", Min: 0, Max: 1, Default: 1, Step: 1},
	}
}

// address derives the display address of the counter account from the seed
// and the authority key.
func (d *AccountCounter) address() string {
	return vizmath.PseudoHash(counterSeed+":"+counterAuthority, "pda", 8)
}

// Frame implements Diagram.
func (d *AccountCounter) Frame(s *domain.State) *primitives.Frame {
	pos := s.Position
	authorized := s.Param("signer") >= 0.5
	signer := counterAuthority
	if !authorized {
		signer = counterIntruder
	}

	f := &primitives.Frame{Title: "Program-owned counter"}
	f.AddNode(primitives.FlowNode{
		ID: "program", Label: "Program",
		Detail:  "stateless code",
		Variant: primitives.VariantPrimary,
		Active:  pos == 0,
	})

	if pos >= 1 {
		f.AddNode(primitives.FlowNode{
			ID: "counter", Label: "Counter account",
			Detail:  "@ " + d.address(),
			Variant: primitives.VariantAccent,
			Active:  pos == 1 || pos == 2,
		})
		f.AddBox(primitives.DataBox{
			Label: "derivation",
			Value: fmt.Sprintf("address(%q, %q) = %s", counterSeed, counterAuthority, d.address()),
		})
		f.AddBox(primitives.DataBox{
			Label: "bump",
			Value: vizmath.PseudoHash(counterSeed+":"+counterAuthority, "bump", 2),
		})
	}
	if pos >= 2 {
		f.AddBox(primitives.DataBox{Label: "space", Value: fmt.Sprintf("%d bytes", counterSpace)})
		f.AddBox(primitives.DataBox{Label: "stored authority", Value: counterAuthority})
	}

	count := 0
	if pos >= 3 {
		f.AddNode(primitives.FlowNode{
			ID: "signer", Label: "Signer",
			Detail:  signer,
			Variant: signerVariant(authorized),
			Active:  pos == 3,
		})
		f.AddArrow(primitives.Arrow{From: "signer", To: "program", Label: "increment"})
		if authorized {
			f.AddBox(primitives.DataBox{Label: "authority check", Value: "signer == stored authority", Variant: primitives.VariantSuccess})
		} else {
			f.AddBox(primitives.DataBox{Label: "authority check", Value: "Unauthorized", Variant: primitives.VariantDanger})
			f.AddNote(primitives.Note{Target: "counter", Text: "The write never happens: state is untouched by unauthorized signers."})
		}
	}
	if pos >= 4 {
		if authorized {
			count = int(s.Param("n"))
			f.AddArrow(primitives.Arrow{From: "program", To: "counter", Label: fmt.Sprintf("count += 1 (×%d)", count)})
		}
		f.AddBox(primitives.DataBox{Label: "count", Value: fmt.Sprintf("%d", count)})
	}
	if pos >= 5 {
		f.AddBox(primitives.DataBox{Label: "count at u64 max", Value: counterU64Max})
		f.AddBox(primitives.DataBox{
			Label:   "checked_add(1)",
			Value:   "Overflow",
			Variant: primitives.VariantDanger,
		})
		f.AddNote(primitives.Note{Target: "counter", Text: "The failed instruction rolls back: the account still holds its previous count."})
	}
	return f
}

func signerVariant(authorized bool) primitives.Variant {
	if authorized {
		return primitives.VariantSuccess
	}
	return primitives.VariantDanger
}
