package diagrams

import (
	"fmt"

	"github.com/blockwalk/blockwalk/pkg/domain"
	"github.com/blockwalk/blockwalk/pkg/primitives"
	"github.com/blockwalk/blockwalk/pkg/vizmath"
)

// Fixed demo plaintext: blocks 0, 1 and 3 are identical on purpose, the ECB
// failure mode is invisible otherwise.
var cipherBlocks = []string{"deadbeef", "deadbeef", "c0ffee11", "deadbeef"}

const (
	cipherKey = "k3"
	cipherIV  = "1a2b3c4d"
)

// CipherModes walks the same plaintext through ECB and CBC block by block.
// The "block cipher" is the toy PseudoHash; what matters on screen is that
// ECB maps equal blocks to equal ciphertext and CBC does not.
type CipherModes struct {
	steps []domain.Step
}

// NewCipherModes builds the walkthrough.
func NewCipherModes() *CipherModes {
	steps := []domain.Step{
		{
			ID:    "plaintext",
			Title: "The plaintext",
			Description: "Four 32-bit blocks, three of them identical. Any structure in the " +
				"plaintext is the adversary's foothold — watch what each mode does with it.",
		},
	}
	for i := range cipherBlocks {
		steps = append(steps, domain.Step{
			ID:    fmt.Sprintf("block-%d", i),
			Title: fmt.Sprintf("Encrypt block %d", i+1),
			Description: fmt.Sprintf("**ECB** encrypts block %d in isolation. **CBC** first XORs it "+
				"with the previous ciphertext (the IV for block 1), so identical plaintext "+
				"blocks stop looking identical.", i+1),
		})
	}
	steps = append(steps, domain.Step{
		ID:    "compare",
		Title: "Compare the ciphertexts",
		Description: "ECB leaked the repetition: blocks 1, 2 and 4 encrypt identically. " +
			"CBC's chaining spread the IV through every block. Same cipher, different mode, " +
			"very different leak.",
	})
	return &CipherModes{steps: steps}
}

// Info implements Diagram.
func (d *CipherModes) Info() Info {
	return Info{
		Slug:    "cipher-modes",
		Title:   "Block cipher modes: ECB vs CBC",
		Summary: "Why encrypting blocks independently leaks structure, and how chaining fixes it.",
		Mode:    domain.NavHistory,
	}
}

// Steps implements Diagram.
func (d *CipherModes) Steps() []domain.Step { return d.steps }

// Params implements Diagram.
func (d *CipherModes) Params() []domain.ParamSpec { return nil }

// encryptUpTo returns ECB and CBC ciphertexts for the first n blocks.
func encryptUpTo(n int) (ecb, cbc []string) {
	prev := cipherIV
	for i := 0; i < n && i < len(cipherBlocks); i++ {
		block := cipherBlocks[i]
		ecb = append(ecb, vizmath.PseudoHash(block, cipherKey, 8))
		mixed, err := vizmath.XORHex(block, prev)
		if err != nil {
			// Block table and IV are fixed hex literals; this cannot happen.
			mixed = block
		}
		ct := vizmath.PseudoHash(mixed, cipherKey, 8)
		cbc = append(cbc, ct)
		prev = ct
	}
	return ecb, cbc
}

// Frame implements Diagram.
func (d *CipherModes) Frame(s *domain.State) *primitives.Frame {
	pos := s.Position
	revealed := pos // step k reveals the first k blocks
	if revealed > len(cipherBlocks) {
		revealed = len(cipherBlocks)
	}
	ecb, cbc := encryptUpTo(revealed)

	f := &primitives.Frame{Title: "ECB vs CBC"}
	f.AddBox(primitives.DataBox{Label: "key", Value: cipherKey})
	if pos >= 1 {
		f.AddBox(primitives.DataBox{Label: "IV (CBC)", Value: cipherIV})
	}

	// Count ECB duplicates among revealed blocks to flag them.
	ecbSeen := make(map[string]int)
	for _, ct := range ecb {
		ecbSeen[ct]++
	}

	grid := primitives.Grid{
		Title:   "Block by block",
		Headers: []string{"plaintext", "ECB", "CBC"},
	}
	for i, block := range cipherBlocks {
		row := []primitives.Cell{{Text: block}}
		if i < revealed {
			ecbVariant := primitives.VariantNeutral
			if ecbSeen[ecb[i]] > 1 {
				ecbVariant = primitives.VariantWarning
			}
			row = append(row,
				primitives.Cell{Text: ecb[i], Variant: ecbVariant},
				primitives.Cell{Text: cbc[i], Variant: primitives.VariantSuccess},
			)
		} else {
			row = append(row, primitives.Cell{Text: "·"}, primitives.Cell{Text: "·"})
		}
		grid.Rows = append(grid.Rows, row)
	}
	f.AddGrid(grid)

	if pos >= 1 && revealed >= 1 && revealed <= len(cipherBlocks) {
		i := revealed - 1
		f.AddNote(primitives.Note{
			Target: fmt.Sprintf("block-%d", i),
			Text:   fmt.Sprintf("CBC mixes block %d with the previous ciphertext before encrypting.", i+1),
		})
	}
	if pos >= len(cipherBlocks)+1 {
		f.AddNote(primitives.Note{Text: "Highlighted ECB cells are identical — the repetition survived encryption."})
	}
	return f
}
