package diagrams

import (
	"fmt"

	"github.com/blockwalk/blockwalk/pkg/domain"
	"github.com/blockwalk/blockwalk/pkg/primitives"
	"github.com/blockwalk/blockwalk/pkg/vizmath"
)

var chainData = []string{
	"genesis",
	"alice -> bob: 1.0",
	"bob -> carol: 0.4",
	"carol -> dave: 0.1",
	"dave -> alice: 0.3",
}

const chainKey = "chain"

// HashChain links blocks by hashing (previous hash ‖ data) and then breaks
// one link to show the tamper evidence cascade downstream.
type HashChain struct {
	steps []domain.Step
}

// NewHashChain builds the walkthrough.
func NewHashChain() *HashChain {
	return &HashChain{
		steps: []domain.Step{
			{
				ID:    "blocks",
				Title: "Five blocks of data",
				Description: "Each block carries a payload — here, one toy transaction. On their own " +
					"the blocks are just records; nothing yet stops anyone from rewriting one.",
			},
			{
				ID:    "linking",
				Title: "Link by hash",
				Description: "Every block stores the **hash of its predecessor**, and its own hash " +
					"covers that stored value. Block n is welded to block n−1: h(n) = H(h(n−1) ‖ data).",
			},
			{
				ID:    "valid",
				Title: "A valid chain",
				Description: "Walk the chain and recompute each hash: every stored predecessor hash " +
					"matches. This check needs no trust, only arithmetic.",
			},
			{
				ID:    "tamper",
				Title: "Tamper with one block",
				Description: "Change a single character in the block chosen by the slider. Its hash " +
					"changes — but the next block still stores the **old** hash.",
			},
			{
				ID:    "cascade",
				Title: "The break cascades",
				Description: "From the tampered block onward every link check fails. Hiding the edit " +
					"means recomputing every later hash, which is exactly what proof-of-work makes " +
					"expensive.",
			},
		},
	}
}

// Info implements Diagram.
func (d *HashChain) Info() Info {
	return Info{
		Slug:    "hash-chain",
		Title:   "Tamper-evident hash chain",
		Summary: "Why editing one block invalidates every block after it.",
		Mode:    domain.NavLinear,
	}
}

// Steps implements Diagram.
func (d *HashChain) Steps() []domain.Step { return d.steps }

// Params implements Diagram.
func (d *HashChain) Params() []domain.ParamSpec {
	return []domain.ParamSpec{
		{Name: "tamper", Label: "block to tamper", Min: 1, Max: 4, Default: 2, Step: 1},
	}
}

// chainRow is one block's derived display state.
type chainRow struct {
	data       string
	storedPrev string // hash of predecessor recorded at link time (pre-tamper)
	hash       string // recomputed over current data
	valid      bool
}

// buildChain recomputes the chain, optionally with block t's data altered.
func buildChain(tampered bool, t int) []chainRow {
	// Link-time hashes over the original data.
	original := make([]string, len(chainData))
	prev := ""
	for i, data := range chainData {
		original[i] = vizmath.PseudoHash(prev+data, chainKey, 8)
		prev = original[i]
	}

	// Recompute the chain over the current (possibly edited) data. Chaining
	// makes the damage cascade: every hash from the edit onward diverges from
	// its link-time value.
	rows := make([]chainRow, len(chainData))
	cur := ""
	for i, data := range chainData {
		if tampered && i == t {
			data += " (edited)"
		}
		row := chainRow{data: data}
		if i > 0 {
			row.storedPrev = original[i-1]
		}
		cur = vizmath.PseudoHash(cur+data, chainKey, 8)
		row.hash = cur
		row.valid = row.hash == original[i]
		rows[i] = row
	}
	return rows
}

// Frame implements Diagram.
func (d *HashChain) Frame(s *domain.State) *primitives.Frame {
	pos := s.Position
	t := int(s.Param("tamper"))
	if t < 1 {
		t = 1
	}
	if t >= len(chainData) {
		t = len(chainData) - 1
	}
	tampered := pos >= 3
	rows := buildChain(tampered, t)

	f := &primitives.Frame{Title: "A chain of hashes"}
	grid := primitives.Grid{Title: "Blocks", Headers: []string{"#", "data", "prev hash", "hash", "link"}}
	for i, row := range rows {
		status := primitives.Cell{Text: ""}
		if pos >= 2 {
			if row.valid {
				status = primitives.Cell{Text: "ok", Variant: primitives.VariantSuccess}
			} else {
				status = primitives.Cell{Text: "BROKEN", Variant: primitives.VariantDanger}
			}
		}
		prevCell := primitives.Cell{Text: "—"}
		if i > 0 && pos >= 1 {
			prevCell = primitives.Cell{Text: row.storedPrev}
		}
		hashCell := primitives.Cell{Text: ""}
		if pos >= 1 {
			hashCell = primitives.Cell{Text: row.hash}
			if tampered && i >= t {
				hashCell.Variant = primitives.VariantDanger
			}
		}
		dataCell := primitives.Cell{Text: row.data}
		if tampered && i == t {
			dataCell.Variant = primitives.VariantWarning
		}
		grid.Rows = append(grid.Rows, []primitives.Cell{
			{Text: fmt.Sprintf("%d", i)},
			dataCell,
			prevCell,
			hashCell,
			status,
		})
	}
	f.AddGrid(grid)

	if pos >= 3 {
		f.AddNote(primitives.Note{
			Target: fmt.Sprintf("block-%d", t),
			Text:   fmt.Sprintf("Block %d was edited after linking: its recomputed hash no longer matches what block %d stored.", t, t+1),
		})
	}
	if pos >= 4 {
		broken := len(chainData) - t
		f.AddBox(primitives.DataBox{
			Label:   "links broken",
			Value:   fmt.Sprintf("%d of %d", broken, len(chainData)-1),
			Variant: primitives.VariantDanger,
		})
	}
	return f
}
