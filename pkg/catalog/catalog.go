// Package catalog resolves diagram slugs to their implementations. The
// catalog is fixed at compile time: diagrams are code, not data.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blockwalk/blockwalk/pkg/diagrams"
	"github.com/blockwalk/blockwalk/pkg/domain"
)

// builders maps each slug to a constructor so every lookup gets a fresh,
// independent instance.
var builders = map[string]func() diagrams.Diagram{
	"account-counter": func() diagrams.Diagram { return diagrams.NewAccountCounter() },
	"diffie-hellman":  func() diagrams.Diagram { return diagrams.NewDiffieHellman() },
	"cipher-modes":    func() diagrams.Diagram { return diagrams.NewCipherModes() },
	"ec-addition":     func() diagrams.Diagram { return diagrams.NewECAddition() },
	"ec-field":        func() diagrams.Diagram { return diagrams.NewECField() },
	"utxo":            func() diagrams.Diagram { return diagrams.NewUTXO() },
	"amm-swap":        func() diagrams.Diagram { return diagrams.NewAMMSwap() },
	"hash-chain":      func() diagrams.Diagram { return diagrams.NewHashChain() },
	"zk-schnorr":      func() diagrams.Diagram { return diagrams.NewZKSchnorr() },
}

// FromSlug returns the diagram registered under the given slug.
func FromSlug(slug string) (diagrams.Diagram, error) {
	build, ok := builders[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDiagram, slug)
	}
	return build(), nil
}

// Slugs lists every registered diagram slug, sorted.
func Slugs() []string {
	out := make([]string, 0, len(builders))
	for slug := range builders {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Infos returns catalog metadata for every diagram, sorted by slug.
func Infos() []diagrams.Info {
	infos := make([]diagrams.Info, 0, len(builders))
	for _, slug := range Slugs() {
		d, _ := FromSlug(slug)
		infos = append(infos, d.Info())
	}
	return infos
}
