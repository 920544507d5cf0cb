// Package html exports chart-capable diagrams as self-contained HTML pages
// built with go-echarts.
package html

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/blockwalk/blockwalk/pkg/catalog"
	"github.com/blockwalk/blockwalk/pkg/diagrams"
	"github.com/blockwalk/blockwalk/pkg/domain"
)

// RenderPage writes one diagram's chart for the given state. Diagrams
// without a chart view return an error so callers can report the slug list
// that actually supports export.
func RenderPage(w io.Writer, d diagrams.Diagram, s *domain.State) error {
	charter, ok := d.(diagrams.Charter)
	if !ok {
		return fmt.Errorf("diagram %q has no chart view", d.Info().Slug)
	}
	page := components.NewPage().SetPageTitle(d.Info().Title)
	page.AddCharts(charter.Chart(s))
	return page.Render(w)
}

// RenderCatalog writes a single page with every chart-capable diagram at its
// default state.
func RenderCatalog(w io.Writer) error {
	page := components.NewPage().SetPageTitle("blockwalk diagrams")

	for _, slug := range catalog.Slugs() {
		d, err := catalog.FromSlug(slug)
		if err != nil {
			return err
		}
		charter, ok := d.(diagrams.Charter)
		if !ok {
			continue
		}
		state := domain.NewState(d.Info().Mode, d.Params())
		state.Position = len(d.Steps()) - 1 // fully revealed
		page.AddCharts(charter.Chart(state))
	}
	return page.Render(w)
}

// Exportable lists the slugs that support chart export.
func Exportable() []string {
	var out []string
	for _, slug := range catalog.Slugs() {
		d, err := catalog.FromSlug(slug)
		if err != nil {
			continue
		}
		if _, ok := d.(diagrams.Charter); ok {
			out = append(out, slug)
		}
	}
	return out
}
