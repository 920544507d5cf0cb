package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blockwalk/blockwalk"
	"github.com/blockwalk/blockwalk/internal/presentation/html"
	"github.com/blockwalk/blockwalk/pkg/catalog"
)

// ExportOptions controls chart page generation.
type ExportOptions struct {
	Slug       string
	OutDir     string
	All        bool
	ConfigPath string
}

// RunExport writes standalone HTML chart pages. With All set it writes one
// page per chart-capable diagram plus a combined catalog page; otherwise it
// writes a single page for Slug.
func RunExport(opts ExportOptions) error {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	outDir := opts.OutDir
	if outDir == "" {
		outDir = cfg.OutDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	if opts.All {
		for _, slug := range html.Exportable() {
			if err := exportOne(slug, outDir, cfg); err != nil {
				return err
			}
		}
		f, err := os.Create(filepath.Join(outDir, "catalog.html"))
		if err != nil {
			return err
		}
		defer f.Close()
		return html.RenderCatalog(f)
	}

	return exportOne(opts.Slug, outDir, cfg)
}

func exportOne(slug, outDir string, cfg *Config) error {
	d, err := catalog.FromSlug(slug)
	if err != nil {
		return err
	}

	// Final step with configured params, so the page shows the full picture.
	eng := blockwalk.NewFromDiagram(d)
	state := eng.Start()
	state = eng.JumpTo(state, len(d.Steps())-1)
	for name, value := range cfg.ParamsFor(d.Info().Slug) {
		if next, err := eng.SetParam(state, name, value); err == nil {
			state = next
		}
	}

	f, err := os.Create(filepath.Join(outDir, d.Info().Slug+".html"))
	if err != nil {
		return err
	}
	defer f.Close()
	return html.RenderPage(f, d, state)
}
