package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/blockwalk/blockwalk/pkg/catalog"
	"github.com/blockwalk/blockwalk/pkg/domain"
)

// RunList prints the diagram catalog as an aligned table.
func RunList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tMODE\tSTEPS\tSUMMARY")
	for _, info := range catalog.Infos() {
		d, err := catalog.FromSlug(info.Slug)
		if err != nil {
			return err
		}
		mode := "linear"
		if info.Mode == domain.NavHistory {
			mode = "history"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", info.Slug, mode, len(d.Steps()), info.Summary)
	}
	return tw.Flush()
}
