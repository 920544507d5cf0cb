package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockwalk/blockwalk/internal/presentation/graph"
	"github.com/blockwalk/blockwalk/pkg/catalog"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <diagram>",
	Short: "Export a diagram's step sequence as Mermaid",
	Long:  `Outputs a Mermaid flowchart (graph TD) of the walkthrough steps, optionally highlighting a position with --step.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, err := catalog.FromSlug(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.Overlay
		if cmd.Flags().Changed("step") {
			pos, _ := cmd.Flags().GetInt("step")
			visited := make([]int, 0, pos)
			for i := 0; i < pos; i++ {
				visited = append(visited, i)
			}
			overlay = &graph.Overlay{Visited: visited, Position: pos}
		}

		fmt.Print(graph.GenerateMermaid(d.Steps(), overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Int("step", 0, "Highlight this step index as the current position")
}
