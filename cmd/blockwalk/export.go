package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockwalk/blockwalk/internal/cli"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [diagram]",
	Short: "Export chart pages as standalone HTML",
	Long:  `Writes an interactive chart page for a diagram (or every chart-capable diagram with --all) that can be opened directly in a browser.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		outDir, _ := cmd.Flags().GetString("out")
		all, _ := cmd.Flags().GetBool("all")

		if !all && len(args) == 0 {
			fmt.Println("Error: provide a diagram slug or use --all")
			os.Exit(1)
		}
		slug := ""
		if len(args) > 0 {
			slug = args[0]
		}

		err := cli.RunExport(cli.ExportOptions{
			Slug:       slug,
			OutDir:     outDir,
			All:        all,
			ConfigPath: configPath,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "", "Output directory (default from config, else current dir)")
	exportCmd.Flags().Bool("all", false, "Export every chart-capable diagram plus a catalog page")
}
