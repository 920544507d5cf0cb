package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockwalk/blockwalk/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <diagram>",
	Short: "Walk a diagram interactively",
	Long:  `Starts an interactive session for one diagram. Use 'blockwalk list' to see the catalog.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		logLevel, _ := cmd.Flags().GetString("log-level")
		headless, _ := cmd.Flags().GetBool("headless")
		plain, _ := cmd.Flags().GetBool("plain")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.RunSession(cli.RunOptions{
			Slug:       args[0],
			ConfigPath: configPath,
			LogLevel:   logLevel,
			Headless:   headless,
			Plain:      plain,
			Debug:      debug,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run in headless mode (no prompts, strict IO)")
	runCmd.Flags().Bool("plain", false, "Disable markdown styling and colors")
	runCmd.Flags().Bool("debug", false, "Enable debug logging")
}
