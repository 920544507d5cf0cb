package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockwalk/blockwalk/internal/cli"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the diagram catalog",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunList(os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
