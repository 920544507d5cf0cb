package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockwalk/blockwalk"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of blockwalk",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blockwalk version %s\n", strings.TrimSpace(blockwalk.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
