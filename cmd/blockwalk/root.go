package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blockwalk",
	Short: "Blockwalk is an interactive blockchain curriculum walkthrough",
	Long:  `Blockwalk steps through cryptography and blockchain concept diagrams (Diffie-Hellman, elliptic curves, UTXOs, AMM swaps and more) one stage at a time, with live parameters.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a blockwalk.yaml config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
