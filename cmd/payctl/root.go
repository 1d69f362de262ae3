package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paybatch/internal/registry"
)

// banksPath optionally overrides the embedded bank catalog.
var banksPath string

var rootCmd = &cobra.Command{
	Use:   "payctl",
	Short: "Validate and export bank payment batches offline",
	Long: `payctl runs the payment batch engine from the command line: it checks
structured account identifiers, validates payment batches against a bank's
rules and renders bank-ready export spreadsheets without a running server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&banksPath, "banks", "", "path to a bank catalog YAML file (defaults to the embedded catalog)")
}

func loadRegistry() (*registry.Registry, error) {
	reg, err := registry.Load(banksPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank catalog: %w", err)
	}
	return reg, nil
}
