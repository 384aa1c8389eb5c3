package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cfparse",
		Short: "Context-free grammar parsing toolkit",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newReplCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
