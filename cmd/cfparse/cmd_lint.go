package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earley-go/cfparse/grammar"
)

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lint <grammar-file>",
		Short:         "Validate a grammar file without parsing any input",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := readLines(args[0])
			if err != nil {
				return fmt.Errorf("read grammar file: %w", err)
			}
			if _, err := grammar.Parse(rules); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}

	return cmd
}
