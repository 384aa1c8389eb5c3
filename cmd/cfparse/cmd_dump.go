package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dump <grammar-file>",
		Short:         "Parse a grammar file and print its canonical form, FIRST and FOLLOW sets",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := loadLanguage(args[0], "")
			if err != nil {
				return err
			}
			g := lang.Grammar

			fmt.Println(g.Dump())
			fmt.Println()
			for _, nt := range g.Nonterminals() {
				fmt.Printf("FIRST(%s)  = %v\n", nt, g.First(nt))
				fmt.Printf("FOLLOW(%s) = %v\n", nt, g.Follow(nt))
			}
			if nullable := g.NullableSet(); len(nullable) > 0 {
				fmt.Printf("nullable   = %v\n", nullable)
			}
			return nil
		},
	}

	return cmd
}
