package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/earley-go/cfparse/format"
)

func newReplCmd() *cobra.Command {
	var grammarFile, patternsFile string

	cmd := &cobra.Command{
		Use:           "repl",
		Short:         "Read lines from stdin and parse each one against a grammar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := loadLanguage(grammarFile, patternsFile)
			if err != nil {
				return err
			}

			encoder := format.NewTextEncoder(os.Stdout)
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				tree, err := lang.Parse(line)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					continue
				}
				encoder.Encode(tree)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&grammarFile, "grammar", "", "grammar rules file (required)")
	cmd.Flags().StringVar(&patternsFile, "patterns", "", "lexer patterns file (\"name = regex\" per line)")
	cmd.MarkFlagRequired("grammar")

	return cmd
}
