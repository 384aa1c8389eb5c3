package main

import (
	"fmt"
	"os"

	"github.com/earley-go/cfparse/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var grammarFile, patternsFile, outputFormat string

	cmd := &cobra.Command{
		Use:           "parse <input-file>",
		Short:         "Parse an input file against a grammar and print the resulting tree",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := loadLanguage(grammarFile, patternsFile)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input file: %w", err)
			}

			tree, err := lang.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s (expected json or text)", outputFormat)
			}

			if err := encoder.Encode(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&grammarFile, "grammar", "", "grammar rules file (required)")
	cmd.Flags().StringVar(&patternsFile, "patterns", "", "lexer patterns file (\"name = regex\" per line)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (json, text)")
	cmd.MarkFlagRequired("grammar")

	return cmd
}
