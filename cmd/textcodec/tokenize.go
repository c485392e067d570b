package main

import (
	"fmt"

	"github.com/example/go-textcodec/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var text string
	var keepSeparators bool

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Split text into tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			input, err := readInputText(text, cmd.InOrStdin())
			if err != nil {
				return err
			}

			alphanumOnly := cfg.Tokenizer.AlphanumOnly
			if keepSeparators {
				alphanumOnly = false
			}

			tok, err := tokenizer.New(tokenizer.Options{
				AlphanumOnly:   alphanumOnly,
				ReservedTokens: cfg.Tokenizer.ReservedTokens,
			})
			if err != nil {
				return err
			}

			for _, t := range tok.Tokenize(input) {
				// Quote so separator tokens with spaces or newlines stay
				// one per line.
				fmt.Fprintf(cmd.OutOrStdout(), "%q\n", t)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to tokenize (if empty, read from stdin)")
	cmd.Flags().BoolVar(&keepSeparators, "keep-separators", false, "Keep non-alphanumeric runs as tokens (invertible mode)")

	return cmd
}
