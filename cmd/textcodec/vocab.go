package main

import (
	"fmt"

	"github.com/example/go-textcodec/internal/vocab"
	"github.com/spf13/cobra"
)

func newVocabCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Inspect the configured vocabulary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			v, err := vocab.Load(cfg.Paths.VocabPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tokens: %d\n", v.Len())
			fmt.Fprintf(out, "oov buckets: %d\n", cfg.Codec.OOVBuckets)
			fmt.Fprintf(out, "vocab size: %d\n", v.Len()+cfg.Codec.OOVBuckets)

			if list {
				for i, tok := range v.Tokens() {
					fmt.Fprintf(out, "%d\t%s\n", i, tok)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "Print every token in index order")

	return cmd
}
