package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var text string
	var backend string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode text into integer ids",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			input, err := readInputText(text, cmd.InOrStdin())
			if err != nil {
				return err
			}

			c, err := newCodecFromConfig(cfg, backend)
			if err != nil {
				return err
			}

			ids, err := c.Encode(input)
			if err != nil {
				return err
			}

			out := make([]string, len(ids))
			for i, id := range ids {
				out[i] = strconv.Itoa(id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to encode (if empty, read from stdin)")
	cmd.Flags().StringVar(&backend, "codec", "", "Codec backend override (token|byte)")

	return cmd
}
