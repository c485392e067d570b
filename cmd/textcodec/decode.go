package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "decode [id...]",
		Short: "Decode integer ids back into text",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			ids, err := readIDs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			c, err := newCodecFromConfig(cfg, backend)
			if err != nil {
				return err
			}

			text, err := c.Decode(ids)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "codec", "", "Codec backend override (token|byte)")

	return cmd
}

// readIDs parses ids from args, or from whitespace-separated stdin input
// when no args are given.
func readIDs(args []string, stdin io.Reader) ([]int, error) {
	fields := args
	if len(fields) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		fields = strings.Fields(string(b))
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("either provide ids as arguments or pipe them on stdin")
	}

	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", f, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
