package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/gbnf/builder"
	"github.com/dhamidi/gbnf/grammar"
	"github.com/spf13/cobra"
)

func newStringCmd() *cobra.Command {
	var minLen, maxLen int

	cmd := &cobra.Command{
		Use:   "string",
		Short: "Build a grammar matching a JSON string",
		Long: `Build a GBNF grammar that matches JSON strings.

The length bounds count characters between the quotes; --max-length -1
leaves the length unbounded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := grammar.Quantifier{Min: minLen, Max: grammar.Unbounded}
			if maxLen >= 0 {
				n.Max = maxLen
			}

			opts := builder.DefaultJSONOptions()
			opts.Compact = true
			b, err := builder.NewJSONBuilder(opts)
			if err != nil {
				return fmt.Errorf("configure builder: %w", err)
			}
			out, err := b.Render(builder.NewJSONStringN(n))
			if err != nil {
				return fmt.Errorf("build grammar: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&minLen, "min-length", 0, "minimum length (inclusive)")
	cmd.Flags().IntVar(&maxLen, "max-length", -1, "maximum length (inclusive), -1 for unlimited")

	return cmd
}
