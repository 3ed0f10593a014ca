package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/gbnf/builder"
	"github.com/spf13/cobra"
)

func newJSONCmd() *cobra.Command {
	opts := builder.DefaultJSONOptions()

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Build a grammar matching a JSON document",
		Long: `Build a GBNF grammar that matches the given JSON document.

If a file is provided, it is read as JSON.
If no file is provided, reads JSON from stdin.

The grammar matches the same document under the whitespace layouts
allowed by the flags. With --compact only the most condensed encoding
matches and no whitespace rules are emitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open file: %w", err)
				}
				defer f.Close()
				in = f
			}

			dec := json.NewDecoder(in)
			dec.UseNumber()
			var value any
			if err := dec.Decode(&value); err != nil {
				return fmt.Errorf("decode json: %w", err)
			}

			b, err := builder.NewJSONBuilder(opts)
			if err != nil {
				return fmt.Errorf("configure builder: %w", err)
			}
			out, err := b.Render(value)
			if err != nil {
				return fmt.Errorf("build grammar: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "match only the most condensed encoding")
	cmd.Flags().IntVar(&opts.Indent, "indent", opts.Indent, "spaces per indentation level")
	cmd.Flags().IntVar(&opts.MaxLevel, "max-level", opts.MaxLevel, "maximum indentation depth, -1 for unlimited")
	cmd.Flags().BoolVar(&opts.AllowMultiline, "multiline", opts.AllowMultiline, "allow newline-separated layouts")

	return cmd
}
