package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dhamidi/gbnf/builder"
	"github.com/spf13/cobra"
)

func newIntegerCmd() *cobra.Command {
	var minFlag, maxFlag string

	cmd := &cobra.Command{
		Use:   "integer",
		Short: "Build a grammar matching a bounded JSON integer",
		Long: `Build a GBNF grammar that matches JSON integers in a range.

Bounds are inclusive; an omitted bound leaves that side open.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			component, err := integerComponent(minFlag, maxFlag)
			if err != nil {
				return err
			}

			opts := builder.DefaultJSONOptions()
			opts.Compact = true
			b, err := builder.NewJSONBuilder(opts)
			if err != nil {
				return fmt.Errorf("configure builder: %w", err)
			}
			out, err := b.Render(component)
			if err != nil {
				return fmt.Errorf("build grammar: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&minFlag, "min", "", "minimum value (inclusive)")
	cmd.Flags().StringVar(&maxFlag, "max", "", "maximum value (inclusive)")

	return cmd
}

func integerComponent(minFlag, maxFlag string) (*builder.JSONInteger, error) {
	switch {
	case minFlag == "" && maxFlag == "":
		return builder.NewJSONIntegerAny(), nil
	case maxFlag == "":
		min, err := strconv.ParseInt(minFlag, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse --min: %w", err)
		}
		return builder.NewJSONIntegerMin(min), nil
	case minFlag == "":
		max, err := strconv.ParseInt(maxFlag, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse --max: %w", err)
		}
		return builder.NewJSONIntegerMax(max), nil
	default:
		min, err := strconv.ParseInt(minFlag, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse --min: %w", err)
		}
		max, err := strconv.ParseInt(maxFlag, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse --max: %w", err)
		}
		return builder.NewJSONInteger(min, max)
	}
}
