package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "gbnf",
		Short: "Build GBNF grammars for constrained JSON generation",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newJSONCmd())
	rootCmd.AddCommand(newIntegerCmd())
	rootCmd.AddCommand(newStringCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
