package cli

import (
	"github.com/spf13/cobra"

	"github.com/weiliddat/bursa/internal/render"
	"github.com/weiliddat/bursa/parser"
)

func newPrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print [file]",
		Short: "Parse a .bursa file and pretty-print its ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveFile(args)
			if err != nil {
				return err
			}
			source, err := readSource(path)
			if err != nil {
				return err
			}

			result := parser.Parse(source)
			render.Ledger(cmd.OutOrStdout(), result.Data)
			if len(result.Errors) > 0 {
				render.Diagnostics(cmd.ErrOrStderr(), result.Errors)
			}
			return nil
		},
	}
}
