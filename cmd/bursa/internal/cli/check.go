package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weiliddat/bursa/internal/render"
	"github.com/weiliddat/bursa/parser"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Parse a .bursa file and print its diagnostics",
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
			log.Debugf("bursa: parsed %s: run %s, %d error(s), %d warning(s)",
				path, result.RunID, len(result.Errors), len(result.Warnings))

			render.Diagnostics(cmd.OutOrStdout(), result.Warnings)
			render.Diagnostics(cmd.OutOrStdout(), result.Errors)

			if len(result.Errors) > 0 {
				return fmt.Errorf("bursa: %d error(s) in %s", len(result.Errors), path)
			}
			return nil
		},
	}
}
