// Package cli wires the bursa command-line surface: cobra subcommands over
// the bursa/parser package, TOML config loading, and commonlog-backed
// logging. This generalizes teacher's cmd/ledger-go/ledger-go.go (a single
// flag.FlagSet main) into a subcommand CLI the way dhamidi-sai and
// msto63-mDW structure theirs with cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/weiliddat/bursa/internal/config"
)

var (
	cfg     config.Config
	verbose bool
	log     = commonlog.GetLogger("bursa")
)

// Execute runs the root command, returning the first error encountered.
func Execute() error {
	root := newRootCommand()
	return root.Execute()
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bursa",
		Short:         "Parse and inspect .bursa personal-finance ledger files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("bursa: loading config: %w", err)
			}
			cfg = loaded
			if verbose || cfg.Verbose {
				log.Debugf("bursa: verbose logging enabled")
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCheckCommand())
	root.AddCommand(newPrintCommand())
	root.AddCommand(newReplCommand())
	return root
}

func resolveFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.File != "" {
		return cfg.File, nil
	}
	return "", fmt.Errorf("bursa: no file given and no default 'file' set in ~/.bursarc")
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("bursa: reading %s: %w", path, err)
	}
	return string(b), nil
}
