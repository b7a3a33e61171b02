package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/weiliddat/bursa"
	"github.com/weiliddat/bursa/internal/render"
	"github.com/weiliddat/bursa/parser"
)

// newReplCommand builds an interactive sandbox for the primitive lexemes
// of spec §4.2: type "amount 5 $", "date 2026-01-01", "account @A:B",
// "category &A:B", "tag #A:B", or "alias $ = USD" to register an alias for
// subsequent amount lookups. Grounded on dekarrin-tunaq's
// internal/input.InteractiveCommandReader, which wraps the same
// chzyer/readline instance for its own interactive shell.
func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse individual Bursa lexemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.OutOrStdout())
		},
	}
}

func runRepl(out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "bursa> ",
	})
	if err != nil {
		return fmt.Errorf("bursa: starting repl: %w", err)
	}
	defer rl.Close()

	meta := bursa.NewMeta()
	fmt.Fprintln(out, "bursa repl: amount|date|period|account|category|tag|alias ... (Ctrl-D to exit)")

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		evalReplLine(out, &meta, line)
	}
}

func evalReplLine(out io.Writer, meta *bursa.Meta, line string) {
	parts := strings.SplitN(line, " ", 2)
	cmd := parts[0]
	rest := ""
	if len(parts) > 1 {
		rest = strings.TrimSpace(parts[1])
	}

	switch cmd {
	case "amount":
		a, d := parser.ParseAmountString(rest, meta)
		if d != nil {
			fmt.Fprintln(out, render.Diagnostic(*d))
			return
		}
		fmt.Fprintf(out, "%s (sign=%s value=%s commodity=%s)\n", render.Amount(a), a.Sign, a.Value, a.Commodity)
	case "date":
		date, d := parser.ParseDateString(rest)
		if d != nil {
			fmt.Fprintln(out, render.Diagnostic(*d))
			return
		}
		fmt.Fprintln(out, date)
	case "period":
		period, d := parser.ParsePeriodString(rest)
		if d != nil {
			fmt.Fprintln(out, render.Diagnostic(*d))
			return
		}
		fmt.Fprintln(out, period)
	case "account":
		ref, d := parser.ParseAccountRefString(rest)
		if d != nil {
			fmt.Fprintln(out, render.Diagnostic(*d))
			return
		}
		fmt.Fprintf(out, "%s %v\n", ref.Raw, ref.Path)
	case "category":
		ref, d := parser.ParseCategoryRefString(rest)
		if d != nil {
			fmt.Fprintln(out, render.Diagnostic(*d))
			return
		}
		fmt.Fprintf(out, "%s %v\n", ref.Raw, ref.Path)
	case "tag":
		ref, d := parser.ParseTagRefString(rest)
		if d != nil {
			fmt.Fprintln(out, render.Diagnostic(*d))
			return
		}
		fmt.Fprintf(out, "%s %v\n", ref.Raw, ref.Path)
	case "alias":
		symbol, commodity, ok := strings.Cut(rest, "=")
		symbol = strings.TrimSpace(symbol)
		commodity = strings.TrimSpace(commodity)
		if !ok || symbol == "" || commodity == "" {
			fmt.Fprintln(out, "usage: alias SYMBOL = COMMODITY")
			return
		}
		meta.DeclareAlias(symbol, commodity)
		fmt.Fprintf(out, "aliased %s -> %s\n", symbol, commodity)
	default:
		fmt.Fprintf(out, "unknown command %q\n", cmd)
	}
}
