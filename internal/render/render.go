// Package render formats a parsed bursa.Ledger and its diagnostics back to
// text, the role teacher's ledger.Ledger.Print/LedgerEntry.Print/
// LedgerAccount.Print play in ledger/ledger.go, adapted to Bursa's section
// grammar and tagged-union targets.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/weiliddat/bursa"
)

// accountWidth mirrors teacher's AccountWidth column-alignment constant.
const accountWidth = 32

// Diagnostic formats one diagnostic as "line:col: SEVERITY CODE: message",
// the shape a terminal-reading human or an $EDITOR quickfix list expects.
func Diagnostic(d bursa.Diagnostic) string {
	return fmt.Sprintf("%d:%d: %s %s: %s", d.Span.Start.Line, d.Span.Start.Col, strings.ToUpper(d.Severity.String()), d.Code, d.Message)
}

// Diagnostics writes one formatted line per diagnostic to w.
func Diagnostics(w io.Writer, diags []bursa.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, Diagnostic(d))
	}
}

// Amount formats an Amount as its explicit sign (if any), the value, a
// space, then the commodity. The commodity is the alias-resolved code and
// always follows the number; a currency symbol written before the number
// in the source is not reproduced in its original position.
func Amount(a bursa.Amount) string {
	sign := ""
	if a.Sign == bursa.SignNegative {
		sign = "-"
	} else if a.Sign == bursa.SignPositive {
		sign = "+"
	}
	return fmt.Sprintf("%s%s %s", sign, a.Value.String(), a.Commodity)
}

// Ledger prints the whole parsed ledger to w: META declarations, BUDGET
// entries grouped by period, and LEDGER entries grouped by account.
func Ledger(w io.Writer, l *bursa.Ledger) {
	printMeta(w, l.Meta)
	printBudget(w, l.Budget)
	printLedgerEntries(w, l.Ledger)
}

func printMeta(w io.Writer, m bursa.Meta) {
	if len(m.Commodities) == 0 && len(m.Aliases) == 0 && len(m.Untracked) == 0 {
		return
	}
	fmt.Fprintln(w, ">>> META")
	var commodities []string
	for c := range m.Commodities {
		commodities = append(commodities, c)
	}
	sort.Strings(commodities)
	for _, c := range commodities {
		fmt.Fprintf(w, "commodity: %s\n", c)
	}
	var symbols []string
	for s := range m.Aliases {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	for _, s := range symbols {
		fmt.Fprintf(w, "alias: %s = %s\n", s, m.Aliases[s])
	}
	for _, p := range m.Untracked {
		fmt.Fprintf(w, "untracked: %s\n", p)
	}
	fmt.Fprintln(w)
}

func printBudget(w io.Writer, entries []bursa.BudgetEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w, ">>> BUDGET")
	lastPeriod := ""
	for _, e := range entries {
		if e.Period != lastPeriod {
			fmt.Fprintln(w, e.Period)
			lastPeriod = e.Period
		}
		pad := accountWidth - len(e.Category.Raw)
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(w, "  %s%s%s\n", e.Category.Raw, strings.Repeat(" ", pad), Amount(e.Amount))
	}
	fmt.Fprintln(w)
}

func printLedgerEntries(w io.Writer, entries []bursa.LedgerEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w, ">>> LEDGER")
	lastAccount := ""
	for _, e := range entries {
		if e.Account.Raw != lastAccount {
			fmt.Fprintln(w, e.Account.Raw)
			lastAccount = e.Account.Raw
		}
		printEntry(w, e)
	}
}

func printEntry(w io.Writer, e bursa.LedgerEntry) {
	prefix := "  "
	if e.Unverified {
		prefix += "? "
	}
	switch e.Kind {
	case bursa.EntryAssertion:
		fmt.Fprintf(w, "%s%s == %s", prefix, e.Date, Amount(e.Amount))
	case bursa.EntryTransaction:
		fmt.Fprintf(w, "%s%s %s %s", prefix, e.Date, Amount(e.Amount), targetText(e.Target))
		for _, tag := range e.Tags {
			fmt.Fprintf(w, " %s", tag.Raw)
		}
	}
	if e.Comment != "" {
		fmt.Fprintf(w, " ; %s", e.Comment)
	}
	fmt.Fprintln(w)
}

func targetText(t *bursa.Target) string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case bursa.TargetCategory:
		return t.Category.Raw
	case bursa.TargetAccount:
		if t.AccountCategory != nil {
			return t.Account.Raw + " " + t.AccountCategory.Raw
		}
		return t.Account.Raw
	case bursa.TargetSwap:
		return Amount(*t.Swap)
	default:
		return ""
	}
}
