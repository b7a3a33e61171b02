// Package parser implements the Bursa fused lexer+parser: a single-pass,
// line-dispatching scanner that turns .bursa source text directly into a
// bursa.Ledger plus a list of diagnostics, recovering from malformed lines
// so that one bad line never aborts the whole parse.
package parser

import (
	"github.com/google/uuid"
	"github.com/weiliddat/bursa"
	"github.com/weiliddat/bursa/parser/diag"
)

// section is the current META/BUDGET/LEDGER context threaded through the
// dispatcher, mirroring teacher's parseHeaderComments/parseCommodities/...
// state progression generalized to Bursa's three named sections.
type section int

const (
	sectionNone section = iota
	sectionMeta
	sectionBudget
	sectionLedger
)

// state is the mutable context threaded through one Parse call: the
// current section, the most recent @Account header (LEDGER), and the most
// recent YYYY-MM header (BUDGET). It is never shared across calls.
type state struct {
	section        section
	currentAccount *bursa.AccountRef
	currentPeriod  string
}

// Result is the public shape spec §6 describes: the parsed Ledger plus
// separated error/warning diagnostic lists. RunID lets an embedding caller
// (e.g. an editor extension re-parsing on every keystroke) correlate one
// parse call across its own logs; the parser itself performs no I/O and
// RunID has no bearing on parsing.
type Result struct {
	Data     *bursa.Ledger
	Errors   []bursa.Diagnostic
	Warnings []bursa.Diagnostic
	RunID    uuid.UUID
}

func (r *Result) emit(d bursa.Diagnostic) {
	if d.Severity == bursa.SeverityWarning {
		r.Warnings = append(r.Warnings, d)
	} else {
		r.Errors = append(r.Errors, d)
	}
}

// Parse is the public entry point: a pure function of source. It reads the
// whole string, builds local parser state, and returns a complete Result.
// There are no I/O calls and no shared state between calls.
func Parse(source string) Result {
	c := newCursor(source)
	st := &state{}
	result := Result{
		Data:  bursa.NewLedger(),
		RunID: uuid.New(),
	}

	for {
		c.SkipBlankLines()
		if c.AtEnd() {
			break
		}
		c.SkipHorizontalWhitespace()

		switch ch := c.Peek(); {
		case ch == ';':
			c.SkipLine()
		case ch == '>':
			parseSectionMarker(c, st, &result)
		case st.section == sectionMeta:
			parseMetaLine(c, &result.Data.Meta, &result)
		case st.section == sectionBudget:
			parseBudgetLine(c, st, result.Data, &result)
		case st.section == sectionLedger:
			parseLedgerLine(c, st, result.Data, &result)
		default:
			start := c.MarkStart()
			c.SkipToEOL()
			result.emit(diag.ContentBeforeSection(c.SpanFrom(start)))
			c.SkipLine()
		}
	}

	return result
}

// parseSectionMarker recognizes ">>> NAME" and updates st.section. Any
// mismatch or unknown name emits a diagnostic and leaves the prior section
// (if any) active; the rest of the line is always consumed.
func parseSectionMarker(c *Cursor, st *state, result *Result) {
	start := c.MarkStart()
	for _, want := range []rune{'>', '>', '>'} {
		if c.Peek() != want {
			c.SkipToEOL()
			result.emit(diag.ExpectedSectionMarker(c.SpanFrom(start)))
			c.SkipLine()
			return
		}
		c.Advance()
	}
	c.SkipHorizontalWhitespace()
	name, ok := parseIdentifier(c)
	if !ok {
		c.SkipToEOL()
		result.emit(diag.UnknownSection("", c.SpanFrom(start)))
		c.SkipLine()
		return
	}
	switch name {
	case "META":
		st.section = sectionMeta
	case "BUDGET":
		st.section = sectionBudget
	case "LEDGER":
		st.section = sectionLedger
	default:
		result.emit(diag.UnknownSection(name, c.SpanFrom(start)))
		c.SkipLine()
		return
	}
	st.currentAccount = nil
	st.currentPeriod = ""
	c.SkipLine()
}
