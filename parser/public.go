package parser

import "github.com/weiliddat/bursa"

// The functions below expose the grammar's micro-parsers (spec §4.2) as
// one-shot entry points over a whole string, for callers that want to
// validate or decode a single lexeme without building a full .bursa
// document - notably the "bursa repl" sandbox in cmd/bursa, which runs
// these interactively against typed-in fragments.

// ParseAmountString decodes a single amount lexeme. meta supplies alias
// resolution the same way it does during a full Parse.
func ParseAmountString(s string, meta *bursa.Meta) (bursa.Amount, *bursa.Diagnostic) {
	c := newCursor(s)
	return parseAmount(c, meta)
}

// ParseDateString checks a single date lexeme's shape.
func ParseDateString(s string) (string, *bursa.Diagnostic) {
	c := newCursor(s)
	return parseDate(c)
}

// ParsePeriodString checks a single year-month period lexeme's shape.
func ParsePeriodString(s string) (string, *bursa.Diagnostic) {
	c := newCursor(s)
	return parsePeriod(c)
}

// ParseAccountRefString decodes a single "@A:B:C" account reference.
func ParseAccountRefString(s string) (bursa.AccountRef, *bursa.Diagnostic) {
	c := newCursor(s)
	return parseAccountRef(c)
}

// ParseCategoryRefString decodes a single "&A:B" category reference.
func ParseCategoryRefString(s string) (bursa.CategoryRef, *bursa.Diagnostic) {
	c := newCursor(s)
	return parseCategoryRef(c)
}

// ParseTagRefString decodes a single "#A:B" tag reference.
func ParseTagRefString(s string) (bursa.TagRef, *bursa.Diagnostic) {
	c := newCursor(s)
	return parseTagRef(c)
}
