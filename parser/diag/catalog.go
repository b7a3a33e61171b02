// Package diag is the Bursa diagnostic catalog: the fixed codes, messages,
// and severities for every diagnostic the parser and the (out-of-scope)
// semantic validator can produce. The parser only ever constructs codes
// from the first const block below; the rest are documented here so that the common
// bursa.Diagnostic shape has one place describing the full catalog.
package diag

import "github.com/weiliddat/bursa"

// Parser-emitted codes (spec §4.9).
const (
	E001 = "E001" // invalid token / unexpected character / unknown directive / unknown section / content-before-section prerequisite
	E002 = "E002" // malformed amount (bad number, missing commodity)
	E003 = "E003" // invalid date format
	E009 = "E009" // invalid component order (reserved for future enforcement)
	E011 = "E011" // content before section marker
)

// Codes reserved for the semantic validator, an external collaborator that
// consumes the parser's Ledger output. The parser never constructs these;
// they exist here only because Diagnostic is a shape both producers share.
const (
	E005 = "E005" // unknown account reference
	E007 = "E007" // unknown commodity reference
	E008 = "E008" // unbalanced assertion
	E010 = "E010" // chronology violation
	W001 = "W001" // unused untracked pattern
	W002 = "W002" // unused commodity declaration
	W003 = "W003" // unused alias
)

// New builds an error-severity Diagnostic for one of the parser's own
// codes.
func New(code, message string, span bursa.Span) bursa.Diagnostic {
	return bursa.Diagnostic{
		Code:     code,
		Message:  message,
		Severity: bursa.SeverityError,
		Span:     span,
	}
}

// Sub-coded message constructors for E001, per spec §9: "Implementations
// may choose to sub-code the message string." Each returns a message with
// a distinguishing substring so tooling keying on code + span + substring
// has something stable to match.

func UnexpectedCharacter(got rune, span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: unexpected character "+quoteRune(got), span)
}

func ExpectedSectionMarker(span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: expected '>>>'", span)
}

func UnknownSection(name string, span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: unknown section "+quote(name), span)
}

func UnknownDirective(keyword string, span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: unknown directive "+quote(keyword), span)
}

func ExpectedColon(span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: expected ':'", span)
}

func ExpectedCommodityName(span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: expected commodity name", span)
}

func ExpectedEquals(span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: expected '='", span)
}

func ExpectedAtSigil(span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: expected '@'", span)
}

func EmptyReference(sigil rune, span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: empty reference after "+quoteRune(sigil), span)
}

func ContentBeforeSection(span bursa.Span) bursa.Diagnostic {
	return New(E011, "content before section marker", span)
}

func MalformedAmount(reason string, span bursa.Span) bursa.Diagnostic {
	return New(E002, "malformed amount: "+reason, span)
}

func InvalidDateFormat(span bursa.Span) bursa.Diagnostic {
	return New(E003, "invalid date format", span)
}

func InvalidPeriodFormat(span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: invalid period format", span)
}

func NoCurrentPeriod(span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: budget entry before any period header", span)
}

func NoCurrentAccount(span bursa.Span) bursa.Diagnostic {
	return New(E001, "invalid token: ledger entry before any account header", span)
}

func quote(s string) string {
	return "'" + s + "'"
}

func quoteRune(r rune) string {
	if r == 0 {
		return "'<eof>'"
	}
	return "'" + string(r) + "'"
}
