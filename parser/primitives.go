package parser

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/weiliddat/bursa"
	"github.com/weiliddat/bursa/parser/diag"
)

// currencySymbols is the fixed set of sigils the amount grammar recognizes
// as a leading or trailing commodity marker (spec §4.2). Implementations
// must use this exact set.
var currencySymbols = map[rune]bool{
	'$': true, '€': true, '£': true, '¥': true,
	'₹': true, '₽': true, '₩': true, '₪': true, '฿': true,
}

func isIdentRune(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// parseIdentifier reads the maximal run of [A-Za-z0-9_]. An empty result
// is reported as ok == false; the caller decides what diagnostic, if any,
// that implies.
func parseIdentifier(c *Cursor) (string, bool) {
	var sb strings.Builder
	for isIdentRune(c.Peek()) {
		sb.WriteRune(c.Advance())
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}

// parseHierarchicalName reads one identifier, then zero or more ":ident"
// repetitions. A trailing ':' not followed by an identifier character is
// left unconsumed.
func parseHierarchicalName(c *Cursor) (string, bool) {
	first, ok := parseIdentifier(c)
	if !ok {
		return "", false
	}
	var sb strings.Builder
	sb.WriteString(first)
	for c.Peek() == ':' && isIdentRune(c.PeekAt(1)) {
		c.Advance() // ':'
		sb.WriteByte(':')
		seg, _ := parseIdentifier(c)
		sb.WriteString(seg)
	}
	return sb.String(), true
}

// parseSymbol reads a single currency symbol if present, otherwise an
// identifier (spec §4.5, parseSymbol used by the alias directive).
func parseSymbol(c *Cursor) (string, bool) {
	if currencySymbols[c.Peek()] {
		return string(c.Advance()), true
	}
	return parseIdentifier(c)
}

// parseRefRaw parses one of AccountRef/CategoryRef/TagRef: a leading sigil
// then a hierarchical name. On failure it returns a non-nil E001
// *bursa.Diagnostic (missing sigil or empty name) and zero values for the
// rest.
func parseRefRaw(c *Cursor, sigil rune) (path []string, raw string, span bursa.Span, d *bursa.Diagnostic) {
	start := c.MarkStart()
	if c.Peek() != sigil {
		diagVal := diag.New(diag.E001, "invalid token: expected "+string(sigil), c.SpanFrom(start))
		return nil, "", bursa.Span{}, &diagVal
	}
	c.Advance() // sigil
	name, ok := parseHierarchicalName(c)
	if !ok {
		diagVal := diag.EmptyReference(sigil, c.SpanFrom(start))
		return nil, "", bursa.Span{}, &diagVal
	}
	span = c.SpanFrom(start)
	raw = string(sigil) + name
	path = splitHierarchical(name)
	return path, raw, span, nil
}

func splitHierarchical(name string) []string {
	return strings.Split(name, ":")
}

func parseAccountRef(c *Cursor) (bursa.AccountRef, *bursa.Diagnostic) {
	path, raw, span, d := parseRefRaw(c, '@')
	if d != nil {
		return bursa.AccountRef{}, d
	}
	return bursa.AccountRef{Path: path, Raw: raw, Span: span}, nil
}

func parseCategoryRef(c *Cursor) (bursa.CategoryRef, *bursa.Diagnostic) {
	path, raw, span, d := parseRefRaw(c, '&')
	if d != nil {
		return bursa.CategoryRef{}, d
	}
	return bursa.CategoryRef{Path: path, Raw: raw, Span: span}, nil
}

func parseTagRef(c *Cursor) (bursa.TagRef, *bursa.Diagnostic) {
	path, raw, span, d := parseRefRaw(c, '#')
	if d != nil {
		return bursa.TagRef{}, d
	}
	return bursa.TagRef{Path: path, Raw: raw, Span: span}, nil
}

// parseAmount implements the amount grammar of spec §4.2:
//
//  1. optional sign
//  2. optional leading currency symbol
//  3. digits with at most one '.'; at least one digit; '.' alone rejected
//  4. if no leading commodity was seen: optional horizontal whitespace then
//     a currency symbol or identifier (trailing commodity)
//  5. fail if no commodity was found in either position
//
// meta is consulted (and only consulted, never snapshotted) at the moment
// the commodity text is resolved, so alias declarations that come later in
// the file never retroactively rewrite this amount.
func parseAmount(c *Cursor, meta *bursa.Meta) (bursa.Amount, *bursa.Diagnostic) {
	start := c.MarkStart()

	sign := bursa.SignUnspecified
	switch c.Peek() {
	case '+':
		sign = bursa.SignPositive
		c.Advance()
	case '-':
		sign = bursa.SignNegative
		c.Advance()
	}

	var leadingCommodity string
	if currencySymbols[c.Peek()] {
		leadingCommodity = string(c.Advance())
	}

	numStart := c.pos
	sawDigit := false
	sawDot := false
	for {
		ch := c.Peek()
		if isDigit(ch) {
			sawDigit = true
			c.Advance()
		} else if ch == '.' && !sawDot {
			sawDot = true
			c.Advance()
		} else {
			break
		}
	}
	numText := string(c.src[numStart:c.pos])

	if !sawDigit || numText == "." {
		return bursa.Amount{}, ptrDiag(diag.MalformedAmount("expected a number", c.SpanFrom(start)))
	}

	value, err := decimal.NewFromString(numText)
	if err != nil {
		return bursa.Amount{}, ptrDiag(diag.MalformedAmount("not a valid number: "+numText, c.SpanFrom(start)))
	}

	commodity := leadingCommodity
	if commodity == "" {
		save := c.pos
		saveLine, saveCol := c.line, c.col
		c.SkipHorizontalWhitespace()
		if currencySymbols[c.Peek()] {
			commodity = string(c.Advance())
		} else if ident, ok := parseIdentifier(c); ok {
			commodity = ident
		} else {
			// no trailing commodity found: rewind the whitespace we ate
			c.pos, c.line, c.col = save, saveLine, saveCol
		}
	}

	if commodity == "" {
		return bursa.Amount{}, ptrDiag(diag.MalformedAmount("missing commodity", c.SpanFrom(start)))
	}

	return bursa.Amount{
		Sign:      sign,
		Value:     value,
		Raw:       numText,
		Commodity: meta.ResolveCommodity(commodity),
		Span:      c.SpanFrom(start),
	}, nil
}

// parseDate checks the fixed shape DDDD-DD-DD. Any deviation aborts with
// E003 on the full attempted span.
func parseDate(c *Cursor) (string, *bursa.Diagnostic) {
	start := c.MarkStart()
	s, ok := readFixedDigitPattern(c, []int{4, 2, 2}, '-')
	if !ok {
		return "", ptrDiag(diag.InvalidDateFormat(c.SpanFrom(start)))
	}
	return s, nil
}

// parsePeriod checks the fixed shape DDDD-DD (year-month). Deviation
// yields E001.
func parsePeriod(c *Cursor) (string, *bursa.Diagnostic) {
	start := c.MarkStart()
	s, ok := readFixedDigitPattern(c, []int{4, 2}, '-')
	if !ok {
		return "", ptrDiag(diag.InvalidPeriodFormat(c.SpanFrom(start)))
	}
	return s, nil
}

// readFixedDigitPattern reads groups of exactly groupLens[i] digits
// separated by sep, failing (and leaving the cursor where it stopped) the
// moment any group doesn't match.
func readFixedDigitPattern(c *Cursor, groupLens []int, sep rune) (string, bool) {
	var sb strings.Builder
	for gi, n := range groupLens {
		if gi > 0 {
			if c.Peek() != sep {
				return "", false
			}
			c.Advance()
			sb.WriteRune(sep)
		}
		for i := 0; i < n; i++ {
			if !isDigit(c.Peek()) {
				return "", false
			}
			sb.WriteRune(c.Advance())
		}
	}
	return sb.String(), true
}

// parseComment parses a ';'-led comment: sigil, horizontal whitespace,
// then the rest of the line trimmed of trailing whitespace. A comment with
// no text is reported as "no comment" (empty string) rather than as an
// error - comments are always optional and never fail a line.
func parseComment(c *Cursor) string {
	if c.Peek() != ';' {
		return ""
	}
	c.Advance()
	c.SkipHorizontalWhitespace()
	start := c.pos
	c.SkipToEOL()
	text := string(c.src[start:c.pos])
	return strings.TrimRightFunc(text, unicode.IsSpace)
}

func ptrDiag(d bursa.Diagnostic) *bursa.Diagnostic {
	return &d
}
