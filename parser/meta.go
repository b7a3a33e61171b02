package parser

import (
	"github.com/weiliddat/bursa"
	"github.com/weiliddat/bursa/parser/diag"
)

// parseMetaLine implements spec §4.5: keyword ':' then a directive-specific
// tail. The remainder of the line is always consumed, success or failure.
func parseMetaLine(c *Cursor, meta *bursa.Meta, result *Result) {
	start := c.MarkStart()
	keyword, ok := parseIdentifier(c)
	if !ok {
		bad := c.Peek()
		c.SkipToEOL()
		result.emit(diag.UnexpectedCharacter(bad, c.SpanFrom(start)))
		c.SkipLine()
		return
	}
	if c.Peek() != ':' {
		c.SkipToEOL()
		result.emit(diag.ExpectedColon(c.SpanFrom(start)))
		c.SkipLine()
		return
	}
	c.Advance() // ':'
	c.SkipHorizontalWhitespace()

	switch keyword {
	case "commodity":
		parseCommodityDirective(c, meta, result, start)
	case "alias":
		parseAliasDirective(c, meta, result, start)
	case "untracked":
		parseUntrackedDirective(c, meta, result, start)
	default:
		result.emit(diag.UnknownDirective(keyword, c.SpanFrom(start)))
	}
	c.SkipLine()
}

func parseCommodityDirective(c *Cursor, meta *bursa.Meta, result *Result, start bursa.Position) {
	name, ok := parseIdentifier(c)
	if !ok {
		result.emit(diag.ExpectedCommodityName(c.SpanFrom(start)))
		return
	}
	meta.DeclareCommodity(name)
}

func parseAliasDirective(c *Cursor, meta *bursa.Meta, result *Result, start bursa.Position) {
	symbol, ok := parseSymbol(c)
	if !ok {
		result.emit(diag.New(diag.E001, "invalid token: expected alias symbol", c.SpanFrom(start)))
		return
	}
	c.SkipHorizontalWhitespace()
	if c.Peek() != '=' {
		result.emit(diag.ExpectedEquals(c.SpanFrom(start)))
		return
	}
	c.Advance()
	c.SkipHorizontalWhitespace()
	commodity, ok := parseIdentifier(c)
	if !ok {
		result.emit(diag.ExpectedCommodityName(c.SpanFrom(start)))
		return
	}
	meta.DeclareAlias(symbol, commodity)
}

func parseUntrackedDirective(c *Cursor, meta *bursa.Meta, result *Result, start bursa.Position) {
	if c.Peek() != '@' {
		result.emit(diag.ExpectedAtSigil(c.SpanFrom(start)))
		return
	}
	c.Advance()

	if c.Peek() == '*' {
		c.Advance()
		meta.DeclareUntracked("@*")
		return
	}

	name, ok := parseHierarchicalName(c)
	if !ok {
		result.emit(diag.EmptyReference('@', c.SpanFrom(start)))
		return
	}
	pattern := "@" + name
	if c.Peek() == ':' && c.PeekAt(1) == '*' {
		c.Advance() // ':'
		c.Advance() // '*'
		pattern += ":*"
	}
	meta.DeclareUntracked(pattern)
}
