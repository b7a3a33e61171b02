package parser

import "github.com/weiliddat/bursa"

// eof is the empty-character sentinel Peek returns at end of input.
const eof rune = 0

// Cursor is the position/span machinery spec §4.1 describes: a source
// buffer plus a byte-ish (rune) index and a 1-based (line, col) pair,
// advanced one character at a time. It is the sole piece of mutable state
// a Parse call owns.
type Cursor struct {
	src  []rune
	pos  int
	line int
	col  int
}

// newCursor wraps source text for scanning, starting at line 1, column 1.
func newCursor(source string) *Cursor {
	return &Cursor{src: []rune(source), pos: 0, line: 1, col: 1}
}

// AtEnd reports whether the cursor has consumed the entire source.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}

// Peek returns the character at the cursor, or eof at end of input.
func (c *Cursor) Peek() rune {
	return c.PeekAt(0)
}

// PeekAt returns the character offset runes ahead of the cursor, or eof if
// that position is past the end of input.
func (c *Cursor) PeekAt(offset int) rune {
	i := c.pos + offset
	if i < 0 || i >= len(c.src) {
		return eof
	}
	return c.src[i]
}

// Advance consumes and returns one character, updating line/col. A
// newline resets col to 1 and increments line; anything else increments
// col.
func (c *Cursor) Advance() rune {
	if c.AtEnd() {
		return eof
	}
	ch := c.src[c.pos]
	c.pos++
	if ch == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return ch
}

// MarkStart snapshots the cursor's current position.
func (c *Cursor) MarkStart() bursa.Position {
	return bursa.Position{Line: c.line, Col: c.col}
}

// SpanFrom pairs a previously-marked start with the cursor's current
// position.
func (c *Cursor) SpanFrom(start bursa.Position) bursa.Span {
	return bursa.Span{Start: start, End: bursa.Position{Line: c.line, Col: c.col}}
}

// SkipHorizontalWhitespace consumes spaces, tabs, and carriage returns but
// never newlines. \r is folded into horizontal whitespace here so CRLF
// line endings parse identically to LF ones (spec §6 leaves this to the
// implementer).
func (c *Cursor) SkipHorizontalWhitespace() {
	for {
		switch c.Peek() {
		case ' ', '\t', '\r':
			c.Advance()
		default:
			return
		}
	}
}

// SkipToEOL advances up to but not past a newline.
func (c *Cursor) SkipToEOL() {
	for !c.AtEnd() && c.Peek() != '\n' {
		c.Advance()
	}
}

// SkipLine advances past the next newline, or to EOF if none remains.
func (c *Cursor) SkipLine() {
	c.SkipToEOL()
	if c.Peek() == '\n' {
		c.Advance()
	}
}

// SkipBlankLines repeatedly consumes lines whose non-whitespace prefix is
// empty, leaving the cursor at the start of the next non-blank line (or at
// EOF).
func (c *Cursor) SkipBlankLines() {
	for !c.AtEnd() {
		save := c.pos
		saveLine, saveCol := c.line, c.col
		c.SkipHorizontalWhitespace()
		if c.Peek() == '\n' || c.AtEnd() {
			if c.Peek() == '\n' {
				c.Advance()
			}
			continue
		}
		// not a blank line: rewind and stop
		c.pos, c.line, c.col = save, saveLine, saveCol
		return
	}
}
