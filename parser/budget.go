package parser

import (
	"github.com/weiliddat/bursa"
	"github.com/weiliddat/bursa/parser/diag"
)

// parseBudgetLine implements spec §4.6. First significant character
// decides the grammar: a digit starts a period header, '&' starts a
// budget allocation, anything else is E001.
func parseBudgetLine(c *Cursor, st *state, ledger *bursa.Ledger, result *Result) {
	start := c.MarkStart()
	switch {
	case isDigit(c.Peek()):
		period, d := parsePeriod(c)
		if d != nil {
			c.SkipToEOL()
			result.emit(*d)
			c.SkipLine()
			return
		}
		st.currentPeriod = period
		c.SkipLine()
	case c.Peek() == '&':
		if st.currentPeriod == "" {
			c.SkipToEOL()
			result.emit(diag.NoCurrentPeriod(c.SpanFrom(start)))
			c.SkipLine()
			return
		}
		category, d := parseCategoryRef(c)
		if d != nil {
			c.SkipToEOL()
			result.emit(*d)
			c.SkipLine()
			return
		}
		c.SkipHorizontalWhitespace()
		amount, d := parseAmount(c, &ledger.Meta)
		if d != nil {
			c.SkipToEOL()
			result.emit(*d)
			c.SkipLine()
			return
		}
		ledger.Budget = append(ledger.Budget, bursa.BudgetEntry{
			Period:   st.currentPeriod,
			Category: category,
			Amount:   amount,
			Span:     c.SpanFrom(start),
		})
		c.SkipLine()
	default:
		bad := c.Peek()
		c.SkipToEOL()
		result.emit(diag.UnexpectedCharacter(bad, c.SpanFrom(start)))
		c.SkipLine()
	}
}
