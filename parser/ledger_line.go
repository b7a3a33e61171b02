package parser

import (
	"github.com/weiliddat/bursa"
	"github.com/weiliddat/bursa/parser/diag"
)

// parseLedgerLine implements spec §4.7. First significant character
// decides the grammar: '@' starts an account header, '?' or a digit
// starts a transaction or assertion, anything else is E001.
func parseLedgerLine(c *Cursor, st *state, ledger *bursa.Ledger, result *Result) {
	start := c.MarkStart()
	switch ch := c.Peek(); {
	case ch == '@':
		account, d := parseAccountRef(c)
		if d != nil {
			c.SkipToEOL()
			result.emit(*d)
			c.SkipLine()
			return
		}
		st.currentAccount = &account
		c.SkipLine()
	case ch == '?' || isDigit(ch):
		parseLedgerEntry(c, st, ledger, result, start)
	default:
		bad := ch
		c.SkipToEOL()
		result.emit(diag.UnexpectedCharacter(bad, c.SpanFrom(start)))
		c.SkipLine()
	}
}

func parseLedgerEntry(c *Cursor, st *state, ledger *bursa.Ledger, result *Result, start bursa.Position) {
	if st.currentAccount == nil {
		c.SkipToEOL()
		result.emit(diag.NoCurrentAccount(c.SpanFrom(start)))
		c.SkipLine()
		return
	}

	unverified := false
	if c.Peek() == '?' {
		unverified = true
		c.Advance()
		c.SkipHorizontalWhitespace()
	}

	date, d := parseDate(c)
	if d != nil {
		c.SkipToEOL()
		result.emit(*d)
		c.SkipLine()
		return
	}
	c.SkipHorizontalWhitespace()

	if c.Peek() == '=' && c.PeekAt(1) == '=' {
		parseAssertion(c, st, ledger, result, start, date, unverified)
		return
	}
	parseTransaction(c, st, ledger, result, start, date, unverified)
}

func parseAssertion(
	c *Cursor, st *state, ledger *bursa.Ledger, result *Result,
	start bursa.Position, date string, unverified bool,
) {
	c.Advance() // '='
	c.Advance() // '='
	c.SkipHorizontalWhitespace()

	amount, d := parseAmount(c, &ledger.Meta)
	if d != nil {
		c.SkipToEOL()
		result.emit(*d)
		c.SkipLine()
		return
	}
	c.SkipHorizontalWhitespace()
	comment := parseComment(c)

	ledger.Ledger = append(ledger.Ledger, bursa.LedgerEntry{
		Kind:       bursa.EntryAssertion,
		Date:       date,
		Account:    *st.currentAccount,
		Unverified: unverified,
		Amount:     amount,
		Comment:    comment,
		Span:       c.SpanFrom(start),
	})
	c.SkipLine()
}

func parseTransaction(
	c *Cursor, st *state, ledger *bursa.Ledger, result *Result,
	start bursa.Position, date string, unverified bool,
) {
	amount, d := parseAmount(c, &ledger.Meta)
	if d != nil {
		c.SkipToEOL()
		result.emit(*d)
		c.SkipLine()
		return
	}
	c.SkipHorizontalWhitespace()

	target, d := parseTarget(c, &ledger.Meta)
	if d != nil {
		c.SkipToEOL()
		result.emit(*d)
		c.SkipLine()
		return
	}

	var tags []bursa.TagRef
	for {
		c.SkipHorizontalWhitespace()
		if c.Peek() != '#' {
			break
		}
		tag, d := parseTagRef(c)
		if d != nil {
			c.SkipToEOL()
			result.emit(*d)
			c.SkipLine()
			return
		}
		tags = append(tags, tag)
	}
	comment := parseComment(c)

	ledger.Ledger = append(ledger.Ledger, bursa.LedgerEntry{
		Kind:       bursa.EntryTransaction,
		Date:       date,
		Account:    *st.currentAccount,
		Unverified: unverified,
		Amount:     amount,
		Target:     &target,
		Tags:       tags,
		Comment:    comment,
		Span:       c.SpanFrom(start),
	})
	c.SkipLine()
}

// parseTarget implements spec §4.8, the single-character-lookahead target
// grammar.
func parseTarget(c *Cursor, meta *bursa.Meta) (bursa.Target, *bursa.Diagnostic) {
	start := c.MarkStart()
	switch ch := c.Peek(); {
	case ch == '&':
		ref, d := parseCategoryRef(c)
		if d != nil {
			return bursa.Target{}, d
		}
		return bursa.Target{Kind: bursa.TargetCategory, Category: &ref}, nil
	case ch == '@':
		ref, d := parseAccountRef(c)
		if d != nil {
			return bursa.Target{}, d
		}
		save := c.pos
		saveLine, saveCol := c.line, c.col
		c.SkipHorizontalWhitespace()
		if c.Peek() == '&' {
			cat, d := parseCategoryRef(c)
			if d != nil {
				return bursa.Target{}, d
			}
			return bursa.Target{Kind: bursa.TargetAccount, Account: &ref, AccountCategory: &cat}, nil
		}
		c.pos, c.line, c.col = save, saveLine, saveCol
		return bursa.Target{Kind: bursa.TargetAccount, Account: &ref}, nil
	case ch == '+' || ch == '-' || isDigit(ch) || currencySymbols[ch]:
		amount, d := parseAmount(c, meta)
		if d != nil {
			return bursa.Target{}, d
		}
		return bursa.Target{Kind: bursa.TargetSwap, Swap: &amount}, nil
	default:
		bad := ch
		return bursa.Target{}, ptrDiag(diag.UnexpectedCharacter(bad, c.SpanFrom(start)))
	}
}
