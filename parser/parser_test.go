package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiliddat/bursa"
)

func TestParse_EmptyInput(t *testing.T) {
	result := Parse("")
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Data.Budget)
	assert.Empty(t, result.Data.Ledger)
}

func TestParse_AliasesResolve(t *testing.T) {
	src := "" +
		">>> META\n" +
		"alias: $ = USD\n" +
		">>> LEDGER\n" +
		"@A\n" +
		"  2026-01-01 +5 $ &Op\n"

	result := Parse(src)
	require.Empty(t, result.Errors)
	require.Len(t, result.Data.Ledger, 1)

	e := result.Data.Ledger[0]
	assert.Equal(t, bursa.EntryTransaction, e.Kind)
	assert.True(t, decimal.NewFromInt(5).Equal(e.Amount.Value))
	assert.Equal(t, "USD", e.Amount.Commodity)
	require.NotNil(t, e.Target)
	assert.Equal(t, bursa.TargetCategory, e.Target.Kind)
	assert.Equal(t, []string{"Op"}, e.Target.Category.Path)
}

func TestParse_SwapTarget(t *testing.T) {
	src := "" +
		">>> META\n" +
		"alias: $ = USD\n" +
		">>> LEDGER\n" +
		"@Brokerage\n" +
		"  2026-01-21 -1000 $ +6.5 AAPL\n"

	result := Parse(src)
	require.Empty(t, result.Errors)
	require.Len(t, result.Data.Ledger, 1)

	e := result.Data.Ledger[0]
	assert.Equal(t, bursa.SignNegative, e.Amount.Sign)
	assert.True(t, decimal.NewFromInt(1000).Equal(e.Amount.Value))
	require.NotNil(t, e.Target)
	require.Equal(t, bursa.TargetSwap, e.Target.Kind)
	assert.Equal(t, bursa.SignPositive, e.Target.Swap.Sign)
	assert.True(t, decimal.RequireFromString("6.5").Equal(e.Target.Swap.Value))
	assert.Equal(t, "AAPL", e.Target.Swap.Commodity)
}

func TestParse_UntrackedTransferWithCategory(t *testing.T) {
	src := "" +
		">>> META\n" +
		"alias: $ = USD\n" +
		">>> LEDGER\n" +
		"@Checking\n" +
		"  2026-01-20 -1000 $ @Brokerage &Investing\n"

	result := Parse(src)
	require.Empty(t, result.Errors)
	require.Len(t, result.Data.Ledger, 1)

	target := result.Data.Ledger[0].Target
	require.Equal(t, bursa.TargetAccount, target.Kind)
	assert.Equal(t, []string{"Brokerage"}, target.Account.Path)
	require.NotNil(t, target.AccountCategory)
	assert.Equal(t, []string{"Investing"}, target.AccountCategory.Path)
}

func TestParse_AssertionUnverified(t *testing.T) {
	src := "" +
		">>> META\n" +
		"alias: RM = MYR\n" +
		">>> LEDGER\n" +
		"@Maybank\n" +
		"  ? 2026-01-26 == 1670 RM\n"

	result := Parse(src)
	require.Empty(t, result.Errors)
	require.Len(t, result.Data.Ledger, 1)

	e := result.Data.Ledger[0]
	assert.Equal(t, bursa.EntryAssertion, e.Kind)
	assert.True(t, e.Unverified)
	assert.Equal(t, []string{"Maybank"}, e.Account.Path)
	assert.Equal(t, "MYR", e.Amount.Commodity)
	assert.True(t, decimal.NewFromInt(1670).Equal(e.Amount.Value))
}

func TestParse_AssertionWithTrailingComment(t *testing.T) {
	src := "" +
		">>> META\n" +
		"alias: RM = MYR\n" +
		">>> LEDGER\n" +
		"@Maybank\n" +
		"  2026-01-26 == 1670 RM ; reconciled\n"

	result := Parse(src)
	require.Empty(t, result.Errors)
	require.Len(t, result.Data.Ledger, 1)

	e := result.Data.Ledger[0]
	assert.Equal(t, bursa.EntryAssertion, e.Kind)
	assert.Equal(t, "reconciled", e.Comment)
}

func TestParse_ErrorRecovery(t *testing.T) {
	src := "" +
		">>> META\n" +
		"alias: $ = USD\n" +
		">>> LEDGER\n" +
		"@A\n" +
		"  2026-1-20 -5 $ &X\n" +
		"  2026-01-21 -5 $ &X\n"

	result := Parse(src)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "E003", result.Errors[0].Code)
	require.Len(t, result.Data.Ledger, 1)
	assert.Equal(t, "2026-01-21", result.Data.Ledger[0].Date)
}

func TestParse_ContentBeforeSection(t *testing.T) {
	src := "foo\n>>> META\ncommodity: USD\n"

	result := Parse(src)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "E011", result.Errors[0].Code)
	assert.Equal(t, 1, result.Errors[0].Span.Start.Line)
	assert.Contains(t, result.Data.Meta.Commodities, "USD")
}

func TestParse_CanonicalFixture(t *testing.T) {
	src := `>>> META
commodity: USD
alias: $ = USD
alias: RM = MYR
untracked: @Brokerage

>>> BUDGET
2026-01
  &Groceries 500 $
  &Dining -50 $

>>> LEDGER
@Checking
  2026-01-01 +5000 $ &Opening:Balance
  2026-01-16 -100 $ &Groceries #traderjoes
  2026-01-20 -1000 $ @Brokerage &Investing
  2026-01-31 == 6800 $

@Brokerage
  2026-01-21 -1000 $ +6.5 AAPL

@Maybank
  ? 2026-01-26 == 1670 RM
`
	result := Parse(src)
	require.Empty(t, result.Errors)
	require.Empty(t, result.Warnings)

	assert.True(t, result.Data.Meta.Commodities["USD"])
	assert.True(t, result.Data.Meta.Commodities["MYR"])
	assert.Equal(t, "USD", result.Data.Meta.Aliases["$"])
	assert.Equal(t, "MYR", result.Data.Meta.Aliases["RM"])
	require.Len(t, result.Data.Meta.Untracked, 1)
	assert.Equal(t, "@Brokerage", result.Data.Meta.Untracked[0])

	require.Len(t, result.Data.Budget, 2)
	assert.Equal(t, "2026-01", result.Data.Budget[0].Period)
	assert.Equal(t, []string{"Groceries"}, result.Data.Budget[0].Category.Path)
	assert.Equal(t, bursa.SignNegative, result.Data.Budget[1].Amount.Sign)

	require.Len(t, result.Data.Ledger, 6)
	assert.Equal(t, []string{"Checking"}, result.Data.Ledger[0].Account.Path)
	assert.Equal(t, []string{"Checking"}, result.Data.Ledger[3].Account.Path)
	assert.Equal(t, bursa.EntryAssertion, result.Data.Ledger[3].Kind)
	assert.Equal(t, []string{"traderjoes"}, result.Data.Ledger[1].Tags[0].Path)
	assert.Equal(t, []string{"Brokerage"}, result.Data.Ledger[4].Account.Path)
}

func TestParse_CommentOnlyLineProducesNoEntry(t *testing.T) {
	src := ">>> LEDGER\n; just a comment\n@A\n  ; also a comment\n"
	result := Parse(src)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Data.Ledger)
}

func TestParse_AccountHeaderRepeats(t *testing.T) {
	src := "" +
		">>> LEDGER\n" +
		"@A\n" +
		"  2026-01-01 +5 USD &X\n" +
		"@B\n" +
		"  2026-01-02 +6 USD &Y\n" +
		"@A\n" +
		"  2026-01-03 +7 USD &Z\n"

	result := Parse(src)
	require.Empty(t, result.Errors)
	require.Len(t, result.Data.Ledger, 3)
	assert.Equal(t, []string{"A"}, result.Data.Ledger[0].Account.Path)
	assert.Equal(t, []string{"B"}, result.Data.Ledger[1].Account.Path)
	assert.Equal(t, []string{"A"}, result.Data.Ledger[2].Account.Path)
}

func TestParse_UnverifiedOnlyBeforeDate(t *testing.T) {
	src := ">>> LEDGER\n@A\n  ?&X\n"
	result := Parse(src)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "E003", result.Errors[0].Code)
}

func TestParse_QuestionMarkElsewhereIsInvalidToken(t *testing.T) {
	src := ">>> BUDGET\n2026-01\n  ?\n"
	result := Parse(src)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "E001", result.Errors[0].Code)
}

func TestParse_AppendOnlyPrefixProperty(t *testing.T) {
	base := ">>> LEDGER\n@A\n  2026-01-01 +5 USD &X\n"
	extended := base + "  2026-01-02 +6 USD &Y\n"

	r1 := Parse(base)
	r2 := Parse(extended)

	require.Empty(t, r1.Errors)
	require.Empty(t, r2.Errors)
	require.Len(t, r2.Data.Ledger, len(r1.Data.Ledger)+1)
	for i := range r1.Data.Ledger {
		assert.Equal(t, r1.Data.Ledger[i].Date, r2.Data.Ledger[i].Date)
		assert.Equal(t, r1.Data.Ledger[i].Amount.Value, r2.Data.Ledger[i].Amount.Value)
	}
}

func TestParse_AliasDeclaredLateDoesNotRetroactivelyRewrite(t *testing.T) {
	src := "" +
		">>> LEDGER\n" +
		"@A\n" +
		"  2026-01-01 +5 $ &X\n" +
		">>> META\n" +
		"alias: $ = USD\n"

	result := Parse(src)
	require.Empty(t, result.Errors)
	require.Len(t, result.Data.Ledger, 1)
	// alias wasn't declared yet when this amount was parsed, so the symbol
	// passes through unresolved.
	assert.Equal(t, "$", result.Data.Ledger[0].Amount.Commodity)
}

func TestParse_SpanOrderingInvariant(t *testing.T) {
	src := `>>> META
commodity: USD
alias: $ = USD
>>> BUDGET
2026-01
  &Groceries 500 $
>>> LEDGER
@A
  2026-01-01 +5 $ &X #tag
`
	result := Parse(src)
	require.Empty(t, result.Errors)
	for _, b := range result.Data.Budget {
		assert.True(t, b.Span.Valid(), "budget span %v not valid", b.Span)
	}
	for _, e := range result.Data.Ledger {
		assert.True(t, e.Span.Valid(), "ledger span %v not valid", e.Span)
	}
}

func TestParse_AliasDeclaresRightHandSideCommodity(t *testing.T) {
	src := ">>> META\nalias: $ = USD\n"
	result := Parse(src)
	assert.Empty(t, result.Errors)
	assert.True(t, result.Data.Meta.Commodities["USD"])
}

func TestParse_UnknownSectionLeavesPriorActive(t *testing.T) {
	src := ">>> LEDGER\n@A\n>>> WIDGET\n  2026-01-01 +5 USD &X\n"
	result := Parse(src)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "E001", result.Errors[0].Code)
	require.Len(t, result.Data.Ledger, 1)
}

func TestParse_UnknownDirective(t *testing.T) {
	src := ">>> META\nfoo: bar\n"
	result := Parse(src)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "E001", result.Errors[0].Code)
	assert.Contains(t, result.Errors[0].Message, "unknown directive")
}

func TestParse_UntrackedWildcard(t *testing.T) {
	src := ">>> META\nuntracked: @*\n"
	result := Parse(src)
	require.Empty(t, result.Errors)
	assert.Equal(t, []string{"@*"}, result.Data.Meta.Untracked)
}

func TestParse_UntrackedHierarchicalWildcard(t *testing.T) {
	src := ">>> META\nuntracked: @Investments:Brokerage:*\n"
	result := Parse(src)
	require.Empty(t, result.Errors)
	assert.Equal(t, []string{"@Investments:Brokerage:*"}, result.Data.Meta.Untracked)
}

func TestParse_MalformedAmountMissingCommodity(t *testing.T) {
	src := ">>> LEDGER\n@A\n  2026-01-01 +5 &X\n"
	result := Parse(src)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "E002", result.Errors[0].Code)
}

func TestParse_CRLFLineEndings(t *testing.T) {
	src := ">>> LEDGER\r\n@A\r\n  2026-01-01 +5 USD &X\r\n"
	result := Parse(src)
	require.Empty(t, result.Errors)
	require.Len(t, result.Data.Ledger, 1)
}
