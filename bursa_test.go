package bursa

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSpanValid(t *testing.T) {
	assert.True(t, Span{Start: Position{1, 1}, End: Position{1, 1}}.Valid())
	assert.True(t, Span{Start: Position{1, 5}, End: Position{2, 1}}.Valid())
	assert.False(t, Span{Start: Position{2, 1}, End: Position{1, 5}}.Valid())
	assert.False(t, Span{Start: Position{1, 5}, End: Position{1, 1}}.Valid())
}

func TestAmountSigned(t *testing.T) {
	a := Amount{Sign: SignNegative, Value: decimal.NewFromInt(10)}
	assert.True(t, decimal.NewFromInt(-10).Equal(a.Signed()))

	b := Amount{Sign: SignPositive, Value: decimal.NewFromInt(10)}
	assert.True(t, decimal.NewFromInt(10).Equal(b.Signed()))

	c := Amount{Sign: SignUnspecified, Value: decimal.NewFromInt(10)}
	assert.True(t, decimal.NewFromInt(10).Equal(c.Signed()))
}

func TestMetaAliasResolution(t *testing.T) {
	m := NewMeta()
	m.DeclareAlias("$", "USD")
	assert.Equal(t, "USD", m.ResolveCommodity("$"))
	assert.Equal(t, "AAPL", m.ResolveCommodity("AAPL"))
	assert.True(t, m.Commodities["USD"])
}
