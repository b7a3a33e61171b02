package bursa

import "github.com/shopspring/decimal"

// Sign is the explicit or absent sign of an Amount lexeme.
type Sign int

const (
	// SignUnspecified marks an amount written without a leading + or -,
	// which the grammar only permits in contexts such as unsigned budget
	// allocations.
	SignUnspecified Sign = iota
	SignPositive
	SignNegative
)

func (s Sign) String() string {
	switch s {
	case SignPositive:
		return "+"
	case SignNegative:
		return "-"
	default:
		return ""
	}
}

// Amount is a decoded amount lexeme: a sign, a non-negative decimal value,
// and a canonical commodity code (after alias resolution).
//
// Value is kept as a decimal.Decimal rather than a float so downstream
// balance/rollover code (out of scope for this parser) can do exact
// arithmetic. Raw preserves the exact numeral text as written (the digits
// and optional '.', without the sign or commodity), so a caller that needs
// to re-derive a different
// numeric representation never has to re-acquire the source.
type Amount struct {
	Sign      Sign
	Value     decimal.Decimal
	Raw       string
	Commodity string
	Span      Span
}

// Signed returns Value with Sign applied; SignUnspecified is treated as
// positive.
func (a Amount) Signed() decimal.Decimal {
	if a.Sign == SignNegative {
		return a.Value.Neg()
	}
	return a.Value
}
