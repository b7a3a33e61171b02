package bursa

// Ledger is the root value produced by parsing a .bursa source file. Budget
// and Ledger are ordered in source encounter order regardless of how many
// times each section appears (spec invariant: sections may repeat or
// appear out of order; entries are still appended in encounter order).
type Ledger struct {
	Meta   Meta
	Budget []BudgetEntry
	Ledger []LedgerEntry
}

// NewLedger returns an empty, ready-to-use Ledger.
func NewLedger() *Ledger {
	meta := NewMeta()
	return &Ledger{Meta: meta}
}
