package bursa

// Meta holds the declarations made in the META section: the set of known
// commodity codes, the alias symbol-to-commodity map, and the raw
// untracked-account patterns.
//
// Meta is mutated in place as the META section is parsed, and the same
// instance is threaded by reference into amount parsing throughout the
// whole file. That is deliberate: alias lookup must observe the map as of
// the moment an amount is parsed, not a snapshot taken at parse start, so
// that an alias declared after its first use does not retroactively
// rewrite earlier parses (spec §9 and §4.2).
type Meta struct {
	Commodities map[string]bool
	Aliases     map[string]string
	Untracked   []string
}

// NewMeta returns an empty, ready-to-use Meta.
func NewMeta() Meta {
	return Meta{
		Commodities: make(map[string]bool),
		Aliases:     make(map[string]string),
	}
}

// ResolveCommodity returns the canonical commodity for a symbol or
// identifier as written in source: the alias target if one is declared,
// otherwise the text unchanged.
func (m *Meta) ResolveCommodity(symbolOrIdent string) string {
	if target, ok := m.Aliases[symbolOrIdent]; ok {
		return target
	}
	return symbolOrIdent
}

// DeclareCommodity adds a commodity code to the known set.
func (m *Meta) DeclareCommodity(code string) {
	m.Commodities[code] = true
}

// DeclareAlias records symbol -> commodity and implicitly declares
// commodity as known, per spec §4.5.
func (m *Meta) DeclareAlias(symbol, commodity string) {
	m.Aliases[symbol] = commodity
	m.Commodities[commodity] = true
}

// DeclareUntracked appends a raw untracked-account pattern string.
func (m *Meta) DeclareUntracked(pattern string) {
	m.Untracked = append(m.Untracked, pattern)
}
