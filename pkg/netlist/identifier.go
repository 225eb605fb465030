package netlist

// Identifier names a netlist object (instance or net). Identifiers
// compare and sort by their full composed text, so prefixing is a pure
// string operation with no extra state to keep in sync.
type Identifier string

// WithPrefix returns a new identifier composed of prefix + id.
func (id Identifier) WithPrefix(prefix string) Identifier {
	return Identifier(prefix) + id
}

// String returns the identifier text.
func (id Identifier) String() string {
	return string(id)
}
