package netlist

// CellType describes a primitive cell: its name, the names and order of
// its input and output ports, and whether it is sequential. Instances
// share CellType values; RemapInput/RemapOutput return modified copies
// so a remap never leaks into unrelated instances.
type CellType struct {
	Name    string
	Inputs  []string
	Outputs []string
	Seq     bool
}

// IsSeq reports whether the cell is sequential (a register). Sequential
// cells break combinational paths.
func (c *CellType) IsSeq() bool {
	return c.Seq
}

// RemapInput returns a copy of the cell with input port i renamed.
// Used by vendor overrides to normalize ad hoc port naming.
func (c *CellType) RemapInput(i int, name string) (*CellType, error) {
	if i < 0 || i >= len(c.Inputs) {
		return nil, structuralf("remap-input", Identifier(c.Name), "no input port %d (cell has %d)", i, len(c.Inputs))
	}
	out := c.clone()
	out.Inputs[i] = name
	return out, nil
}

// RemapOutput returns a copy of the cell with output port i renamed.
func (c *CellType) RemapOutput(i int, name string) (*CellType, error) {
	if i < 0 || i >= len(c.Outputs) {
		return nil, structuralf("remap-output", Identifier(c.Name), "no output port %d (cell has %d)", i, len(c.Outputs))
	}
	out := c.clone()
	out.Outputs[i] = name
	return out, nil
}

// InputIndex returns the index of the named input port, or -1.
func (c *CellType) InputIndex(name string) int {
	for i, n := range c.Inputs {
		if n == name {
			return i
		}
	}
	return -1
}

// OutputIndex returns the index of the named output port, or -1.
func (c *CellType) OutputIndex(name string) int {
	for i, n := range c.Outputs {
		if n == name {
			return i
		}
	}
	return -1
}

func (c *CellType) clone() *CellType {
	out := &CellType{
		Name:    c.Name,
		Inputs:  make([]string, len(c.Inputs)),
		Outputs: make([]string, len(c.Outputs)),
		Seq:     c.Seq,
	}
	copy(out.Inputs, c.Inputs)
	copy(out.Outputs, c.Outputs)
	return out
}

// builtins is the primitive cell library. Combinational gates use the
// common A/B/S input and Y output naming; registers use C/D/Q with
// Xilinx-style clock-enable and reset pins where applicable.
var builtins = []*CellType{
	{Name: "BUF", Inputs: []string{"A"}, Outputs: []string{"Y"}},
	{Name: "NOT", Inputs: []string{"A"}, Outputs: []string{"Y"}},
	{Name: "INV", Inputs: []string{"A"}, Outputs: []string{"Y"}},
	{Name: "AND2", Inputs: []string{"A", "B"}, Outputs: []string{"Y"}},
	{Name: "OR2", Inputs: []string{"A", "B"}, Outputs: []string{"Y"}},
	{Name: "NAND2", Inputs: []string{"A", "B"}, Outputs: []string{"Y"}},
	{Name: "NOR2", Inputs: []string{"A", "B"}, Outputs: []string{"Y"}},
	{Name: "XOR2", Inputs: []string{"A", "B"}, Outputs: []string{"Y"}},
	{Name: "XNOR2", Inputs: []string{"A", "B"}, Outputs: []string{"Y"}},
	{Name: "MUX2", Inputs: []string{"A", "B", "S"}, Outputs: []string{"Y"}},
	{Name: "DFF", Inputs: []string{"C", "D"}, Outputs: []string{"Q"}, Seq: true},
	{Name: "FDRE", Inputs: []string{"C", "CE", "D", "R"}, Outputs: []string{"Q"}, Seq: true},
	{Name: "FDCE", Inputs: []string{"C", "CE", "CLR", "D"}, Outputs: []string{"Q"}, Seq: true},
}

var builtinIndex = func() map[string]*CellType {
	m := make(map[string]*CellType, len(builtins))
	for _, c := range builtins {
		m[c.Name] = c
	}
	return m
}()

// LookupCell returns the built-in cell definition with the given name.
func LookupCell(name string) (*CellType, bool) {
	c, ok := builtinIndex[name]
	return c, ok
}
