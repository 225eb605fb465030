package verilog

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
)

// CellOverride lets the caller substitute a vendor-specific cell
// definition during compilation. It is called once per instantiation
// with the cell name and the default definition; returning nil keeps
// the default.
type CellOverride func(cell netlist.Identifier, def *netlist.CellType) *netlist.CellType

// XilinxOverrides adapts Xilinx port naming: the INV primitive uses
// I/O instead of the library's A/Y.
func XilinxOverrides(cell netlist.Identifier, def *netlist.CellType) *netlist.CellType {
	if cell != "INV" {
		return nil
	}
	remapped, err := def.RemapInput(0, "I")
	if err != nil {
		return nil
	}
	remapped, err = remapped.RemapOutput(0, "O")
	if err != nil {
		return nil
	}
	return remapped
}

// outputPortNames are the conventional output port names used to infer
// the direction of ports on cells not present in the library.
var outputPortNames = map[string]bool{
	"O": true, "Q": true, "Y": true, "Z": true, "OUT": true,
}

// Compile builds a netlist from a parsed source file.
func Compile(f *SourceFile) (*netlist.Netlist, error) {
	return CompileOverrides(f, nil)
}

// CompileOverrides builds a netlist from a parsed source file,
// applying override to every instantiated cell definition. The file
// must contain exactly one module, all signals must be scalar and
// declared, and every net may have at most one driver.
func CompileOverrides(f *SourceFile, override CellOverride) (*netlist.Netlist, error) {
	if len(f.Modules) != 1 {
		return nil, inputf("expected exactly one module, found %d", len(f.Modules))
	}
	m := f.Modules[0]
	c := &compiler{
		nl:       netlist.New(m.Name),
		dirs:     make(map[string]string),
		override: override,
	}
	if err := c.module(m); err != nil {
		return nil, err
	}
	return c.nl, nil
}

type compiler struct {
	nl       *netlist.Netlist
	dirs     map[string]string // signal name -> "input" | "output"
	override CellOverride
}

func (c *compiler) module(m *Module) error {
	// Collect directions first: ANSI headers carry them inline,
	// non-ANSI headers rely on body declarations.
	for _, p := range m.Ports {
		if p.Dir != "" {
			if err := c.direction(p.Name, p.Dir); err != nil {
				return err
			}
		}
	}
	for _, item := range m.Items {
		d := item.Decl
		if d == nil || d.Kind == "wire" {
			continue
		}
		if d.Range != nil {
			return inputf("module %s: vector signals are not supported", m.Name)
		}
		for _, name := range d.Names {
			if err := c.direction(name, d.Kind); err != nil {
				return err
			}
		}
	}

	// Nets: header ports in list order, then body declarations.
	for _, p := range m.Ports {
		if err := c.declare(p.Name); err != nil {
			return err
		}
		if c.dirs[p.Name] == "" {
			return inputf("port %q has no direction", p.Name)
		}
	}
	for _, item := range m.Items {
		d := item.Decl
		if d == nil {
			continue
		}
		if d.Range != nil {
			return inputf("module %s: vector signals are not supported", m.Name)
		}
		for _, name := range d.Names {
			if err := c.declare(name); err != nil {
				return err
			}
		}
	}
	for _, net := range c.nl.Nets() {
		var err error
		switch c.dirs[string(net.Name())] {
		case "input":
			err = c.nl.MarkInput(net)
		case "output":
			err = c.nl.MarkOutput(net)
		}
		if err != nil {
			return &InputError{Msg: fmt.Sprintf("port %q", net.Name()), Err: err}
		}
	}

	assigns := 0
	for _, item := range m.Items {
		switch {
		case item.Assign != nil:
			if err := c.assign(item.Assign, assigns); err != nil {
				return err
			}
			assigns++
		case item.Inst != nil:
			if err := c.instantiate(item.Inst); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *compiler) direction(name, kind string) error {
	if kind == "inout" {
		return inputf("signal %q: inout ports are not supported", name)
	}
	if prev, ok := c.dirs[name]; ok && prev != kind {
		return inputf("signal %q declared both %s and %s", name, prev, kind)
	}
	c.dirs[name] = kind
	return nil
}

func (c *compiler) declare(name string) error {
	if _, exists := c.nl.Net(netlist.Identifier(name)); exists {
		return nil
	}
	if _, err := c.nl.AddNet(netlist.Identifier(name)); err != nil {
		return &InputError{Msg: fmt.Sprintf("signal %q", name), Err: err}
	}
	return nil
}

func (c *compiler) net(name string) (*netlist.Net, error) {
	net, ok := c.nl.Net(netlist.Identifier(name))
	if !ok {
		return nil, inputf("undeclared signal %q", name)
	}
	return net, nil
}

// assign compiles a continuous assignment as a buffer instance named
// assign$<i>.
func (c *compiler) assign(a *Assign, i int) error {
	def, _ := netlist.LookupCell("BUF")
	inst, err := c.nl.AddInstance(netlist.Identifier(fmt.Sprintf("assign$%d", i)), def)
	if err != nil {
		return &InputError{Msg: "assign", Err: err}
	}
	src, err := c.net(a.RHS)
	if err != nil {
		return err
	}
	dst, err := c.net(a.LHS)
	if err != nil {
		return err
	}
	if err := c.nl.ConnectInput(inst, 0, src); err != nil {
		return &InputError{Msg: "assign", Err: err}
	}
	if err := c.nl.ConnectOutput(inst, 0, dst); err != nil {
		return &InputError{Msg: "assign", Err: err}
	}
	return nil
}

func (c *compiler) instantiate(inst *Instantiation) error {
	def, known := netlist.LookupCell(inst.Cell)
	if !known {
		var err error
		def, err = inferCell(inst)
		if err != nil {
			return err
		}
	}
	if c.override != nil {
		if o := c.override(netlist.Identifier(inst.Cell), def); o != nil {
			def = o
		}
	}

	placed, err := c.nl.AddInstance(netlist.Identifier(inst.Name), def)
	if err != nil {
		return &InputError{Msg: fmt.Sprintf("instance %q", inst.Name), Err: err}
	}

	for k, conn := range inst.Conns {
		var port, signal string
		switch {
		case conn.Named != nil:
			port, signal = conn.Named.Port, conn.Named.Net
		case known:
			// Positional connections follow input-then-output order.
			if k < len(def.Inputs) {
				port = def.Inputs[k]
			} else if k-len(def.Inputs) < len(def.Outputs) {
				port = def.Outputs[k-len(def.Inputs)]
			} else {
				return inputf("instance %q: too many connections for cell %s", inst.Name, def.Name)
			}
			signal = conn.Positional
		default:
			return inputf("instance %q: positional connections require a known cell, %s is not in the library", inst.Name, inst.Cell)
		}

		net, err := c.net(signal)
		if err != nil {
			return err
		}
		if in := def.InputIndex(port); in >= 0 {
			err = c.nl.ConnectInput(placed, in, net)
		} else if out := def.OutputIndex(port); out >= 0 {
			err = c.nl.ConnectOutput(placed, out, net)
		} else {
			return inputf("instance %q: cell %s has no port %q", inst.Name, def.Name, port)
		}
		if err != nil {
			return &InputError{Msg: fmt.Sprintf("instance %q port %q", inst.Name, port), Err: err}
		}
	}
	return nil
}

// inferCell derives an opaque combinational cell definition for a cell
// name not present in the library. Named connections are required;
// ports with conventional output names (O, Q, Y, Z, OUT) become
// outputs, the rest inputs, in order of appearance.
func inferCell(inst *Instantiation) (*netlist.CellType, error) {
	def := &netlist.CellType{Name: inst.Cell}
	for _, conn := range inst.Conns {
		if conn.Named == nil {
			return nil, inputf("instance %q: positional connections require a known cell, %s is not in the library", inst.Name, inst.Cell)
		}
		if outputPortNames[conn.Named.Port] {
			def.Outputs = append(def.Outputs, conn.Named.Port)
		} else {
			def.Inputs = append(def.Inputs, conn.Named.Port)
		}
	}
	return def, nil
}
