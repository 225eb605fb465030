// Package verilog is the netlist frontend and backend: a parser for a
// structural Verilog subset (modules, scalar ports and wires,
// primitive instantiations, continuous assignments) built on
// participle, a compiler from the parse tree into a netlist, and a
// writer that renders a netlist back to source form.
//
// Vendor-specific port naming is handled by CellOverride hooks applied
// during compilation; XilinxOverrides adapts the INV primitive's I/O
// port names.
package verilog
