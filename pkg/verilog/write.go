package verilog

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
)

// Write renders a netlist back to structural Verilog source. Ports are
// emitted in declaration order, internal nets as wire declarations,
// and every instance with named connections; disconnected ports are
// omitted.
func Write(nl *netlist.Netlist) string {
	var b strings.Builder

	var ports []string
	for _, net := range nl.Inputs() {
		ports = append(ports, string(net.Name()))
	}
	for _, net := range nl.Outputs() {
		ports = append(ports, string(net.Name()))
	}
	fmt.Fprintf(&b, "module %s(%s);\n", nl.Name(), strings.Join(ports, ", "))

	for _, net := range nl.Inputs() {
		fmt.Fprintf(&b, "  input %s;\n", net.Name())
	}
	for _, net := range nl.Outputs() {
		fmt.Fprintf(&b, "  output %s;\n", net.Name())
	}
	for _, net := range nl.Nets() {
		if net.IsExternalInput() || net.IsObservedOutput() {
			continue
		}
		fmt.Fprintf(&b, "  wire %s;\n", net.Name())
	}

	if len(nl.Instances()) > 0 {
		b.WriteString("\n")
	}
	for _, inst := range nl.Instances() {
		cell := inst.Cell()
		var conns []string
		for k, port := range cell.Inputs {
			if net := inst.Input(k); net != nil {
				conns = append(conns, fmt.Sprintf(".%s(%s)", port, net.Name()))
			}
		}
		for k, port := range cell.Outputs {
			if net := inst.Output(k); net != nil {
				conns = append(conns, fmt.Sprintf(".%s(%s)", port, net.Name()))
			}
		}
		fmt.Fprintf(&b, "  %s %s (%s);\n", cell.Name, inst.Name(), strings.Join(conns, ", "))
	}

	b.WriteString("endmodule\n")
	return b.String()
}
