package netlist

import (
	"fmt"
	"strings"
)

// DotString renders the netlist connectivity in Graphviz DOT syntax.
// Instances become boxes (sequential cells double-bordered), top-level
// ports become ellipses, and every output-to-input connection becomes
// one labeled edge.
func (n *Netlist) DotString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", n.name)
	b.WriteString("  rankdir=LR;\n")

	for _, inst := range n.instances {
		shape := "box"
		if inst.IsSeq() {
			shape = "box, peripheries=2"
		}
		fmt.Fprintf(&b, "  %q [shape=%s, label=\"%s\\n%s\"];\n", inst.name, shape, inst.name, inst.cell.Name)
	}
	for _, net := range n.inputs {
		fmt.Fprintf(&b, "  \"port:%s\" [shape=ellipse, label=%q];\n", net.name, net.name)
	}
	for _, net := range n.outputs {
		fmt.Fprintf(&b, "  \"port:%s\" [shape=ellipse, label=%q];\n", net.name, net.name)
	}

	for _, net := range n.nets {
		var src string
		switch {
		case net.driver != nil:
			src = string(net.driver.inst.name)
		case net.external:
			src = "port:" + string(net.name)
		default:
			continue
		}
		for _, ref := range net.consumers {
			fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", src, ref.Inst.name, net.name)
		}
		if net.observed {
			fmt.Fprintf(&b, "  %q -> \"port:%s\" [label=%q];\n", src, net.name, net.name)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
