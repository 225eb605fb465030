package pass

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/graph"
	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/verilog"
)

// A Pass is one named operation over a shared netlist: either a pure
// analysis returning a report, or a mutation. Mutations go through the
// netlist store, which invalidates cached analyses; a pass must not
// hold an analysis reference across its own mutations.
type Pass interface {
	Name() string
	Run(nl *netlist.Netlist) (string, error)
}

// Print renders the current netlist back to Verilog source.
type Print struct{}

func (Print) Name() string { return "print" }

func (Print) Run(nl *netlist.Netlist) (string, error) {
	return verilog.Write(nl), nil
}

// DotGraph renders the connectivity as Graphviz DOT text.
type DotGraph struct{}

func (DotGraph) Name() string { return "dot-graph" }

func (DotGraph) Run(nl *netlist.Netlist) (string, error) {
	return nl.DotString(), nil
}

// Clean removes objects unreachable from the observable outputs.
type Clean struct{}

func (Clean) Name() string { return "clean" }

func (Clean) Run(nl *netlist.Netlist) (string, error) {
	removed := nl.Clean()
	return fmt.Sprintf("Cleaned %d objects. %d remain.", len(removed), nl.Len()), nil
}

// DisconnectRegisters clears every sequential instance's input
// connections.
type DisconnectRegisters struct{}

func (DisconnectRegisters) Name() string { return "disconnect-registers" }

func (DisconnectRegisters) Run(nl *netlist.Netlist) (string, error) {
	count := 0
	for reg := range nl.Matches((*netlist.Instance).IsSeq) {
		disc := false
		for k := 0; k < reg.NumInputs(); k++ {
			net, err := nl.Disconnect(reg, k)
			if err != nil {
				return "", err
			}
			disc = disc || net != nil
		}
		if disc {
			count++
		}
	}
	return fmt.Sprintf("Disconnected %d registers", count), nil
}

// DisconnectArcSet removes the connections forming the greedy feedback
// arc set, leaving the netlist acyclic.
type DisconnectArcSet struct{}

func (DisconnectArcSet) Name() string { return "disconnect-arc-set" }

func (DisconnectArcSet) Run(nl *netlist.Netlist) (string, error) {
	analysis, err := graph.For(nl)
	if err != nil {
		return "", err
	}
	// Materialize the targets before mutating: the first disconnect
	// invalidates the analysis the arcs came from.
	targets := make([]netlist.PortRef, 0)
	for _, arc := range analysis.GreedyFeedbackArcs() {
		targets = append(targets, netlist.PortRef{Inst: arc.Dst, Port: arc.DstPort})
	}
	for _, t := range targets {
		if _, err := nl.Disconnect(t.Inst, t.Port); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Disconnected %d arcs", len(targets)), nil
}

// MarkArcSet tags the source instance of every feedback arc with an
// "arc_" name prefix. An instance sourcing several arcs is prefixed
// once; the report counts arcs.
type MarkArcSet struct{}

func (MarkArcSet) Name() string { return "mark-arc-set" }

func (MarkArcSet) Run(nl *netlist.Netlist) (string, error) {
	analysis, err := graph.For(nl)
	if err != nil {
		return "", err
	}
	count := 0
	marked := make(map[*netlist.Instance]bool)
	var sources []*netlist.Instance
	for _, arc := range analysis.GreedyFeedbackArcs() {
		count++
		if !marked[arc.Src] {
			marked[arc.Src] = true
			sources = append(sources, arc.Src)
		}
	}
	for _, src := range sources {
		if err := nl.SetInstanceName(src, src.Name().WithPrefix("arc_")); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Marked %d arcs", count), nil
}

// RenameNets renames every net and instance sequentially to the fixed
// pattern __0__, __1__, ...
type RenameNets struct{}

func (RenameNets) Name() string { return "rename-nets" }

func (RenameNets) Run(nl *netlist.Netlist) (string, error) {
	err := nl.RenameNets(func(_ netlist.Identifier, i int) netlist.Identifier {
		return netlist.Identifier(fmt.Sprintf("__%d__", i))
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Renamed %d cells", nl.Len()), nil
}

// ReportSccs counts strongly connected components.
type ReportSccs struct{}

func (ReportSccs) Name() string { return "report-sccs" }

func (ReportSccs) Run(nl *netlist.Netlist) (string, error) {
	analysis, err := graph.For(nl)
	if err != nil {
		return "", err
	}
	sccs := analysis.SCCs()
	return fmt.Sprintf("Netlist contains %d non-trivial strongly connected components (%d total)",
		analysis.NonTrivialSCCs(), len(sccs)), nil
}

// ReportDepth reports the maximum combinational depth, or its absence
// when a combinational cycle makes it undefined.
type ReportDepth struct{}

func (ReportDepth) Name() string { return "report-depth" }

func (ReportDepth) Run(nl *netlist.Netlist) (string, error) {
	analysis, err := graph.CombDepthFor(nl)
	if err != nil {
		return "", err
	}
	if depth, ok := analysis.MaxDepth(); ok {
		return fmt.Sprintf("Maximum combinational depth: %d", depth), nil
	}
	return "Maximum combinational depth: undefined", nil
}

// all is the closed set of available passes; dispatch is by name over
// this fixed table.
var all = []Pass{
	Print{},
	DotGraph{},
	Clean{},
	DisconnectRegisters{},
	DisconnectArcSet{},
	MarkArcSet{},
	RenameNets{},
	ReportSccs{},
	ReportDepth{},
}

// Names returns the names of all available passes in table order.
func Names() []string {
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name()
	}
	return names
}

// Lookup resolves a pass by name.
func Lookup(name string) (Pass, error) {
	for _, p := range all {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown pass %q (available: %s)", name, strings.Join(Names(), ", "))
}
