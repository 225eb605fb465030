package graph

import (
	"fmt"
	"testing"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
)

// ring builds a combinational inverter ring inv_0 -> inv_1 -> ... ->
// inv_{n-1} -> inv_0.
func ring(t *testing.T, n int) *netlist.Netlist {
	t.Helper()
	nl := netlist.New("ring")
	notCell, _ := netlist.LookupCell("NOT")

	insts := make([]*netlist.Instance, n)
	nets := make([]*netlist.Net, n)
	for i := 0; i < n; i++ {
		inst, err := nl.AddInstance(netlist.Identifier(fmt.Sprintf("inv_%d", i)), notCell)
		if err != nil {
			t.Fatalf("AddInstance failed: %v", err)
		}
		net, err := nl.AddNet(netlist.Identifier(fmt.Sprintf("net_%d", i)))
		if err != nil {
			t.Fatalf("AddNet failed: %v", err)
		}
		insts[i], nets[i] = inst, net
	}
	for i := 0; i < n; i++ {
		if err := nl.ConnectOutput(insts[i], 0, nets[i]); err != nil {
			t.Fatalf("ConnectOutput failed: %v", err)
		}
		if err := nl.ConnectInput(insts[(i+1)%n], 0, nets[i]); err != nil {
			t.Fatalf("ConnectInput failed: %v", err)
		}
	}
	return nl
}

// chain builds in -> NOT x n -> out with the last net observed.
func chain(t *testing.T, n int) *netlist.Netlist {
	t.Helper()
	nl := netlist.New("chain")
	notCell, _ := netlist.LookupCell("NOT")

	prev, err := nl.AddNet("n_in")
	if err != nil {
		t.Fatalf("AddNet failed: %v", err)
	}
	if err := nl.MarkInput(prev); err != nil {
		t.Fatalf("MarkInput failed: %v", err)
	}
	for i := 0; i < n; i++ {
		inst, err := nl.AddInstance(netlist.Identifier(fmt.Sprintf("inv_%d", i)), notCell)
		if err != nil {
			t.Fatalf("AddInstance failed: %v", err)
		}
		next, err := nl.AddNet(netlist.Identifier(fmt.Sprintf("net_%d", i)))
		if err != nil {
			t.Fatalf("AddNet failed: %v", err)
		}
		if err := nl.ConnectInput(inst, 0, prev); err != nil {
			t.Fatalf("ConnectInput failed: %v", err)
		}
		if err := nl.ConnectOutput(inst, 0, next); err != nil {
			t.Fatalf("ConnectOutput failed: %v", err)
		}
		prev = next
	}
	if err := nl.MarkOutput(prev); err != nil {
		t.Fatalf("MarkOutput failed: %v", err)
	}
	return nl
}

func TestBuildMultiDiGraph(t *testing.T) {
	nl := ring(t, 3)
	g, err := For(nl)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	if g.NumNodes() != 3 || g.NumArcs() != 3 {
		t.Errorf("graph has %d nodes, %d arcs; want 3, 3", g.NumNodes(), g.NumArcs())
	}
}

func TestForCachesUntilMutation(t *testing.T) {
	nl := ring(t, 3)

	g1, err := For(nl)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	g2, err := For(nl)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	if g1 != g2 {
		t.Error("second For rebuilt the graph despite no mutation")
	}

	inst, _ := nl.Instance("inv_0")
	if _, err := nl.Disconnect(inst, 0); err != nil {
		t.Fatalf("Disconnect failed: %v", err)
	}
	g3, err := For(nl)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	if g3 == g1 {
		t.Error("For returned a stale graph after mutation")
	}
	if g3.NumArcs() != 2 {
		t.Errorf("rebuilt graph has %d arcs, want 2", g3.NumArcs())
	}
}

func TestParallelArcsPreserved(t *testing.T) {
	nl := netlist.New("parallel")
	notCell, _ := netlist.LookupCell("NOT")
	andCell, _ := netlist.LookupCell("AND2")

	src, err := nl.AddInstance("src", notCell)
	if err != nil {
		t.Fatalf("AddInstance failed: %v", err)
	}
	dst, err := nl.AddInstance("dst", andCell)
	if err != nil {
		t.Fatalf("AddInstance failed: %v", err)
	}
	net, err := nl.AddNet("w")
	if err != nil {
		t.Fatalf("AddNet failed: %v", err)
	}
	if err := nl.ConnectOutput(src, 0, net); err != nil {
		t.Fatalf("ConnectOutput failed: %v", err)
	}
	// One output fans out to both inputs of the same cell: two
	// distinct arcs between the same instance pair.
	if err := nl.ConnectInput(dst, 0, net); err != nil {
		t.Fatalf("ConnectInput failed: %v", err)
	}
	if err := nl.ConnectInput(dst, 1, net); err != nil {
		t.Fatalf("ConnectInput failed: %v", err)
	}

	g, err := For(nl)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	if g.NumArcs() != 2 {
		t.Fatalf("multigraph collapsed parallel arcs: %d arcs, want 2", g.NumArcs())
	}
	if g.Arcs()[0].DstPort == g.Arcs()[1].DstPort {
		t.Error("parallel arcs do not carry distinct target ports")
	}
}
