package graph

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
)

func TestGreedyFeedbackArcsRing(t *testing.T) {
	nl := ring(t, 3)
	g, err := For(nl)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}

	fas := g.GreedyFeedbackArcs()
	if len(fas) != 1 {
		t.Fatalf("3-ring feedback arc set has %d arcs, want 1", len(fas))
	}
}

func TestGreedyFeedbackArcsDAG(t *testing.T) {
	nl := chain(t, 5)
	g, err := For(nl)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	if fas := g.GreedyFeedbackArcs(); len(fas) != 0 {
		t.Errorf("acyclic netlist has %d feedback arcs, want 0", len(fas))
	}
}

func TestGreedyFeedbackArcsDeterministic(t *testing.T) {
	nl := ring(t, 4)
	g, err := For(nl)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	a := g.GreedyFeedbackArcs()
	b := g.GreedyFeedbackArcs()
	if len(a) != len(b) {
		t.Fatalf("repeated runs disagree: %d vs %d arcs", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("arc %d differs between runs", i)
		}
	}
}

// TestAcyclicAfterRemoval checks the load-bearing postcondition:
// disconnecting the reported arcs leaves no SCC of size > 1.
func TestAcyclicAfterRemoval(t *testing.T) {
	builders := map[string]func() *netlist.Netlist{
		"ring3":     func() *netlist.Netlist { return ring(t, 3) },
		"ring7":     func() *netlist.Netlist { return ring(t, 7) },
		"two-rings": func() *netlist.Netlist { return twoRings(t) },
		"self-loop": func() *netlist.Netlist { return selfLoop(t) },
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			nl := build()
			g, err := For(nl)
			if err != nil {
				t.Fatalf("For failed: %v", err)
			}
			targets := make([]netlist.PortRef, 0)
			for _, arc := range g.GreedyFeedbackArcs() {
				targets = append(targets, netlist.PortRef{Inst: arc.Dst, Port: arc.DstPort})
			}
			for _, ref := range targets {
				if _, err := nl.Disconnect(ref.Inst, ref.Port); err != nil {
					t.Fatalf("Disconnect failed: %v", err)
				}
			}

			after, err := For(nl)
			if err != nil {
				t.Fatalf("For failed: %v", err)
			}
			if after.NonTrivialSCCs() != 0 {
				t.Errorf("%d non-trivial SCCs remain after arc removal", after.NonTrivialSCCs())
			}
			for _, arc := range after.Arcs() {
				if arc.Src == arc.Dst {
					t.Error("self-loop survives arc removal")
				}
			}
		})
	}
}

// twoRings builds two disjoint inverter rings bridged by one acyclic
// arc.
func twoRings(t *testing.T) *netlist.Netlist {
	t.Helper()
	nl := netlist.New("tworings")
	notCell, _ := netlist.LookupCell("NOT")
	andCell, _ := netlist.LookupCell("AND2")

	mk := func(prefix string, n int) []*netlist.Instance {
		insts := make([]*netlist.Instance, n)
		for i := 0; i < n; i++ {
			inst, err := nl.AddInstance(netlist.Identifier(prefix+"_inv_"+string(rune('0'+i))), notCell)
			if err != nil {
				t.Fatalf("AddInstance failed: %v", err)
			}
			insts[i] = inst
		}
		for i := 0; i < n; i++ {
			net, err := nl.AddNet(netlist.Identifier(prefix + "_net_" + string(rune('0'+i))))
			if err != nil {
				t.Fatalf("AddNet failed: %v", err)
			}
			if err := nl.ConnectOutput(insts[i], 0, net); err != nil {
				t.Fatalf("ConnectOutput failed: %v", err)
			}
			if err := nl.ConnectInput(insts[(i+1)%n], 0, net); err != nil {
				t.Fatalf("ConnectInput failed: %v", err)
			}
		}
		return insts
	}

	mk("a", 3)
	mk("b", 4)

	// Bridge: a ring net also feeds an AND gate in front of ring b.
	bridge, err := nl.AddInstance("bridge_and", andCell)
	if err != nil {
		t.Fatalf("AddInstance failed: %v", err)
	}
	aNet, _ := nl.Net("a_net_0")
	bNet, _ := nl.Net("b_net_0")
	if err := nl.ConnectInput(bridge, 0, aNet); err != nil {
		t.Fatalf("ConnectInput failed: %v", err)
	}
	if err := nl.ConnectInput(bridge, 1, bNet); err != nil {
		t.Fatalf("ConnectInput failed: %v", err)
	}
	return nl
}

func selfLoop(t *testing.T) *netlist.Netlist {
	t.Helper()
	nl := netlist.New("selfloop")
	notCell, _ := netlist.LookupCell("NOT")
	inst, err := nl.AddInstance("loop_inv", notCell)
	if err != nil {
		t.Fatalf("AddInstance failed: %v", err)
	}
	net, err := nl.AddNet("loop_net")
	if err != nil {
		t.Fatalf("AddNet failed: %v", err)
	}
	if err := nl.ConnectOutput(inst, 0, net); err != nil {
		t.Fatalf("ConnectOutput failed: %v", err)
	}
	if err := nl.ConnectInput(inst, 0, net); err != nil {
		t.Fatalf("ConnectInput failed: %v", err)
	}
	return nl
}

func TestGreedyFeedbackArcsLeavesCrossComponentArcsAlone(t *testing.T) {
	nl := twoRings(t)
	g, err := For(nl)
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	for _, arc := range g.GreedyFeedbackArcs() {
		if arc.Dst.Name() == "bridge_and" {
			t.Errorf("feedback set contains the acyclic bridge arc into %q", arc.Dst.Name())
		}
	}
}
