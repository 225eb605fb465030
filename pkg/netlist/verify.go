package netlist

// Verify checks the global structural invariants of the netlist and
// returns a *VerificationError describing the first violation found,
// or nil. Checks are fail-fast, not exhaustive.
//
// Invariants checked:
//   - instance port slices match the cell's declared arity
//   - every connected input references a live net of this netlist, and
//     that net lists the port among its consumers
//   - every net consumer entry points back at an input that references
//     the net (no orphaned back-references)
//   - a net's driver back-reference is consistent with the driving
//     instance's output port, and external-input nets have no driver
//   - live instance and net names are pairwise distinct across the
//     shared namespace
func (n *Netlist) Verify() error {
	names := make(map[Identifier]bool, n.Len())

	for _, inst := range n.instances {
		if len(inst.ins) != len(inst.cell.Inputs) || len(inst.outs) != len(inst.cell.Outputs) {
			return &VerificationError{Object: inst.name, Invariant: "port count does not match cell arity"}
		}
		if names[inst.name] {
			return &VerificationError{Object: inst.name, Invariant: "duplicate object name"}
		}
		names[inst.name] = true

		for k, net := range inst.ins {
			if net == nil {
				continue
			}
			if net.owner != n {
				return &VerificationError{Object: inst.name, Invariant: "input references a net outside this netlist"}
			}
			if got, ok := n.netIndex[net.name]; !ok || got != net {
				return &VerificationError{Object: inst.name, Invariant: "input references a net not present in the netlist"}
			}
			if !net.hasConsumer(inst, k) {
				return &VerificationError{Object: net.name, Invariant: "consumer list missing a connected input port"}
			}
		}
		for k, net := range inst.outs {
			if net == nil {
				continue
			}
			if net.driver == nil || net.driver.inst != inst || net.driver.port != k {
				return &VerificationError{Object: net.name, Invariant: "driver back-reference does not match driving output"}
			}
		}
	}

	for _, net := range n.nets {
		if names[net.name] {
			return &VerificationError{Object: net.name, Invariant: "duplicate object name"}
		}
		names[net.name] = true

		if net.external && net.driver != nil {
			return &VerificationError{Object: net.name, Invariant: "external input net has an instance driver"}
		}
		if net.driver != nil {
			d := net.driver
			if d.inst.owner != n || d.port < 0 || d.port >= len(d.inst.outs) || d.inst.outs[d.port] != net {
				return &VerificationError{Object: net.name, Invariant: "driver reference is stale"}
			}
		}
		for _, ref := range net.consumers {
			if ref.Inst.owner != n || ref.Port < 0 || ref.Port >= len(ref.Inst.ins) || ref.Inst.ins[ref.Port] != net {
				return &VerificationError{Object: net.name, Invariant: "consumer list has an orphaned back-reference"}
			}
		}
	}

	return nil
}

func (net *Net) hasConsumer(inst *Instance, port int) bool {
	for _, ref := range net.consumers {
		if ref.Inst == inst && ref.Port == port {
			return true
		}
	}
	return false
}
