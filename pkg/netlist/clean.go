package netlist

// ObjectKind distinguishes the two kinds of netlist objects.
type ObjectKind int

const (
	KindInstance ObjectKind = iota
	KindNet
)

// String returns "instance" or "net".
func (k ObjectKind) String() string {
	if k == KindInstance {
		return "instance"
	}
	return "net"
}

// Removed describes one object deleted by Clean.
type Removed struct {
	Kind ObjectKind
	Name Identifier
}

// Clean removes every instance and net that is unreachable from the
// netlist's observable outputs, including undriven nets with no
// consumers, and returns exactly the removed set.
//
// Reachability walks backward from the nets read by top-level outputs:
// a reachable net keeps its driving instance alive, and a live instance
// keeps all of its input nets alive. Everything unmarked is deleted and
// surviving objects have any back-references to deleted objects
// stripped. Running Clean twice in a row removes nothing the second
// time.
func (n *Netlist) Clean() []Removed {
	liveNets := make(map[*Net]bool)
	liveInsts := make(map[*Instance]bool)

	var work []*Net
	for _, net := range n.outputs {
		if !liveNets[net] {
			liveNets[net] = true
			work = append(work, net)
		}
	}
	for len(work) > 0 {
		net := work[len(work)-1]
		work = work[:len(work)-1]
		if net.driver == nil {
			continue
		}
		inst := net.driver.inst
		if liveInsts[inst] {
			continue
		}
		liveInsts[inst] = true
		for _, in := range inst.ins {
			if in != nil && !liveNets[in] {
				liveNets[in] = true
				work = append(work, in)
			}
		}
	}

	var removed []Removed

	insts := n.instances[:0]
	for _, inst := range n.instances {
		if liveInsts[inst] {
			insts = append(insts, inst)
			continue
		}
		removed = append(removed, Removed{Kind: KindInstance, Name: inst.name})
		delete(n.instIndex, inst.name)
		for k, net := range inst.ins {
			if net != nil && liveNets[net] {
				net.dropConsumer(inst, k)
			}
			inst.ins[k] = nil
		}
		inst.owner = nil
	}
	n.instances = insts

	nets := n.nets[:0]
	for _, net := range n.nets {
		if liveNets[net] {
			nets = append(nets, net)
			continue
		}
		removed = append(removed, Removed{Kind: KindNet, Name: net.name})
		delete(n.netIndex, net.name)
		if net.driver != nil && liveInsts[net.driver.inst] {
			// Live instance driving a dead net: leave the output port
			// dangling.
			net.driver.inst.outs[net.driver.port] = nil
		}
		net.driver = nil
		net.consumers = nil
		net.owner = nil
	}
	n.nets = nets

	n.inputs = filterLiveNets(n.inputs, liveNets)
	n.outputs = filterLiveNets(n.outputs, liveNets)

	if len(removed) > 0 {
		n.InvalidateAnalyses()
	}
	return removed
}

func filterLiveNets(nets []*Net, live map[*Net]bool) []*Net {
	out := nets[:0]
	for _, net := range nets {
		if live[net] {
			out = append(out, net)
		}
	}
	return out
}
