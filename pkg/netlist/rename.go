package netlist

// Namer produces a replacement identifier for an object given its
// current name and a stable ordinal index.
type Namer func(old Identifier, index int) Identifier

// RenameNets renames every net and instance using namer. Nets are
// numbered first in insertion order, instances continue the sequence.
// If two objects would receive the same resulting name the netlist is
// left unchanged and a *StructuralError is returned.
func (n *Netlist) RenameNets(namer Namer) error {
	total := len(n.nets) + len(n.instances)
	newNames := make([]Identifier, 0, total)
	seen := make(map[Identifier]int, total)

	idx := 0
	for _, net := range n.nets {
		id := namer(net.name, idx)
		if prev, dup := seen[id]; dup {
			return structuralf("rename-nets", id, "indices %d and %d produce the same name", prev, idx)
		}
		seen[id] = idx
		newNames = append(newNames, id)
		idx++
	}
	for _, inst := range n.instances {
		id := namer(inst.name, idx)
		if prev, dup := seen[id]; dup {
			return structuralf("rename-nets", id, "indices %d and %d produce the same name", prev, idx)
		}
		seen[id] = idx
		newNames = append(newNames, id)
		idx++
	}

	clear(n.netIndex)
	clear(n.instIndex)
	idx = 0
	for _, net := range n.nets {
		net.name = newNames[idx]
		n.netIndex[net.name] = net
		idx++
	}
	for _, inst := range n.instances {
		inst.name = newNames[idx]
		n.instIndex[inst.name] = inst
		idx++
	}

	n.InvalidateAnalyses()
	return nil
}
