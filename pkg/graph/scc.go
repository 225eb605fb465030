package graph

import "github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"

// SCCs partitions all instances into maximal strongly connected
// components using Tarjan's single-pass algorithm, O(nodes + arcs).
// Every instance appears in exactly one component; a singleton with no
// self-loop is its own trivial component. Root order follows instance
// insertion order, so the partition is deterministic for a fixed
// netlist.
func (g *MultiDiGraph) SCCs() [][]*netlist.Instance {
	if g.sccs == nil {
		g.sccs = tarjanSCC(len(g.nodes), func(v int) []int {
			succs := make([]int, 0, len(g.out[v]))
			for _, a := range g.out[v] {
				succs = append(succs, g.index[g.arcs[a].Dst])
			}
			return succs
		})
	}
	comps := make([][]*netlist.Instance, len(g.sccs))
	for i, comp := range g.sccs {
		insts := make([]*netlist.Instance, len(comp))
		for j, v := range comp {
			insts[j] = g.nodes[v]
		}
		comps[i] = insts
	}
	return comps
}

// NonTrivialSCCs counts components of size greater than one.
func (g *MultiDiGraph) NonTrivialSCCs() int {
	count := 0
	for _, comp := range g.SCCs() {
		if len(comp) > 1 {
			count++
		}
	}
	return count
}

// tarjanSCC runs Tarjan's algorithm over nodes 0..n-1 with successors
// given by succs. Components are emitted in completion order.
func tarjanSCC(n int, succs func(int) []int) [][]int {
	const unvisited = -1

	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = unvisited
	}

	var (
		stack []int
		comps [][]int
		next  int
	)

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range succs(v) {
			if index[w] == unvisited {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && index[w] < lowlink[v] {
				lowlink[v] = index[w]
			}
		}

		if lowlink[v] == index[v] {
			var comp []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			comps = append(comps, comp)
		}
	}

	for v := 0; v < n; v++ {
		if index[v] == unvisited {
			strongconnect(v)
		}
	}
	return comps
}
