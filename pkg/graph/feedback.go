package graph

// GreedyFeedbackArcs returns a set of arcs whose removal leaves the
// graph with no strongly connected component of size greater than one.
// The set is not guaranteed minimal (that problem is NP-hard).
//
// Heuristic: Eades–Lin–Smyth greedy vertex ordering. Sinks are peeled
// to the tail of the order and sources to the head; when neither
// exists the node maximizing out-degree minus in-degree over the
// remaining subgraph is appended to the head. All ties break by
// instance name (lexical), so the result is deterministic for a fixed
// netlist. Arcs pointing backward in the final order, restricted to
// arcs inside a non-trivial component plus self-loops, form the
// reported set; cross-component arcs never lie on a cycle and are left
// alone. Self-loops are ignored for degree bookkeeping but always
// reported.
func (g *MultiDiGraph) GreedyFeedbackArcs() []Arc {
	n := len(g.nodes)
	if n == 0 {
		return nil
	}

	outdeg := make([]int, n)
	indeg := make([]int, n)
	for _, a := range g.arcs {
		s, d := g.index[a.Src], g.index[a.Dst]
		if s == d {
			continue
		}
		outdeg[s]++
		indeg[d]++
	}

	removed := make([]bool, n)
	remove := func(v int) {
		removed[v] = true
		for _, a := range g.out[v] {
			d := g.index[g.arcs[a].Dst]
			if d != v && !removed[d] {
				indeg[d]--
			}
		}
		for _, a := range g.in[v] {
			s := g.index[g.arcs[a].Src]
			if s != v && !removed[s] {
				outdeg[s]--
			}
		}
	}

	// pick returns the lexically smallest live node satisfying want,
	// or -1.
	pick := func(want func(v int) bool) int {
		best := -1
		for v := 0; v < n; v++ {
			if removed[v] || !want(v) {
				continue
			}
			if best < 0 || g.nodes[v].Name() < g.nodes[best].Name() {
				best = v
			}
		}
		return best
	}

	var head, tail []int
	for remaining := n; remaining > 0; remaining-- {
		if v := pick(func(v int) bool { return outdeg[v] == 0 }); v >= 0 {
			tail = append(tail, v)
			remove(v)
			continue
		}
		if v := pick(func(v int) bool { return indeg[v] == 0 }); v >= 0 {
			head = append(head, v)
			remove(v)
			continue
		}
		best := -1
		for v := 0; v < n; v++ {
			if removed[v] {
				continue
			}
			switch {
			case best < 0,
				outdeg[v]-indeg[v] > outdeg[best]-indeg[best],
				outdeg[v]-indeg[v] == outdeg[best]-indeg[best] && g.nodes[v].Name() < g.nodes[best].Name():
				best = v
			}
		}
		head = append(head, best)
		remove(best)
	}

	pos := make([]int, n)
	for i, v := range head {
		pos[v] = i
	}
	for i, v := range tail {
		pos[v] = n - 1 - i
	}

	parts := g.sccPartition()
	comp := make([]int, n)
	nontrivial := make([]bool, len(parts))
	for id, c := range parts {
		for _, v := range c {
			comp[v] = id
		}
		nontrivial[id] = len(c) > 1
	}

	var fas []Arc
	for _, a := range g.arcs {
		s, d := g.index[a.Src], g.index[a.Dst]
		if s == d {
			fas = append(fas, a)
			continue
		}
		if pos[s] >= pos[d] && comp[s] == comp[d] && nontrivial[comp[s]] {
			fas = append(fas, a)
		}
	}
	return fas
}

func (g *MultiDiGraph) sccPartition() [][]int {
	if g.sccs == nil {
		g.SCCs()
	}
	return g.sccs
}
