package graph

import "github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"

// CombDepth is the longest-combinational-path analysis. Sequential
// instances break paths: a path starts after a register output and its
// length counts only the combinational instances on it. When the
// combinational-only subgraph contains a cycle no finite longest path
// exists and the depth is undefined.
type CombDepth struct {
	depth   int
	defined bool
}

// MaxDepth returns the maximum combinational depth and whether it is
// defined. An empty or purely sequential netlist has depth 0.
func (d *CombDepth) MaxDepth() (int, bool) {
	return d.depth, d.defined
}

// CombDepthFor returns the cached depth analysis for nl, building and
// caching it on first request.
func CombDepthFor(nl *netlist.Netlist) (*CombDepth, error) {
	return analysisFor(nl, KindCombDepth, BuildCombDepth)
}

// BuildCombDepth computes the depth analysis from the connectivity
// multigraph. Cyclicity of the combinational subgraph is detected via
// its strongly connected components (any component of two or more
// nodes, or a combinational self-loop) rather than by walking paths,
// so the analysis terminates on any input.
func BuildCombDepth(nl *netlist.Netlist) (*CombDepth, error) {
	g, err := For(nl)
	if err != nil {
		return nil, err
	}

	n := len(g.nodes)
	comb := make([]bool, n)
	for v, inst := range g.nodes {
		comb[v] = !inst.IsSeq()
	}

	combSuccs := func(v int) []int {
		if !comb[v] {
			return nil
		}
		var succs []int
		for _, a := range g.out[v] {
			if d := g.index[g.arcs[a].Dst]; comb[d] {
				succs = append(succs, d)
			}
		}
		return succs
	}

	for _, compNodes := range tarjanSCC(n, combSuccs) {
		if len(compNodes) > 1 && comb[compNodes[0]] {
			return &CombDepth{}, nil
		}
	}
	for _, a := range g.arcs {
		if a.Src == a.Dst && comb[g.index[a.Src]] {
			return &CombDepth{}, nil
		}
	}

	// Acyclic: depth(v) = 1 + max depth over combinational
	// predecessors, memoized.
	const unknown = -1
	depth := make([]int, n)
	for v := range depth {
		depth[v] = unknown
	}
	var at func(v int) int
	at = func(v int) int {
		if depth[v] != unknown {
			return depth[v]
		}
		d := 1
		for _, a := range g.in[v] {
			if s := g.index[g.arcs[a].Src]; comb[s] {
				if p := at(s) + 1; p > d {
					d = p
				}
			}
		}
		depth[v] = d
		return d
	}

	max := 0
	for v := 0; v < n; v++ {
		if comb[v] {
			if d := at(v); d > max {
				max = d
			}
		}
	}
	return &CombDepth{depth: max, defined: true}, nil
}
