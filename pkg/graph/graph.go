package graph

import (
	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
)

// Analysis cache keys. One cached value per kind lives on the netlist
// until the next structural mutation drops it.
const (
	KindMultiDiGraph netlist.AnalysisKind = "multidigraph"
	KindCombDepth    netlist.AnalysisKind = "comb-depth"
)

// Arc is one output-to-input connection between two instances. The
// same instance pair can be linked by several distinct arcs, one per
// connected port pair.
type Arc struct {
	Src     *netlist.Instance
	SrcPort int
	Dst     *netlist.Instance
	DstPort int
	Net     *netlist.Net
}

// MultiDiGraph is the instance-level connectivity multigraph of a
// netlist snapshot. Nodes are instances in insertion order; arcs are
// ordered by net, then by consumer. The graph is read-only: it
// describes the netlist as it was when built and must be discarded
// after any mutation.
type MultiDiGraph struct {
	nodes []*netlist.Instance
	index map[*netlist.Instance]int
	arcs  []Arc
	out   [][]int // arc indices leaving each node
	in    [][]int // arc indices entering each node

	sccs [][]int // lazily computed partition, node indices
}

// For returns the cached connectivity multigraph for nl, building and
// caching it on first request.
func For(nl *netlist.Netlist) (*MultiDiGraph, error) {
	return analysisFor(nl, KindMultiDiGraph, BuildMultiDiGraph)
}

// BuildMultiDiGraph derives the connectivity multigraph from the
// current state of nl, bypassing the analysis cache.
func BuildMultiDiGraph(nl *netlist.Netlist) (*MultiDiGraph, error) {
	insts := nl.Instances()
	g := &MultiDiGraph{
		nodes: insts,
		index: make(map[*netlist.Instance]int, len(insts)),
		out:   make([][]int, len(insts)),
		in:    make([][]int, len(insts)),
	}
	for i, inst := range insts {
		g.index[inst] = i
	}
	for _, net := range nl.Nets() {
		src, srcPort, ok := net.Driver()
		if !ok {
			continue
		}
		for _, ref := range net.Consumers() {
			a := len(g.arcs)
			g.arcs = append(g.arcs, Arc{
				Src:     src,
				SrcPort: srcPort,
				Dst:     ref.Inst,
				DstPort: ref.Port,
				Net:     net,
			})
			g.out[g.index[src]] = append(g.out[g.index[src]], a)
			g.in[g.index[ref.Inst]] = append(g.in[g.index[ref.Inst]], a)
		}
	}
	return g, nil
}

// NumNodes returns the instance count.
func (g *MultiDiGraph) NumNodes() int { return len(g.nodes) }

// NumArcs returns the connection count.
func (g *MultiDiGraph) NumArcs() int { return len(g.arcs) }

// Arcs returns all arcs in deterministic build order. The slice is
// owned by the graph; callers must not modify it.
func (g *MultiDiGraph) Arcs() []Arc { return g.arcs }

func analysisFor[T any](nl *netlist.Netlist, kind netlist.AnalysisKind, build func(*netlist.Netlist) (T, error)) (T, error) {
	if v, ok := nl.CachedAnalysis(kind); ok {
		return v.(T), nil
	}
	a, err := build(nl)
	if err != nil {
		var zero T
		return zero, err
	}
	nl.StoreAnalysis(kind, a)
	return a, nil
}
