// Package graph derives topological facts from a netlist snapshot
// without mutating it: the instance-level connectivity multigraph,
// its strongly connected components, a greedy approximate feedback
// arc set, and the longest combinational path depth.
//
// Analyses are cached on the netlist via its AnalysisKind map (For,
// CombDepthFor) and become invalid on the next structural mutation;
// passes that mutate must re-request them.
package graph
