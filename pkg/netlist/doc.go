// Package netlist holds the mutable gate-level netlist store: the
// instances, nets and port connections of one module, together with
// the mutation primitives the optimization passes are built from.
//
// # Model
//
// A Netlist owns flat, insertion-ordered collections of Instances
// (primitive cells) and Nets (wires). Connectivity is recorded on both
// sides: each instance input holds a reference to the net driving it,
// and each net keeps its driver and the list of consuming input ports.
// Net and instance names share a single namespace and are unique at
// all times; colliding renames fail with a StructuralError.
//
// # Mutation and analysis caching
//
// Derived analyses (the connectivity multigraph, strongly connected
// components, combinational depth) are computed by package graph and
// cached on the netlist keyed by AnalysisKind. Every structural
// mutation (connecting, disconnecting, renaming, cleaning) clears
// the whole cache. Port remapping only changes naming on one
// instance's cell and leaves the cache intact.
//
// Analyses obtained before a mutation must not be used after it; the
// single-threaded pass pipeline is what makes this discipline
// sufficient.
//
// # Verification
//
// Verify re-checks the global invariants (live cross-references,
// consumer/driver back-reference consistency, arity, name uniqueness)
// and reports the first violation found. Passes run it after mutating,
// at a frequency chosen by the pipeline.
package netlist
