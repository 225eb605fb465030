package netlist

// AnalysisKind keys the per-netlist analysis cache. Each kind holds at
// most one cached value at a time.
type AnalysisKind string

// CachedAnalysis returns the cached analysis of the given kind, if one
// is present and still valid.
func (n *Netlist) CachedAnalysis(kind AnalysisKind) (any, bool) {
	v, ok := n.cache[kind]
	return v, ok
}

// StoreAnalysis caches an analysis value under the given kind,
// replacing any previous value.
func (n *Netlist) StoreAnalysis(kind AnalysisKind, v any) {
	n.cache[kind] = v
}

// InvalidateAnalyses drops every cached analysis. Every structural
// mutation calls this; port remapping does not.
func (n *Netlist) InvalidateAnalyses() {
	clear(n.cache)
}

// CachedAnalysisKinds returns the number of currently cached analyses.
// Used by tests to audit the invalidation contract.
func (n *Netlist) CachedAnalysisKinds() int {
	return len(n.cache)
}
