// Package pass defines the closed set of netlist operations the
// netopt tool can run: reports like print, dot-graph, report-sccs and
// report-depth, and mutations like clean, disconnect-registers,
// disconnect-arc-set, mark-arc-set and rename-nets. It also holds the
// Pipeline
// that executes a requested sequence of them against one netlist with
// selectable verification frequency.
package pass
