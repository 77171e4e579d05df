// Package graph provides the in-memory, thread-safe labeled directed
// multigraph that pathql queries run over.
//
// Unlike a general-purpose graph library, this Graph has a fixed shape:
// always directed, always multi-edge (parallel edges with different labels,
// or even the same label, are legal), and self-loops are always permitted
// (automata routinely loop on themselves). There is no weight concept —
// edges carry a Label instead, and path queries read label *words*, not
// costs.
//
// Vertex and edge catalogs are protected by independent RWMutex locks
// (muVert, muEdgeAdj), mirroring the split-lock discipline of the graph
// library this package was adapted from, so callers may keep mutating a
// Graph concurrently with queries running over an earlier snapshot's
// derived automaton (the automaton package never holds a reference back
// into Graph once built).
package graph
