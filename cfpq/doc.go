// Package cfpq implements context-free path query evaluation over a
// graph.Graph: three independent engines — Hellings (worklist), Matrix
// (per-nonterminal boolean-matrix fixed point), and Tensor (RSM-merged
// automaton intersected with the graph, closed to a fixed point) — that
// must agree on every input (spec §8), plus the Run dispatcher spec §6
// describes as "algorithm selector: string-keyed; unknown selector is an
// error, not a silent fallback."
//
// All three engines follow spec §4.H's descriptions of each algorithm;
// Hellings' worklist is github.com/emirpasic/gods/lists/arraylist,
// matching this module's DOMAIN STACK choice.
package cfpq
