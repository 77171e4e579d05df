// Package pathql (pathql) answers path queries on edge-labeled directed
// multigraphs: regular path queries (RPQ) and context-free path queries
// (CFPQ).
//
// 🚀 What is pathql?
//
//	A thread-safe, mostly zero-dependency query-evaluation engine built
//	around a boolean-matrix decomposition of finite automata:
//
//	  • Core primitives: labeled multigraphs, NFAs/DFAs as boolean matrices
//	  • Automaton algebra: intersection (Kronecker product), transitive closure
//	  • RPQ: tensor/intersection evaluation and multi-source BFS-with-front
//	  • CFPQ: Hellings, Matrix and Tensor (RSM) algorithms over WCNF grammars
//
// ✨ Why choose pathql?
//
//   - Algorithm-first  — each engine is a pure function over immutable inputs
//   - Rock-solid       — built-in R/W locks on the graph ensure thread-safety
//   - Deterministic    — fixed-point convergence relies on nnz, never on
//     iteration order
//   - Mostly pure Go   — no cgo; third-party use is narrow: structural-hash
//     keys for product/merge states, an ordered set for label alphabets,
//     and testify in tests only
//
// Under the hood, everything is organized under per-concern subpackages:
//
//	graph/     — labeled directed multigraph, thread-safe primitives
//	bmatrix/   — sparse boolean matrix algebra (+, ×, Kronecker, block-diag)
//	automaton/ — NFA/DFA as boolean decomposition; intersection; closure
//	regexdfa/  — regex → minimal DFA oracle (Thompson + subset construction)
//	grammar/   — CFG text format, WCNF normalization
//	ecfg/      — CFG → ECFG (one regex body per nonterminal)
//	rsm/       — ECFG → Recursive State Machine; box merging
//	rpq/       — regular path query engines (tensor closure, BFS front)
//	cfpq/      — context-free path query engines (Hellings, Matrix, Tensor)
//	builder/   — deterministic fixture graphs used by tests and examples
//	engine/    — the external-facing facade (rpq_intersection, rpq_bfs, cfpq)
//
// Quick ASCII example — a two-cycle graph sharing vertex 0:
//
//	  a     a
//	0 ──▶ 1 ──▶ 2 ──▶ 0      (cycle of length 3, label a)
//	0 ──▶ 3 ──▶ 4 ──▶ 0      (cycle of length 3, label b)
//	         b     b
//
// Dive into engine/api.go for the three external operations, and into
// DESIGN.md for the grounding behind each package.
//
//	go get github.com/katalvlaran/pathql
package pathql
