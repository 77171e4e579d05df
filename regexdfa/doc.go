// Package regexdfa compiles a restricted regular-expression syntax
// (literal symbols, ., |, concatenation by juxtaposition, *, +, ?, and
// parenthesized grouping — spec §2.A's "regex over the edge-label
// alphabet") into an automaton.Automaton via a classic three-stage
// pipeline: Thompson construction (regex -> NFA with ε-transitions),
// subset construction (NFA -> DFA), and Moore-style partition
// refinement (DFA -> minimal DFA).
//
// This is the one package in the module built entirely on the standard
// library: the ecosystem's regexp package exposes only MatchString, never
// an enumerable state machine, and no example in the retrieval pack ships
// a reusable "regex string -> automaton object" API (see DESIGN.md). The
// compiled result is consumed purely as a black-box oracle by packages rsm
// and rpq: a regex string goes in, a minimal DFA comes out.
package regexdfa
