// Package grammar models context-free grammars and their normalization to
// Weak Chomsky Normal Form (WCNF), the input shape every CFPQ engine in
// package cfpq consumes (spec §4.F).
//
// A CFG here is a flat production list; nonterminals are recognized by an
// uppercase-initial first rune (the text format's convention, spec §6),
// everything else is a terminal. The empty body and the literal token
// "epsilon" both denote ε (DESIGN.md's resolved Open Question) and are
// always represented as a zero-length Body, never as a one-element body
// containing the word "epsilon" — so WCNF bucketing by len(Body) is always
// semantically correct, unlike the length>=3-as-epsilon slip the grammar
// normalizer this package is modeled on exhibits (not reproduced here).
package grammar
