// Package ecfg builds an Extended CFG — one regex body per nonterminal —
// from a grammar.CFG or from its own text format (spec §4.G).
package ecfg
