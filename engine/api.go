// SPDX-License-Identifier: MIT

// File: api.go
// Role: the three operations of spec §6's external-interface table.
package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/rpq"
)

// defaultStartSymbol is used by CFPQ/CFPQFromText when startSymbol is "".
const defaultStartSymbol = "S"

// RPQIntersection evaluates a regular path query via the tensor/closure
// pipeline (spec §4.D): build the graph as an NFA restricted to
// starts/finals, intersect with the compiled regex DFA, and read off every
// connected (start, final) pair projected back to graph vertices.
//
// starts and finals default independently to every vertex of g when nil or
// empty.
func RPQIntersection(pattern string, g *graph.Graph, starts, finals []string) (map[rpq.Pair]struct{}, error) {
	out, err := rpq.Intersect(pattern, g, starts, finals)
	if err != nil {
		return nil, wrapBadRegex(err)
	}

	return out, nil
}

// RPQBFS evaluates a regular path query via multi-source front
// propagation (spec §4.E). In joint mode (separatedSources=false) the
// result's Vertices field holds the union of reached final vertices; in
// separated mode its Pairs field holds per-source (source, reached)
// pairs.
func RPQBFS(pattern string, g *graph.Graph, starts, finals []string, separatedSources bool) (*rpq.BFSResult, error) {
	out, err := rpq.BFS(pattern, g, starts, finals, separatedSources)
	if err != nil {
		return nil, wrapBadRegex(err)
	}

	return out, nil
}

// CFPQ evaluates a context-free path query over an already-parsed grammar
// using the named algorithm ("hellings", "matrix", or "tensor"). An empty
// startSymbol defaults to "S". starts and finals default independently to
// every vertex of g when nil or empty.
func CFPQ(cfg *grammar.CFG, g *graph.Graph, algorithm string, starts, finals []string, startSymbol string) (map[[2]string]struct{}, error) {
	algo := cfpq.Algorithm(algorithm)
	switch algo {
	case cfpq.Hellings, cfpq.Matrix, cfpq.Tensor:
	default:
		return nil, fmt.Errorf("engine.CFPQ: %q: %w", algorithm, ErrUnknownAlgorithm)
	}

	if startSymbol == "" {
		startSymbol = defaultStartSymbol
	}

	out, err := cfpq.Run(algo, cfg, g, startSymbol, starts, finals)
	if err != nil {
		return nil, fmt.Errorf("engine.CFPQ: %w", err)
	}

	return out, nil
}

// CFPQFromText is the text-format convenience wrapper named in spec §6:
// it parses grammarText with the CFG text-format reader (one production
// per line, "Head -> symbol1 symbol2 ...") before delegating to CFPQ.
func CFPQFromText(grammarText string, g *graph.Graph, algorithm string, starts, finals []string, startSymbol string) (map[[2]string]struct{}, error) {
	cfg, err := grammar.ParseCFG(grammarText)
	if err != nil {
		return nil, fmt.Errorf("engine.CFPQFromText: %w: %w", ErrBadGrammar, err)
	}

	return CFPQ(cfg, g, algorithm, starts, finals, startSymbol)
}

// wrapBadRegex maps rpq's ErrBadRegex to this package's sentinel while
// preserving errors.Is against both and the underlying regexdfa detail. Any
// other error from rpq (e.g. an internal automaton-algebra failure) passes
// through with plain context only — it is not a regex problem.
func wrapBadRegex(err error) error {
	if errors.Is(err, rpq.ErrBadRegex) {
		return fmt.Errorf("%w: %w", ErrBadRegex, err)
	}

	return fmt.Errorf("engine: %w", err)
}
