// File: ecfg.go
// Role: ECFG type, FromCFG, FromText.
package ecfg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathql/grammar"
)

// epsilonSymbol mirrors regexdfa's literal ε marker; grammar.Production's
// empty body maps to exactly this token when rendered as a regex piece.
const epsilonSymbol = "ε"

// ECFG maps each nonterminal to a single regex body, productions sharing a
// head already unioned together.
type ECFG struct {
	Start string
	heads []string
	rules map[string]string
}

// Heads returns the nonterminals in first-declared order.
func (e *ECFG) Heads() []string { return e.heads }

// Rule returns the regex body for head, or ("", false) if head is unknown.
func (e *ECFG) Rule(head string) (string, bool) {
	r, ok := e.rules[head]

	return r, ok
}

// FromCFG builds an ECFG from cfg: each production's body symbols are
// joined with spaces (empty body -> the literal ε token), and bodies
// sharing a head are unioned with "|", in production declaration order —
// mirroring Ecfg.from_cfg exactly.
func FromCFG(cfg *grammar.CFG) (*ECFG, error) {
	heads := cfg.Nonterminals()
	rules := make(map[string]string, len(heads))
	for _, h := range heads {
		prods := cfg.ProductionsOf(h)
		pieces := make([]string, 0, len(prods))
		for _, p := range prods {
			if p.IsEpsilon() {
				pieces = append(pieces, epsilonSymbol)

				continue
			}
			pieces = append(pieces, strings.Join(p.Body, " "))
		}
		rules[h] = unionPieces(pieces)
	}

	return &ECFG{Start: cfg.Start, heads: heads, rules: rules}, nil
}

// unionPieces joins alternative regex bodies with "|", parenthesizing each
// multi-token piece so concatenation inside one alternative never bleeds
// into the next.
func unionPieces(pieces []string) string {
	wrapped := make([]string, len(pieces))
	for i, p := range pieces {
		if strings.ContainsAny(p, " |") {
			wrapped[i] = "(" + p + ")"
		} else {
			wrapped[i] = p
		}
	}

	return strings.Join(wrapped, "|")
}

// FromText parses text as one production per non-blank line,
// "Head -> regex" — the regex is taken verbatim, not re-derived from a
// symbol list.
func FromText(text string) (*ECFG, error) {
	heads := make([]string, 0)
	rules := make(map[string]string)
	start := ""

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("ecfg.FromText: line %d: %w", lineNo+1, ErrMalformedLine)
		}
		head := strings.TrimSpace(parts[0])
		body := strings.TrimSpace(parts[1])
		if head == "" || body == "" {
			return nil, fmt.Errorf("ecfg.FromText: line %d: %w", lineNo+1, ErrMalformedLine)
		}
		if _, exists := rules[head]; !exists {
			heads = append(heads, head)
		}
		if start == "" {
			start = head
		}
		if existing, ok := rules[head]; ok {
			rules[head] = unionPieces([]string{existing, body})
		} else {
			rules[head] = body
		}
	}

	if len(heads) == 0 {
		return nil, ErrEmptyText
	}

	return &ECFG{Start: start, heads: heads, rules: rules}, nil
}
