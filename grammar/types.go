// File: types.go
// Role: CFG/Production types and basic accessors.
package grammar

// Production is one CFG rule Head -> Body. A zero-length Body denotes the
// production Head -> ε.
type Production struct {
	Head string
	Body []string
}

// IsEpsilon reports whether this production's body is ε.
func (p Production) IsEpsilon() bool { return len(p.Body) == 0 }

// IsTerminal reports whether this production's body is a single terminal
// symbol (spec §4.F's "terminal" bucket); callers should check
// !IsNonterminal(p.Body[0]) themselves where the distinction matters, since
// a length-1 nonterminal body is a unit production, not this bucket, and
// ToWCNF always eliminates unit productions before this check is used.
func (p Production) IsTerminal() bool { return len(p.Body) == 1 }

// IsBinary reports whether this production's body is exactly two symbols.
func (p Production) IsBinary() bool { return len(p.Body) == 2 }

// CFG is a context-free grammar: a start symbol and a flat production
// list. Nonterminal-ness of any symbol is determined structurally by
// IsNonterminal, not tracked in a separate set.
type CFG struct {
	Start       string
	Productions []Production
}

// IsNonterminal reports whether symbol is a nonterminal by the text
// format's convention: an uppercase-initial rune.
func IsNonterminal(symbol string) bool {
	if symbol == "" {
		return false
	}
	r := []rune(symbol)[0]

	return r >= 'A' && r <= 'Z'
}

// Nonterminals returns the distinct nonterminals appearing as a production
// head, in first-seen order.
func (g *CFG) Nonterminals() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range g.Productions {
		if _, ok := seen[p.Head]; !ok {
			seen[p.Head] = struct{}{}
			out = append(out, p.Head)
		}
	}

	return out
}

// ProductionsOf returns the productions headed by nonterminal, in
// declaration order.
func (g *CFG) ProductionsOf(nonterminal string) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.Head == nonterminal {
			out = append(out, p)
		}
	}

	return out
}
