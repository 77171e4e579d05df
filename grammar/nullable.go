// File: nullable.go
// Role: the nullable-nonterminal fixpoint the tensor CFPQ engine needs to
// seed identity self-loops before its closure loop begins (spec §9).
package grammar

// Nullable returns the set of nonterminals of cfg that derive ε, computed
// over the ORIGINAL grammar (not its WCNF form — WCNF rewriting preserves
// the language, so nullability of the original start symbol and its
// nonterminals is unaffected; the fresh terminal-isolation/binarization
// helper nonterminals introduced by ToWCNF do not occur in the original
// grammar and are never in the returned set).
func Nullable(cfg *CFG) map[string]struct{} {
	nullable := make(map[string]struct{})
	changed := true
	for changed {
		changed = false
		for _, p := range cfg.Productions {
			if _, ok := nullable[p.Head]; ok {
				continue
			}
			if p.IsEpsilon() || allNullable(p.Body, nullable) {
				nullable[p.Head] = struct{}{}
				changed = true
			}
		}
	}

	return nullable
}

func allNullable(body []string, nullable map[string]struct{}) bool {
	if len(body) == 0 {
		return true
	}
	for _, s := range body {
		if !IsNonterminal(s) {
			return false
		}
		if _, ok := nullable[s]; !ok {
			return false
		}
	}

	return true
}
