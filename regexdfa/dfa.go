// File: dfa.go
// Role: subset construction (ε-NFA -> DFA) and partition-refinement
// minimization, both operating on a private rawDFA intermediate so that
// compile.go is the only place that touches automaton.Builder.
package regexdfa

import (
	"sort"
	"strconv"
	"strings"
)

// rawDFA is a deterministic, possibly-partial (missing transition = reject)
// automaton over small integer state ids.
type rawDFA struct {
	n     int
	start int
	final map[int]struct{}
	trans map[int]map[string]int // state -> symbol -> state
}

func setKey(set []int) string {
	var b strings.Builder
	for i, s := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}

	return b.String()
}

func sortedSet(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)

	return out
}

func containsInt(set []int, v int) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}

	return false
}

// subsetConstruct determinizes nfa, whose single-entry/single-exit
// fragment runs from startState to finalState (Thompson's invariant).
func subsetConstruct(nfa *thompsonNFA, startState, finalState int) *rawDFA {
	alphabet := nfa.alphabet()
	dfa := &rawDFA{final: make(map[int]struct{}), trans: make(map[int]map[string]int)}

	index := make(map[string]int)
	var sets [][]int

	register := func(set []int) int {
		k := setKey(set)
		if id, ok := index[k]; ok {
			return id
		}
		id := len(sets)
		sets = append(sets, set)
		index[k] = id

		return id
	}

	startSet := sortedSet(nfa.epsilonClosure([]int{startState}))
	register(startSet)
	dfa.start = 0

	queue := []int{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curSet := sets[cur]
		if containsInt(curSet, finalState) {
			dfa.final[cur] = struct{}{}
		}
		for _, sym := range alphabet {
			moved := nfa.move(curSet, sym)
			if len(moved) == 0 {
				continue
			}
			closure := sortedSet(nfa.epsilonClosure(moved))
			before := len(sets)
			target := register(closure)
			if target == before {
				queue = append(queue, target)
			}
			if dfa.trans[cur] == nil {
				dfa.trans[cur] = make(map[string]int)
			}
			dfa.trans[cur][sym] = target
		}
	}
	dfa.n = len(sets)

	return dfa
}

// minimize collapses equivalent states via Moore-style partition
// refinement: states start partitioned by finality, then repeatedly
// re-partitioned by the class-signature of their transition targets, until
// the partition stops changing. alphabet must list every symbol the DFA
// transitions on.
func minimize(d *rawDFA, alphabet []string) *rawDFA {
	if d.n == 0 {
		return d
	}
	partition := make([]int, d.n)
	for i := 0; i < d.n; i++ {
		if _, ok := d.final[i]; ok {
			partition[i] = 1
		}
	}

	for {
		sig := make([]string, d.n)
		for i := 0; i < d.n; i++ {
			var b strings.Builder
			b.WriteString(strconv.Itoa(partition[i]))
			for _, sym := range alphabet {
				b.WriteByte('|')
				if t, ok := d.trans[i][sym]; ok {
					b.WriteString(strconv.Itoa(partition[t]))
				} else {
					b.WriteByte('-')
				}
			}
			sig[i] = b.String()
		}

		classOf := make(map[string]int)
		next := make([]int, d.n)
		for i := 0; i < d.n; i++ {
			c, ok := classOf[sig[i]]
			if !ok {
				c = len(classOf)
				classOf[sig[i]] = c
			}
			next[i] = c
		}

		stable := true
		for i := range partition {
			if partition[i] != next[i] {
				stable = false
				break
			}
		}
		partition = next
		if stable {
			break
		}
	}

	numClasses := 0
	for _, c := range partition {
		if c+1 > numClasses {
			numClasses = c + 1
		}
	}

	out := &rawDFA{n: numClasses, final: make(map[int]struct{}), trans: make(map[int]map[string]int)}
	out.start = partition[d.start]
	for i := 0; i < d.n; i++ {
		c := partition[i]
		if _, ok := d.final[i]; ok {
			out.final[c] = struct{}{}
		}
		for sym, t := range d.trans[i] {
			if out.trans[c] == nil {
				out.trans[c] = make(map[string]int)
			}
			out.trans[c][sym] = partition[t]
		}
	}

	return out
}
