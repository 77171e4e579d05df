// File: parse.go
// Role: the CFG text-format reader (spec §6): one production per
// non-blank line, "Head -> symbol1 symbol2 ...", body of "epsilon" or
// empty denotes ε. Blank lines are ignored. The grammar's start symbol is
// the head of the first production line — the first nonterminal declared
// is the start symbol, with no separate "start:" directive in the format.
package grammar

import (
	"fmt"
	"strings"
)

const epsilonKeyword = "epsilon"

// ParseCFG reads text into a CFG. Returns ErrEmptyText if text has no
// non-blank lines, ErrMalformedLine for any line that is not
// "Head -> body...".
func ParseCFG(text string) (*CFG, error) {
	var productions []Production
	start := ""

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		head, body, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("grammar.ParseCFG: line %d: %w", lineNo+1, err)
		}
		if start == "" {
			start = head
		}
		productions = append(productions, Production{Head: head, Body: body})
	}

	if len(productions) == 0 {
		return nil, ErrEmptyText
	}

	return &CFG{Start: start, Productions: productions}, nil
}

func parseLine(line string) (head string, body []string, err error) {
	parts := strings.SplitN(line, "->", 2)
	if len(parts) != 2 {
		return "", nil, ErrMalformedLine
	}
	head = strings.TrimSpace(parts[0])
	if head == "" {
		return "", nil, ErrMalformedLine
	}
	bodyText := strings.TrimSpace(parts[1])
	if bodyText == "" || bodyText == epsilonKeyword {
		return head, nil, nil
	}

	return head, strings.Fields(bodyText), nil
}
