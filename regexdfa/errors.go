// SPDX-License-Identifier: MIT
package regexdfa

import "errors"

// ERROR PRIORITY: ErrEmptyPattern and ErrSyntax are returned before any
// parsing work begins or as soon as the first malformed token is seen;
// ErrUnbalancedGroup is detected only once the full token stream has been
// scanned, so it is always reported last for a given malformed pattern.
var (
	// ErrEmptyPattern is returned for a zero-length pattern string.
	ErrEmptyPattern = errors.New("regexdfa: empty pattern")

	// ErrSyntax indicates an unrecognized operator or an operator used
	// where an operand was expected (e.g. a leading *).
	ErrSyntax = errors.New("regexdfa: syntax error")

	// ErrUnbalancedGroup indicates mismatched parentheses.
	ErrUnbalancedGroup = errors.New("regexdfa: unbalanced group")
)
