// SPDX-License-Identifier: MIT
package grammar

import "errors"

// ERROR PRIORITY: ErrMalformedLine is reported for the first line that
// fails to parse, in source order; ErrEmptyText is returned only after every
// line has been scanned and none was non-blank.
var (
	// ErrEmptyText is returned when ParseCFG is given a text with no
	// non-blank lines at all.
	ErrEmptyText = errors.New("grammar: empty grammar text")

	// ErrMalformedLine indicates a line that is not "Head -> body...".
	ErrMalformedLine = errors.New("grammar: malformed production line")
)
