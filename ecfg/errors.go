// SPDX-License-Identifier: MIT
package ecfg

import "errors"

var (
	// ErrEmptyText is returned by FromText for a text with no non-blank
	// lines.
	ErrEmptyText = errors.New("ecfg: empty text")

	// ErrMalformedLine indicates a line that is not "Head -> regex".
	ErrMalformedLine = errors.New("ecfg: malformed line")
)
