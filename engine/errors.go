// SPDX-License-Identifier: MIT
package engine

import "errors"

// Error kinds per spec §7. ShapeMismatch is deliberately absent here: it is
// an internal invariant violation (bmatrix operations given non-conformant
// shapes) and is never expected to surface through this facade; if it
// does, it reaches the caller as the wrapped bmatrix error, through the
// ordinary error return.
var (
	// ErrBadRegex covers a malformed regex passed to RPQIntersection or
	// RPQBFS. It wraps rpq.ErrBadRegex, so errors.Is matches either.
	ErrBadRegex = errors.New("engine: invalid regex")

	// ErrBadGrammar covers a malformed CFG text passed to CFPQFromText. It
	// wraps the underlying grammar parse error, so errors.Is matches that
	// too.
	ErrBadGrammar = errors.New("engine: invalid grammar")

	// ErrUnknownAlgorithm is returned when the algorithm selector string
	// passed to CFPQ is not one of "hellings", "matrix", "tensor".
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")
)
