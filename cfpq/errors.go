// SPDX-License-Identifier: MIT
package cfpq

import "errors"

var (
	// ErrUnknownAlgorithm is returned for any Algorithm value other than
	// Hellings, Matrix, or Tensor.
	ErrUnknownAlgorithm = errors.New("cfpq: unknown algorithm")

	// ErrBadGrammar is returned when the supplied grammar cannot be
	// normalized or compiled (e.g. a regex box fails to compile).
	ErrBadGrammar = errors.New("cfpq: invalid grammar")
)
