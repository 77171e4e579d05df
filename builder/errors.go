// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using %w at the call site.

package builder

import "errors"

// ErrTooFewVertices indicates that a constructor's size parameter (n) is
// smaller than the minimum the requested shape requires.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")
