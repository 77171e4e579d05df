// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// config.go — builderConfig resolution from functional options.

package builder

import "strconv"

// IDFn maps a 0-based index to a deterministic vertex ID.
type IDFn func(int) string

// DefaultIDFn renders the index as a decimal string ("0", "1", "2", ...),
// matching the vertex-id convention used throughout the spec's worked
// examples (graphs keyed 0..n-1).
func DefaultIDFn(i int) string {
	return strconv.Itoa(i)
}

// builderConfig holds the resolved, immutable configuration for a single
// BuildGraph invocation.
type builderConfig struct {
	// idFn generates vertex IDs from a 0-based index.
	idFn IDFn

	// label is the single edge label used by Path/Cycle. Constructors that
	// need more than one label (TwoCycles) take labels as direct arguments
	// instead of going through builderConfig.
	label string
}

// newBuilderConfig resolves defaults, then applies opts in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:  DefaultIDFn,
		label: "a",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
