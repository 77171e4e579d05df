// SPDX-License-Identifier: MIT
// Package builder constructs deterministic fixture graphs for the RPQ and
// CFPQ engines: a bamboo path, a simple cycle, and the two-cycles shape
// (two rings sharing one vertex) named in the query-evaluation spec's
// worked examples.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds the vertex ID scheme and edge label scheme.
//   - Vertex-ID schemes (IDFn): DefaultIDFn produces decimal strings
//     ("0","1",…).
//   - Constructors: Path, Cycle, TwoCycles.
//
// Guarantees:
//
//   - Vertex reuse: re-running a constructor on the same graph does not
//     duplicate vertices already present, but adds its edges again as
//     parallel edges (graph.Graph is a multigraph).
//   - Fast-fail on invalid option parameters via panics in option
//     constructors (WithX); constructors themselves never panic on
//     caller-supplied sizes, returning sentinel errors instead.
//   - Deterministic vertex/edge emission order for any fixed size and ID
//     scheme, so fixtures are reproducible byte-for-byte across runs.
//
// See individual function documentation for contracts, error conditions,
// and complexity notes.
package builder
