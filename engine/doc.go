// SPDX-License-Identifier: MIT

// Package engine is the external-facing facade of pathql (spec §6): the
// three operations a caller actually invokes — RPQIntersection, RPQBFS,
// and CFPQ — plus the error-kind mapping of spec §7. It wires together
// grammar, regexdfa, rpq and cfpq without adding any evaluation logic of
// its own; every fixed-point computation happens in the packages it calls.
package engine
