// SPDX-License-Identifier: MIT
package rpq

import "errors"

// ErrBadRegex wraps any error regexdfa.Compile returns, giving callers a
// single sentinel to match against (spec §7's InvalidQuery/BadRegex) while
// still letting errors.Unwrap reach the underlying syntax detail.
var ErrBadRegex = errors.New("rpq: invalid regex")
