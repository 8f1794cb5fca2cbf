// SPDX-License-Identifier: MIT
package bitset

import "errors"

// ErrLengthMismatch is returned when two Sets expected to share a length
// (AndAssign, Equal, PrefixEqual, IsSubset) do not.
var ErrLengthMismatch = errors.New("bitset: length mismatch")
