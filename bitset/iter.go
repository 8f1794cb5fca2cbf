// SPDX-License-Identifier: MIT
package bitset

import (
	"iter"
	"math/bits"
)

// Ones returns a restartable sequence of the indices of set bits, in
// ascending order.
func (s Set) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for wi, w := range s.words {
			for w != 0 {
				tz := bits.TrailingZeros64(w)
				idx := wi*wordBits + tz
				if idx >= s.n {
					return
				}
				if !yield(idx) {
					return
				}
				w &= w - 1 // clear lowest set bit
			}
		}
	}
}

// Zeros returns a restartable sequence of the indices of clear bits, in
// ascending order.
func (s Set) Zeros() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < s.n; i++ {
			if !s.Get(i) {
				if !yield(i) {
					return
				}
			}
		}
	}
}
