// SPDX-License-Identifier: MIT
// Package bitset provides fixed-length bit-vector primitives used across
// fcalib: bitwise AND-in-place, equality, population count, ascending
// enumeration of set/clear positions, prefix equality and subset testing.
//
// A Set is backed by a []uint64 word slice. Every operation that compares
// or combines two Sets requires them to share the same Len; callers that
// violate this get ErrLengthMismatch rather than a silent wrong answer.
//
// Sets are not safe for concurrent mutation; read-only operations
// (CountOnes, Ones, IsSubset, ...) on an unmutated Set are safe to
// call from multiple goroutines, which is the access pattern the
// enumerator in package pcbo relies on.
package bitset
