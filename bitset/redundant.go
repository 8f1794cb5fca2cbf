// SPDX-License-Identifier: MIT
package bitset

// RedundantRow returns the smallest index i such that x[i] equals the
// intersection of every x[j] (j != i) for which x[i] is a subset of x[j].
// When no such j exists the vacuous intersection is the all-ones vector of
// the common length, so x[i] is redundant iff x[i] is itself all-ones.
//
// RedundantRow returns (0, false) when no row satisfies the condition,
// including when x is empty. Every element must share the same length;
// callers (fcontext.Reduce) guarantee this by construction.
func RedundantRow(x []Set) (int, bool) {
	if len(x) == 0 {
		return 0, false
	}
	n := x[0].n
	for i := range x {
		approx := AllOnes(n)
		for j := range x {
			if i == j {
				continue
			}
			if sub, _ := IsSubset(x[i], x[j]); sub {
				_ = approx.AndAssign(x[j])
			}
		}
		if eq, _ := Equal(approx, x[i]); eq {
			return i, true
		}
	}
	return 0, false
}
