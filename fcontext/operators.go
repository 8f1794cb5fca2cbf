// SPDX-License-Identifier: MIT
package fcontext

import (
	"github.com/katalvlaran/fcalib/bitset"
	"github.com/katalvlaran/fcalib/concept"
)

// IntentOf returns the intent of an extent: the attributes common to
// every object in extent, computed as the AND of rows[i] over i in
// extent, starting from all-ones. An empty extent yields all-ones.
func (c *Context) IntentOf(extent bitset.Set) bitset.Set {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := bitset.AllOnes(len(c.attributes))
	for i := range extent.Ones() {
		_ = result.AndAssign(c.rows[i])
	}
	return result
}

// ExtentOf returns the extent of an intent: the objects having every
// attribute in intent, computed as the AND of cols[j] over j in intent,
// starting from all-ones. An empty intent yields all-ones.
func (c *Context) ExtentOf(intent bitset.Set) bitset.Set {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := bitset.AllOnes(len(c.objects))
	for j := range intent.Ones() {
		_ = result.AndAssign(c.cols[j])
	}
	return result
}

// TopConcept returns the maximum of the concept lattice: extent = all
// objects, intent = the attributes common to every object. It is the
// seed of the PCbO enumeration in package pcbo.
func (c *Context) TopConcept() concept.RawConcept {
	c.mu.RLock()
	defer c.mu.RUnlock()

	extent := bitset.AllOnes(len(c.objects))
	intent := bitset.AllOnes(len(c.attributes))
	for _, row := range c.rows {
		_ = intent.AndAssign(row)
	}
	return concept.RawConcept{Extent: extent, Intent: intent}
}

// Density returns the fraction of 1-entries in the relation:
// count_ones(rows) / (n*m). Returns ErrEmptyDimension if n == 0 or
// m == 0, where density is undefined.
func (c *Context) Density() (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n, m := len(c.objects), len(c.attributes)
	if n == 0 || m == 0 {
		return 0, ErrEmptyDimension
	}
	ones := 0
	for _, row := range c.rows {
		ones += row.CountOnes()
	}
	return float64(ones) / float64(n*m), nil
}

// Validate reports whether the transpose invariant holds for every cell:
// rows[i][j] == cols[j][i] for all i, j. A Context built through this
// package's constructors and mutators always satisfies it; Validate
// exists to let callers assert the invariant in tests and assertions
// that construct a Context by other means (e.g. package ingest).
func (c *Context) Validate() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i, row := range c.rows {
		for j := range c.cols {
			if row.Get(j) != c.cols[j].Get(i) {
				return false
			}
		}
	}
	return true
}
