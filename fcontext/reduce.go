// SPDX-License-Identifier: MIT
package fcontext

import "github.com/katalvlaran/fcalib/bitset"

// IsReduced reports whether the context is already reduced: no row is
// the intersection of the rows strictly above it, and symmetrically for
// columns.
func (c *Context) IsReduced() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, rowRedundant := bitset.RedundantRow(c.rows)
	_, colRedundant := bitset.RedundantRow(c.cols)
	return !rowRedundant && !colRedundant
}

// Reduce removes redundant rows and then redundant columns, in place,
// until none remain. The resulting context is reduced (IsReduced()
// returns true) and has the same concept lattice as before (num_concepts
// is invariant under Reduce — see the pcbo package's tests for the
// property that pins this down across S1/S3).
func (c *Context) Reduce() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for {
		i, ok := bitset.RedundantRow(c.rows)
		if !ok {
			break
		}
		c.removeObject(i)
	}
	for {
		j, ok := bitset.RedundantRow(c.cols)
		if !ok {
			break
		}
		c.removeAttribute(j)
	}
}

// removeObject deletes object i from objects, rows, and bit i from every
// column. Caller must hold c.mu for writing.
func (c *Context) removeObject(i int) {
	c.objects = append(c.objects[:i], c.objects[i+1:]...)
	c.rows = append(c.rows[:i], c.rows[i+1:]...)
	for j := range c.cols {
		c.cols[j] = deleteBit(c.cols[j], i)
	}
}

// removeAttribute deletes attribute j from attributes, cols, and bit j
// from every row. Caller must hold c.mu for writing.
func (c *Context) removeAttribute(j int) {
	c.attributes = append(c.attributes[:j], c.attributes[j+1:]...)
	c.cols = append(c.cols[:j], c.cols[j+1:]...)
	for i := range c.rows {
		c.rows[i] = deleteBit(c.rows[i], j)
	}
}

// deleteBit returns a Set one bit shorter than s, with bit pos removed
// and all higher bits shifted down by one.
func deleteBit(s bitset.Set, pos int) bitset.Set {
	out := bitset.NewSet(s.Len() - 1)
	k := 0
	for i := 0; i < s.Len(); i++ {
		if i == pos {
			continue
		}
		if s.Get(i) {
			out.SetBit(k)
		}
		k++
	}
	return out
}
