// SPDX-License-Identifier: MIT
package fcontext

import (
	"sync"

	"github.com/katalvlaran/fcalib/bitset"
)

// Context is a binary object-attribute relation, stored twice for O(1)
// access from either side: rows[i] is the intent of object i (length m),
// cols[j] is the extent of attribute j (length n). Every mutation path
// keeps rows[i][j] == cols[j][i].
//
// mu guards objects/attributes/rows/cols against concurrent mutation.
// Reads (Get, IntentOf, ExtentOf, ...) take an RLock; ModifyRelation*
// and Reduce take a full Lock. Callers running a pcbo enumeration must
// not call any mutating method concurrently with the walk — the lock
// prevents data races but does not make such a call meaningful, since
// the walk assumes a fixed relation throughout.
type Context struct {
	mu sync.RWMutex

	objects    []string
	attributes []string
	rows       []bitset.Set // rows[i]: intent of object i, length = len(attributes)
	cols       []bitset.Set // cols[j]: extent of attribute j, length = len(objects)
}

// NewContext constructs a Context from explicit object labels, attribute
// labels, and a row-major relation. It returns ErrShapeMismatch if
// len(rows) != len(objects) or any row's length != len(attributes).
func NewContext(objects, attributes []string, rows []bitset.Set) (*Context, error) {
	n, m := len(objects), len(attributes)
	if len(rows) != n {
		return nil, ErrShapeMismatch
	}
	for _, r := range rows {
		if r.Len() != m {
			return nil, ErrShapeMismatch
		}
	}

	cols := make([]bitset.Set, m)
	for j := range cols {
		cols[j] = bitset.NewSet(n)
	}
	for i, r := range rows {
		for j := range cols {
			if r.Get(j) {
				cols[j].SetBit(i)
			}
		}
	}

	objCopy := append([]string(nil), objects...)
	attrCopy := append([]string(nil), attributes...)
	rowCopy := make([]bitset.Set, n)
	for i, r := range rows {
		rowCopy[i] = r.Clone()
	}

	return &Context{
		objects:    objCopy,
		attributes: attrCopy,
		rows:       rowCopy,
		cols:       cols,
	}, nil
}

// NewZeroContext builds a Context over the given labels where no object
// has any attribute.
func NewZeroContext(objects, attributes []string) *Context {
	n, m := len(objects), len(attributes)
	rows := make([]bitset.Set, n)
	for i := range rows {
		rows[i] = bitset.NewSet(m)
	}
	ctx, err := NewContext(objects, attributes, rows)
	if err != nil {
		// Unreachable: rows are constructed with the correct shape above.
		panic(err)
	}
	return ctx
}

// ContranomialScale builds the contranomial scale on the given objects:
// attributes are the same labels as objects, and object i has every
// attribute except attribute i. This is the canonical stress-test
// fixture for PCbO (it forces num_concepts == 2^len(objects)).
func ContranomialScale(objects []string) *Context {
	n := len(objects)
	rows := make([]bitset.Set, n)
	for i := range rows {
		rows[i] = bitset.AllOnes(n)
		rows[i].ClearBit(i)
	}
	attributes := append([]string(nil), objects...)
	ctx, err := NewContext(objects, attributes, rows)
	if err != nil {
		panic(err) // unreachable: rows are built with the correct shape
	}
	return ctx
}

// NumObjects returns n, the number of objects (|O|).
func (c *Context) NumObjects() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.objects)
}

// NumAttributes returns m, the number of attributes (|M|).
func (c *Context) NumAttributes() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.attributes)
}

// Objects returns a copy of the object label vector.
func (c *Context) Objects() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.objects...)
}

// Attributes returns a copy of the attribute label vector.
func (c *Context) Attributes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.attributes...)
}
