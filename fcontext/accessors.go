// SPDX-License-Identifier: MIT
package fcontext

import "github.com/katalvlaran/fcalib/bitset"

// Get returns the (objIdx, attrIdx) cell of the relation.
func (c *Context) Get(objIdx, attrIdx int) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if objIdx < 0 || objIdx >= len(c.objects) || attrIdx < 0 || attrIdx >= len(c.attributes) {
		return false, ErrIndexOutOfRange
	}
	return c.rows[objIdx].Get(attrIdx), nil
}

// GetByLabel returns the relation cell for the named object and
// attribute. Returns ErrLabelNotFound if either label is absent.
// Label-based accessors assume unique labels; with duplicates, the
// first matching index is used. Labels need not be unique for the
// underlying algorithm, only for label-based accessors to be
// well-defined.
func (c *Context) GetByLabel(obj, attr string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := indexOf(c.objects, obj)
	if !ok {
		return false, ErrLabelNotFound
	}
	j, ok := indexOf(c.attributes, attr)
	if !ok {
		return false, ErrLabelNotFound
	}
	return c.rows[i].Get(j), nil
}

// ObjectIntent returns a copy of the intent (attribute set) of object i.
func (c *Context) ObjectIntent(i int) (bitset.Set, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i < 0 || i >= len(c.rows) {
		return bitset.Set{}, ErrIndexOutOfRange
	}
	return c.rows[i].Clone(), nil
}

// AttributeExtent returns a copy of the extent (object set) of attribute j.
func (c *Context) AttributeExtent(j int) (bitset.Set, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if j < 0 || j >= len(c.cols) {
		return bitset.Set{}, ErrIndexOutOfRange
	}
	return c.cols[j].Clone(), nil
}

// IntersectAttributeInto ANDs attribute j's extent into dst in place,
// without cloning the column. Used on pcbo's hot path, where every
// child candidate needs one fresh clone (its own extent) rather than
// two (its own extent plus a throwaway copy of the column).
func (c *Context) IntersectAttributeInto(dst bitset.Set, j int) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if j < 0 || j >= len(c.cols) {
		return ErrIndexOutOfRange
	}
	return dst.AndAssign(c.cols[j])
}

// ModifyRelationAt sets the (objIdx, attrIdx) cell of the relation,
// keeping rows and cols consistent.
func (c *Context) ModifyRelationAt(objIdx, attrIdx int, value bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if objIdx < 0 || objIdx >= len(c.objects) || attrIdx < 0 || attrIdx >= len(c.attributes) {
		return ErrIndexOutOfRange
	}
	c.rows[objIdx].Put(attrIdx, value)
	c.cols[attrIdx].Put(objIdx, value)
	return nil
}

// ModifyRelation sets the relation cell for the named object and
// attribute. Returns ErrLabelNotFound if either label is absent.
func (c *Context) ModifyRelation(obj, attr string, value bool) error {
	c.mu.Lock()
	i, iok := indexOf(c.objects, obj)
	j, jok := indexOf(c.attributes, attr)
	if !iok || !jok {
		c.mu.Unlock()
		return ErrLabelNotFound
	}
	c.rows[i].Put(j, value)
	c.cols[j].Put(i, value)
	c.mu.Unlock()
	return nil
}

func indexOf(labels []string, target string) (int, bool) {
	for i, l := range labels {
		if l == target {
			return i, true
		}
	}
	return 0, false
}
