// SPDX-License-Identifier: MIT
// Package fcontext defines Context, the formal-context data model at the
// heart of fcalib: an object/attribute incidence relation held twice
// (row-major per-object intents and column-major per-attribute extents)
// under a transpose invariant the package maintains across every mutation.
//
// Context exposes:
//
//   - Construction: NewContext, NewZeroContext, ContranomialScale.
//   - Accessors: Get/GetByLabel, ObjectIntent, AttributeExtent, labels.
//   - The Galois connection: IntentOf, ExtentOf.
//   - Derived objects: TopConcept, Density.
//   - Editing: ModifyRelationAt, ModifyRelation.
//   - Validation and reduction: Validate, IsReduced, Reduce.
//
// A Context is safe for concurrent readers; mutation (ModifyRelation*,
// Reduce) is guarded by an internal lock so it can't race with reads, but
// package pcbo additionally requires that no mutation is in flight for
// the duration of an enumeration — the caller, not Context, is
// responsible for that discipline (see package pcbo's doc comment).
package fcontext
