// SPDX-License-Identifier: MIT
// Package fcontext: sentinel error set.
// Every public, caller-triggerable failure mode returns one of these via
// errors.Is; internal invariant violations (e.g. a length mismatch the
// package itself should never produce) panic instead.
package fcontext

import "errors"

var (
	// ErrShapeMismatch is returned by NewContext when the supplied rows
	// don't match the declared object/attribute counts.
	ErrShapeMismatch = errors.New("fcontext: row count or row length does not match declared shape")

	// ErrLabelNotFound is returned by label-based accessors (GetByLabel,
	// ModifyRelation) when the given object or attribute label is absent.
	ErrLabelNotFound = errors.New("fcontext: label not found")

	// ErrEmptyDimension is returned by Density when the context has zero
	// objects or zero attributes, where density is undefined.
	ErrEmptyDimension = errors.New("fcontext: density undefined on an empty dimension")

	// ErrIndexOutOfRange is returned by index-based accessors given an
	// out-of-bounds object or attribute index.
	ErrIndexOutOfRange = errors.New("fcontext: index out of range")
)
