// Package fcalib computes the full set of formal concepts of a binary
// object-attribute relation — the mathematical core of Formal Concept
// Analysis (FCA) — via bit-parallel Galois operators and a parallelized
// Close-by-One enumeration.
//
// Given a rectangular 0/1 matrix whose rows are objects and columns are
// attributes, fcalib enumerates every maximal rectangle (extent x
// intent) of 1s, with each concept produced exactly once, walked in
// parallel by a work-stealing tree traversal.
//
// Everything lives under four subpackages:
//
//	bitset/   — fixed-length bit-vector primitives and the redundant-row
//	            finder that drives context reduction.
//	fcontext/ — Context: the dual row/column relation, the Galois
//	            connection (IntentOf/ExtentOf), validation, reduction,
//	            density, and the top concept.
//	concept/  — Concept and RawConcept, the Galois-closed (extent,
//	            intent) pair and its partial order by extent inclusion.
//	pcbo/     — the Parallel Close-by-One enumerator: a lazy sequence,
//	            a collected slice, and a count, over a work-stealing pool.
//
// A companion ingest/ package reads the two wire formats a Context can
// be built from: the ".cxt" textual matrix and the ".dat" sparse
// attribute list. Neither format, nor random instance generation, nor
// lattice-diagram layout is part of the core; they are external
// collaborators that touch it only through its published operations.
//
// A minimal walk looks like:
//
//	ctx, _ := fcontext.NewContext(objects, attributes, rows)
//	concepts, err := pcbo.New(ctx).AllConcepts(context.Background())
package fcalib
