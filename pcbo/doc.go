// Package pcbo implements Parallel Close-by-One (PCbO): a work-stealing
// tree traversal that enumerates every formal concept of a
// *fcontext.Context exactly once, with no global deduplication.
//
// The search tree's root is the context's top concept; each node carries
// an attribute frontier y, and its children are generated by trying each
// still-absent attribute j >= y in ascending order, accepting only the
// canonical child (the one whose generating attribute is the lowest
// index at which its intent differs from its parent's).
//
// Go has no Rayon-style walk_tree primitive, so the traversal here is an
// explicit LIFO work deque drained by a fixed pool of goroutines managed
// through golang.org/x/sync/errgroup; see newWorkQueue and (*Enumerator).run.
// Expansion of a node is a pure function of the node and the shared,
// read-only *fcontext.Context, so any node may be expanded independently
// of its parent's completion — callers must not mutate the Context while
// an Enumerator walk is in flight.
//
// Emission order is unspecified; only the emitted set is deterministic.
package pcbo
