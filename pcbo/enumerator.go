package pcbo

import (
	"context"
	"iter"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fcalib/bitset"
	"github.com/katalvlaran/fcalib/concept"
	"github.com/katalvlaran/fcalib/fcontext"
)

// node is a search-tree state: a raw concept together with y, the
// smallest attribute index the node is still allowed to try.
type node struct {
	raw concept.RawConcept
	y   int
}

// Enumerator walks the concept lattice of a *fcontext.Context via
// Parallel Close-by-One. The zero value is not usable; construct with
// New.
type Enumerator struct {
	ctx *fcontext.Context
	cfg config
}

// New returns an Enumerator over fctx. fctx must not be mutated for the
// lifetime of any walk started from the returned Enumerator.
func New(fctx *fcontext.Context, opts ...Option) *Enumerator {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Enumerator{ctx: fctx, cfg: cfg}
}

// expand is the pure child-generation rule: for each attribute j >= n.y
// absent from n's intent, in ascending order,
// compute the candidate child and keep it only if it passes the
// canonicity test (its intent agrees with the parent's on every bit
// below j — equivalently, j is the lowest index at which they differ).
func expand(fctx *fcontext.Context, n node) []node {
	var children []node
	for j := range n.raw.Intent.Zeros() {
		if j < n.y {
			continue
		}
		candidateExtent := n.raw.Extent.Clone()
		if err := fctx.IntersectAttributeInto(candidateExtent, j); err != nil {
			panic(err) // unreachable: j ranges over n.raw.Intent's own length
		}
		childIntent := fctx.IntentOf(candidateExtent)

		canonical, _ := bitset.PrefixEqual(n.raw.Intent, childIntent, j)
		if canonical {
			children = append(children, node{
				raw: concept.RawConcept{Extent: candidateExtent, Intent: childIntent},
				y:   j + 1,
			})
		}
	}
	return children
}

// run drives the work-stealing walk, emitting every visited node's
// concept onto out and closing out once the walk is complete or ctx is
// cancelled.
func (e *Enumerator) run(ctx context.Context, out chan<- concept.RawConcept) {
	q := newWorkQueue()

	var wg sync.WaitGroup
	wg.Add(1)
	q.push(node{raw: e.ctx.TopConcept(), y: 0})

	var g errgroup.Group
	g.SetLimit(e.cfg.workers)
	for i := 0; i < e.cfg.workers; i++ {
		g.Go(func() error {
			for {
				n, ok := q.pop()
				if !ok {
					return nil
				}
				if ctx.Err() != nil {
					// Cancelled: drain without expanding or emitting.
					wg.Done()
					continue
				}
				children := expand(e.ctx, n)
				if len(children) > 0 {
					wg.Add(len(children))
					q.pushMany(children)
				}
				select {
				case out <- n.raw:
				case <-ctx.Done():
				}
				wg.Done()
			}
		})
	}

	wgZero := make(chan struct{})
	go func() {
		wg.Wait()
		close(wgZero)
	}()
	go func() {
		select {
		case <-wgZero:
		case <-ctx.Done():
		}
		q.close()
	}()

	_ = g.Wait()
	close(out)
}

// AllConceptsSeq returns a lazy, restartable-per-call sequence of every
// raw concept of the enumerator's context. Breaking out of a range over
// the returned sequence cancels the walk promptly; no goroutine outlives
// the call once the sequence stops being ranged over.
//
// Emission order is unspecified; callers needing a deterministic order
// must sort.
func (e *Enumerator) AllConceptsSeq(ctx context.Context) iter.Seq[concept.RawConcept] {
	return func(yield func(concept.RawConcept) bool) {
		innerCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		out := make(chan concept.RawConcept, 2*e.cfg.workers)
		go e.run(innerCtx, out)

		for rc := range out {
			if !yield(rc) {
				cancel()
				for range out {
					// Drain so e.run's goroutines can observe cancellation
					// and exit; out is closed once they do.
				}
				return
			}
		}
	}
}

// AllConcepts collects the enumerator's sequence into a slice. Returns a
// non-nil error only if ctx was cancelled before the walk completed.
func (e *Enumerator) AllConcepts(ctx context.Context) ([]concept.RawConcept, error) {
	var out []concept.RawConcept
	for rc := range e.AllConceptsSeq(ctx) {
		out = append(out, rc)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// NumConcepts counts the enumerator's concepts without materializing
// them. Returns a non-nil error only if ctx was cancelled before the
// walk completed.
func (e *Enumerator) NumConcepts(ctx context.Context) (int, error) {
	n := 0
	for range e.AllConceptsSeq(ctx) {
		n++
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return n, nil
}
