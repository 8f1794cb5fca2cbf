package concept

import "github.com/katalvlaran/fcalib/bitset"

// Context is the minimal surface a Concept needs from its owning formal
// context: the two halves of the Galois connection. *fcontext.Context
// satisfies this interface, which is how Concept avoids importing
// fcontext directly.
type Context interface {
	ExtentOf(intent bitset.Set) bitset.Set
	IntentOf(extent bitset.Set) bitset.Set
}

// RawConcept is a Galois-closed (extent, intent) pair without an owning
// context pointer. Enumerator hot paths (package pcbo) pass RawConcept
// around to avoid carrying ownership through every tree-walk step.
type RawConcept struct {
	Extent bitset.Set
	Intent bitset.Set
}

// Bind attaches ctx to r, producing a Concept.
func (r RawConcept) Bind(ctx Context) Concept {
	return Concept{Ctx: ctx, Extent: r.Extent, Intent: r.Intent}
}

// Concept is a formal concept: an extent/intent pair together with the
// context it was derived from. Concepts are immutable once constructed.
type Concept struct {
	Ctx    Context
	Extent bitset.Set
	Intent bitset.Set
}

// Raw strips the context pointer, returning the underlying RawConcept.
func (c Concept) Raw() RawConcept {
	return RawConcept{Extent: c.Extent, Intent: c.Intent}
}

// Validate reports whether c is Galois-closed with respect to its context:
// Extent == ExtentOf(Intent) and Intent == IntentOf(Extent).
func (c Concept) Validate() bool {
	extentOK, _ := bitset.Equal(c.Extent, c.Ctx.ExtentOf(c.Intent))
	intentOK, _ := bitset.Equal(c.Intent, c.Ctx.IntentOf(c.Extent))
	return extentOK && intentOK
}

// Equal reports whether c and other share the same context and the same
// extent. The intent is determined by the extent under the Galois
// connection, so extent equality (within one context) is sufficient.
func (c Concept) Equal(other Concept) bool {
	if c.Ctx != other.Ctx {
		return false
	}
	eq, _ := bitset.Equal(c.Extent, other.Extent)
	return eq
}

// Ordering is the result of comparing two concepts by extent inclusion.
type Ordering int

const (
	// Incomparable means neither extent is a subset of the other, or the
	// two concepts belong to different contexts.
	Incomparable Ordering = iota
	Less
	Equal
	Greater
)

// Compare orders c and other by subset inclusion of their extents:
// c <= other iff extent(c) subset-of extent(other). Concepts from
// different contexts are always Incomparable.
func (c Concept) Compare(other Concept) Ordering {
	if c.Ctx != other.Ctx {
		return Incomparable
	}
	if eq, _ := bitset.Equal(c.Extent, other.Extent); eq {
		return Equal
	}
	if sub, _ := bitset.IsSubset(c.Extent, other.Extent); sub {
		return Less
	}
	if sub, _ := bitset.IsSubset(other.Extent, c.Extent); sub {
		return Greater
	}
	return Incomparable
}
