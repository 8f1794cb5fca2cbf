// Package concept defines the formal-concept value types shared between
// fcontext and pcbo: RawConcept, a context-free (extent, intent) pair used
// on enumerator hot paths, and Concept, the same pair bound to the Context
// it was derived from.
//
// Concept depends on fcontext only through the small Context interface
// declared here (ExtentOf/IntentOf) rather than importing package
// fcontext directly, so that fcontext can in turn construct and return
// Concept/RawConcept values without an import cycle.
package concept
