// Package ingest reads fcontext.Context values from two wire formats:
// the line-oriented ".cxt" textual matrix format and the sparse ".dat"
// attribute-list format. Both are hard-error parsers — any deviation
// from the documented grammar is rejected with a position-aware
// *ParseError rather than tolerated or guessed at.
//
// Both readers make one pass over the input. ReadDAT keeps every line's
// attribute tokens in memory until the attribute universe is known.
package ingest
