/*
Package shaper converts Arabic letters from logical order into their
contextual presentation forms (isolated/initial/medial/final), including
the mandatory Lam-Alef ligature, before the bidi package reorders the
paragraph for display. Non-Arabic characters pass through unchanged.

This must run before bidi.Resolve/ReorderForDisplay, since joining depends
on logical adjacency (spec.md §4.3) — reordering the text first would break
the adjacency the joining rules rely on.
*/
package shaper

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shaper'.
func tracer() tracing.Trace {
	return tracing.Select("shaper")
}

// ShapeError is the package error type. It is never returned from Shape or
// TryShape: internal errors are recovered and the input is returned
// unchanged. The package writes no warning of its own; TryShape reports the
// fallback only through its ok result.
type ShapeError string

func (e ShapeError) Error() string {
	return string(e)
}
