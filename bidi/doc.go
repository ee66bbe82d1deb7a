/*
Package bidi implements the Unicode Bidirectional Algorithm (UAX #9): phases
P (paragraph level detection), X (explicit formatting), the isolating-run-
sequence partition, W (weak-type resolution), N (neutral resolution,
including N0 bracket pairing), I (implicit levels) and L (reordering and
mirroring).

The engine is a pure function of its input: a Resolve/Process call owns all
of its intermediate arrays for the duration of one paragraph, and nothing
escapes. It never returns an error — malformed input is classified as ON and
processed like any other neutral, and explicit-nesting overflow is silently
absorbed per rule X9, exactly as spec.md requires.

Positions (Run.Start, Run.Length, and the `position` type used internally)
are codepoint (rune) indices, not byte offsets, since a single scalar value
is the unit UAX #9 rules operate over.
*/
package bidi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bidi'.
func tracer() tracing.Trace {
	return tracing.Select("bidi")
}

// EngineError is the package error type, reserved for violated internal
// invariants (programmer error), never for malformed input.
type EngineError string

func (e EngineError) Error() string {
	return string(e)
}

const maxDepth = 125
const maxLevel = 126
