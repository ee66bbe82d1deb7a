// Package charprops maps Unicode scalar values to the properties the bidi
// and shaping packages need: Bidi_Class, paired-bracket membership, and
// mirroring.
package charprops

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'charprops'.
func tracer() tracing.Trace {
	return tracing.Select("charprops")
}

// PropsError is the package error type.
type PropsError string

func (e PropsError) Error() string {
	return string(e)
}
