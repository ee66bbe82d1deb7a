/*
Package parse turns a token stream from package token into a list of
Statements. It does not expand variables or evaluate subexpressions — those
happen later, during argument materialization in exec.
*/
package parse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parse'.
func tracer() tracing.Trace {
	return tracing.Select("parse")
}

// ParseError reports a structural error at a token position. The current
// statement is abandoned; parsing does not continue past it (§7).
type ParseError struct {
	Message string
	Pos     int
}

func (e *ParseError) Error() string {
	return e.Message
}
