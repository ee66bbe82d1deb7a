/*
Package token converts a single logical input line into a stream of typed
tokens: words, quoted strings, variables, subexpression delimiters, type
literals, operators, redirections, and parameter names. It performs no
evaluation — variable expansion and subexpression execution happen later,
during argument materialization in exec.
*/
package token

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'token'.
func tracer() tracing.Trace {
	return tracing.Select("token")
}

// TokenizeErrorKind classifies why tokenization failed.
type TokenizeErrorKind uint8

const (
	UnterminatedQuote TokenizeErrorKind = iota
	UnterminatedSubexpression
	UnterminatedTypeLiteral
)

func (k TokenizeErrorKind) String() string {
	switch k {
	case UnterminatedQuote:
		return "unterminated quote"
	case UnterminatedSubexpression:
		return "unterminated subexpression"
	case UnterminatedTypeLiteral:
		return "unterminated type literal"
	default:
		return "unknown tokenize error"
	}
}

// TokenizeError reports a lexical failure at a rune position in the input
// line. The current statement is abandoned; earlier, already-parsed
// statements are unaffected (§7).
type TokenizeError struct {
	Kind TokenizeErrorKind
	Pos  int
}

func (e *TokenizeError) Error() string {
	return e.Kind.String()
}
