/*
Package builtin registers the minimal built-in cmdlet set: write-output,
get-command, and ConvertTo-Html. Individual cmdlet business logic beyond
this set is out of scope (spec.md §1); these exist to exercise the
framework end to end.
*/
package builtin

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cmdlet/builtin")
}
