/*
Package cmdlet defines the cmdlet framework: parameter descriptors, the
begin/process/end lifecycle, and a process-wide registry that resolves a
command name or alias to a cmdlet factory.
*/
package cmdlet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmdlet'.
func tracer() tracing.Trace {
	return tracing.Select("cmdlet")
}

// RegistryError reports a duplicate name/alias at registration time
// (spec.md §4.7's uniqueness invariant).
type RegistryError string

func (e RegistryError) Error() string {
	return string(e)
}
