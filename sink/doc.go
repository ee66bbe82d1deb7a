/*
Package sink defines the Host Sink Boundary: the single interface through
which core code reports results, errors, warnings, and debug messages.
Core packages never touch stdout/stderr directly (spec.md §4.6.5); hosts
choose a Sink implementation at startup.
*/
package sink

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("sink")
}

// ObjectKind tags which variant of the write_object union (spec.md §6) an
// Object holds: a plain string or a record.
type ObjectKind uint8

const (
	ObjString ObjectKind = iota
	ObjRecord
)

// Object wraps one value passed to ExecutionSink.WriteObject. A plain
// string uses ObjString; a Record projects to its string form when a
// sink renders to plain text.
type Object struct {
	Kind   ObjectKind
	String string
	Record map[string]interface{}
}

// StringObject wraps a bare string as an Object.
func StringObject(s string) Object {
	return Object{Kind: ObjString, String: s}
}

// RecordObject wraps a field map as an Object.
func RecordObject(fields map[string]interface{}) Object {
	return Object{Kind: ObjRecord, Record: fields}
}

// Project renders an Object to its string form, used by any sink that
// writes to a plain-text stream (spec.md §6: "Hosts rendering to a text
// terminal serialize records as their string projection").
func (o Object) Project() string {
	if o.Kind == ObjString {
		return o.String
	}
	out := "{"
	first := true
	for k, v := range o.Record {
		if !first {
			out += ", "
		}
		first = false
		out += k + ": "
		out += stringify(v)
	}
	return out + "}"
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
