/*
Package exec is the Executor (spec.md §4.6): it resolves cmdlets for each
parsed command, materializes arguments against session state, binds
parameters, and runs each pipeline as a set of goroutines connected by
bounded channels, one goroutine per stage.
*/
package exec

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("exec")
}

// ErrorKind classifies an ExecError, per spec.md §7.
type ErrorKind uint8

const (
	CommandNotFound ErrorKind = iota
	ParameterBindingError
	PipelineStageError
)

func (k ErrorKind) String() string {
	switch k {
	case CommandNotFound:
		return "CommandNotFound"
	case ParameterBindingError:
		return "ParameterBindingError"
	case PipelineStageError:
		return "PipelineStageError"
	default:
		return "UnknownExecError"
	}
}

// ExecError is one failure raised while constructing or running a
// pipeline. It is never panicked; it is reported via the sink and
// collected into an Aggregate.
type ExecError struct {
	Kind    ErrorKind
	Command string
	Message string
}

func (e *ExecError) Error() string {
	if e.Command != "" {
		return e.Kind.String() + " (" + e.Command + "): " + e.Message
	}
	return e.Kind.String() + ": " + e.Message
}

// Aggregate collects every ExecError raised across a statement's
// pipeline stages (spec.md §4.6.3's "executor awaits all stages... and
// aggregates their errors"). A nil Aggregate means no errors occurred.
type Aggregate struct {
	Errors []*ExecError
}

func (a *Aggregate) Error() string {
	if a == nil || len(a.Errors) == 0 {
		return "no errors"
	}
	msg := a.Errors[0].Error()
	if len(a.Errors) > 1 {
		msg += " (and more)"
	}
	return msg
}

func (a *Aggregate) add(e *ExecError) {
	a.Errors = append(a.Errors, e)
}

func (a *Aggregate) empty() bool {
	return a == nil || len(a.Errors) == 0
}
