package cmdlet

import "reflect"

// PipelineBinding describes how a parameter may receive pipeline input,
// per spec.md §4.7's `accepts_pipeline` field.
type PipelineBinding uint8

const (
	NoPipelineBinding PipelineBinding = iota
	ByValue
	ByPropertyName
)

// ParameterDescriptor is one entry of a cmdlet's parameter metadata table.
// Rather than discover this by runtime reflection (the source's approach,
// unavailable the same way in Go without heavy use of struct tags and
// reflection), each cmdlet declares its table explicitly at registration
// (spec.md §9's re-architecture note).
type ParameterDescriptor struct {
	Name            string
	Aliases         []string
	Position        int // -1 if not positional
	Mandatory       bool
	AcceptsPipeline PipelineBinding
	ValueType       reflect.Type
	IsArray         bool // absorbs all remaining positional arguments
}

// Descriptor is a cmdlet's static metadata: its name, aliases, and
// parameter table.
type Descriptor struct {
	Name       string
	Aliases    []string
	Parameters []ParameterDescriptor
}

// Instance is one invocation's worth of cmdlet state, following the
// begin/process/end lifecycle of spec.md §4.7.
type Instance interface {
	BeginProcessing() error
	ProcessRecord(input interface{}) error
	EndProcessing() error
}

// Emit is how an Instance writes pipeline output during ProcessRecord or
// EndProcessing; a cmdlet may call it any number of times (spec.md §4.6.3's
// "the producer... may write_output any number of times").
type Emit func(interface{})

// Factory constructs a fresh Instance bound to the given parameter values
// (keyed by parameter name) and an Emit callback wired to the stage's
// output channel. The executor calls this once per pipeline stage
// invocation; cmdlets must not retain state across Factory calls.
type Factory func(params map[string]interface{}, emit Emit) (Instance, error)

// Cmdlet bundles a cmdlet's static Descriptor with the Factory that builds
// instances of it.
type Cmdlet struct {
	Descriptor Descriptor
	New        Factory
}
