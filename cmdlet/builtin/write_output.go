package builtin

import (
	"reflect"

	"github.com/OmarAglan/arbsh/cmdlet"
)

// WriteOutput returns the write-output cmdlet: it passes every positional
// argument and every pipeline-bound input straight through to its output,
// unmodified. It is the simplest possible producer/relay stage, used
// throughout spec.md §8's scenarios.
func WriteOutput() cmdlet.Cmdlet {
	desc := cmdlet.Descriptor{
		Name:    "write-output",
		Aliases: []string{"اكتب-مخرج"},
		Parameters: []cmdlet.ParameterDescriptor{
			{
				Name:            "InputObject",
				Position:        0,
				AcceptsPipeline: cmdlet.ByValue,
				ValueType:       reflect.TypeOf((*interface{})(nil)).Elem(),
				IsArray:         true,
			},
		},
	}
	return cmdlet.Cmdlet{
		Descriptor: desc,
		New: func(params map[string]interface{}, emit cmdlet.Emit) (cmdlet.Instance, error) {
			return &writeOutputInstance{emit: emit, params: params}, nil
		},
	}
}

type writeOutputInstance struct {
	emit   cmdlet.Emit
	params map[string]interface{}
}

func (w *writeOutputInstance) BeginProcessing() error {
	if objs, ok := w.params["InputObject"].([]interface{}); ok {
		for _, o := range objs {
			w.emit(o)
		}
	}
	return nil
}

func (w *writeOutputInstance) ProcessRecord(input interface{}) error {
	if input != nil {
		w.emit(input)
	}
	return nil
}

func (w *writeOutputInstance) EndProcessing() error {
	return nil
}
