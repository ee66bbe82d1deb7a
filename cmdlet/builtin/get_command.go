package builtin

import (
	"sort"

	"github.com/OmarAglan/arbsh/cmdlet"
)

// GetCommand returns the get-command cmdlet, which lists the names of
// every cmdlet registered in reg at the time it runs. It closes over reg
// rather than discovering it reflectively, since the registry is already
// the single source of truth for registered names (spec.md §4.7).
func GetCommand(reg *cmdlet.Registry) cmdlet.Cmdlet {
	desc := cmdlet.Descriptor{
		Name:    "get-command",
		Aliases: []string{"الحصول-على-أمر"},
	}
	return cmdlet.Cmdlet{
		Descriptor: desc,
		New: func(params map[string]interface{}, emit cmdlet.Emit) (cmdlet.Instance, error) {
			return &getCommandInstance{reg: reg, emit: emit}, nil
		},
	}
}

type getCommandInstance struct {
	reg  *cmdlet.Registry
	emit cmdlet.Emit
}

func (g *getCommandInstance) BeginProcessing() error { return nil }

func (g *getCommandInstance) ProcessRecord(input interface{}) error { return nil }

func (g *getCommandInstance) EndProcessing() error {
	names := g.reg.Names()
	sort.Strings(names)
	for _, n := range names {
		g.emit(n)
	}
	return nil
}
