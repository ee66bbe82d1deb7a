package exec

import (
	"reflect"
	"sort"

	"github.com/OmarAglan/arbsh/cmdlet"
)

// bindParameters implements spec.md §4.6.2 step 3-4: named parameters
// bind first (by name or alias), remaining positional arguments bind in
// declared Position order (an array-typed positional parameter absorbs
// every remaining positional argument), and mandatory parameters are then
// checked.
func bindParameters(command string, params []cmdlet.ParameterDescriptor, named map[string]interface{}, positional []interface{}) (map[string]interface{}, error) {
	byKey := make(map[string]*cmdlet.ParameterDescriptor, len(params)*2)
	for i := range params {
		p := &params[i]
		byKey[p.Name] = p
		for _, a := range p.Aliases {
			byKey[a] = p
		}
	}

	bound := make(map[string]interface{})
	boundNames := make(map[string]bool)

	for name, val := range named {
		desc, ok := byKey[name]
		if !ok {
			return nil, &ExecError{Kind: ParameterBindingError, Command: command, Message: "unknown parameter -" + name}
		}
		cv, err := convertValue(val, desc.ValueType)
		if err != nil {
			return nil, &ExecError{Kind: ParameterBindingError, Command: command, Message: err.Error()}
		}
		bound[desc.Name] = cv.Interface()
		boundNames[desc.Name] = true
	}

	positionalDescs := make([]*cmdlet.ParameterDescriptor, 0, len(params))
	for i := range params {
		p := &params[i]
		if p.Position >= 0 && !boundNames[p.Name] {
			positionalDescs = append(positionalDescs, p)
		}
	}
	sort.Slice(positionalDescs, func(i, j int) bool {
		return positionalDescs[i].Position < positionalDescs[j].Position
	})

	idx := 0
	for _, desc := range positionalDescs {
		if idx >= len(positional) {
			break
		}
		if desc.IsArray {
			rest := positional[idx:]
			if desc.ValueType != nil && desc.ValueType.Kind() != reflect.Interface {
				converted := make([]interface{}, len(rest))
				for i, v := range rest {
					cv, err := convertValue(v, desc.ValueType)
					if err != nil {
						return nil, &ExecError{Kind: ParameterBindingError, Command: command, Message: err.Error()}
					}
					converted[i] = cv.Interface()
				}
				bound[desc.Name] = converted
			} else {
				bound[desc.Name] = append([]interface{}{}, rest...)
			}
			boundNames[desc.Name] = true
			idx = len(positional)
			continue
		}
		cv, err := convertValue(positional[idx], desc.ValueType)
		if err != nil {
			return nil, &ExecError{Kind: ParameterBindingError, Command: command, Message: err.Error()}
		}
		bound[desc.Name] = cv.Interface()
		boundNames[desc.Name] = true
		idx++
	}

	for _, p := range params {
		if p.Mandatory && !boundNames[p.Name] {
			return nil, &ExecError{Kind: ParameterBindingError, Command: command, Message: "missing mandatory parameter " + p.Name}
		}
	}
	return bound, nil
}
