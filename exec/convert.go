package exec

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// projectToString renders any materialized value to a single string,
// joining a subexpression's []interface{} result on a space — spec.md §9's
// open question on subexpression return coercion, resolved here.
func projectToString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = projectToString(e)
		}
		return strings.Join(parts, " ")
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// convertToType applies a `[TypeName]` literal's conversion, using the
// platform's standard conversion pipeline (Go's strconv), per spec.md
// §4.6.2. A value that does not parse as a known type is a
// ParameterBindingError; an unknown type name passes the value through as
// a string.
func convertToType(v interface{}, typeName string) (interface{}, error) {
	name := normalizeTypeName(typeName)
	s := projectToString(v)
	switch name {
	case "int32", "int", "integer":
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, &ExecError{Kind: ParameterBindingError, Message: "cannot convert " + s + " to " + typeName}
		}
		return n, nil
	case "int64", "long":
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, &ExecError{Kind: ParameterBindingError, Message: "cannot convert " + s + " to " + typeName}
		}
		return n, nil
	case "double", "float", "float64", "single":
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, &ExecError{Kind: ParameterBindingError, Message: "cannot convert " + s + " to " + typeName}
		}
		return n, nil
	case "bool", "boolean":
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return nil, &ExecError{Kind: ParameterBindingError, Message: "cannot convert " + s + " to " + typeName}
		}
		return b, nil
	case "string":
		return s, nil
	default:
		// Unknown type name: pass the string through unconverted rather
		// than failing the whole pipeline over an accelerator this host
		// doesn't recognize.
		return s, nil
	}
}

func normalizeTypeName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

// convertValue converts a materialized argument value to a parameter's
// declared Go type, for reflective binding (spec.md §4.6.2 step 3).
func convertValue(v interface{}, target reflect.Type) (reflect.Value, error) {
	if target == nil {
		return reflect.ValueOf(v), nil
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Type().AssignableTo(target) {
		return rv, nil
	}
	if target.Kind() == reflect.String {
		return reflect.ValueOf(projectToString(v)).Convert(target), nil
	}
	if rv.IsValid() && rv.Type().ConvertibleTo(target) {
		return rv.Convert(target), nil
	}
	converted, err := convertToType(v, target.Name())
	if err != nil {
		return reflect.Value{}, err
	}
	cv := reflect.ValueOf(converted)
	if !cv.Type().ConvertibleTo(target) {
		return reflect.Value{}, &ExecError{Kind: ParameterBindingError, Message: "cannot bind value to parameter type " + target.String()}
	}
	return cv.Convert(target), nil
}
