package exec

import (
	"strings"
	"unicode"

	"github.com/OmarAglan/arbsh/cmdlet"
	"github.com/OmarAglan/arbsh/parse"
	"github.com/OmarAglan/arbsh/sink"
	"github.com/OmarAglan/arbsh/token"
)

// materialize resolves a parsed Argument into a runtime value: it expands
// variables from session, evaluates subexpressions by recursive execution
// into a buffer sink, and applies type-literal conversions (spec.md
// §4.6.2 step 2). Subexpressions yield []interface{} — spec.md §9's open
// question on return-value coercion is resolved in favor of list-of-
// objects, joined on a space only if a string-typed parameter ultimately
// binds it (see bind.go).
func materialize(arg parse.Argument, session *SessionState, reg *cmdlet.Registry, options *ExecutionOptions) (interface{}, error) {
	switch arg.Kind {
	case parse.ArgWord, parse.ArgSingleQuoted:
		return arg.Text, nil
	case parse.ArgDoubleQuoted:
		return expandVariables(arg.Text, session), nil
	case parse.ArgVariable:
		return session.Get(arg.Text), nil
	case parse.ArgTyped:
		if arg.Value == nil {
			return arg.TypeName, nil
		}
		inner, err := materialize(*arg.Value, session, reg, options)
		if err != nil {
			return nil, err
		}
		return convertToType(inner, arg.TypeName)
	case parse.ArgSubexpression:
		buf := sink.NewBufferSink()
		nested := &SessionState{Variables: session.snapshot(), WorkingDir: session.WorkingDir}
		if err := Execute(arg.Statements, reg, buf, options, nested); err != nil {
			return nil, err
		}
		objs := buf.Objects()
		out := make([]interface{}, len(objs))
		for i, o := range objs {
			out[i] = o.Project()
		}
		return out, nil
	default:
		return nil, &ExecError{Kind: ParameterBindingError, Message: "unknown argument kind"}
	}
}

// expandVariables replaces every `$ident` occurrence in s with its value
// from session, leaving unrecognized `$` sequences untouched. Identifiers
// may use ASCII letters, digits, underscore, and Arabic letters (§6).
func expandVariables(s string, session *SessionState) string {
	runes := []rune(s)
	var out strings.Builder
	i := 0
	for i < len(runes) {
		if runes[i] == token.EscapedDollar {
			out.WriteRune('$')
			i++
			continue
		}
		if runes[i] != '$' {
			out.WriteRune(runes[i])
			i++
			continue
		}
		j := i + 1
		for j < len(runes) && isIdentRune(runes[j]) {
			j++
		}
		if j == i+1 {
			out.WriteRune('$')
			i++
			continue
		}
		name := string(runes[i+1 : j])
		out.WriteString(session.Get(name))
		i = j
	}
	return out.String()
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
