package parse

import "github.com/OmarAglan/arbsh/token"

// ArgumentKind discriminates the tagged union of argument values (spec.md
// §4.5).
type ArgumentKind uint8

const (
	ArgWord ArgumentKind = iota
	ArgSingleQuoted
	ArgDoubleQuoted
	ArgVariable
	ArgTyped
	ArgSubexpression
)

// Argument is one positional or named-parameter value. Only the fields
// relevant to Kind are populated.
type Argument struct {
	Kind ArgumentKind

	Text string // ArgWord/ArgSingleQuoted/ArgDoubleQuoted content, ArgVariable name

	TypeName string    // ArgTyped
	Value    *Argument // ArgTyped's bound value, nil if the literal stands alone

	Statements []Statement // ArgSubexpression
}

// NamedParam is a `-name value?` pair; Value is nil for a flag-style
// parameter with no following value token.
type NamedParam struct {
	Name  string
	Value *Argument
}

// RedirectionEntry is one redirection clause attached to a command.
// Target is nil for stream-merge forms (e.g. `2>&1`), populated for file
// and input forms.
type RedirectionEntry struct {
	Redir  token.Redir
	Target *Argument
}

// ParsedCommand is one command in a pipeline: a name, its positional and
// named arguments, and any redirections declared on it.
type ParsedCommand struct {
	Name   string
	Args   []Argument
	Params []NamedParam
	Redirs []RedirectionEntry
}

// Statement is a sequence of ParsedCommands joined by pipes.
type Statement []ParsedCommand
