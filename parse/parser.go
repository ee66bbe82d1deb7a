package parse

import "github.com/OmarAglan/arbsh/token"

// Parse converts a token stream into a list of Statements per spec.md §4.5.
func Parse(tokens []token.Token) ([]Statement, error) {
	p := &parser{toks: tokens}
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, &ParseError{Message: "unmatched subexpression close", Pos: p.peek().Pos}
	}
	return stmts, nil
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) atEnd() bool          { return p.pos >= len(p.toks) }
func (p *parser) peek() token.Token    { return p.toks[p.pos] }
func (p *parser) advance() token.Token { t := p.toks[p.pos]; p.pos++; return t }

func (p *parser) peekKind() token.Kind {
	if p.atEnd() {
		return 255 // sentinel: no token
	}
	return p.peek().Kind
}

func (p *parser) pos_() int {
	if p.atEnd() {
		if len(p.toks) == 0 {
			return 0
		}
		return p.toks[len(p.toks)-1].Pos
	}
	return p.peek().Pos
}

// parseStatements parses statements separated by Semicolon until EOF or an
// unconsumed SubexpressionClose (left for the caller to consume).
func (p *parser) parseStatements() ([]Statement, error) {
	var stmts []Statement
	for {
		if p.atEnd() || p.peekKind() == token.SubexpressionClose {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.peekKind() == token.Semicolon {
			p.advance()
			continue
		}
		break
	}
	return stmts, nil
}

func (p *parser) parseStatement() (Statement, error) {
	var stmt Statement
	for {
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		stmt = append(stmt, cmd)
		if p.peekKind() == token.Operator && p.peek().Op == token.Pipe {
			p.advance()
			if p.atEnd() || p.peekKind() == token.Semicolon || p.peekKind() == token.SubexpressionClose {
				return nil, &ParseError{Message: "pipe with no following command", Pos: p.pos_()}
			}
			continue
		}
		break
	}
	return stmt, nil
}

func (p *parser) parseCommand() (ParsedCommand, error) {
	if p.atEnd() || p.peekKind() != token.Word {
		return ParsedCommand{}, &ParseError{Message: "expected command name", Pos: p.pos_()}
	}
	cmd := ParsedCommand{Name: p.advance().Text}

	for {
		if p.atEnd() {
			break
		}
		switch p.peekKind() {
		case token.Semicolon, token.SubexpressionClose:
			return cmd, nil
		case token.Operator:
			return cmd, nil
		case token.ParameterName:
			name := p.advance().Text
			param := NamedParam{Name: name}
			if p.isValueStart() {
				v, err := p.parseValue()
				if err != nil {
					return ParsedCommand{}, err
				}
				param.Value = &v
			}
			cmd.Params = append(cmd.Params, param)
		case token.Redirection:
			redirTok := p.advance()
			entry := RedirectionEntry{Redir: redirTok.Redir}
			if redirTok.Redir.MergeTarget == 0 {
				if !p.isValueStart() {
					return ParsedCommand{}, &ParseError{Message: "missing redirection target", Pos: p.pos_()}
				}
				v, err := p.parseValue()
				if err != nil {
					return ParsedCommand{}, err
				}
				entry.Target = &v
			}
			cmd.Redirs = append(cmd.Redirs, entry)
		default:
			v, err := p.parseValue()
			if err != nil {
				return ParsedCommand{}, err
			}
			cmd.Args = append(cmd.Args, v)
		}
	}
	return cmd, nil
}

// isValueStart reports whether the current token can begin a value
// (argument or redirection target).
func (p *parser) isValueStart() bool {
	if p.atEnd() {
		return false
	}
	switch p.peekKind() {
	case token.Word, token.SingleQuoted, token.DoubleQuoted, token.Variable, token.TypeLiteral, token.SubexpressionOpen:
		return true
	default:
		return false
	}
}

func (p *parser) parseValue() (Argument, error) {
	if p.atEnd() {
		return Argument{}, &ParseError{Message: "expected value", Pos: p.pos_()}
	}
	tok := p.peek()
	switch tok.Kind {
	case token.Word:
		p.advance()
		return Argument{Kind: ArgWord, Text: tok.Text}, nil
	case token.SingleQuoted:
		p.advance()
		return Argument{Kind: ArgSingleQuoted, Text: tok.Text}, nil
	case token.DoubleQuoted:
		p.advance()
		return Argument{Kind: ArgDoubleQuoted, Text: tok.Text}, nil
	case token.Variable:
		p.advance()
		return Argument{Kind: ArgVariable, Text: tok.Text}, nil
	case token.TypeLiteral:
		p.advance()
		arg := Argument{Kind: ArgTyped, TypeName: tok.Text}
		if p.isValueStart() {
			v, err := p.parseValue()
			if err != nil {
				return Argument{}, err
			}
			arg.Value = &v
		}
		return arg, nil
	case token.SubexpressionOpen:
		p.advance()
		stmts, err := p.parseStatements()
		if err != nil {
			return Argument{}, err
		}
		if p.atEnd() || p.peekKind() != token.SubexpressionClose {
			return Argument{}, &ParseError{Message: "unmatched subexpression", Pos: p.pos_()}
		}
		p.advance()
		return Argument{Kind: ArgSubexpression, Statements: stmts}, nil
	default:
		return Argument{}, &ParseError{Message: "expected value", Pos: tok.Pos}
	}
}
