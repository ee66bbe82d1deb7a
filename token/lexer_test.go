package token

import (
	"reflect"
	"testing"
)

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeSimpleWord(t *testing.T) {
	toks, err := Tokenize("write-output")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(kinds(toks), []Kind{Word}) {
		t.Fatalf("kinds = %v", kinds(toks))
	}
	if toks[0].Text != "write-output" {
		t.Errorf("text = %q", toks[0].Text)
	}
}

func TestTokenizeQuotedStrings(t *testing.T) {
	toks, err := Tokenize(`'raw $x' "escaped \n \$x"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(kinds(toks), []Kind{SingleQuoted, DoubleQuoted}) {
		t.Fatalf("kinds = %v", kinds(toks))
	}
	if toks[0].Text != "raw $x" {
		t.Errorf("single-quoted text = %q", toks[0].Text)
	}
	want := "escaped \n " + string(EscapedDollar) + "x"
	if toks[1].Text != want {
		t.Errorf("double-quoted text = %q", toks[1].Text)
	}
}

func TestTokenizeDoubleQuotedLiteralDollarStillExpands(t *testing.T) {
	toks, err := Tokenize(`"$name"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Text != "$name" {
		t.Errorf("unescaped $ inside double quotes should stay a plain $, got %q", toks[0].Text)
	}
}

func TestTokenizeEscapedDollarRoundTrips(t *testing.T) {
	toks, err := Tokenize(`"\$x"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Text != string(EscapedDollar)+"x" {
		t.Fatalf("text = %q", toks[0].Text)
	}
	if toks[0].String() != `"\$x"` {
		t.Fatalf("round-trip = %q", toks[0].String())
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	var te *TokenizeError
	if err == nil {
		t.Fatal("expected error")
	}
	if e, ok := err.(*TokenizeError); !ok {
		t.Fatalf("error type = %T", err)
	} else {
		te = e
	}
	if te.Kind != UnterminatedQuote {
		t.Errorf("kind = %v", te.Kind)
	}
}

func TestTokenizeVariable(t *testing.T) {
	toks, err := Tokenize("$name $اسم")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(kinds(toks), []Kind{Variable, Variable}) {
		t.Fatalf("kinds = %v", kinds(toks))
	}
	if toks[0].Text != "name" {
		t.Errorf("text = %q", toks[0].Text)
	}
	if toks[1].Text != "اسم" {
		t.Errorf("arabic variable name = %q", toks[1].Text)
	}
}

func TestTokenizeTypeLiteral(t *testing.T) {
	toks, err := Tokenize("[System.Int32]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(kinds(toks), []Kind{TypeLiteral}) {
		t.Fatalf("kinds = %v", kinds(toks))
	}
	if toks[0].Text != "System.Int32" {
		t.Errorf("text = %q", toks[0].Text)
	}
}

func TestTokenizeParameterName(t *testing.T) {
	toks, err := Tokenize("get-item -path value")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{Word, ParameterName, Word}
	if !reflect.DeepEqual(kinds(toks), want) {
		t.Fatalf("kinds = %v, want %v", kinds(toks), want)
	}
	if toks[1].Text != "path" {
		t.Errorf("parameter name = %q", toks[1].Text)
	}
}

func TestTokenizeRedirections(t *testing.T) {
	cases := []struct {
		in   string
		want Redir
	}{
		{">out", Redir{SourceStream: 1}},
		{">>out", Redir{SourceStream: 1, Append: true}},
		{"<in", Redir{Input: true}},
		{"2>err", Redir{SourceStream: 2}},
		{"2>>err", Redir{SourceStream: 2, Append: true}},
		{">&1", Redir{SourceStream: 1, MergeTarget: 1}},
		{"1>&2", Redir{SourceStream: 1, MergeTarget: 2}},
		{"2>&1", Redir{SourceStream: 2, MergeTarget: 1}},
		{">>&1", Redir{SourceStream: 1, Append: true, MergeTarget: 1}},
	}
	for _, c := range cases {
		toks, err := Tokenize(c.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.in, err)
		}
		if toks[0].Kind != Redirection {
			t.Fatalf("%q: first kind = %v", c.in, toks[0].Kind)
		}
		if toks[0].Redir != c.want {
			t.Errorf("%q: redir = %+v, want %+v", c.in, toks[0].Redir, c.want)
		}
	}
}

func TestTokenizePipeAndSemicolon(t *testing.T) {
	toks, err := Tokenize("a | b ; c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{Word, Operator, Word, Semicolon, Word}
	if !reflect.DeepEqual(kinds(toks), want) {
		t.Fatalf("kinds = %v, want %v", kinds(toks), want)
	}
}

func TestTokenizeSubexpressionNesting(t *testing.T) {
	toks, err := Tokenize("write-output $(get-command | write-output)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{Word, SubexpressionOpen, Word, Operator, Word, SubexpressionClose}
	if !reflect.DeepEqual(kinds(toks), want) {
		t.Fatalf("kinds = %v, want %v", kinds(toks), want)
	}
}

func TestTokenizeNestedSubexpressions(t *testing.T) {
	toks, err := Tokenize("a $(b $(c) d)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{Word, SubexpressionOpen, Word, SubexpressionOpen, Word, SubexpressionClose, Word, SubexpressionClose}
	if !reflect.DeepEqual(kinds(toks), want) {
		t.Fatalf("kinds = %v, want %v", kinds(toks), want)
	}
}

func TestTokenizeUnterminatedSubexpression(t *testing.T) {
	_, err := Tokenize("write-output $(get-command")
	te, ok := err.(*TokenizeError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if te.Kind != UnterminatedSubexpression {
		t.Errorf("kind = %v", te.Kind)
	}
}

func TestTokenizeEscapeOutsideQuotes(t *testing.T) {
	toks, err := Tokenize(`a\;b`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != Word || toks[0].Text != "a;b" {
		t.Fatalf("tokens = %+v", toks)
	}
}

// TestTokenizeRoundTrip exercises spec.md §8's round-trip property:
// re-emitting tokens with String and retokenizing yields the same token
// kind/content sequence.
func TestTokenizeRoundTrip(t *testing.T) {
	lines := []string{
		"write-output -path 'a b' \"c d\" $x [Int32] 1>&2",
		"a | b ; c",
		"write-output $(get-command | write-output)",
	}
	for _, line := range lines {
		toks, err := Tokenize(line)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", line, err)
		}
		var rebuilt string
		for i, tok := range toks {
			if i > 0 {
				rebuilt += " "
			}
			rebuilt += tok.String()
		}
		again, err := Tokenize(rebuilt)
		if err != nil {
			t.Fatalf("%q: retokenize error: %v", rebuilt, err)
		}
		if !reflect.DeepEqual(kinds(toks), kinds(again)) {
			t.Errorf("%q -> %q: kinds = %v, want %v", line, rebuilt, kinds(again), kinds(toks))
		}
	}
}
