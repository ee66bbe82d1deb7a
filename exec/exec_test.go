package exec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OmarAglan/arbsh/cmdlet"
	"github.com/OmarAglan/arbsh/cmdlet/builtin"
	"github.com/OmarAglan/arbsh/parse"
	"github.com/OmarAglan/arbsh/sink"
	"github.com/OmarAglan/arbsh/token"
)

func newTestRegistry(t *testing.T) *cmdlet.Registry {
	t.Helper()
	reg := cmdlet.NewRegistry()
	if err := reg.Register(builtin.WriteOutput()); err != nil {
		t.Fatalf("register write-output: %v", err)
	}
	if err := reg.Register(builtin.GetCommand(reg)); err != nil {
		t.Fatalf("register get-command: %v", err)
	}
	return reg
}

func parseLine(t *testing.T, line string) []parse.Statement {
	t.Helper()
	toks, err := token.Tokenize(line)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", line, err)
	}
	stmts, err := parse.Parse(toks)
	if err != nil {
		t.Fatalf("parse(%q): %v", line, err)
	}
	return stmts
}

func objectStrings(calls []sink.Call) []string {
	var out []string
	for _, c := range calls {
		if c.Method == "object" {
			out = append(out, c.Object.Project())
		}
	}
	return out
}

func TestExecuteSimpleCommand(t *testing.T) {
	reg := newTestRegistry(t)
	s := sink.NewTestSink()
	session := NewSessionState(".")
	err := Execute(parseLine(t, "write-output hello world"), reg, s, DefaultOptions(), session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := objectStrings(s.Calls())
	if len(got) != 2 || got[0] != "hello" || got[1] != "world" {
		t.Fatalf("objects = %v", got)
	}
}

func TestExecuteCommandNotFound(t *testing.T) {
	reg := newTestRegistry(t)
	s := sink.NewTestSink()
	session := NewSessionState(".")
	_ = Execute(parseLine(t, "nope-such-command"), reg, s, DefaultOptions(), session)
	calls := s.Calls()
	if len(calls) != 1 || calls[0].Method != "error" {
		t.Fatalf("calls = %+v", calls)
	}
}

func TestExecuteContinuesAfterFailedStatement(t *testing.T) {
	reg := newTestRegistry(t)
	s := sink.NewTestSink()
	session := NewSessionState(".")
	_ = Execute(parseLine(t, "nope ; write-output ok"), reg, s, DefaultOptions(), session)
	got := objectStrings(s.Calls())
	if len(got) != 1 || got[0] != "ok" {
		t.Fatalf("objects = %v, want [ok]", got)
	}
}

func TestExecutePipeline(t *testing.T) {
	reg := newTestRegistry(t)
	s := sink.NewTestSink()
	session := NewSessionState(".")
	err := Execute(parseLine(t, "get-command | write-output"), reg, s, DefaultOptions(), session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := objectStrings(s.Calls())
	if len(got) != 2 {
		t.Fatalf("objects = %v", got)
	}
}

func TestExecuteVariableExpansion(t *testing.T) {
	reg := newTestRegistry(t)
	s := sink.NewTestSink()
	session := NewSessionState(".")
	session.Set("name", "arbsh")
	err := Execute(parseLine(t, `write-output "hello $name"`), reg, s, DefaultOptions(), session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := objectStrings(s.Calls())
	if len(got) != 1 || got[0] != "hello arbsh" {
		t.Fatalf("objects = %v", got)
	}
}

func TestExecuteEscapedDollarDoesNotExpand(t *testing.T) {
	reg := newTestRegistry(t)
	s := sink.NewTestSink()
	session := NewSessionState(".")
	session.Set("x", "5")
	err := Execute(parseLine(t, `write-output "\$x"`), reg, s, DefaultOptions(), session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := objectStrings(s.Calls())
	if len(got) != 1 || got[0] != "$x" {
		t.Fatalf("objects = %v, want literal [$x]", got)
	}
}

func TestExecuteSubexpressionScenario6(t *testing.T) {
	reg := newTestRegistry(t)
	s := sink.NewTestSink()
	session := NewSessionState(".")
	err := Execute(parseLine(t, "write-output $(get-command | write-output)"), reg, s, DefaultOptions(), session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := objectStrings(s.Calls())
	if len(got) != 1 {
		t.Fatalf("objects = %v", got)
	}
	if !strings.Contains(got[0], "get-command") || !strings.Contains(got[0], "write-output") {
		t.Fatalf("joined subexpression result = %q", got[0])
	}
}

func TestExecuteOutputRedirection(t *testing.T) {
	reg := newTestRegistry(t)
	s := sink.NewTestSink()
	dir := t.TempDir()
	session := NewSessionState(dir)
	err := Execute(parseLine(t, "write-output hello > out.txt"), reg, s, DefaultOptions(), session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, readErr := os.ReadFile(filepath.Join(dir, "out.txt"))
	if readErr != nil {
		t.Fatalf("reading redirected file: %v", readErr)
	}
	if strings.TrimSpace(string(data)) != "hello" {
		t.Fatalf("file contents = %q", string(data))
	}
}
