package builtin

import (
	"strings"
	"testing"

	"github.com/OmarAglan/arbsh/cmdlet"
)

func TestWriteOutputEmitsPositionalArgs(t *testing.T) {
	var got []interface{}
	c := WriteOutput()
	inst, err := c.New(map[string]interface{}{"InputObject": []interface{}{"a", "b"}}, func(v interface{}) {
		got = append(got, v)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := inst.BeginProcessing(); err != nil {
		t.Fatalf("BeginProcessing: %v", err)
	}
	if err := inst.EndProcessing(); err != nil {
		t.Fatalf("EndProcessing: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("emitted = %v", got)
	}
}

func TestWriteOutputRelaysPipelineInput(t *testing.T) {
	var got []interface{}
	c := WriteOutput()
	inst, _ := c.New(nil, func(v interface{}) { got = append(got, v) })
	_ = inst.BeginProcessing()
	_ = inst.ProcessRecord("x")
	_ = inst.ProcessRecord("y")
	_ = inst.EndProcessing()
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("emitted = %v", got)
	}
}

func TestGetCommandListsRegisteredNames(t *testing.T) {
	reg := cmdlet.NewRegistry()
	if err := reg.Register(WriteOutput()); err != nil {
		t.Fatalf("register write-output: %v", err)
	}
	gc := GetCommand(reg)
	if err := reg.Register(gc); err != nil {
		t.Fatalf("register get-command: %v", err)
	}

	var got []interface{}
	inst, err := gc.New(nil, func(v interface{}) { got = append(got, v) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = inst.BeginProcessing()
	_ = inst.EndProcessing()

	if len(got) != 2 {
		t.Fatalf("emitted = %v", got)
	}
}

func TestConvertToHtmlRendersTable(t *testing.T) {
	c := ConvertToHtml()
	var got []interface{}
	inst, err := c.New(nil, func(v interface{}) { got = append(got, v) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = inst.BeginProcessing()
	_ = inst.ProcessRecord("row1")
	_ = inst.ProcessRecord("row2")
	_ = inst.EndProcessing()

	if len(got) != 1 {
		t.Fatalf("emitted = %v", got)
	}
	out, ok := got[0].(string)
	if !ok {
		t.Fatalf("emitted value is not a string: %v", got[0])
	}
	if !strings.Contains(out, "<table>") || !strings.Contains(out, "row1") || !strings.Contains(out, "row2") {
		t.Fatalf("html output missing expected content: %q", out)
	}
}
