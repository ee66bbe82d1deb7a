package builtin

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/OmarAglan/arbsh/cmdlet"
	"golang.org/x/net/html"
)

// ConvertToHtml returns the ConvertTo-Html cmdlet: it buffers every piped
// input and, at end of processing, emits one HTML <table> string built
// with golang.org/x/net/html's tree construction, the same library the
// HTML sink uses for rendering output records.
func ConvertToHtml() cmdlet.Cmdlet {
	desc := cmdlet.Descriptor{
		Name:    "ConvertTo-Html",
		Aliases: []string{"تحويل-الى-html"},
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
			return &convertToHtmlInstance{emit: emit}, nil
		},
	}
}

type convertToHtmlInstance struct {
	emit cmdlet.Emit
	rows []string
}

func (c *convertToHtmlInstance) BeginProcessing() error { return nil }

func (c *convertToHtmlInstance) ProcessRecord(input interface{}) error {
	if input != nil {
		c.rows = append(c.rows, fmt.Sprint(input))
	}
	return nil
}

func (c *convertToHtmlInstance) EndProcessing() error {
	c.emit(renderHTMLTable(c.rows))
	return nil
}

func renderHTMLTable(rows []string) string {
	table := &html.Node{Type: html.ElementNode, Data: "table"}
	for _, r := range rows {
		tr := &html.Node{Type: html.ElementNode, Data: "tr"}
		td := &html.Node{Type: html.ElementNode, Data: "td"}
		td.AppendChild(&html.Node{Type: html.TextNode, Data: r})
		tr.AppendChild(td)
		table.AppendChild(tr)
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, table); err != nil {
		tracer().Errorf("ConvertTo-Html: render failed: %v", err)
		return ""
	}
	return buf.String()
}
