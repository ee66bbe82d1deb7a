package sink

import (
	"bytes"
	"sync"

	xhtml "golang.org/x/net/html"
)

// HTMLSink renders every write as one <li> in an accumulating <ul>, for
// hosts that present a session as a web page rather than a terminal. It
// builds the tree with golang.org/x/net/html the same way package html
// builds trees when walking parsed HTML (this sink runs the construction
// in the opposite direction: building a tree, then rendering it).
type HTMLSink struct {
	mu   sync.Mutex
	list *xhtml.Node
}

// NewHTMLSink returns an HTMLSink with an empty <ul> root.
func NewHTMLSink() *HTMLSink {
	return &HTMLSink{list: &xhtml.Node{Type: xhtml.ElementNode, Data: "ul"}}
}

func (h *HTMLSink) appendItem(class, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	li := &xhtml.Node{Type: xhtml.ElementNode, Data: "li"}
	if class != "" {
		li.Attr = []xhtml.Attribute{{Key: "class", Val: class}}
	}
	li.AppendChild(&xhtml.Node{Type: xhtml.TextNode, Data: text})
	h.list.AppendChild(li)
}

func (h *HTMLSink) WriteObject(o Object)     { h.appendItem("object", o.Project()) }
func (h *HTMLSink) WriteError(msg string)    { h.appendItem("error", msg) }
func (h *HTMLSink) WriteWarning(msg string)  { h.appendItem("warning", msg) }
func (h *HTMLSink) WriteDebug(msg string)    { h.appendItem("debug", msg) }

// String renders the accumulated list to an HTML fragment.
func (h *HTMLSink) String() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var buf bytes.Buffer
	if err := xhtml.Render(&buf, h.list); err != nil {
		tracer().Errorf("sink: html render failed: %v", err)
		return ""
	}
	return buf.String()
}
