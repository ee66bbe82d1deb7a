package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/OmarAglan/arbsh/bidi"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// ControlCodes are the escape sequences a console uses to switch explicit
// bidi direction mid-line, following the terminal-wg recommendation the
// teacher's console formatter implements.
type ControlCodes struct {
	LTR, RTL []byte
}

// DefaultCodes matches the teacher's styled/formatter.DefaultCodes.
var DefaultCodes = ControlCodes{
	LTR: []byte{27, '[', '1', ' ', 'k'},
	RTL: []byte{27, '[', '2', ' ', 'k'},
}

// ConsoleSink formats ExecutionSink writes for a terminal: it runs each
// string object through the BidiEngine before printing (core code never
// does its own reordering, so any host that wants visual-order output
// must do this itself) and colorizes error/warning/debug lines.
type ConsoleSink struct {
	Out, Err   io.Writer
	Codes      ControlCodes
	BaseLevel  int8 // -1 = auto-detect, matching bidi.Resolve's convention
	errColor   *color.Color
	warnColor  *color.Color
	debugColor *color.Color
	isTerminal bool
}

// NewConsoleSink builds a ConsoleSink writing to stdout/stderr, detecting
// whether stdout is a terminal the way the teacher's ConfigFromTerminal
// does with golang.org/x/term.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{
		Out:        os.Stdout,
		Err:        os.Stderr,
		Codes:      DefaultCodes,
		BaseLevel:  -1,
		errColor:   color.New(color.FgRed),
		warnColor:  color.New(color.FgYellow),
		debugColor: color.New(color.FgBlue),
		isTerminal: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (c *ConsoleSink) display(s string) string {
	return bidi.Process(s, c.BaseLevel)
}

func (c *ConsoleSink) WriteObject(o Object) {
	fmt.Fprintln(c.Out, c.display(o.Project()))
}

func (c *ConsoleSink) WriteError(msg string) {
	if c.isTerminal {
		c.errColor.Fprintln(c.Err, c.display(msg))
		return
	}
	fmt.Fprintln(c.Err, c.display(msg))
}

func (c *ConsoleSink) WriteWarning(msg string) {
	if c.isTerminal {
		c.warnColor.Fprintln(c.Err, c.display(msg))
		return
	}
	fmt.Fprintln(c.Err, c.display(msg))
}

func (c *ConsoleSink) WriteDebug(msg string) {
	if c.isTerminal {
		c.debugColor.Fprintln(c.Err, c.display(msg))
		return
	}
	fmt.Fprintln(c.Err, c.display(msg))
}
