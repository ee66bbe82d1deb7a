// Command arbsh is the minimal console host (spec.md §6 "CLI surface").
// It owns no shell semantics of its own: it reads a line, tokenizes,
// parses, and executes it against a fixed builtin cmdlet set, printing
// results through a bidi-aware console sink.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/OmarAglan/arbsh/cmdlet"
	"github.com/OmarAglan/arbsh/cmdlet/builtin"
	"github.com/OmarAglan/arbsh/exec"
	"github.com/OmarAglan/arbsh/parse"
	"github.com/OmarAglan/arbsh/sink"
	"github.com/OmarAglan/arbsh/textfile"
	"github.com/OmarAglan/arbsh/token"
)

func main() {
	os.Exit(run())
}

func run() int {
	workingDir := flag.String("working-dir", ".", "initial working directory")
	baseDirection := flag.String("base-direction", "", "override the default paragraph direction hint (ltr|rtl), otherwise locale-detected")
	scriptPath := flag.String("script", "", "run commands from a script file instead of reading stdin interactively")
	flag.Parse()

	reg := cmdlet.NewRegistry()
	for _, c := range []cmdlet.Cmdlet{builtin.WriteOutput(), builtin.GetCommand(reg), builtin.ConvertToHtml()} {
		if err := reg.Register(c); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	out := sink.NewConsoleSink()
	options := exec.DefaultOptions()
	switch *baseDirection {
	case "ltr":
		options.BaseDirectionHint = 0
	case "rtl":
		options.BaseDirectionHint = 1
	}

	session := exec.NewSessionState(*workingDir)

	if *scriptPath != "" {
		content, err := textfile.Load(*scriptPath, 0)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, line := range strings.Split(content, "\n") {
			runLine(line, reg, out, options, session)
		}
		return 0
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		runLine(scanner.Text(), reg, out, options, session)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runLine(line string, reg *cmdlet.Registry, out sink.ExecutionSink, options *exec.ExecutionOptions, session *exec.SessionState) {
	if strings.TrimSpace(line) == "" {
		return
	}
	toks, err := token.Tokenize(line)
	if err != nil {
		out.WriteError(err.Error())
		return
	}
	statements, err := parse.Parse(toks)
	if err != nil {
		out.WriteError(err.Error())
		return
	}
	if err := exec.Execute(statements, reg, out, options, session); err != nil {
		out.WriteDebug(err.Error())
	}
}
