package exec

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/OmarAglan/arbsh/parse"
)

// stageRedirections holds a stage's opened redirection targets, built
// before the stage's goroutine starts (spec.md §4.6.4: "Before starting a
// stage, open redirection targets in declaration order").
type stageRedirections struct {
	inputLines    []string
	outFiles      []*os.File // file redirections, written as each record's string projection
	mergeErrToOut bool       // 2>&1: stage errors are emitted into the output stream instead of reported to the sink
	mergeOutToErr bool       // 1>&2: stage output is reported as errors instead of forwarded downstream
}

func (r *stageRedirections) closeAll() {
	for _, f := range r.outFiles {
		f.Close()
	}
}

// openRedirections opens every redirection entry attached to a command.
// targets holds the already-materialized, already-projected-to-string
// value for each entry with a file target (stream-merge forms, which have
// no file, get an empty string).
func openRedirections(entries []parse.RedirectionEntry, targets []string, workingDir string) (*stageRedirections, error) {
	sr := &stageRedirections{}
	for i, e := range entries {
		switch {
		case e.Redir.Input:
			path := targets[i]
			if !filepath.IsAbs(path) {
				path = filepath.Join(workingDir, path)
			}
			f, err := os.Open(path)
			if err != nil {
				return nil, &ExecError{Kind: PipelineStageError, Message: "cannot open input redirection target: " + err.Error()}
			}
			lines, err := readLines(f)
			f.Close()
			if err != nil {
				return nil, &ExecError{Kind: PipelineStageError, Message: "reading input redirection target: " + err.Error()}
			}
			sr.inputLines = append(sr.inputLines, lines...)

		case e.Redir.MergeTarget != 0:
			if e.Redir.SourceStream == 2 && e.Redir.MergeTarget == 1 {
				sr.mergeErrToOut = true
			} else if e.Redir.SourceStream == 1 && e.Redir.MergeTarget == 2 {
				sr.mergeOutToErr = true
			}
			// MergeTarget == SourceStream (degenerate) is a no-op.

		default:
			path := targets[i]
			if !filepath.IsAbs(path) {
				path = filepath.Join(workingDir, path)
			}
			flags := os.O_WRONLY | os.O_CREATE
			if e.Redir.Append {
				flags |= os.O_APPEND
			} else {
				flags |= os.O_TRUNC
			}
			f, err := os.OpenFile(path, flags, 0644)
			if err != nil {
				return nil, &ExecError{Kind: PipelineStageError, Message: "cannot open redirection target: " + err.Error()}
			}
			sr.outFiles = append(sr.outFiles, f)
		}
	}
	return sr, nil
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func (r *stageRedirections) writeRecord(s string) {
	for _, f := range r.outFiles {
		f.WriteString(s)
		f.WriteString("\n")
	}
}
