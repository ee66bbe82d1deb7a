/*
Package textfile reads a script file for non-interactive execution
(spec.md §6's CLI surface, extended with a `--script` host flag).

It keeps the teacher's bounded asynchronous prefetch pipeline — reading
fixed-size byte chunks on a background goroutine while the caller
accumulates them, with UTF-8 boundary splitting so a multi-byte rune
straddling a chunk boundary is never torn — but materializes the file as
a plain string instead of a cords.Cord, since the executor consumes
commands line by line rather than through a rope data structure.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textfile'
func tracer() tracing.Trace {
	return tracing.Select("textfile")
}
