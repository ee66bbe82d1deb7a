package sink

import "sync"

// BufferSink is an in-memory ExecutionSink used while evaluating a
// subexpression into a buffer for later materialization into an argument
// (spec.md §4.6.2). Errors and warnings are retained too, so a caller can
// decide whether to surface them once the subexpression finishes.
type BufferSink struct {
	mu       sync.Mutex
	objects  []Object
	errors   []string
	warnings []string
	debugs   []string
}

// NewBufferSink returns an empty BufferSink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (b *BufferSink) WriteObject(o Object) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects = append(b.objects, o)
}

func (b *BufferSink) WriteError(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errors = append(b.errors, msg)
}

func (b *BufferSink) WriteWarning(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.warnings = append(b.warnings, msg)
}

func (b *BufferSink) WriteDebug(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.debugs = append(b.debugs, msg)
}

// Objects returns a copy of the objects written so far.
func (b *BufferSink) Objects() []Object {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Object, len(b.objects))
	copy(out, b.objects)
	return out
}

// Errors returns a copy of the error messages written so far.
func (b *BufferSink) Errors() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.errors))
	copy(out, b.errors)
	return out
}
