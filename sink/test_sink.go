package sink

import "sync"

// Call records one invocation of a TestSink method, in the order received.
type Call struct {
	Method string // "object", "error", "warning", "debug"
	Object Object
	Text   string
}

// TestSink records every call made to it, for use in tests that assert on
// what the executor reported (spec.md §4.8).
type TestSink struct {
	mu    sync.Mutex
	calls []Call
}

// NewTestSink returns an empty TestSink.
func NewTestSink() *TestSink {
	return &TestSink{}
}

func (s *TestSink) WriteObject(o Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Method: "object", Object: o})
}

func (s *TestSink) WriteError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Method: "error", Text: msg})
}

func (s *TestSink) WriteWarning(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Method: "warning", Text: msg})
}

func (s *TestSink) WriteDebug(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Method: "debug", Text: msg})
}

// Calls returns a copy of every call recorded so far.
func (s *TestSink) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}
