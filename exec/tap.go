package exec

import "github.com/guiguan/caster"

// DebugTap lets a host mirror every record a pipeline's final stage
// produces — used for an interactive debug view running alongside normal
// sink output (SPEC_FULL's domain-stack wiring for guiguan/caster).
type DebugTap struct {
	bus *caster.Caster
}

// NewDebugTap returns a DebugTap ready to Sub from.
func NewDebugTap() *DebugTap {
	return &DebugTap{bus: caster.New(nil)}
}

// Sub returns a channel receiving every published record and an
// unsubscribe function the caller must eventually call.
func (t *DebugTap) Sub() (<-chan interface{}, func()) {
	sub, unsub := t.bus.Sub()
	return sub, unsub
}

func (t *DebugTap) publish(v interface{}) {
	t.bus.Pub(v)
}

// Close releases the underlying broadcaster.
func (t *DebugTap) Close() {
	t.bus.Close()
}
