package exec

import (
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
)

// ExecutionOptions configures one Execute call (spec.md §4.6). It is the
// only externally supplied configuration at the core level — there is no
// persisted configuration file (§6).
type ExecutionOptions struct {
	// PipelineBufferSize bounds the channel connecting adjacent pipeline
	// stages (§4.6.3's "backpressure... must be bounded").
	PipelineBufferSize int

	// BaseDirectionHint seeds the paragraph base level cmdlets use when
	// rendering prompts or other host-facing strings through the
	// BidiEngine. It never affects the BidiEngine's own auto-detection
	// (§4.2.1 stays locale-independent); it is a convenience default for
	// cmdlet authors, following -1/0/1 = auto/LTR/RTL.
	BaseDirectionHint int8

	// Tap, if set, receives a copy of every object the final pipeline
	// stage of every statement produces, alongside the normal sink
	// delivery. Hosts running an interactive debug view Sub from it.
	Tap *DebugTap
}

// DefaultOptions returns ExecutionOptions with a bounded default buffer
// size and a locale-derived direction hint: hosts running under an
// Arabic or Hebrew locale get RTL as their hint, everyone else gets
// auto-detect. Detection uses jibber_jabber the way a CLI host would
// read $LANG/$LC_ALL.
func DefaultOptions() *ExecutionOptions {
	hint := int8(-1)
	if lang, err := jibber_jabber.DetectLanguage(); err == nil {
		lower := strings.ToLower(lang)
		if lower == "ar" || lower == "he" {
			hint = 1
		}
	}
	return &ExecutionOptions{
		PipelineBufferSize: 16,
		BaseDirectionHint:  hint,
	}
}
