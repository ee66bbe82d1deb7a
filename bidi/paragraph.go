package bidi

import "github.com/OmarAglan/arbsh/charprops"

// detectParagraphLevel implements phase P (spec.md §4.2.1): scan forward,
// skipping any span from an isolate initiator to its matching PDI (or
// end-of-text if unmatched), ignoring embedding initiators without entering
// their span conceptually (their contained characters are still examined).
// The first strong character found outside of a skipped isolate span
// decides the level; L -> 0, AL/R -> 1. No strong character -> 0.
func detectParagraphLevel(classes []charprops.BidiClass) uint8 {
	i := 0
	for i < len(classes) {
		c := classes[i]
		switch c {
		case charprops.LRI, charprops.RLI, charprops.FSI:
			i = skipIsolate(classes, i)
			continue
		case charprops.L:
			return 0
		case charprops.AL, charprops.R:
			return 1
		}
		i++
	}
	return 0
}

// skipIsolate returns the index just past the PDI matching the isolate
// initiator at position start, or len(classes) if unmatched.
func skipIsolate(classes []charprops.BidiClass, start int) int {
	depth := 1
	i := start + 1
	for i < len(classes) {
		switch classes[i] {
		case charprops.LRI, charprops.RLI, charprops.FSI:
			depth++
		case charprops.PDI:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return len(classes)
}

// firstStrongDirection scans forward from start (inclusive) at the same
// isolate nesting level until the matching PDI, looking for the first
// strong character, for FSI's "determine first-strong direction" rule.
// Returns true (RTL) for AL/R, false (LTR) for L or if none is found.
func firstStrongDirection(classes []charprops.BidiClass, start int) (rtl bool) {
	i := start
	for i < len(classes) {
		switch classes[i] {
		case charprops.LRI, charprops.RLI, charprops.FSI:
			i = skipIsolate(classes, i)
			continue
		case charprops.PDI:
			return false
		case charprops.L:
			return false
		case charprops.AL, charprops.R:
			return true
		}
		i++
	}
	return false
}
