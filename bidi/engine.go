package bidi

import "github.com/OmarAglan/arbsh/charprops"

// Resolve implements spec.md §4.2: it runs phases P, X, the isolating run
// sequence partition, W, N, I and L1 over text and returns the resulting
// runs. baseLevel of -1 means auto-detect (phase P); 0/1 pins the paragraph
// to LTR/RTL. Resolve never fails: malformed UTF-8 decodes to the
// replacement rune, which charprops.Classify reports as ON.
func Resolve(text string, baseLevel int8) []Run {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	origClasses := make([]charprops.BidiClass, n)
	for i, r := range runes {
		origClasses[i] = charprops.Classify(r)
	}

	var paragraphLevel uint8
	switch baseLevel {
	case 0, 1:
		paragraphLevel = uint8(baseLevel)
	default:
		paragraphLevel = detectParagraphLevel(origClasses)
	}

	ex := resolveExplicit(origClasses, paragraphLevel)

	// Snapshot the class each position carries entering phase W: this is
	// the "original" class set rule L1 is defined over, and the set N0
	// checks to decide whether a bracket-adjacent NSM should follow its
	// bracket's new resolved direction.
	preWClasses := make([]charprops.BidiClass, n)
	copy(preWClasses, ex.classes)
	preWNSM := make([]bool, n)
	for i, c := range preWClasses {
		preWNSM[i] = c == charprops.NSM
	}

	sequences := buildIsolatingRunSequences(origClasses, ex.classes, ex, paragraphLevel)

	workingClasses := make([]charprops.BidiClass, n)
	copy(workingClasses, ex.classes)
	for _, seq := range sequences {
		resolveWeak(workingClasses, seq)
	}
	for _, seq := range sequences {
		resolveNeutral(runes, workingClasses, seq, preWNSM)
	}

	levels := make([]uint8, n)
	copy(levels, ex.levels)
	resolveImplicit(workingClasses, levels)

	applyL1(levels, preWClasses, paragraphLevel)

	return runsFromLevels(levels)
}

// ReorderForDisplay implements rules L2 (progressive reversal) and L4
// (mirroring) and returns text in visual order (spec.md §4.2.7).
func ReorderForDisplay(text string, runs []Run, paragraphLevel uint8) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}
	levels := levelsFromRuns(runs, n)
	order := reorderVisualOrder(levels)

	out := make([]rune, n)
	for vi, idx := range order {
		r := runes[idx]
		if levels[idx]%2 == 1 {
			if m, ok := charprops.Mirrored(r); ok {
				r = m
			}
		}
		out[vi] = r
	}
	return string(out)
}

// Process composes Resolve and ReorderForDisplay, per spec.md §4.2. The
// paragraph level it feeds to ReorderForDisplay is the one Resolve used:
// baseLevel itself when it is 0 or 1, otherwise the result of running
// phase P again over the text's classes. The empty string is returned as is.
func Process(text string, baseLevel int8) string {
	runs := Resolve(text, baseLevel)
	if len(runs) == 0 {
		return text
	}
	var paragraphLevel uint8
	switch baseLevel {
	case 0, 1:
		paragraphLevel = uint8(baseLevel)
	default:
		runes := []rune(text)
		classes := make([]charprops.BidiClass, len(runes))
		for i, r := range runes {
			classes[i] = charprops.Classify(r)
		}
		paragraphLevel = detectParagraphLevel(classes)
	}
	return ReorderForDisplay(text, runs, paragraphLevel)
}
