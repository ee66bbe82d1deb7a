package bidi

import "github.com/OmarAglan/arbsh/charprops"

// levelRun is a maximal contiguous span of positions sharing one embedding
// level, computed directly from phase X's level array (BD7).
type levelRun struct {
	start, end int // [start, end)
	level      uint8
}

func computeLevelRuns(levels []uint8) []levelRun {
	if len(levels) == 0 {
		return nil
	}
	var runs []levelRun
	start := 0
	cur := levels[0]
	for i := 1; i < len(levels); i++ {
		if levels[i] != cur {
			runs = append(runs, levelRun{start: start, end: i, level: cur})
			start = i
			cur = levels[i]
		}
	}
	runs = append(runs, levelRun{start: start, end: len(levels), level: cur})
	return runs
}

// isolatingRunSequence is the unit of W/N rule processing (BD13): positions
// drawn from one or more level runs linked across matched isolate
// initiator/PDI boundaries, all at the same embedding level, plus sos/eos.
type isolatingRunSequence struct {
	positions []int // indices into the paragraph array, BN positions excluded
	level     uint8
	sos, eos  charprops.BidiClass // always L or R
}

// buildIsolatingRunSequences implements spec.md §4.2.3.
func buildIsolatingRunSequences(origClasses, xClasses []charprops.BidiClass, ex explicitResult, paragraphLevel uint8) []isolatingRunSequence {
	n := len(xClasses)
	runs := computeLevelRuns(ex.levels)
	if len(runs) == 0 {
		return nil
	}
	posToRun := make([]int, n)
	for ri, r := range runs {
		for i := r.start; i < r.end; i++ {
			posToRun[i] = ri
		}
	}

	visited := make([]bool, len(runs))
	var sequences []isolatingRunSequence

	for ri, r := range runs {
		if visited[ri] {
			continue
		}
		// A level run that begins with a PDI matching an initiator we've
		// already chained from is a continuation, not a sequence start.
		firstIdx := r.start
		if m, ok := ex.matchedInitiator[firstIdx]; ok && m != -1 && origClasses[firstIdx] == charprops.PDI {
			continue
		}
		var positions []int
		chainRun := ri
		for {
			visited[chainRun] = true
			cr := runs[chainRun]
			for i := cr.start; i < cr.end; i++ {
				if xClasses[i] == charprops.BN {
					continue
				}
				positions = append(positions, i)
			}
			lastIdx := cr.end - 1
			if pdi, ok := ex.matchedPDI[lastIdx]; ok && pdi != -1 &&
				isIsolateInitiator(origClasses[lastIdx]) {
				chainRun = posToRun[pdi]
				continue
			}
			break
		}
		if len(positions) == 0 {
			// Entirely composed of BN: there is nothing for W/N to do, so
			// no sequence is recorded for it.
			continue
		}
		level := r.level
		sos := edgeClass(level, outsideLevelBefore(runs, ri, paragraphLevel))
		lastRun := runs[chainRun]
		eos := edgeClass(level, outsideLevelAfter(runs, chainRun, lastRun, origClasses, ex, paragraphLevel))
		sequences = append(sequences, isolatingRunSequence{positions: positions, level: level, sos: sos, eos: eos})
	}
	return sequences
}

func isIsolateInitiator(c charprops.BidiClass) bool {
	return c == charprops.LRI || c == charprops.RLI || c == charprops.FSI
}

func outsideLevelBefore(runs []levelRun, ri int, paragraphLevel uint8) uint8 {
	if ri == 0 {
		return paragraphLevel
	}
	return runs[ri-1].level
}

func outsideLevelAfter(runs []levelRun, chainRun int, lastRun levelRun, origClasses []charprops.BidiClass, ex explicitResult, paragraphLevel uint8) uint8 {
	lastIdx := lastRun.end - 1
	if isIsolateInitiator(origClasses[lastIdx]) {
		if pdi, ok := ex.matchedPDI[lastIdx]; !ok || pdi == -1 {
			// Unmatched isolate initiator at the end of the sequence: the
			// "outside" level is the paragraph level per the X9 note.
			return paragraphLevel
		}
	}
	if chainRun+1 < len(runs) {
		return runs[chainRun+1].level
	}
	return paragraphLevel
}

// edgeClass implements the sos/eos formula: L if max(a,b) is even, else R.
func edgeClass(a, b uint8) charprops.BidiClass {
	m := a
	if b > m {
		m = b
	}
	if m%2 == 0 {
		return charprops.L
	}
	return charprops.R
}
