package bidi

import "fmt"

// Run is a maximal span of codepoints sharing one embedding level, as
// produced by Resolve. Runs are non-overlapping and, taken together, cover
// the paragraph exactly once.
type Run struct {
	Start  uint32
	Length uint32
	Level  uint8
}

// String implements fmt.Stringer for trace/debug output.
func (r Run) String() string {
	return fmt.Sprintf("Run{start:%d len:%d level:%d}", r.Start, r.Length, r.Level)
}

// runsFromLevels collapses a per-rune level array into maximal same-level
// runs.
func runsFromLevels(levels []uint8) []Run {
	if len(levels) == 0 {
		return nil
	}
	runs := make([]Run, 0, 8)
	start := 0
	cur := levels[0]
	for i := 1; i < len(levels); i++ {
		if levels[i] != cur {
			runs = append(runs, Run{Start: uint32(start), Length: uint32(i - start), Level: cur})
			start = i
			cur = levels[i]
		}
	}
	runs = append(runs, Run{Start: uint32(start), Length: uint32(len(levels) - start), Level: cur})
	return runs
}

// levelsFromRuns expands a run list back into a per-rune level array of
// length n.
func levelsFromRuns(runs []Run, n int) []uint8 {
	levels := make([]uint8, n)
	for _, r := range runs {
		for i := r.Start; i < r.Start+r.Length && int(i) < n; i++ {
			levels[i] = r.Level
		}
	}
	return levels
}
