package bidi

import "github.com/OmarAglan/arbsh/charprops"

// resolveImplicit applies phase I (spec.md §4.2.6) to every character of
// the paragraph (not just one sequence), using each position's final class
// and current level. BN positions are skipped entirely. Levels are capped
// at 126.
func resolveImplicit(classes []charprops.BidiClass, levels []uint8) {
	for i, c := range classes {
		if c == charprops.BN {
			continue
		}
		lvl := levels[i]
		if lvl%2 == 0 {
			switch c {
			case charprops.R:
				lvl++
			case charprops.AN, charprops.EN:
				lvl += 2
			}
		} else {
			switch c {
			case charprops.L, charprops.EN, charprops.AN:
				lvl++
			}
		}
		if lvl > maxLevel {
			lvl = maxLevel
		}
		levels[i] = lvl
	}
}
