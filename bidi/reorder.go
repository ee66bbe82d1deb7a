package bidi

import "github.com/OmarAglan/arbsh/charprops"

// applyL1 implements rule L1 (spec.md §4.2.7): reset to the paragraph level
// any B or S character, and any trailing run of WS/FSI/LRI/RLI/PDI at the
// end of the paragraph. preWNClasses holds each position's class as it
// entered phase W (i.e. after X9 but before W/N/I), which is the "original"
// class set this rule is defined over.
func applyL1(levels []uint8, preWNClasses []charprops.BidiClass, paragraphLevel uint8) {
	for i, c := range preWNClasses {
		if c == charprops.B || c == charprops.S {
			levels[i] = paragraphLevel
		}
	}
	for i := len(preWNClasses) - 1; i >= 0; i-- {
		switch preWNClasses[i] {
		case charprops.WS, charprops.FSI, charprops.LRI, charprops.RLI, charprops.PDI:
			levels[i] = paragraphLevel
		default:
			return
		}
	}
}

// reorderVisualOrder implements rule L2: from the highest level down to 1,
// reverse every maximal span of characters whose level is at least that
// threshold. Returns the permutation of original indices in visual order.
func reorderVisualOrder(levels []uint8) []int {
	n := len(levels)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n == 0 {
		return order
	}
	var maxLvl uint8
	for _, l := range levels {
		if l > maxLvl {
			maxLvl = l
		}
	}
	for lvl := maxLvl; lvl >= 1; lvl-- {
		k := 0
		for k < n {
			if levels[order[k]] < lvl {
				k++
				continue
			}
			start := k
			for k < n && levels[order[k]] >= lvl {
				k++
			}
			reverseInts(order[start:k])
		}
	}
	return order
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
