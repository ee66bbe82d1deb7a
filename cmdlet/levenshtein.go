package cmdlet

// levenshteinAtMost1 reports whether a and b are equal or differ by a
// single-character edit (insertion, deletion, or substitution), which is
// enough to power a cheap "did you mean" suggestion without computing a
// full edit-distance matrix.
func levenshteinAtMost1(a, b string) bool {
	ar, br := []rune(a), []rune(b)
	if ar_, br_ := len(ar), len(br); ar_ == br_ {
		diffs := 0
		for i := range ar {
			if ar[i] != br[i] {
				diffs++
				if diffs > 1 {
					return false
				}
			}
		}
		return diffs <= 1
	} else if absDiff(ar_, br_) != 1 {
		return false
	}
	if len(ar) > len(br) {
		ar, br = br, ar
	}
	// ar is shorter by exactly one rune; find the single insertion point.
	i, j := 0, 0
	skipped := false
	for i < len(ar) && j < len(br) {
		if ar[i] == br[j] {
			i++
			j++
			continue
		}
		if skipped {
			return false
		}
		skipped = true
		j++
	}
	return true
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
