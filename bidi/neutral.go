package bidi

import (
	"sort"

	"github.com/OmarAglan/arbsh/charprops"
)

const maxBracketStack = 63

type bracketPair struct {
	open, close int
}

func isNeutralClass(c charprops.BidiClass) bool {
	return c == charprops.ON || c == charprops.WS || c == charprops.S || c == charprops.B
}

// strongDirOf maps a class to the strong direction it behaves as for N0/N1
// purposes: EN and AN count as R.
func strongDirOf(c charprops.BidiClass) (charprops.BidiClass, bool) {
	switch c {
	case charprops.L:
		return charprops.L, true
	case charprops.R, charprops.EN, charprops.AN:
		return charprops.R, true
	default:
		return 0, false
	}
}

// findBracketPairs implements BD16: a fixed 63-entry stack of open brackets,
// matched by canonical equivalence against closing brackets encountered
// later in the same sequence.
func findBracketPairs(runes []rune, classes []charprops.BidiClass, positions []int) []bracketPair {
	type stackEntry struct {
		pos   int
		canon rune
	}
	var stack []stackEntry
	var pairs []bracketPair

	for _, i := range positions {
		if classes[i] != charprops.ON {
			continue
		}
		kind, _, ok := charprops.PairedBracket(runes[i])
		if !ok {
			continue
		}
		canon, _ := charprops.CanonicalBracket(runes[i])
		switch kind {
		case charprops.Open:
			if len(stack) >= maxBracketStack {
				return pairs
			}
			stack = append(stack, stackEntry{pos: i, canon: canon})
		case charprops.Close:
			for k := len(stack) - 1; k >= 0; k-- {
				if stack[k].canon == canon {
					pairs = append(pairs, bracketPair{open: stack[k].pos, close: i})
					stack = stack[:k]
					break
				}
			}
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].open < pairs[b].open })
	return pairs
}

// resolveNeutral applies N0-N2 over one isolating run sequence (spec.md
// §4.2.5). runes supplies the original characters for bracket lookup;
// preWNSM records, per paragraph position, whether the character's class
// entering phase W was NSM (used for N0's trailing-NSM adoption rule, since
// W1 will already have resolved those NSM classes away by this point).
func resolveNeutral(runes []rune, classes []charprops.BidiClass, seq isolatingRunSequence, preWNSM []bool) {
	pos := seq.positions
	embeddingDir := charprops.L
	if seq.level%2 == 1 {
		embeddingDir = charprops.R
	}
	oppositeDir := charprops.R
	if embeddingDir == charprops.R {
		oppositeDir = charprops.L
	}

	indexOf := make(map[int]int, len(pos))
	for k, p := range pos {
		indexOf[p] = k
	}
	nextPos := func(p int) (int, bool) {
		k := indexOf[p]
		if k+1 < len(pos) {
			return pos[k+1], true
		}
		return 0, false
	}

	// N0: bracket pairs.
	pairs := findBracketPairs(runes, classes, pos)
	for _, pair := range pairs {
		oi, ci := indexOf[pair.open], indexOf[pair.close]
		foundEmbedding, foundOpposite := false, false
		for k := oi + 1; k < ci; k++ {
			if d, ok := strongDirOf(classes[pos[k]]); ok {
				if d == embeddingDir {
					foundEmbedding = true
				} else {
					foundOpposite = true
				}
			}
		}
		var newDir charprops.BidiClass
		resolved := true
		switch {
		case foundEmbedding:
			newDir = embeddingDir
		case foundOpposite:
			contextDir := seq.sos
			for k := oi - 1; k >= 0; k-- {
				if d, ok := strongDirOf(classes[pos[k]]); ok {
					contextDir = d
					break
				}
			}
			if contextDir == oppositeDir {
				newDir = oppositeDir
			} else {
				newDir = embeddingDir
			}
		default:
			resolved = false
		}
		if !resolved {
			continue
		}
		classes[pair.open] = newDir
		classes[pair.close] = newDir
		if np, ok := nextPos(pair.open); ok && preWNSM[np] {
			classes[np] = newDir
		}
		if np, ok := nextPos(pair.close); ok && preWNSM[np] {
			classes[np] = newDir
		}
	}

	// N1: maximal neutral runs surrounded by the same strong direction.
	k := 0
	for k < len(pos) {
		if !isNeutralClass(classes[pos[k]]) {
			k++
			continue
		}
		start := k
		for k < len(pos) && isNeutralClass(classes[pos[k]]) {
			k++
		}
		end := k // [start, end)
		var before, after charprops.BidiClass
		if start == 0 {
			before = seq.sos
		} else if d, ok := strongDirOf(classes[pos[start-1]]); ok {
			before = d
		} else {
			before = 0
			continue
		}
		if end == len(pos) {
			after = seq.eos
		} else if d, ok := strongDirOf(classes[pos[end]]); ok {
			after = d
		} else {
			continue
		}
		if before == after {
			for j := start; j < end; j++ {
				classes[pos[j]] = before
			}
		}
	}

	// N2: remaining neutrals take the embedding direction.
	for _, i := range pos {
		if isNeutralClass(classes[i]) {
			classes[i] = embeddingDir
		}
	}
}
