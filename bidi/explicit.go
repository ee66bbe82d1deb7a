package bidi

import "github.com/OmarAglan/arbsh/charprops"

// explicitResult carries the output of phase X (spec.md §4.2.2): the level
// assigned to each character, an "effective" class array where embedding
// controls and true boundary neutrals have been collapsed to BN and
// directional overrides have been applied, and the isolate-initiator/PDI
// matching needed to build isolating run sequences.
type explicitResult struct {
	levels           []uint8
	classes          []charprops.BidiClass
	matchedPDI       map[int]int // isolate initiator index -> matching PDI index, or -1
	matchedInitiator map[int]int // PDI index -> matching initiator index, or -1
}

// resolveExplicit runs phase X over origClasses, which it reads but does not
// modify; the returned classes array is a separate copy.
func resolveExplicit(origClasses []charprops.BidiClass, paragraphLevel uint8) explicitResult {
	n := len(origClasses)
	res := explicitResult{
		levels:           make([]uint8, n),
		classes:          make([]charprops.BidiClass, n),
		matchedPDI:       map[int]int{},
		matchedInitiator: map[int]int{},
	}
	copy(res.classes, origClasses)

	stack := newStatusStack(paragraphLevel)
	// isolateOpenStack tracks the indices of currently-open isolate
	// initiators, used to resolve BD9 matching as PDIs are encountered.
	var isolateOpenStack []int

	for i := 0; i < n; i++ {
		c := origClasses[i]
		cur := stack.top()
		switch c {
		case charprops.RLE:
			res.levels[i] = cur.level
			res.classes[i] = charprops.BN
			stack.push(statusEntry{level: nextOdd(cur.level), override: overrideNeutral, isolate: false})
		case charprops.LRE:
			res.levels[i] = cur.level
			res.classes[i] = charprops.BN
			stack.push(statusEntry{level: nextEven(cur.level), override: overrideNeutral, isolate: false})
		case charprops.RLO:
			res.levels[i] = cur.level
			res.classes[i] = charprops.BN
			stack.push(statusEntry{level: nextOdd(cur.level), override: overrideRTL, isolate: false})
		case charprops.LRO:
			res.levels[i] = cur.level
			res.classes[i] = charprops.BN
			stack.push(statusEntry{level: nextEven(cur.level), override: overrideLTR, isolate: false})
		case charprops.LRI:
			res.levels[i] = cur.level
			isolateOpenStack = append(isolateOpenStack, i)
			stack.push(statusEntry{level: nextEven(cur.level), override: overrideNeutral, isolate: true})
		case charprops.RLI:
			res.levels[i] = cur.level
			isolateOpenStack = append(isolateOpenStack, i)
			stack.push(statusEntry{level: nextOdd(cur.level), override: overrideNeutral, isolate: true})
		case charprops.FSI:
			res.levels[i] = cur.level
			isolateOpenStack = append(isolateOpenStack, i)
			if firstStrongDirection(origClasses, i+1) {
				stack.push(statusEntry{level: nextOdd(cur.level), override: overrideNeutral, isolate: true})
			} else {
				stack.push(statusEntry{level: nextEven(cur.level), override: overrideNeutral, isolate: true})
			}
		case charprops.PDF:
			res.levels[i] = cur.level
			res.classes[i] = charprops.BN
			stack.pop()
		case charprops.PDI:
			stack.popIfIsolate()
			res.levels[i] = stack.top().level
			if len(isolateOpenStack) > 0 {
				open := isolateOpenStack[len(isolateOpenStack)-1]
				isolateOpenStack = isolateOpenStack[:len(isolateOpenStack)-1]
				res.matchedPDI[open] = i
				res.matchedInitiator[i] = open
			} else {
				res.matchedInitiator[i] = -1
			}
		default:
			res.levels[i] = cur.level
			if c == charprops.BN {
				res.classes[i] = charprops.BN
			} else if cur.override == overrideLTR {
				res.classes[i] = charprops.L
			} else if cur.override == overrideRTL {
				res.classes[i] = charprops.R
			}
		}
	}
	for _, open := range isolateOpenStack {
		res.matchedPDI[open] = -1
	}
	return res
}
