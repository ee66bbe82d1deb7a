package bidi

import "github.com/OmarAglan/arbsh/charprops"

// resolveWeak applies W1-W7 in order over one isolating run sequence,
// mutating classes in place at the sequence's positions (spec.md §4.2.4).
func resolveWeak(classes []charprops.BidiClass, seq isolatingRunSequence) {
	pos := seq.positions

	// W1: NSM takes the class of the preceding character; ON if that
	// preceding character is an isolate initiator or PDI; sos at sequence
	// start.
	prev := seq.sos
	for _, i := range pos {
		if classes[i] == charprops.NSM {
			if isIsolateInitiator(prev) || prev == charprops.PDI {
				classes[i] = charprops.ON
			} else {
				classes[i] = prev
			}
		}
		prev = classes[i]
	}

	// W2: EN becomes AN when the first strong type found scanning backward
	// (sos counts as the backstop) is AL.
	lastStrong := seq.sos
	for _, i := range pos {
		switch classes[i] {
		case charprops.L, charprops.R, charprops.AL:
			lastStrong = classes[i]
		case charprops.EN:
			if lastStrong == charprops.AL {
				classes[i] = charprops.AN
			}
		}
	}

	// W3: AL -> R.
	for _, i := range pos {
		if classes[i] == charprops.AL {
			classes[i] = charprops.R
		}
	}

	// W4: single ES between two EN -> EN; single CS between two numbers of
	// the same type -> that type.
	for k := 1; k < len(pos)-1; k++ {
		i, left, right := pos[k], pos[k-1], pos[k+1]
		switch classes[i] {
		case charprops.ES:
			if classes[left] == charprops.EN && classes[right] == charprops.EN {
				classes[i] = charprops.EN
			}
		case charprops.CS:
			if classes[left] == classes[right] && (classes[left] == charprops.EN || classes[left] == charprops.AN) {
				classes[i] = classes[left]
			}
		}
	}

	// W5: a maximal run of ET adjacent to an EN -> EN.
	k := 0
	for k < len(pos) {
		if classes[pos[k]] != charprops.ET {
			k++
			continue
		}
		start := k
		for k < len(pos) && classes[pos[k]] == charprops.ET {
			k++
		}
		end := k // [start, end) is the ET run
		adjacentEN := (start > 0 && classes[pos[start-1]] == charprops.EN) ||
			(end < len(pos) && classes[pos[end]] == charprops.EN)
		if adjacentEN {
			for j := start; j < end; j++ {
				classes[pos[j]] = charprops.EN
			}
		}
	}

	// W6: remaining ES, ET, CS -> ON.
	for _, i := range pos {
		switch classes[i] {
		case charprops.ES, charprops.ET, charprops.CS:
			classes[i] = charprops.ON
		}
	}

	// W7: EN whose first backward strong (including sos) is L -> L.
	lastStrong = seq.sos
	for _, i := range pos {
		switch classes[i] {
		case charprops.L, charprops.R:
			lastStrong = classes[i]
		case charprops.EN:
			if lastStrong == charprops.L {
				classes[i] = charprops.L
			}
		}
	}
}
