package shaper

import (
	"github.com/OmarAglan/arbsh/charprops"
)

// Shape converts Arabic letters in text from logical order to their
// contextual presentation forms. Non-Arabic characters, including
// combining marks, are copied through unchanged (except where a combining
// mark directly follows a letter that was consumed by a Lam-Alef ligature,
// in which case it still follows immediately after the ligature).
//
// Shape never panics: if an internal invariant is violated it returns text
// unchanged. It reports no warning itself; TryShape tells the caller
// whether that fallback happened.
func Shape(text string) string {
	out, _ := TryShape(text)
	return out
}

// TryShape is Shape's fallible form: it returns (text, false) unchanged
// instead of panicking if an internal invariant is violated, so the caller
// can decide whether to report a ShapingWarning (spec.md §7).
func TryShape(text string) (shaped string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("shaper: recovered from panic: %v", r)
			shaped, ok = text, false
		}
	}()
	runes := []rune(text)
	out := make([]rune, 0, len(runes))

	isTransparent := func(r rune) bool {
		return charprops.Classify(r) == charprops.NSM
	}

	prevLetter := func(i int) (rune, bool) {
		for j := i - 1; j >= 0; j-- {
			if isTransparent(runes[j]) {
				continue
			}
			if joinTypeOf(runes[j]) == nonJoining {
				return 0, false
			}
			return runes[j], true
		}
		return 0, false
	}
	nextLetter := func(i int) (rune, bool) {
		for j := i + 1; j < len(runes); j++ {
			if isTransparent(runes[j]) {
				continue
			}
			if joinTypeOf(runes[j]) == nonJoining {
				return 0, false
			}
			return runes[j], true
		}
		return 0, false
	}

	i := 0
	for i < len(runes) {
		r := runes[i]
		f, isArabic := presentationForms[r]
		if !isArabic {
			out = append(out, r)
			i++
			continue
		}

		receivesFromPrev := false
		if p, ok := prevLetter(i); ok && joinTypeOf(p) == dualJoining {
			receivesFromPrev = true
		}

		// Mandatory Lam-Alef ligature: LAM directly (ignoring transparent
		// marks) followed by an ALEF variant collapses to one glyph.
		if r == lamRune {
			if j, alef, found := nextNonTransparentIsAlef(runes, i); found {
				lig := lamAlefLigature[alef]
				if receivesFromPrev {
					out = append(out, lig.final)
				} else {
					out = append(out, lig.isolated)
				}
				// Marks between LAM and ALEF follow the ligature.
				out = append(out, runes[i+1:j]...)
				i = j + 1
				continue
			}
		}

		extendsToNext := false
		if jt := joinTypeOf(r); jt == dualJoining {
			if n, ok := nextLetter(i); ok {
				nt := joinTypeOf(n)
				if nt == dualJoining || nt == rightJoining {
					extendsToNext = true
				}
			}
		}

		var chosen rune
		switch {
		case receivesFromPrev && extendsToNext && f.medial != 0:
			chosen = f.medial
		case receivesFromPrev && f.final != 0:
			chosen = f.final
		case extendsToNext && f.initial != 0:
			chosen = f.initial
		default:
			chosen = f.isolated
		}
		out = append(out, chosen)
		i++
	}
	return string(out), true
}

// nextNonTransparentIsAlef reports whether the next non-transparent rune
// after position i (which must hold LAM) is an ALEF variant participating
// in the mandatory ligature, returning its index and codepoint.
func nextNonTransparentIsAlef(runes []rune, i int) (j int, alef rune, found bool) {
	for k := i + 1; k < len(runes); k++ {
		r := runes[k]
		if charprops.Classify(r) == charprops.NSM {
			continue
		}
		if _, ok := lamAlefLigature[r]; ok {
			return k, r, true
		}
		return 0, 0, false
	}
	return 0, 0, false
}
