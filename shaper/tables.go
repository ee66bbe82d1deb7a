package shaper

// joinType classifies how an Arabic letter connects to its neighbors,
// following the joining-group vocabulary used by the retrieved
// boxesandglue-textshape ot-arabic.go reference (re-expressed here purely
// in terms of codepoint substitution, with no glyph/font concern).
type joinType uint8

const (
	nonJoining joinType = iota
	dualJoining
	rightJoining
	transparent
)

// forms holds the four presentation-form codepoints for one base letter.
// A zero value means "no such form" (e.g. right-joining letters have no
// initial/medial form).
type forms struct {
	isolated, initial, medial, final rune
}

// joinTypeOf classifies a base (non-presentation-form) Arabic letter.
func joinTypeOf(r rune) joinType {
	if t, ok := letterJoinType[r]; ok {
		return t
	}
	return nonJoining
}

var letterJoinType = map[rune]joinType{
	0x0628: dualJoining, // BEH
	0x062A: dualJoining, // TEH
	0x062B: dualJoining, // THEH
	0x062C: dualJoining, // JEEM
	0x062D: dualJoining, // HAH
	0x062E: dualJoining, // KHAH
	0x0633: dualJoining, // SEEN
	0x0634: dualJoining, // SHEEN
	0x0635: dualJoining, // SAD
	0x0636: dualJoining, // DAD
	0x0637: dualJoining, // TAH
	0x0638: dualJoining, // ZAH
	0x0639: dualJoining, // AIN
	0x063A: dualJoining, // GHAIN
	0x0641: dualJoining, // FEH
	0x0642: dualJoining, // QAF
	0x0643: dualJoining, // KAF
	0x0644: dualJoining, // LAM
	0x0645: dualJoining, // MEEM
	0x0646: dualJoining, // NOON
	0x0647: dualJoining, // HEH
	0x064A: dualJoining, // YEH
	0x0626: dualJoining, // YEH WITH HAMZA ABOVE

	0x0627: rightJoining, // ALEF
	0x062F: rightJoining, // DAL
	0x0630: rightJoining, // THAL
	0x0631: rightJoining, // REH
	0x0632: rightJoining, // ZAIN
	0x0648: rightJoining, // WAW
	0x0622: rightJoining, // ALEF WITH MADDA ABOVE
	0x0623: rightJoining, // ALEF WITH HAMZA ABOVE
	0x0624: rightJoining, // WAW WITH HAMZA ABOVE
	0x0625: rightJoining, // ALEF WITH HAMZA BELOW
	0x0629: rightJoining, // TEH MARBUTA
}

// presentationForms maps a base letter to its four presentation-form
// codepoints, drawn from the Unicode Arabic Presentation Forms-B block.
var presentationForms = map[rune]forms{
	0x0627: {isolated: 0xFE8D, final: 0xFE8E},
	0x0622: {isolated: 0xFE81, final: 0xFE82},
	0x0623: {isolated: 0xFE83, final: 0xFE84},
	0x0624: {isolated: 0xFE85, final: 0xFE86},
	0x0625: {isolated: 0xFE87, final: 0xFE88},
	0x0626: {isolated: 0xFE89, initial: 0xFE8B, medial: 0xFE8C, final: 0xFE8A},
	0x0628: {isolated: 0xFE8F, initial: 0xFE91, medial: 0xFE92, final: 0xFE90},
	0x0629: {isolated: 0xFE93, final: 0xFE94},
	0x062A: {isolated: 0xFE95, initial: 0xFE97, medial: 0xFE98, final: 0xFE96},
	0x062B: {isolated: 0xFE99, initial: 0xFE9B, medial: 0xFE9C, final: 0xFE9A},
	0x062C: {isolated: 0xFE9D, initial: 0xFE9F, medial: 0xFEA0, final: 0xFE9E},
	0x062D: {isolated: 0xFEA1, initial: 0xFEA3, medial: 0xFEA4, final: 0xFEA2},
	0x062E: {isolated: 0xFEA5, initial: 0xFEA7, medial: 0xFEA8, final: 0xFEA6},
	0x062F: {isolated: 0xFEA9, final: 0xFEAA},
	0x0630: {isolated: 0xFEAB, final: 0xFEAC},
	0x0631: {isolated: 0xFEAD, final: 0xFEAE},
	0x0632: {isolated: 0xFEAF, final: 0xFEB0},
	0x0633: {isolated: 0xFEB1, initial: 0xFEB3, medial: 0xFEB4, final: 0xFEB2},
	0x0634: {isolated: 0xFEB5, initial: 0xFEB7, medial: 0xFEB8, final: 0xFEB6},
	0x0635: {isolated: 0xFEB9, initial: 0xFEBB, medial: 0xFEBC, final: 0xFEBA},
	0x0636: {isolated: 0xFEBD, initial: 0xFEBF, medial: 0xFEC0, final: 0xFEBE},
	0x0637: {isolated: 0xFEC1, initial: 0xFEC3, medial: 0xFEC4, final: 0xFEC2},
	0x0638: {isolated: 0xFEC5, initial: 0xFEC7, medial: 0xFEC8, final: 0xFEC6},
	0x0639: {isolated: 0xFEC9, initial: 0xFECB, medial: 0xFECC, final: 0xFECA},
	0x063A: {isolated: 0xFECD, initial: 0xFECF, medial: 0xFED0, final: 0xFECE},
	0x0641: {isolated: 0xFED1, initial: 0xFED3, medial: 0xFED4, final: 0xFED2},
	0x0642: {isolated: 0xFED5, initial: 0xFED7, medial: 0xFED8, final: 0xFED6},
	0x0643: {isolated: 0xFED9, initial: 0xFEDB, medial: 0xFEDC, final: 0xFEDA},
	0x0644: {isolated: 0xFEDD, initial: 0xFEDF, medial: 0xFEE0, final: 0xFEDE},
	0x0645: {isolated: 0xFEE1, initial: 0xFEE3, medial: 0xFEE4, final: 0xFEE2},
	0x0646: {isolated: 0xFEE5, initial: 0xFEE7, medial: 0xFEE8, final: 0xFEE6},
	0x0647: {isolated: 0xFEE9, initial: 0xFEEB, medial: 0xFEEC, final: 0xFEEA},
	0x0648: {isolated: 0xFEED, final: 0xFEEE},
	0x064A: {isolated: 0xFEF1, initial: 0xFEF3, medial: 0xFEF4, final: 0xFEF2},
}

// lamAlefLigature maps an ALEF variant following LAM to the LAM-ALEF
// ligature's {isolated, final} codepoints (spec.md §4.3's "mandatory
// ligatures (at minimum Lam-Alef)").
var lamAlefLigature = map[rune]forms{
	0x0627: {isolated: 0xFEFB, final: 0xFEFC}, // LAM + ALEF
	0x0622: {isolated: 0xFEF5, final: 0xFEF6}, // LAM + ALEF WITH MADDA ABOVE
	0x0623: {isolated: 0xFEF7, final: 0xFEF8}, // LAM + ALEF WITH HAMZA ABOVE
	0x0625: {isolated: 0xFEF9, final: 0xFEFA}, // LAM + ALEF WITH HAMZA BELOW
}

const lamRune = 0x0644
