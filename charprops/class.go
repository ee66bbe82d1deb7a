package charprops

import (
	xbidi "golang.org/x/text/unicode/bidi"
)

// BidiClass is a Bidi_Class value as defined by UAX #9. Every Unicode scalar
// maps to exactly one of these 23 variants.
type BidiClass uint8

// Strong classes.
const (
	L BidiClass = iota
	R
	AL
)

// Weak classes.
const (
	EN BidiClass = iota + 3
	ES
	ET
	AN
	CS
	NSM
	BN
)

// Neutral classes.
const (
	B BidiClass = iota + 10
	S
	WS
	ON
)

// Explicit formatting classes.
const (
	LRE BidiClass = iota + 14
	RLE
	LRO
	RLO
	PDF
	LRI
	RLI
	FSI
	PDI
)

// Marks. LRM/RLM are forced to BN regardless of their nominal class, per
// spec.md §4.1, so they carry no distinct BidiClass constant of their own.
const (
	lrmRune = 0x200E
	rlmRune = 0x200F
)

var classNames = map[BidiClass]string{
	L: "L", R: "R", AL: "AL",
	EN: "EN", ES: "ES", ET: "ET", AN: "AN", CS: "CS", NSM: "NSM", BN: "BN",
	B: "B", S: "S", WS: "WS", ON: "ON",
	LRE: "LRE", RLE: "RLE", LRO: "LRO", RLO: "RLO", PDF: "PDF",
	LRI: "LRI", RLI: "RLI", FSI: "FSI", PDI: "PDI",
}

// String implements fmt.Stringer for trace/debug output.
func (c BidiClass) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return "ON"
}

// xclassToBidiClass maps the x/text/unicode/bidi class space onto ours. Both
// enumerations follow the same Unicode Bidi_Class property, so this is a
// direct correspondence, not a semantic translation.
var xclassToBidiClass = map[xbidi.Class]BidiClass{
	xbidi.L:   L,
	xbidi.R:   R,
	xbidi.AL:  AL,
	xbidi.EN:  EN,
	xbidi.ES:  ES,
	xbidi.ET:  ET,
	xbidi.AN:  AN,
	xbidi.CS:  CS,
	xbidi.NSM: NSM,
	xbidi.BN:  BN,
	xbidi.B:   B,
	xbidi.S:   S,
	xbidi.WS:  WS,
	xbidi.ON:  ON,
	xbidi.LRO: LRO,
	xbidi.RLO: RLO,
	xbidi.LRE: LRE,
	xbidi.RLE: RLE,
	xbidi.PDF: PDF,
	xbidi.LRI: LRI,
	xbidi.RLI: RLI,
	xbidi.FSI: FSI,
	xbidi.PDI: PDI,
}

// Classify returns the Bidi_Class of cp. It is total: every rune, including
// ones unknown to the property table, yields a class. LRM and RLM are
// forced to BN, overriding whatever xclassToBidiClass would say.
func Classify(cp rune) BidiClass {
	if cp == lrmRune || cp == rlmRune {
		return BN
	}
	props, _ := xbidi.LookupRune(cp)
	cls, ok := xclassToBidiClass[props.Class()]
	if !ok {
		tracer().Debugf("charprops: unmapped class for U+%04X, falling back to ON", cp)
		return ON
	}
	return cls
}

// Mirrored returns the mirrored form of cp, if cp has one. x/text/unicode/bidi's
// exported Properties type surfaces Class(), IsBracket(), and
// IsOpeningBracket() but no public mirroring lookup (mirror-partner
// resolution is kept internal to that package), so mirroring is served
// entirely from the built-in table: the paired brackets of spec.md §4.1's
// BD16 set plus the additional mirrored punctuation it names.
func Mirrored(cp rune) (rune, bool) {
	r, ok := builtinMirror[cp]
	return r, ok
}
