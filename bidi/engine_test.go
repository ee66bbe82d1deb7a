package bidi

import (
	"reflect"
	"testing"
)

func levelsOf(runs []Run) []uint8 {
	var n int
	for _, r := range runs {
		if end := int(r.Start + r.Length); end > n {
			n = end
		}
	}
	out := make([]uint8, n)
	for _, r := range runs {
		for i := r.Start; i < r.Start+r.Length; i++ {
			out[i] = r.Level
		}
	}
	return out
}

func TestEmptyString(t *testing.T) {
	if got := Process("", -1); got != "" {
		t.Errorf("Process(\"\") = %q, want empty", got)
	}
	if runs := Resolve("", -1); runs != nil {
		t.Errorf("Resolve(\"\") = %v, want nil", runs)
	}
}

func TestScenarioPlainASCII(t *testing.T) {
	runs := Resolve("abc", -1)
	want := []Run{{Start: 0, Length: 3, Level: 0}}
	if !reflect.DeepEqual(runs, want) {
		t.Fatalf("runs = %v, want %v", runs, want)
	}
	if got := ReorderForDisplay("abc", runs, 0); got != "abc" {
		t.Errorf("reorder = %q, want abc", got)
	}
}

func TestScenarioHebrew(t *testing.T) {
	text := string([]rune{0x05D0, 0x05D1, 0x05D2})
	runs := Resolve(text, -1)
	want := []Run{{Start: 0, Length: 3, Level: 1}}
	if !reflect.DeepEqual(runs, want) {
		t.Fatalf("runs = %v, want %v", runs, want)
	}
	got := ReorderForDisplay(text, runs, 1)
	want2 := string([]rune{0x05D2, 0x05D1, 0x05D0})
	if got != want2 {
		t.Errorf("reorder = %q, want %q", got, want2)
	}
}

func TestScenarioMixedAutoDetect(t *testing.T) {
	text := string([]rune{'a', 0x05D0, 'b'})
	runs := Resolve(text, -1)
	got := levelsOf(runs)
	want := []uint8{0, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("levels = %v, want %v", got, want)
	}
	if out := ReorderForDisplay(text, runs, 0); out != text {
		t.Errorf("reorder = %q, want unchanged %q", out, text)
	}
}

func TestScenarioDigitAfterHebrew(t *testing.T) {
	// "א 1 ב" at paragraph level 1: the digit (EN) is preceded by
	// R (not AL), so W2 leaves it EN; I1 raises EN by 2 at even level or by
	// 1 at odd level... here the digit sits at level 1 (odd), so EN -> +1.
	text := string([]rune{0x05D0, '1', 0x05D1})
	runs := Resolve(text, 1)
	got := levelsOf(runs)
	want := []uint8{1, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("levels = %v, want %v", got, want)
	}
}

func TestScenarioBracketsTakeEmbeddingDirection(t *testing.T) {
	text := "(a)"
	runs := Resolve(text, 1)
	got := levelsOf(runs)
	want := []uint8{1, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("levels = %v, want %v", got, want)
	}
}

func TestDepthOverflowDoesNotCrash(t *testing.T) {
	rle := string(rune(0x202B))
	text := ""
	for i := 0; i < 200; i++ {
		text += rle
	}
	text += "a"
	runs := Resolve(text, -1)
	for _, r := range runs {
		if r.Level > 125 {
			t.Errorf("level %d exceeds 125 after depth overflow", r.Level)
		}
	}
}

func TestOnlyNeutralsDefaultToLevelZero(t *testing.T) {
	runs := Resolve(" . ", -1)
	for _, r := range runs {
		if r.Level != 0 {
			t.Errorf("expected level 0 for all-neutral text, got %d", r.Level)
		}
	}
}

func TestUnmatchedPDFPDIIgnored(t *testing.T) {
	pdf := string(rune(0x202C))
	pdi := string(rune(0x2069))
	runs := Resolve("a"+pdf+pdi+"b", -1)
	got := levelsOf(runs)
	for _, l := range got {
		if l != 0 {
			t.Errorf("unmatched PDF/PDI should not change level, got %v", got)
		}
	}
}

func TestRunsPartitionExactly(t *testing.T) {
	texts := []string{"abc", "aאb", "(a)", "", "ابة"}
	for _, s := range texts {
		n := len([]rune(s))
		runs := Resolve(s, -1)
		covered := 0
		for _, r := range runs {
			if int(r.Start) != covered {
				t.Fatalf("text %q: run %v does not start where previous ended (at %d)", s, r, covered)
			}
			covered += int(r.Length)
		}
		if covered != n {
			t.Fatalf("text %q: runs cover %d codepoints, want %d", s, covered, n)
		}
	}
}

func TestNoLevelExceedsBounds(t *testing.T) {
	for _, baseLevel := range []int8{-1, 0, 1} {
		runs := Resolve("abc אا 123", baseLevel)
		for _, r := range runs {
			if r.Level > 126 {
				t.Errorf("level %d > 126", r.Level)
			}
		}
	}
}
