package shaper

import "testing"

func TestShapeNonArabicPassthrough(t *testing.T) {
	in := "hello, world 123"
	if got := Shape(in); got != in {
		t.Fatalf("Shape(%q) = %q, want unchanged", in, got)
	}
}

func TestShapeIsolatedSingleLetter(t *testing.T) {
	// BEH alone has no neighbors, so it takes its isolated form.
	in := string(rune(0x0628))
	want := string(rune(0xFE8F))
	if got := Shape(in); got != want {
		t.Fatalf("Shape(%q) = %U, want %U", in, []rune(got), []rune(want))
	}
}

func TestShapeMedialFormBetweenTwoDualJoining(t *testing.T) {
	// BEH BEH BEH: middle one receives from prev and extends to next.
	in := string([]rune{0x0628, 0x0628, 0x0628})
	got := []rune(Shape(in))
	if len(got) != 3 {
		t.Fatalf("Shape(%q) length = %d, want 3", in, len(got))
	}
	if got[0] != 0xFE91 { // initial
		t.Errorf("first form = %U, want initial FE91", got[0])
	}
	if got[1] != 0xFE92 { // medial
		t.Errorf("middle form = %U, want medial FE92", got[1])
	}
	if got[2] != 0xFE90 { // final
		t.Errorf("last form = %U, want final FE90", got[2])
	}
}

func TestShapeRightJoiningNeverTakesMedial(t *testing.T) {
	// BEH ALEF BEH: ALEF only ever receives, never extends, since it is
	// right-joining; the following BEH must take an isolated/initial form,
	// not medial.
	in := string([]rune{0x0628, 0x0627, 0x0628})
	got := []rune(Shape(in))
	if len(got) != 3 {
		t.Fatalf("Shape(%q) length = %d, want 3", in, len(got))
	}
	if got[1] != 0xFE8E { // ALEF final (received from BEH)
		t.Errorf("ALEF form = %U, want final FE8E", got[1])
	}
	if got[2] != 0xFE8F { // BEH isolated (ALEF does not extend to it)
		t.Errorf("third form = %U, want isolated FE8F", got[2])
	}
}

func TestShapeLamAlefLigature(t *testing.T) {
	in := string([]rune{0x0644, 0x0627}) // LAM ALEF
	got := []rune(Shape(in))
	if len(got) != 1 {
		t.Fatalf("Shape(%q) length = %d, want 1 (ligature)", in, len(got))
	}
	if got[0] != 0xFEFB { // isolated ligature, no predecessor
		t.Errorf("ligature form = %U, want isolated FEFB", got[0])
	}
}

func TestShapeLamAlefLigatureFinalForm(t *testing.T) {
	// BEH LAM ALEF: the ligature receives a join from BEH, so it takes its
	// final form instead of isolated.
	in := string([]rune{0x0628, 0x0644, 0x0627})
	got := []rune(Shape(in))
	if len(got) != 2 {
		t.Fatalf("Shape(%q) length = %d, want 2", in, len(got))
	}
	if got[1] != 0xFEFC {
		t.Errorf("ligature form = %U, want final FEFC", got[1])
	}
}

func TestShapeTransparentCombiningMarkDoesNotBreakJoin(t *testing.T) {
	// BEH NSM BEH: the NSM is transparent and must not stop the medial join.
	in := string([]rune{0x0628, 0x0300, 0x0628})
	got := []rune(Shape(in))
	if len(got) != 3 {
		t.Fatalf("Shape(%q) length = %d, want 3", in, len(got))
	}
	if got[0] != 0xFE91 { // initial, joins through the mark to the next BEH
		t.Errorf("first form = %U, want initial FE91", got[0])
	}
	if got[1] != 0x0300 { // combining mark passes through unchanged
		t.Errorf("mark = %U, want unchanged 0300", got[1])
	}
	if got[2] != 0xFE90 { // final, received a join through the mark
		t.Errorf("last form = %U, want final FE90", got[2])
	}
}

func TestShapeIdempotent(t *testing.T) {
	inputs := []string{
		"hello, world 123",
		string([]rune{0x0628, 0x0628, 0x0628}),
		string([]rune{0x0628, 0x0627, 0x0628}),
		string([]rune{0x0644, 0x0627}),
		string([]rune{0x0628, 0x0644, 0x0627}),
	}
	for _, in := range inputs {
		once := Shape(in)
		twice := Shape(once)
		if once != twice {
			t.Errorf("Shape not idempotent on %U: Shape(s) = %U, Shape(Shape(s)) = %U",
				[]rune(in), []rune(once), []rune(twice))
		}
	}
}
