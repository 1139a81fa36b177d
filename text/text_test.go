package text

import "testing"

func TestOccupiesCell(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'天', true},
		{'人', true},
		{'　', true}, // ideographic space renders as a blank cell
		{'。', true},
		{'Ａ', true}, // fullwidth Latin
		{'a', false},
		{' ', false},
		{'\n', false},
		{'́', false}, // combining mark
	}
	for _, tt := range tests {
		if got := OccupiesCell(tt.r); got != tt.want {
			t.Errorf("OccupiesCell(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRotates(t *testing.T) {
	if !Rotates('—') || !Rotates('…') {
		t.Error("Dashes and ellipses rotate in vertical text")
	}
	if Rotates('天') {
		t.Error("Ideographs stay upright")
	}
}

func TestVerticalForm(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'「', '﹁'},
		{'」', '﹂'},
		{'（', '︵'},
		{'。', '︒'},
		{'天', '天'}, // no substitution
	}
	for _, tt := range tests {
		if got := VerticalForm(tt.in); got != tt.want {
			t.Errorf("VerticalForm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripPunctuation(t *testing.T) {
	in := "黃帝者，少典之子。姓公孫，名曰軒轅。"
	want := "黃帝者少典之子姓公孫名曰軒轅"
	if got := StripPunctuation(in); got != want {
		t.Errorf("StripPunctuation = %q, want %q", got, want)
	}
}

func TestNormalize(t *testing.T) {
	// Combining form folds to the precomposed character.
	in := "é"
	if got := Normalize(in); got != "é" {
		t.Errorf("Normalize(%q) = %q, want %q", in, got, "é")
	}
}

func TestCellCount(t *testing.T) {
	if got := CellCount("天地x人"); got != 3 {
		t.Errorf("CellCount = %d, want 3", got)
	}
}
