package grid

import (
	"math"
	"testing"

	"github.com/open-guji/guji/stream"
)

func TestDistributeShortRun(t *testing.T) {
	var b streamBuilder
	ids := b.glyphs(4, stream.Indents{})
	b.brk(stream.ColumnBreak)

	res := Layout(b.atoms, Geometry{ColumnHeight: 10, ColumnsPerPage: 8, Distribute: true})

	// 4 glyphs spread over rows 0..9: fractional step (H-1)/(N-1) = 3.
	wantRows := []int{0, 3, 6, 9}
	for i, id := range ids {
		p := mustPos(t, res, id)
		if p.Row != wantRows[i] {
			t.Errorf("Glyph %d at row %d, want %d", i, p.Row, wantRows[i])
		}
		wantFrac := float64(i) * 3.0
		if math.Abs(p.FracRow-wantFrac) > 1e-9 {
			t.Errorf("Glyph %d FracRow %v, want %v", i, p.FracRow, wantFrac)
		}
	}
}

func TestDistributeSkipsFullColumn(t *testing.T) {
	var b streamBuilder
	ids := b.glyphs(10, stream.Indents{})
	b.brk(stream.ColumnBreak)

	res := Layout(b.atoms, Geometry{ColumnHeight: 10, ColumnsPerPage: 8, Distribute: true})

	// A full column keeps its integer rows.
	for i, id := range ids {
		if p := mustPos(t, res, id); p.Row != i {
			t.Errorf("Glyph %d at row %d, want %d", i, p.Row, i)
		}
	}
}

func TestDistributeSkipsSingleGlyph(t *testing.T) {
	var b streamBuilder
	ids := b.glyphs(1, stream.Indents{})

	res := Layout(b.atoms, Geometry{ColumnHeight: 10, ColumnsPerPage: 8, Distribute: true})

	if p := mustPos(t, res, ids[0]); p.Row != 0 || p.FracRow != 0 {
		t.Errorf("Single glyph at row %d (frac %v), want 0", p.Row, p.FracRow)
	}
}

func TestNoDistributeByDefault(t *testing.T) {
	var b streamBuilder
	ids := b.glyphs(4, stream.Indents{})

	res := Layout(b.atoms, Geometry{ColumnHeight: 10, ColumnsPerPage: 8})

	for i, id := range ids {
		if p := mustPos(t, res, id); p.Row != i {
			t.Errorf("Glyph %d at row %d, want %d", i, p.Row, i)
		}
	}
}
