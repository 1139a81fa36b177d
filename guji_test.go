package guji

import (
	"testing"

	"github.com/open-guji/guji/grid"
	"github.com/open-guji/guji/stream"
)

func TestFluentLayout(t *testing.T) {
	b := stream.NewBuilder()
	b.Text("黃帝者少典之子姓公孫名曰軒轅生而神靈弱而能言幼而徇齊長而敦敏成而聰明", stream.Indents{})

	res := New().
		ColumnHeight(10).
		ColumnsPerPage(3).
		Layout(b.Atoms())

	// 34 glyphs in 10-row columns over 3-column pages: 4 columns.
	if res.TotalPages != 2 {
		t.Errorf("Expected 2 pages, got %d", res.TotalPages)
	}
	if len(res.Positions) != 34 {
		t.Errorf("Expected 34 positions, got %d", len(res.Positions))
	}
}

func TestDefaultShorthand(t *testing.T) {
	b := stream.NewBuilder()
	b.Text("天地玄黃", stream.Indents{})

	res := Layout(b.Atoms())

	if res.TotalPages != 1 {
		t.Errorf("Expected 1 page, got %d", res.TotalPages)
	}
	p, ok := res.Lookup(3)
	if !ok || p.Row != 3 || p.Column != 0 {
		t.Errorf("Fourth glyph at %+v, want column 0 row 3", p)
	}
}

func TestGeometryAccessor(t *testing.T) {
	l := New().ColumnHeight(21).ColumnsPerPage(8).ReservedEvery(2).Distribute()

	geo := l.Geometry()
	if geo.ColumnHeight != 21 || geo.ColumnsPerPage != 8 {
		t.Errorf("Geometry = %+v", geo)
	}
	if geo.ReservedInterval != 2 || !geo.Distribute {
		t.Errorf("Geometry = %+v", geo)
	}
	if !geo.ReservedColumn(5) {
		t.Error("Expected column 5 reserved at interval 2")
	}
}

func TestReservedColumnsSkippedEndToEnd(t *testing.T) {
	b := stream.NewBuilder()
	b.Text("天地玄黃宇宙洪荒日月盈昃辰宿列張", stream.Indents{})

	res := New().
		ColumnHeight(4).
		ColumnsPerPage(6).
		ReservedEvery(1).
		Layout(b.Atoms())

	for id, p := range res.Positions {
		if p.Column%2 == 1 {
			t.Errorf("Atom %d in reserved column %d", id, p.Column)
		}
		if p.Sub != grid.SubNone {
			t.Errorf("Main-text atom %d carries sub-column %v", id, p.Sub)
		}
	}
}
