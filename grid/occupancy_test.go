package grid

import "testing"

func TestOccupancyMarkAndQuery(t *testing.T) {
	o := NewOccupancy()

	if o.Occupied(0, 0, 0) {
		t.Error("Fresh map should have no occupied cells")
	}

	o.Mark(0, 1, 2, 2, 3)

	if o.Len() != 6 {
		t.Errorf("Expected 6 marked cells, got %d", o.Len())
	}
	if !o.Occupied(0, 1, 2) || !o.Occupied(0, 2, 4) {
		t.Error("Expected corners of the marked rectangle to be occupied")
	}
	if o.Occupied(0, 1, 5) {
		t.Error("Cell below the rectangle should be free")
	}
	if o.Occupied(1, 1, 2) {
		t.Error("Same cell on another page should be free")
	}
}

func TestOccupancyRectFree(t *testing.T) {
	o := NewOccupancy()
	o.Mark(0, 2, 2, 1, 1)

	if o.RectFree(0, 1, 1, 2, 2) {
		t.Error("Rectangle overlapping a marked cell should not be free")
	}
	if !o.RectFree(0, 3, 0, 2, 5) {
		t.Error("Untouched rectangle should be free")
	}
}
