package grid

// cell addresses one grid cell.
type cell struct {
	page, column, row int
}

// Occupancy is the sparse set of cells consumed by placed blocks. Cells
// are only ever added during a layout run, never cleared.
type Occupancy struct {
	cells map[cell]struct{}
}

// NewOccupancy returns an empty occupancy map.
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[cell]struct{})}
}

// Occupied reports whether the cell at (page, column, row) is taken.
func (o *Occupancy) Occupied(page, column, row int) bool {
	_, ok := o.cells[cell{page, column, row}]
	return ok
}

// Mark marks a width×height rectangle of cells whose top-left corner is
// (page, column, row).
func (o *Occupancy) Mark(page, column, row, width, height int) {
	for c := column; c < column+width; c++ {
		for r := row; r < row+height; r++ {
			o.cells[cell{page, c, r}] = struct{}{}
		}
	}
}

// RectFree reports whether every cell of the width×height rectangle at
// (page, column, row) is unoccupied.
func (o *Occupancy) RectFree(page, column, row, width, height int) bool {
	for c := column; c < column+width; c++ {
		for r := row; r < row+height; r++ {
			if o.Occupied(page, c, r) {
				return false
			}
		}
	}
	return true
}

// Len returns the number of marked cells.
func (o *Occupancy) Len() int {
	return len(o.cells)
}
