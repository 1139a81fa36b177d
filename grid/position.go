package grid

import (
	"github.com/open-guji/guji/stream"
)

// SubColumn identifies which of the twin annotation sub-columns an atom
// occupies. Main-column atoms use SubNone.
type SubColumn int

const (
	// SubNone marks a main-column position.
	SubNone SubColumn = iota

	// SubRight is the right (first-filled) annotation sub-column.
	SubRight

	// SubLeft is the left annotation sub-column.
	SubLeft
)

// String returns the sub-column name.
func (s SubColumn) String() string {
	switch s {
	case SubNone:
		return "none"
	case SubRight:
		return "right"
	case SubLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Position is one entry of the position map: the grid coordinates
// assigned to a single atom. For a block it describes the top-left cell
// plus the covered span.
type Position struct {
	Page   int
	Column int
	Row    int

	// Sub is the annotation sub-column, SubNone for main-column atoms.
	Sub SubColumn

	// IsBlock marks entries for embedded blocks; Width and Height give
	// the covered span in cells.
	IsBlock bool
	Width   int
	Height  int

	// FracRow is the exact fractional row when distribute mode re-spaced
	// the atom's column; otherwise it equals float64(Row). Renderers use
	// it for sub-cell placement.
	FracRow float64
}

// PageColumn addresses one column of one page.
type PageColumn struct {
	Page   int
	Column int
}

// Result is the output of one layout run. It is immutable once Layout
// returns.
type Result struct {
	// Positions maps every consumed atom to its grid position. Members
	// of annotation runs have their own entries; the run atom itself
	// carries the position of its first member's cell.
	Positions map[stream.AtomID]Position

	// TotalPages is the final page index plus one.
	TotalPages int

	// RaisedColumns lists the columns recorded by RaisedLineMark
	// markers, in stream order. Renderers extend those columns' borders
	// upward.
	RaisedColumns []PageColumn
}

// Lookup returns the position of the atom with the given ID.
func (r *Result) Lookup(id stream.AtomID) (Position, bool) {
	p, ok := r.Positions[id]
	return p, ok
}
