package grid

// unboundedColumns is the effective "no page wrapping" sentinel used
// when a caller does not bound the number of columns per page.
const unboundedColumns = 1 << 30

// defaultColumnHeight is used when a caller passes a non-positive
// column height.
const defaultColumnHeight = 20

// Geometry holds the page-grid parameters for one layout run.
type Geometry struct {
	// ColumnHeight is the number of rows per column.
	// Non-positive values default to 20.
	ColumnHeight int

	// ColumnsPerPage is the number of content columns on a page.
	// Non-positive values mean effectively unbounded (no page wrapping).
	ColumnsPerPage int

	// ReservedInterval reserves every (ReservedInterval+1)-th column for
	// a decorative margin: column c is reserved iff
	// c mod (ReservedInterval+1) == ReservedInterval. Zero disables
	// reserved columns.
	ReservedInterval int

	// CenterGap reports whether a column lies inside the forbidden
	// center gap of a duplex page split. Blocks never straddle it.
	// Nil means no gap.
	CenterGap func(column int) bool

	// Distribute re-spaces short glyph runs evenly across the column
	// height when a column is flushed.
	Distribute bool
}

// DefaultGeometry returns the geometry used when no options are given:
// 20-row columns, 8 columns per page, no reserved columns, no center
// gap.
func DefaultGeometry() Geometry {
	return Geometry{
		ColumnHeight:   defaultColumnHeight,
		ColumnsPerPage: 8,
	}
}

// normalized returns a copy with the defaulting rules applied. The
// engine never rejects degenerate geometry; it absorbs it.
func (g Geometry) normalized() Geometry {
	if g.ColumnHeight <= 0 {
		g.ColumnHeight = defaultColumnHeight
	}
	if g.ColumnsPerPage <= 0 {
		g.ColumnsPerPage = unboundedColumns
	}
	if g.ReservedInterval < 0 {
		g.ReservedInterval = 0
	}
	return g
}

// ReservedColumn reports whether column c is reserved for a decorative
// margin.
func (g Geometry) ReservedColumn(c int) bool {
	if g.ReservedInterval <= 0 {
		return false
	}
	return c%(g.ReservedInterval+1) == g.ReservedInterval
}

// InCenterGap reports whether column c lies inside the forbidden center
// gap.
func (g Geometry) InCenterGap(c int) bool {
	return g.CenterGap != nil && g.CenterGap(c)
}

// capacity returns the effective capacity of a column for an atom with
// the given indents: ColumnHeight minus the right-side reservation,
// floored so at least one row past the left indent is usable.
func (g Geometry) capacity(indent, rightIndent int) int {
	n := g.ColumnHeight - rightIndent
	if n < indent+1 {
		n = indent + 1
	}
	return n
}
