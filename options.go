package guji

// ColumnHeight sets the number of rows per column. Classical editions
// vary: the Siku Quanshu hand copies run 21 characters per column.
// Non-positive values fall back to the default of 20.
func (l *Layouter) ColumnHeight(rows int) *Layouter {
	l.geo.ColumnHeight = rows
	return l
}

// ColumnsPerPage sets the number of content columns per page.
// Non-positive values mean effectively unbounded.
func (l *Layouter) ColumnsPerPage(n int) *Layouter {
	l.geo.ColumnsPerPage = n
	return l
}

// ReservedEvery reserves every (interval+1)-th column as a decorative
// margin that content skips. Zero disables reserved columns.
func (l *Layouter) ReservedEvery(interval int) *Layouter {
	l.geo.ReservedInterval = interval
	return l
}

// CenterGap installs a predicate marking columns inside the forbidden
// center gap of a duplex page split; embedded blocks never straddle it.
func (l *Layouter) CenterGap(pred func(column int) bool) *Layouter {
	l.geo.CenterGap = pred
	return l
}

// Distribute enables even re-spacing of short glyph runs across the
// full column height, used for title columns.
func (l *Layouter) Distribute() *Layouter {
	l.geo.Distribute = true
	return l
}
