package grid

import "math"

// flushColumn writes the buffered glyph run of the current column into
// the position map and empties the buffer.
//
// In distribute mode a run of N glyphs with 1 < N < ColumnHeight is
// re-spaced evenly across the full column height at fractional rows
// i·(H−1)/(N−1); a title shorter than its column then spreads over the
// whole height instead of clustering at the top. All other runs keep
// their originally assigned integer rows.
func (c *cursor) flushColumn() {
	if len(c.buf) == 0 {
		return
	}
	n := len(c.buf)
	h := c.geo.ColumnHeight
	if c.geo.Distribute && n > 1 && n < h {
		for i, g := range c.buf {
			frac := float64(i) * float64(h-1) / float64(n-1)
			c.positions[g.id] = Position{
				Page: c.bufPage, Column: c.bufCol,
				Row:     int(math.Round(frac)),
				FracRow: frac,
			}
		}
	} else {
		for _, g := range c.buf {
			c.positions[g.id] = Position{
				Page: c.bufPage, Column: c.bufCol,
				Row:     g.row,
				FracRow: float64(g.row),
			}
		}
	}
	c.buf = c.buf[:0]
}
