package grid

import (
	"math"

	"github.com/open-guji/guji/stream"
)

// maxHostScan bounds the number of whole-column advances attempted while
// searching for a column that can host a block. It is only reached for
// degenerate geometry (e.g. a center-gap predicate that rejects every
// column); the block is then force-placed so a run always terminates.
const maxHostScan = 4096

// Layout lays the atom stream onto the page grid and returns the
// position map and page count. It runs one deterministic forward pass;
// the same stream and geometry always yield the same Result.
//
// Atoms that cannot fit at the current position are carried forward to
// the next column or page, never rejected: every input produces a valid
// position map.
func Layout(atoms []stream.Atom, geo Geometry) *Result {
	c := newCursor(geo)
	for _, a := range atoms {
		c.consume(a)
	}
	c.flushColumn()
	return &Result{
		Positions:     c.positions,
		TotalPages:    c.page + 1,
		RaisedColumns: c.raised,
	}
}

// bufferedGlyph is one glyph held in the current column's buffer until
// the column is flushed (possibly redistributed, see flushColumn).
type bufferedGlyph struct {
	id  stream.AtomID
	row int
}

// cursor is the layout automaton's working state. One cursor serves
// exactly one Layout call.
type cursor struct {
	geo Geometry

	page   int
	column int
	row    int

	// floor is the current column's indent floor: no atom may be placed
	// above it once an indent has been applied.
	floor int

	occ       *Occupancy
	positions map[stream.AtomID]Position

	// firstColumn records, per block ID, the first (page, column) any of
	// its atoms landed in; the First indent applies only there.
	firstColumn map[int]PageColumn

	// Current column's glyph buffer and the column it belongs to.
	buf     []bufferedGlyph
	bufPage int
	bufCol  int

	// pending is the net accumulated spacer length, in cell heights.
	pending float64

	// pageHasContent is true once any atom has been placed on the
	// current page; break-marker suppression consults it.
	pageHasContent bool

	raised []PageColumn
}

func newCursor(geo Geometry) *cursor {
	return &cursor{
		geo:         geo.normalized(),
		occ:         NewOccupancy(),
		positions:   make(map[stream.AtomID]Position),
		firstColumn: make(map[int]PageColumn),
	}
}

// consume handles one atom. The switch is exhaustive over the sealed
// stream.Atom variants.
func (c *cursor) consume(a stream.Atom) {
	switch v := a.(type) {
	case stream.Glyph:
		c.resolveSpacing(v.Indents)
		c.settle(v.Indents)
		c.bufferGlyph(v.ID)
	case stream.Spacer:
		c.pending += v.Length
	case stream.Block:
		c.placeBlock(v)
	case stream.Break:
		c.handleBreak(v)
	case stream.AnnotationRun:
		c.placeAnnotation(v)
	case stream.Passthrough:
		// Positioned at the cursor without any layout effect; pending
		// spacing keeps accumulating across it. It does not mark the page
		// as having content, so a digital newline right after a page break
		// stays swallowed even when an anchor was recorded in between.
		c.positions[v.ID] = Position{
			Page: c.page, Column: c.column, Row: c.row,
			FracRow: float64(c.row),
		}
	}
}

// effectiveIndent returns the indent that applies to an atom at the
// cursor's current column: First in the first column ever recorded for
// the atom's block ID, Base everywhere else. Ungrouped atoms (block ID
// zero) always use Base.
func (c *cursor) effectiveIndent(ind stream.Indents) int {
	if ind.BlockID == 0 {
		return ind.Base
	}
	if fc, ok := c.firstColumn[ind.BlockID]; ok {
		if fc.Page == c.page && fc.Column == c.column {
			return ind.First
		}
		return ind.Base
	}
	// Not recorded yet: this placement will become the first column.
	return ind.First
}

// settle advances the cursor to a cell where an atom with the given
// indents may be placed: it skips reserved and center-gap columns, wraps
// when the row has reached the effective capacity, skips columns whose
// cell at the cursor is occupied by a block, and enforces the indent
// floor. The effective indent is recomputed after every wrap, since a
// wrap can move the cursor out of the block's first column. Returns the
// effective indent at the final position.
func (c *cursor) settle(ind stream.Indents) int {
	for scanned := 0; ; scanned++ {
		eff := c.effectiveIndent(ind)
		if scanned < maxHostScan &&
			(c.geo.ReservedColumn(c.column) || c.geo.InCenterGap(c.column)) {
			c.advanceColumn()
			continue
		}
		if c.row < eff {
			c.row = eff
		}
		if c.floor < eff {
			c.floor = eff
		}
		if c.row >= c.geo.capacity(eff, ind.Right) {
			c.advanceColumn()
			continue
		}
		if c.occ.Occupied(c.page, c.column, c.row) {
			c.advanceColumn()
			continue
		}
		if ind.BlockID != 0 {
			if _, ok := c.firstColumn[ind.BlockID]; !ok {
				c.firstColumn[ind.BlockID] = PageColumn{Page: c.page, Column: c.column}
			}
		}
		return eff
	}
}

// advanceColumn flushes the column buffer and moves the cursor to the
// next non-reserved, non-gap column, wrapping to a fresh page when the
// column index reaches ColumnsPerPage. The new column starts at row 0
// with a zero indent floor; settle re-applies the next atom's indent.
func (c *cursor) advanceColumn() {
	c.flushColumn()
	for scanned := 0; ; scanned++ {
		c.column++
		if c.column >= c.geo.ColumnsPerPage {
			c.column = 0
			c.page++
			c.pageHasContent = false
		}
		if !c.geo.ReservedColumn(c.column) && !c.geo.InCenterGap(c.column) {
			break
		}
		// A gap predicate that rejects every column must not hang the
		// run; accept the column and let content land in the gap.
		if scanned >= maxHostScan {
			break
		}
	}
	c.row = 0
	c.floor = 0
}

// bufferGlyph appends a glyph at the cursor's cell to the column buffer
// and advances the row.
func (c *cursor) bufferGlyph(id stream.AtomID) {
	if len(c.buf) == 0 {
		c.bufPage = c.page
		c.bufCol = c.column
	}
	c.buf = append(c.buf, bufferedGlyph{id: id, row: c.row})
	c.row++
	c.pageHasContent = true
}

// resolveSpacing converts the accumulated spacer length to whole row
// advances. Spacing shorter than a quarter cell is dropped, as is any
// spacing seen before real content has been placed in the column (the
// indent zone swallows it). Each row advance re-checks the overflow
// condition individually, so a long spacer may split across a column
// boundary.
func (c *cursor) resolveSpacing(ind stream.Indents) {
	length := c.pending
	c.pending = 0
	if math.Abs(length) <= 0.25 {
		return
	}
	if c.row <= c.floor {
		return
	}
	n := int(math.Round(length))
	for i := 0; i < n; i++ {
		eff := c.effectiveIndent(ind)
		if c.row >= c.geo.capacity(eff, ind.Right) {
			c.advanceColumn()
			if eff = c.effectiveIndent(ind); c.row < eff {
				c.row = eff
				c.floor = eff
			}
		} else {
			c.row++
		}
	}
}

// placeBlock places an embedded block so that its rectangle covers no
// reserved column, no center-gap column, and no occupied cell. A column
// that cannot host the block is skipped whole. Intrinsically oversized
// blocks (taller than a column, wider than the reserved-column spacing
// allows) are placed at the first settled position and left to overhang
// rather than rejected.
func (c *cursor) placeBlock(b stream.Block) {
	w, h := b.Width, b.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.resolveSpacing(b.Indents)
	eff := c.settle(b.Indents)

	if c.fitsSomewhere(w, h, eff, b.Right) {
		scanned := 0
		for !c.canHost(w, h, eff, b.Right) {
			c.advanceColumn()
			eff = c.settle(b.Indents)
			scanned++
			if scanned >= maxHostScan {
				break
			}
		}
	}

	c.positions[b.ID] = Position{
		Page: c.page, Column: c.column, Row: c.row,
		IsBlock: true, Width: w, Height: h,
		FracRow: float64(c.row),
	}
	c.occ.Mark(c.page, c.column, c.row, w, h)
	c.row += h
	c.pageHasContent = true
}

// canHost reports whether a w×h block fits at the cursor's cell: all
// covered columns on-page and unreserved, all covered rows within the
// effective capacity, all covered cells free.
func (c *cursor) canHost(w, h, eff, rightIndent int) bool {
	if c.column+w > c.geo.ColumnsPerPage {
		return false
	}
	if c.row+h > c.geo.capacity(eff, rightIndent) {
		return false
	}
	for col := c.column; col < c.column+w; col++ {
		if c.geo.ReservedColumn(col) || c.geo.InCenterGap(col) {
			return false
		}
	}
	return c.occ.RectFree(c.page, c.column, c.row, w, h)
}

// fitsSomewhere reports whether a w×h block can fit in any column at
// all given the geometry: tall enough columns and a wide enough run of
// consecutive unreserved columns. Occupancy is not considered; occupied
// cells only postpone a block, they cannot make it unplaceable.
func (c *cursor) fitsSomewhere(w, h, eff, rightIndent int) bool {
	if eff+h > c.geo.capacity(eff, rightIndent) {
		return false
	}
	if w > c.geo.ColumnsPerPage {
		return false
	}
	if c.geo.ReservedInterval > 0 && w > c.geo.ReservedInterval {
		return false
	}
	return true
}

// placeAnnotation balances an annotation run into twin sub-columns and
// positions every member. A run never starts with fewer than two rows
// left in the column; the cursor wraps first.
func (c *cursor) placeAnnotation(run stream.AnnotationRun) {
	c.resolveSpacing(run.Indents)
	eff := c.settle(run.Indents)
	capacity := c.geo.capacity(eff, run.Right)
	if capacity-c.row < 2 {
		c.advanceColumn()
		eff = c.settle(run.Indents)
		capacity = c.geo.capacity(eff, run.Right)
	}

	if len(run.Members) == 0 {
		c.positions[run.ID] = Position{
			Page: c.page, Column: c.column, Row: c.row,
			FracRow: float64(c.row),
		}
		return
	}

	// Capacity of a fresh column for every chunk after the first.
	rest := capacity - eff
	if rest < 1 {
		rest = 1
	}
	chunks := balance(run.Members, capacity-c.row, rest)

	for i, ch := range chunks {
		if i > 0 {
			c.advanceColumn()
			eff = c.settle(run.Indents)
		}
		base := c.row
		if i == 0 {
			c.positions[run.ID] = Position{
				Page: c.page, Column: c.column, Row: base,
				FracRow: float64(base),
			}
		}
		for _, m := range ch.members {
			c.positions[m.atom.AtomID()] = Position{
				Page: c.page, Column: c.column, Row: base + m.row,
				Sub:     m.sub,
				FracRow: float64(base + m.row),
			}
		}
		c.row = base + ch.rowsUsed
	}
	c.pageHasContent = true
}

// handleBreak applies the break-marker policy. Markers that would emit
// a spurious empty column or page are suppressed. Markers that move the
// cursor discard pending spacing; a raised-line mark leaves the cursor,
// and anything accumulated at it, untouched.
func (c *cursor) handleBreak(b stream.Break) {
	switch b.Kind {
	case stream.ColumnBreak:
		c.pending = 0
		c.flushColumn()
		// Never wrap an already-empty column.
		if c.row > c.floor {
			c.advanceColumn()
		}
	case stream.PageBreak:
		c.pending = 0
		c.flushColumn()
		if c.column > 0 || c.row > c.floor {
			c.page++
			c.column = 0
			c.row = 0
			c.floor = 0
			c.pageHasContent = false
		}
	case stream.DigitalNewline:
		c.pending = 0
		c.flushColumn()
		// Unconditional column advance so an explicit blank line can be
		// expressed, except on a content-free page where the marker is
		// swallowed entirely.
		if c.pageHasContent {
			c.advanceColumn()
		}
	case stream.RaisedLineMark:
		c.raised = append(c.raised, PageColumn{Page: c.page, Column: c.column})
	}
}
