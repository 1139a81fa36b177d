// Package guji typesets a flat content stream onto the page grid of a
// classical East-Asian book: fixed-height vertical columns filled top to
// bottom, pages filled right to left, periodic decorative margin
// columns, and two-sub-column interlinear annotations.
//
// Basic usage:
//
//	b := stream.NewBuilder()
//	b.Text("黃帝者少典之子", stream.Indents{})
//	b.Annotation("集解注文", stream.Indents{})
//
//	result := guji.New().
//	    ColumnHeight(21).
//	    ColumnsPerPage(8).
//	    Layout(b.Atoms())
//
// The result maps every atom to (page, column, row) coordinates; a
// renderer converts those to physical offsets and draws the page.
//
// For advanced use the lower-level grid, stream, text, ocr, and
// wikisource packages are also available.
package guji

import (
	"github.com/open-guji/guji/grid"
	"github.com/open-guji/guji/stream"
)

// Layouter configures one layout run with a fluent API. The zero value
// is not usable; create one with New.
type Layouter struct {
	geo grid.Geometry
}

// New returns a Layouter with the default geometry: 20-row columns,
// 8 columns per page, no reserved columns, no center gap.
func New() *Layouter {
	return &Layouter{geo: grid.DefaultGeometry()}
}

// Layout runs the grid engine over the atom stream and returns its
// position map and page count.
func (l *Layouter) Layout(atoms []stream.Atom) *grid.Result {
	return grid.Layout(atoms, l.geo)
}

// Geometry returns the geometry the Layouter will use, for callers that
// want to drive the grid package directly.
func (l *Layouter) Geometry() grid.Geometry {
	return l.geo
}

// Layout lays out atoms with the default geometry. Shorthand for
// New().Layout(atoms).
func Layout(atoms []stream.Atom) *grid.Result {
	return New().Layout(atoms)
}
