// Package stream defines the flat content-atom stream consumed by the
// grid layout engine.
//
// An upstream pass (not part of this module) linearizes nested document
// structure into an ordered sequence of atoms: glyphs, inter-character
// spacers, embedded blocks, break markers, interlinear annotation runs,
// and positionless pass-through markers. The [Builder] assigns every atom
// a stable [AtomID] in document order; the grid engine keys its position
// map by those IDs.
package stream

// AtomID identifies one atom within a stream. IDs are assigned by a
// Builder in document order, including the member atoms of annotation
// runs.
type AtomID int

// Atom is the closed set of content variants the layout engine consumes.
// Exactly six types implement it: Glyph, Spacer, Block, Break,
// AnnotationRun, and Passthrough.
type Atom interface {
	// AtomID returns the atom's stream identifier.
	AtomID() AtomID

	// sealed prevents implementations outside this package, so the
	// engine's variant switch is exhaustive.
	sealed()
}

// Indents carries the placement fields shared by all positionable atoms
// (everything except Spacer and Break). Zero values mean "no indent,
// ungrouped".
type Indents struct {
	// Base is the number of rows skipped at the start of every column
	// the atom's line occupies.
	Base int

	// Right is the number of rows subtracted from the column's capacity,
	// used for raised-header columns that stop short of the bottom rule.
	Right int

	// First is the indent applied only in the first column ever occupied
	// by the atom's BlockID (e.g. a paragraph's first-line indent).
	First int

	// BlockID groups atoms belonging to one logical line or paragraph so
	// they share First-indent bookkeeping. Zero means ungrouped.
	BlockID int
}

// Glyph is a single placed character. Width, Height and Depth are the
// character's intrinsic metrics; the layout engine does not interpret
// them, it only carries them through to the renderer.
type Glyph struct {
	ID   AtomID
	Rune rune

	// Intrinsic metrics in scaled points (opaque to the grid).
	Width  float64
	Height float64
	Depth  float64

	Indents
}

// Spacer is zero or more consecutive inter-character spacing units,
// already summed to a net length. Length is expressed in grid-cell
// heights, so 1.0 is exactly one row.
type Spacer struct {
	ID AtomID

	// Length may be negative; consecutive spacers accumulate before the
	// engine converts the net length to whole row advances.
	Length float64
}

// Block is an embedded sub-layout occupying a rectangle of grid cells.
// The engine places its top-left cell and marks every covered cell as
// occupied; rendering the block's content is the caller's business.
type Block struct {
	ID   AtomID
	Name string

	// Size in grid cells.
	Width  int
	Height int

	Indents
}

// BreakKind enumerates the break-marker variants. An explicit enum
// rather than priority numbers: adding a kind cannot silently reorder
// existing ones.
type BreakKind int

const (
	// ColumnBreak advances to the next column, unless the current column
	// is still empty.
	ColumnBreak BreakKind = iota

	// PageBreak advances to the next page, unless the current page has
	// no content yet.
	PageBreak

	// DigitalNewline unconditionally advances one column, even when the
	// current column is empty; it expresses an explicit blank line. It
	// is swallowed on a content-free page.
	DigitalNewline

	// RaisedLineMark records the current column as a raised-border
	// target for the renderer without moving the cursor.
	RaisedLineMark
)

// String returns the break kind name.
func (k BreakKind) String() string {
	switch k {
	case ColumnBreak:
		return "ColumnBreak"
	case PageBreak:
		return "PageBreak"
	case DigitalNewline:
		return "DigitalNewline"
	case RaisedLineMark:
		return "RaisedLineMark"
	default:
		return "Unknown"
	}
}

// Break is a forced break marker.
type Break struct {
	ID   AtomID
	Kind BreakKind
}

// AnnotationRun is an ordered sub-sequence of atoms rendered as a
// two-sub-column interlinear note beside the main column. Each member
// receives its own position-map entry with a sub-column assignment.
type AnnotationRun struct {
	ID      AtomID
	Members []Atom

	Indents
}

// Passthrough must receive a position but has no layout effect of its
// own; downstream collaborators (e.g. side-annotation placement) use it
// as an anchor. Name is free-form and uninterpreted.
type Passthrough struct {
	ID   AtomID
	Name string

	Indents
}

// AtomID implementations.

func (g Glyph) AtomID() AtomID         { return g.ID }
func (s Spacer) AtomID() AtomID        { return s.ID }
func (b Block) AtomID() AtomID         { return b.ID }
func (b Break) AtomID() AtomID         { return b.ID }
func (r AnnotationRun) AtomID() AtomID { return r.ID }
func (p Passthrough) AtomID() AtomID   { return p.ID }

func (Glyph) sealed()         {}
func (Spacer) sealed()        {}
func (Block) sealed()         {}
func (Break) sealed()         {}
func (AnnotationRun) sealed() {}
func (Passthrough) sealed()   {}
