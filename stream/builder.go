package stream

import (
	"github.com/open-guji/guji/text"
)

// Builder assembles a content-atom stream, assigning AtomIDs in document
// order. The zero value is ready to use.
type Builder struct {
	atoms  []Atom
	nextID AtomID
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the number of top-level atoms appended so far.
func (b *Builder) Len() int {
	return len(b.atoms)
}

// Atoms returns the assembled stream. The builder retains ownership of
// the slice until the caller stops appending.
func (b *Builder) Atoms() []Atom {
	return b.atoms
}

func (b *Builder) id() AtomID {
	id := b.nextID
	b.nextID++
	return id
}

// Glyph appends a single character atom and returns its ID.
func (b *Builder) Glyph(r rune, ind Indents) AtomID {
	g := Glyph{ID: b.id(), Rune: r, Indents: ind}
	b.atoms = append(b.atoms, g)
	return g.ID
}

// GlyphSized appends a character atom with intrinsic metrics.
func (b *Builder) GlyphSized(r rune, width, height, depth float64, ind Indents) AtomID {
	g := Glyph{ID: b.id(), Rune: r, Width: width, Height: height, Depth: depth, Indents: ind}
	b.atoms = append(b.atoms, g)
	return g.ID
}

// Text appends one Glyph per rune of s that occupies a cell in vertical
// typesetting. Runes with no vertical cell form (thin spaces, combining
// marks, ASCII controls) are dropped.
func (b *Builder) Text(s string, ind Indents) {
	for _, r := range s {
		if !text.OccupiesCell(r) {
			continue
		}
		b.Glyph(r, ind)
	}
}

// Spacer appends an inter-character spacing atom. Length is in grid-cell
// heights.
func (b *Builder) Spacer(length float64) AtomID {
	s := Spacer{ID: b.id(), Length: length}
	b.atoms = append(b.atoms, s)
	return s.ID
}

// Block appends an embedded block of the given cell dimensions.
func (b *Builder) Block(name string, width, height int, ind Indents) AtomID {
	blk := Block{ID: b.id(), Name: name, Width: width, Height: height, Indents: ind}
	b.atoms = append(b.atoms, blk)
	return blk.ID
}

// Break appends a break marker of the given kind.
func (b *Builder) Break(kind BreakKind) AtomID {
	br := Break{ID: b.id(), Kind: kind}
	b.atoms = append(b.atoms, br)
	return br.ID
}

// Annotation appends an interlinear annotation run whose members are one
// Glyph per cell-occupying rune of s. Members receive their own IDs.
func (b *Builder) Annotation(s string, ind Indents) AtomID {
	runID := b.id()
	var members []Atom
	for _, r := range s {
		if !text.OccupiesCell(r) {
			continue
		}
		members = append(members, Glyph{ID: b.id(), Rune: r, Indents: ind})
	}
	run := AnnotationRun{ID: runID, Members: members, Indents: ind}
	b.atoms = append(b.atoms, run)
	return runID
}

// AnnotationAtoms appends an annotation run with explicit member atoms.
// The members must already carry IDs from this builder.
func (b *Builder) AnnotationAtoms(members []Atom, ind Indents) AtomID {
	run := AnnotationRun{ID: b.id(), Members: members, Indents: ind}
	b.atoms = append(b.atoms, run)
	return run.ID
}

// Passthrough appends a positionless marker atom.
func (b *Builder) Passthrough(name string, ind Indents) AtomID {
	p := Passthrough{ID: b.id(), Name: name, Indents: ind}
	b.atoms = append(b.atoms, p)
	return p.ID
}
