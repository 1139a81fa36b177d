package grid

import (
	"github.com/open-guji/guji/stream"
)

// chunkMember is one annotation atom with its sub-column assignment and
// row relative to the chunk's starting row.
type chunkMember struct {
	atom stream.Atom
	sub  SubColumn
	row  int
}

// chunk is one column's worth of a balanced annotation run.
type chunk struct {
	members []chunkMember

	// rowsUsed is the number of main-column rows the chunk consumes:
	// the height of its right sub-column.
	rowsUsed int

	// filledToCapacity is true for every chunk except possibly the last;
	// the cursor wraps to a fresh column after a full chunk.
	filledToCapacity bool
}

// balance packs an annotation run into twin sub-columns. The first
// chunk may use at most first rows (the space left in the current
// column); every later chunk gets rest rows (a fresh column's capacity).
// Within a chunk the right sub-column fills first, top to bottom, then
// the left; the final chunk balances its atoms so the right sub-column
// is at most one longer than the left.
//
// The caller guarantees first >= 2, so a run never starts as a single
// orphaned row at a column's bottom edge, and rest >= 1.
func balance(atoms []stream.Atom, first, rest int) []chunk {
	var chunks []chunk
	pos := 0
	for pos < len(atoms) {
		h := rest
		if len(chunks) == 0 {
			h = first
		}

		remaining := len(atoms) - pos
		if remaining <= 2*h {
			// Final chunk: split the remainder so the right sub-column
			// leads by at most one.
			rightCount := (remaining + 1) / 2
			chunks = append(chunks, fillChunk(atoms[pos:], rightCount, false))
			break
		}

		// Full chunk: exactly 2h atoms, h per sub-column.
		chunks = append(chunks, fillChunk(atoms[pos:pos+2*h], h, true))
		pos += 2 * h
	}
	return chunks
}

// fillChunk assigns the first rightCount atoms to the right sub-column
// and the rest to the left, each at rows 0..n-1.
func fillChunk(atoms []stream.Atom, rightCount int, filled bool) chunk {
	c := chunk{
		members:          make([]chunkMember, 0, len(atoms)),
		rowsUsed:         rightCount,
		filledToCapacity: filled,
	}
	for i, a := range atoms {
		m := chunkMember{atom: a}
		if i < rightCount {
			m.sub = SubRight
			m.row = i
		} else {
			m.sub = SubLeft
			m.row = i - rightCount
		}
		c.members = append(c.members, m)
	}
	return c
}
