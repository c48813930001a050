package tuple

import (
	"github.com/alex-hoshin/libfptu/internal/pool"
	"github.com/alex-hoshin/libfptu/layout"
)

// Shrink compacts the arena: every live descriptor is repacked, in its
// existing relative order, to the front of the descriptor band starting at
// head, and every live payload is repacked, contiguously and in the same
// order, to start just after pivot. Every non-inline descriptor offset is
// rewritten to match its new payload location. junk is reset to zero.
//
// pivot itself is never moved — a tuple whose reserved column count exceeds
// its live field count keeps its descriptor band at full width even after
// Shrink; only the payload heap actually tightens. Shrink is idempotent: a
// second call with junk already zero is a no-op.
//
// The reference implementation compacts in place with careful overlap
// handling; this port instead computes the compacted layout into a pooled
// scratch buffer and copies it back in one pass, which sidesteps overlap
// concerns entirely while producing a bit-identical result.
func (t *RW) Shrink() {
	if t.junk == 0 {
		return
	}

	type live struct {
		d     layout.Descriptor
		units int
	}

	lives := make([]live, 0, t.nextFree-t.head)
	payloadUnits := 0
	for i := t.head; i < t.pivot; i++ {
		d := t.descriptor(i)
		if !d.IsLive() {
			continue
		}
		u := t.payloadUnits(d)
		lives = append(lives, live{d, u})
		payloadUnits += u
	}

	scratch := pool.Get(len(lives) + payloadUnits)
	scratch.U = scratch.U[:len(lives)+payloadUnits]

	cursor := 0
	for i, l := range lives {
		if l.units == 0 {
			scratch.U[i] = l.d.Encode()
			continue
		}

		oldOffset := int(l.d.Offset)
		for u := 0; u < l.units; u++ {
			scratch.U[len(lives)+cursor+u] = t.unit(oldOffset + u)
		}
		newOffset := t.pivot + cursor
		scratch.U[i] = layout.Descriptor{CT: l.d.CT, Offset: uint16(newOffset)}.Encode()
		cursor += l.units
	}

	for i := range lives {
		t.setUnit(t.head+i, scratch.U[i])
	}
	for i := 0; i < payloadUnits; i++ {
		t.setUnit(t.pivot+i, scratch.U[len(lives)+i])
	}
	pool.Put(scratch)

	for i := t.head + len(lives); i < t.pivot; i++ {
		t.setDescriptor(i, layout.Descriptor{CT: layout.Dead})
	}

	t.nextFree = t.head + len(lives)
	t.freeList = t.freeList[:0]
	t.tail = t.pivot + payloadUnits
	t.junk = 0
}
