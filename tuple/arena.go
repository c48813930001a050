package tuple

import (
	"encoding/binary"

	"github.com/alex-hoshin/libfptu/errs"
	"github.com/alex-hoshin/libfptu/layout"
)

// RW is a mutable tuple arena backed by a caller-supplied byte region. The
// region is divided, in unit (4-byte) granularity, into:
//
//	[0, head)       reserved: unit 0 holds the frozen-image header once Take
//	                 or TakeNoShrink has run; never touched by a mutator.
//	[head, pivot)    the descriptor band: one unit per reserved column slot,
//	                 fixed in width at Init and never moved.
//	[pivot, tail)    the payload heap: grows upward (tail advances) as fields
//	                 are inserted, shrinks back toward pivot only via Shrink.
//	[tail, end)      free space available to the payload heap.
//
// head is always 1 and pivot is fixed for the arena's lifetime: this is a
// deliberate, faithful port of the reference implementation's behavior (see
// DESIGN.md's discussion of Shrink never moving pivot), not an
// oversight — a tuple initialized with more reserved columns than it ends up
// using will freeze with unused, tombstoned descriptor slots still present.
type RW struct {
	buf   []byte
	head  int
	pivot int
	tail  int
	end   int

	// nextFree is the first descriptor slot in [head, pivot) that has never
	// been allocated. freeList holds indices of slots tombstoned by Erase,
	// available for O(1) reuse ahead of nextFree.
	nextFree int
	freeList []int

	junk int
}

// Init carves a fresh arena out of region, reserving reserveCols descriptor
// slots. region's length must be a positive multiple of layout.UnitSize and
// fit within MaxTupleBytes; reserveCols must fit within the region and must
// not exceed layout.MaxColumn+1.
func Init(region []byte, reserveCols int) (*RW, error) {
	if len(region) == 0 || len(region)%layout.UnitSize != 0 {
		return nil, errs.ErrInvalidArgument
	}
	if len(region) > MaxTupleBytes {
		return nil, errs.ErrInvalidArgument
	}
	if reserveCols < 0 || reserveCols > layout.MaxColumn+1 {
		return nil, errs.ErrInvalidArgument
	}

	end := len(region) / layout.UnitSize
	pivot := 1 + reserveCols
	if pivot > end {
		return nil, errs.ErrInvalidArgument
	}

	t := &RW{
		buf:      region,
		head:     1,
		pivot:    pivot,
		tail:     pivot,
		end:      end,
		nextFree: 1,
	}
	for i := t.head; i < t.pivot; i++ {
		t.setDescriptor(i, layout.Descriptor{CT: layout.Dead})
	}

	return t, nil
}

func (t *RW) unit(i int) layout.Unit {
	return binary.LittleEndian.Uint32(t.buf[i*layout.UnitSize:])
}

func (t *RW) setUnit(i int, v layout.Unit) {
	binary.LittleEndian.PutUint32(t.buf[i*layout.UnitSize:], v)
}

func (t *RW) descriptor(i int) layout.Descriptor {
	return layout.DecodeDescriptor(t.unit(i))
}

func (t *RW) setDescriptor(i int, d layout.Descriptor) {
	t.setUnit(i, d.Encode())
}

func (t *RW) varlenAt(offset int) layout.Varlen {
	return layout.DecodeVarlen(t.unit(offset))
}

// payloadUnits returns how many units of the payload heap d's value
// occupies: 0 for Null and inline Uint16, T2U[type] for other fixed types,
// and the full Varlen span (header included) for variable-length types.
func (t *RW) payloadUnits(d layout.Descriptor) int {
	typ := d.Type()
	switch {
	case typ.IsInline():
		return 0
	case typ.IsFixed():
		return layout.FixedUnits(typ)
	default:
		return t.varlenAt(int(d.Offset)).TotalUnits()
	}
}

// scan returns the absolute index of the first live descriptor in
// [head, pivot) matching pred, or -1.
func (t *RW) scan(pred func(layout.Descriptor) bool) int {
	for i := t.head; i < t.pivot; i++ {
		d := t.descriptor(i)
		if d.IsLive() && pred(d) {
			return i
		}
	}

	return -1
}

func (t *RW) findLive(ct uint16) int {
	return t.scan(func(d layout.Descriptor) bool { return d.CT == ct })
}

func (t *RW) findFilter(col uint16, mask uint32) int {
	return t.scan(func(d layout.Descriptor) bool {
		return d.Column() == col && layout.MatchesMask(d.Type(), mask)
	})
}

// FieldCount returns the number of live (non-erased) descriptors.
func (t *RW) FieldCount() int {
	return t.FieldCountFunc(nil)
}

// FieldCountFunc returns the number of live descriptors that also satisfy
// pred, or all live descriptors if pred is nil.
func (t *RW) FieldCountFunc(pred func(layout.Descriptor) bool) int {
	n := 0
	for i := t.head; i < t.pivot; i++ {
		d := t.descriptor(i)
		if d.IsLive() && (pred == nil || pred(d)) {
			n++
		}
	}

	return n
}

// allocDescriptor returns the absolute index of a descriptor slot available
// for a new field: a tombstoned slot reused from freeList, or the next
// never-used slot, in O(1) either way. It does not write anything.
func (t *RW) allocDescriptor() (int, error) {
	if n := len(t.freeList); n > 0 {
		idx := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		return idx, nil
	}
	if t.nextFree >= t.pivot {
		return 0, errs.ErrDescriptorOverflow
	}
	idx := t.nextFree
	t.nextFree++
	return idx, nil
}

// markDead tombstones the descriptor at idx (already known to hold d) and
// accounts the units it frees into junk: one unit for the descriptor slot
// itself, plus T2U[type] (fixed, non-inline) or the full Varlen span
// (variable-length) for the payload it referenced, if any.
func (t *RW) markDead(idx int, d layout.Descriptor) {
	t.junk += 1 + t.payloadUnits(d)
	t.setDescriptor(idx, layout.Descriptor{CT: layout.Dead})
	t.freeList = append(t.freeList, idx)
}
