package tuple

import "github.com/alex-hoshin/libfptu/layout"

// Erase tombstones the first live field at (col, typ), if any, and reports
// whether it did (0 or 1 — there is no error case: "nothing matched" is not
// a failure).
func (t *RW) Erase(col uint16, typ layout.Type) int {
	ct := layout.Pack(col, typ)
	idx := t.findLive(ct)
	if idx < 0 {
		return 0
	}
	t.markDead(idx, t.descriptor(idx))
	return 1
}

// EraseFilter tombstones the first live field at col whose type is set in
// mask (see layout.Mask), if any.
func (t *RW) EraseFilter(col uint16, mask uint32) int {
	idx := t.findFilter(col, mask)
	if idx < 0 {
		return 0
	}
	t.markDead(idx, t.descriptor(idx))
	return 1
}

// EraseAll tombstones every live field at (col, typ) — the bag-semantics
// bulk form — and returns how many it erased.
func (t *RW) EraseAll(col uint16, typ layout.Type) int {
	ct := layout.Pack(col, typ)
	n := 0
	for i := t.head; i < t.pivot; i++ {
		d := t.descriptor(i)
		if d.IsLive() && d.CT == ct {
			t.markDead(i, d)
			n++
		}
	}
	return n
}

// EraseAllFilter tombstones every live field at col whose type is set in
// mask, and returns how many it erased.
func (t *RW) EraseAllFilter(col uint16, mask uint32) int {
	n := 0
	for i := t.head; i < t.pivot; i++ {
		d := t.descriptor(i)
		if d.IsLive() && d.Column() == col && layout.MatchesMask(d.Type(), mask) {
			t.markDead(i, d)
			n++
		}
	}
	return n
}
