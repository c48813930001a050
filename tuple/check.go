package tuple

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/alex-hoshin/libfptu/errs"
	"github.com/alex-hoshin/libfptu/layout"
)

type payloadRange struct {
	start, end int // unit indices, [start, end)
}

// CheckResult describes a structural validation failure found by Check. A
// nil *CheckResult means the arena or image is well-formed. It implements
// error (and Unwrap, so errors.Is against errs.ErrCorrupt or
// errs.ErrOrderedUnsupported still works) in addition to Diagnostic, for
// callers that want the descriptive text rather than just a sentinel.
type CheckResult struct {
	err error
}

func newCheckResult(err error) *CheckResult {
	if err == nil {
		return nil
	}
	return &CheckResult{err: err}
}

// Error returns the same text as Diagnostic, satisfying the error interface
// so a *CheckResult can be passed anywhere an error is expected.
func (r *CheckResult) Error() string {
	if r == nil {
		return ""
	}
	return r.err.Error()
}

// Unwrap exposes the underlying sentinel (errs.ErrCorrupt or
// errs.ErrOrderedUnsupported) for errors.Is/errors.As.
func (r *CheckResult) Unwrap() error {
	if r == nil {
		return nil
	}
	return r.err
}

// Diagnostic returns the full human-readable description of the failure,
// including the field or column it was found at.
func (r *CheckResult) Diagnostic() string {
	if r == nil {
		return ""
	}
	return r.err.Error()
}

// Check validates the arena's structural invariants: index ordering, every
// live descriptor's type tag and column in range, every payload span inside
// the heap and non-overlapping with every other live payload, every cstr
// payload zero-terminated within its span, every opaque length consistent
// with its span, and every nested field recursively valid. It returns nil
// if the arena is well-formed.
func (t *RW) Check() *CheckResult {
	if !(0 <= t.head && t.head <= t.pivot && t.pivot <= t.tail && t.tail <= t.end) {
		return newCheckResult(fmt.Errorf("%w: indices out of order (head=%d pivot=%d tail=%d end=%d)",
			errs.ErrCorrupt, t.head, t.pivot, t.tail, t.end))
	}
	if t.end > MaxTupleBytes/layout.UnitSize {
		return newCheckResult(fmt.Errorf("%w: arena exceeds MaxTupleBytes", errs.ErrCorrupt))
	}

	var ranges []payloadRange
	for i := t.head; i < t.pivot; i++ {
		d := t.descriptor(i)
		if !d.IsLive() {
			continue
		}
		r, err := checkLiveDescriptor(d, t.buf, t.pivot, t.tail)
		if err != nil {
			return newCheckResult(err)
		}
		if r != nil {
			ranges = append(ranges, *r)
		}
	}

	return newCheckResult(checkNoOverlap(ranges))
}

// checkLiveDescriptor validates one live descriptor against a payload heap
// spanning [pivot, tail) of buf, and returns the unit range it occupies
// there (nil for inline/null fields, which occupy no heap space).
func checkLiveDescriptor(d layout.Descriptor, buf []byte, pivot, tail int) (*payloadRange, error) {
	typ := d.Type()
	if !typ.IsValid() {
		return nil, fmt.Errorf("%w: invalid type tag %d at column %d", errs.ErrCorrupt, d.CT&layout.MaxTypeTag, d.Column())
	}

	if typ.IsInline() || typ == layout.Null {
		return nil, nil
	}

	off := int(d.Offset)
	if typ.IsFixed() {
		units := layout.FixedUnits(typ)
		if off < pivot || off+units > tail {
			return nil, fmt.Errorf("%w: column %d payload out of heap bounds", errs.ErrCorrupt, d.Column())
		}
		return &payloadRange{off, off + units}, nil
	}

	if off < pivot || off >= tail {
		return nil, fmt.Errorf("%w: column %d varlen offset out of heap bounds", errs.ErrCorrupt, d.Column())
	}
	vl := layout.DecodeVarlen(readUnit(buf, off))
	total := vl.TotalUnits()
	if off+total > tail {
		return nil, fmt.Errorf("%w: column %d varlen span exceeds heap", errs.ErrCorrupt, d.Column())
	}

	switch typ {
	case layout.Cstr, layout.String:
		data := buf[(off+1)*layout.UnitSize : (off+total)*layout.UnitSize]
		if indexZero(data) < 0 {
			return nil, fmt.Errorf("%w: column %d cstr missing terminator", errs.ErrCorrupt, d.Column())
		}
	case layout.Opaque:
		if vl.OpaqueBytes() < 0 || vl.OpaqueBytes() > (total-1)*layout.UnitSize {
			return nil, fmt.Errorf("%w: column %d opaque length inconsistent with span", errs.ErrCorrupt, d.Column())
		}
	case layout.Nested:
		if vl.Ordered() {
			return nil, fmt.Errorf("%w: column %d nested tuple is ordered (unsupported)", errs.ErrCorrupt, d.Column())
		}
		nested := RO(buf[off*layout.UnitSize : (off+total)*layout.UnitSize])
		if cr := nested.Check(); cr != nil {
			return nil, fmt.Errorf("column %d nested tuple: %w", d.Column(), cr)
		}
	}

	return &payloadRange{off, off + total}, nil
}

func checkNoOverlap(ranges []payloadRange) error {
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })
	for i := 1; i < len(ranges); i++ {
		if ranges[i].start < ranges[i-1].end {
			return fmt.Errorf("%w: overlapping payload spans", errs.ErrCorrupt)
		}
	}
	return nil
}

// Check validates a frozen image's structural invariants: the header's
// claimed length matches the slice length, the item count fits within
// brutto, every live descriptor is in range, and every payload span is
// inside the heap and non-overlapping, recursing into nested fields.
func (r RO) Check() *CheckResult {
	vl, itemCount, ok := r.consistent()
	if !ok {
		return newCheckResult(fmt.Errorf("%w: image length inconsistent with header", errs.ErrCorrupt))
	}
	if vl.Ordered() {
		return newCheckResult(fmt.Errorf("%w: lx_mask is set on the image header", errs.ErrOrderedUnsupported))
	}

	pivot := 1 + itemCount
	tail := 1 + int(vl.Brutto)

	var ranges []payloadRange
	for i := 0; i < itemCount; i++ {
		d := r.descriptorAt(i)
		if !d.IsLive() {
			continue
		}
		rg, err := checkLiveDescriptor(d, r, pivot, tail)
		if err != nil {
			return newCheckResult(err)
		}
		if rg != nil {
			ranges = append(ranges, *rg)
		}
	}

	return newCheckResult(checkNoOverlap(ranges))
}

func readUnit(buf []byte, i int) layout.Unit {
	return binary.LittleEndian.Uint32(buf[i*layout.UnitSize:])
}
