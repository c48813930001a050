package tuple

import (
	"encoding/binary"

	"github.com/alex-hoshin/libfptu/layout"
)

// RO is a frozen, read-only tuple image: a Varlen header (unit 0) followed
// by a descriptor band and a payload heap, exactly as TakeNoShrink wrote it.
// It is a plain byte slice so that aliasing a sub-range of a larger buffer —
// the container format's use case — costs nothing.
type RO []byte

func (r RO) unit(i int) layout.Unit {
	return binary.LittleEndian.Uint32(r[i*layout.UnitSize:])
}

func (r RO) header() (layout.Varlen, bool) {
	if len(r) < layout.UnitSize {
		return layout.Varlen{}, false
	}
	return layout.DecodeVarlen(r.unit(0)), true
}

// consistent reports whether r's length matches what its own header claims,
// mirroring the reference's fptu_lookup_ro pre-check.
func (r RO) consistent() (layout.Varlen, int, bool) {
	vl, ok := r.header()
	if !ok {
		return vl, 0, false
	}
	total := vl.TotalUnits()
	if len(r) != total*layout.UnitSize {
		return vl, 0, false
	}
	itemCount := vl.ItemCount()
	if itemCount > int(vl.Brutto) {
		return vl, 0, false
	}
	return vl, itemCount, true
}

func (r RO) descriptorAt(i int) layout.Descriptor {
	return layout.DecodeDescriptor(r.unit(1 + i))
}

func (r RO) scan(pred func(layout.Descriptor) bool) (layout.Descriptor, bool) {
	vl, itemCount, ok := r.consistent()
	if !ok || vl.Ordered() {
		return layout.Descriptor{}, false
	}
	for i := 0; i < itemCount; i++ {
		d := r.descriptorAt(i)
		if d.IsLive() && pred(d) {
			return d, true
		}
	}
	return layout.Descriptor{}, false
}

// Lookup returns the first live descriptor at (col, typ), or false if the
// image is inconsistent, ordered (unsupported), or has no such field.
func (r RO) Lookup(col uint16, typ layout.Type) (Field, bool) {
	if col > layout.MaxColumn {
		return Field{}, false
	}
	ct := layout.Pack(col, typ)
	d, ok := r.scan(func(d layout.Descriptor) bool { return d.CT == ct })
	if !ok {
		return Field{}, false
	}
	return Field{d: d, buf: r}, true
}

// LookupFilter returns the first live descriptor at col whose type is set
// in mask, or false.
func (r RO) LookupFilter(col uint16, mask uint32) (Field, bool) {
	if col > layout.MaxColumn {
		return Field{}, false
	}
	d, ok := r.scan(func(d layout.Descriptor) bool {
		return d.Column() == col && layout.MatchesMask(d.Type(), mask)
	})
	if !ok {
		return Field{}, false
	}
	return Field{d: d, buf: r}, true
}

// FieldCount returns the image's live field count, or 0 for an inconsistent
// or ordered image.
func (r RO) FieldCount() int {
	vl, itemCount, ok := r.consistent()
	if !ok || vl.Ordered() {
		return 0
	}
	n := 0
	for i := 0; i < itemCount; i++ {
		if r.descriptorAt(i).IsLive() {
			n++
		}
	}
	return n
}
