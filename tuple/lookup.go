package tuple

import "github.com/alex-hoshin/libfptu/layout"

// Lookup returns the first live field at (col, typ), or false.
func (t *RW) Lookup(col uint16, typ layout.Type) (Field, bool) {
	if col > layout.MaxColumn {
		return Field{}, false
	}
	idx := t.findLive(layout.Pack(col, typ))
	if idx < 0 {
		return Field{}, false
	}
	return Field{d: t.descriptor(idx), buf: t.buf}, true
}

// LookupFilter returns the first live field at col whose type is set in
// mask, or false.
func (t *RW) LookupFilter(col uint16, mask uint32) (Field, bool) {
	if col > layout.MaxColumn {
		return Field{}, false
	}
	idx := t.findFilter(col, mask)
	if idx < 0 {
		return Field{}, false
	}
	return Field{d: t.descriptor(idx), buf: t.buf}, true
}
