// Package pool provides a sync.Pool-backed reusable unit buffer, used by the
// arena's Shrink compaction so repeated compactions don't allocate scratch
// space on every call.
package pool

import (
	"sync"

	"github.com/alex-hoshin/libfptu/layout"
)

// UnitBufferDefaultSize is the default capacity, in units, of a buffer
// obtained from the pool. It comfortably covers the descriptor+payload band
// of a small-to-medium tuple without growing.
const UnitBufferDefaultSize = 256

// UnitBufferMaxThreshold is the capacity above which a returned buffer is
// discarded instead of pooled, so one oversized tuple doesn't permanently
// inflate the pool's steady-state memory use.
const UnitBufferMaxThreshold = 1024 * 16

// UnitBuffer is a reusable []layout.Unit scratch area.
type UnitBuffer struct {
	U []layout.Unit
}

var unitBufferPool = sync.Pool{
	New: func() any {
		return &UnitBuffer{U: make([]layout.Unit, 0, UnitBufferDefaultSize)}
	},
}

// Get returns a UnitBuffer with length 0 and at least the requested
// capacity, either recycled from the pool or freshly allocated.
func Get(capacityHint int) *UnitBuffer {
	buf, _ := unitBufferPool.Get().(*UnitBuffer)
	if cap(buf.U) < capacityHint {
		buf.U = make([]layout.Unit, 0, capacityHint)
	} else {
		buf.U = buf.U[:0]
	}

	return buf
}

// Put returns buf to the pool, unless it has grown past
// UnitBufferMaxThreshold.
func Put(buf *UnitBuffer) {
	if cap(buf.U) > UnitBufferMaxThreshold {
		return
	}

	buf.U = buf.U[:0]
	unitBufferPool.Put(buf)
}
