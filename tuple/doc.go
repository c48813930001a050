// Package tuple implements the mutable arena ("RW") and frozen view ("RO")
// at the core of the fptu wire format: a single fixed-size block of 4-byte
// units that simultaneously holds a growing array of field descriptors and
// a shrinking heap of variable-length payloads, separated by a pivot that is
// fixed at initialization time.
//
// # Lifecycle
//
// A caller allocates a byte region (its size capped by the format, see
// MaxTupleBytes) and hands it to Init, which carves out a descriptor band of
// reserveCols slots. Any number of Insert/Upsert/Update/Erase calls follow,
// optionally interleaved with Shrink to reclaim space left behind by erase
// or by an update that shortened a variable-length value. At any point the
// caller may Check the arena for structural validity, or Take a frozen,
// zero-copy RO view of it.
//
// # Concurrency
//
// RW is not safe for concurrent mutation: all mutating methods require
// exclusive access to the arena. RO is immutable and may be read from any
// number of goroutines concurrently, provided no mutator touches the
// underlying RW the view was taken from (RO borrows the RW's backing bytes;
// it does not copy them).
//
// # What this package deliberately does not do
//
// Nested-tuple fields are encoded (their slot in the type taxonomy and wire
// layout is real and round-trips), but this package does not implement a
// query language over them beyond storing and recursively validating a
// nested RO image. The array-of-a-fixed-type tag (layout.Farray) is only
// reserved: there is no method to insert such a field, and Check rejects
// one as an invalid type tag. Sorted/ordered tuples are
// reserved in the wire format (the lx_mask bit) but never produced by
// Shrink or Take, and are rejected on read.
package tuple

import "github.com/alex-hoshin/libfptu/layout"

// MaxTupleBytes is the largest total size, in bytes, a tuple's backing
// region may have: the wire format bounds a tuple's unit count (Brutto) to
// 16 bits, and this caps the whole region, reserved leading unit included,
// at 2^16-1 units.
const MaxTupleBytes = (1<<16 - 1) * layout.UnitSize

// MaxColumn re-exports layout.MaxColumn for callers that only import tuple.
const MaxColumn = layout.MaxColumn
