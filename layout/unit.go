// Package layout defines the on-wire building blocks shared by every mutable
// arena and frozen image: the 4-byte unit, the field-descriptor packing, the
// type taxonomy and size tables, and the varlen payload header.
//
// Nothing in this package allocates from a global heap or holds mutable
// package-level state; the type->size tables are compile-time constants, as
// required by the "no global mutable state" rule the format carries.
package layout

// UnitSize is the byte width of one addressing unit. All tuple storage is a
// whole number of units; sub-unit bytes are zero-padded.
const UnitSize = 4

// Unit is one 4-byte little-endian addressing quantum.
type Unit = uint32

// BytesToUnits rounds a byte count up to a whole number of units.
func BytesToUnits(n int) int {
	return (n + UnitSize - 1) / UnitSize
}

// UnitsToBytes converts a unit count to its byte width.
func UnitsToBytes(units int) int {
	return units * UnitSize
}
