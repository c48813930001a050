package tuple

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alex-hoshin/libfptu/layout"
)

func TestRO_LookupFilter_MatchesAnyTypeInMask(t *testing.T) {
	rw := newArena(t, 256, 4)
	require.NoError(t, rw.InsertInt32(0, -5))
	ro := rw.Take()

	mask := layout.Mask(layout.Uint32, layout.Int32)
	f, ok := ro.LookupFilter(0, mask)
	require.True(t, ok)
	v, _ := f.Int32()
	require.Equal(t, int32(-5), v)
}

// TestRO_LookupFilter_ReturnsFirstInsertedMatch covers spec.md §8 scenario
// 6: with several same-column fields of different matching types, a
// two-type-mask filter lookup returns whichever was inserted first, not
// whichever type sorts first or was inserted last.
func TestRO_LookupFilter_ReturnsFirstInsertedMatch(t *testing.T) {
	rw := newArena(t, 256, 4)
	require.NoError(t, rw.InsertUint16(5, 0xAAAA))
	require.NoError(t, rw.InsertInt32(5, -7))
	require.NoError(t, rw.InsertUint64(5, 0xFFFFFFFFFFFFFFFF))
	ro := rw.Take()

	mask := layout.Mask(layout.Uint16, layout.Int32)
	f, ok := ro.LookupFilter(5, mask)
	require.True(t, ok)
	require.Equal(t, layout.Uint16, f.Type())
	v, _ := f.Uint16()
	require.Equal(t, uint16(0xAAAA), v)
}

func TestRO_Lookup_ReturnsFalseForMissingField(t *testing.T) {
	rw := newArena(t, 256, 4)
	require.NoError(t, rw.InsertUint16(0, 1))
	ro := rw.Take()

	_, ok := ro.Lookup(1, layout.Uint16)
	require.False(t, ok)
}

func TestRO_Lookup_RejectsOutOfRangeColumn(t *testing.T) {
	rw := newArena(t, 256, 4)
	require.NoError(t, rw.InsertUint16(0, 1))
	ro := rw.Take()

	_, ok := ro.Lookup(layout.MaxColumn+1, layout.Uint16)
	require.False(t, ok)
}

func TestRO_FieldCount_ZeroForEmptySlice(t *testing.T) {
	var ro RO
	require.Equal(t, 0, ro.FieldCount())
}

func TestRO_Check_RejectsOrderedTuple(t *testing.T) {
	rw := newArena(t, 256, 2)
	require.NoError(t, rw.InsertUint32(0, 1))
	ro := rw.Take()

	// Flip the ordered bit in the header's Aux word.
	header := layout.DecodeVarlen(ro.unit(0))
	corrupted := make([]byte, len(ro))
	copy(corrupted, ro)
	badHeader := layout.Varlen{Brutto: header.Brutto, Aux: header.Aux | layout.LxMask}
	putUnit(corrupted, 0, badHeader.Encode())

	err := RO(corrupted).Check()
	require.Error(t, err)
}

func putUnit(buf []byte, i int, v layout.Unit) {
	buf[i*layout.UnitSize+0] = byte(v)
	buf[i*layout.UnitSize+1] = byte(v >> 8)
	buf[i*layout.UnitSize+2] = byte(v >> 16)
	buf[i*layout.UnitSize+3] = byte(v >> 24)
}
