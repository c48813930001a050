package tuple

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alex-hoshin/libfptu/layout"
)

func TestErase_RemovesSingleMatch(t *testing.T) {
	rw := newArena(t, 256, 4)
	require.NoError(t, rw.InsertUint16(0, 1))

	require.Equal(t, 1, rw.Erase(0, layout.Uint16))
	_, ok := rw.Lookup(0, layout.Uint16)
	require.False(t, ok)
}

func TestErase_NoMatchReturnsZero(t *testing.T) {
	rw := newArena(t, 256, 4)
	require.Equal(t, 0, rw.Erase(0, layout.Uint16))
}

func TestEraseAll_RemovesEveryMatchingDuplicate(t *testing.T) {
	rw := newArena(t, 256, 8)
	require.NoError(t, rw.InsertUint16(0, 1))
	require.NoError(t, rw.InsertUint16(0, 2))
	require.NoError(t, rw.InsertUint16(0, 3))
	require.NoError(t, rw.InsertUint32(1, 99))

	n := rw.EraseAll(0, layout.Uint16)
	require.Equal(t, 3, n)
	require.Equal(t, 1, rw.FieldCount())
}

func TestEraseFilter_MatchesAnyTypeInMask(t *testing.T) {
	rw := newArena(t, 256, 8)
	require.NoError(t, rw.InsertUint32(0, 1))
	require.NoError(t, rw.InsertInt32(0, -1))

	mask := layout.Mask(layout.Uint32, layout.Int32)
	require.Equal(t, 1, rw.EraseFilter(0, mask))
	require.Equal(t, 1, rw.FieldCount())
}

func TestEraseAllFilter_RemovesEveryMatch(t *testing.T) {
	rw := newArena(t, 256, 8)
	require.NoError(t, rw.InsertUint32(0, 1))
	require.NoError(t, rw.InsertInt32(0, -1))
	require.NoError(t, rw.InsertUint16(0, 5))

	mask := layout.Mask(layout.Uint32, layout.Int32)
	n := rw.EraseAllFilter(0, mask)
	require.Equal(t, 2, n)
	require.Equal(t, 1, rw.FieldCount())
}

// TestJunkAccounting_MatchesReferenceTrace reproduces the cumulative junk
// values from the reference implementation's base shrink test: erasing two
// inline uint16 fields costs one unit each, erasing a uint32 costs two.
func TestJunkAccounting_MatchesReferenceTrace(t *testing.T) {
	rw := newArena(t, 256, 8)
	require.NoError(t, rw.InsertUint16(0, 1))
	require.NoError(t, rw.InsertUint16(1, 2))
	require.NoError(t, rw.InsertUint32(2, 3))

	rw.Erase(0, layout.Uint16)
	require.Equal(t, 1, rw.junk)

	rw.Erase(1, layout.Uint16)
	require.Equal(t, 2, rw.junk)

	rw.Erase(2, layout.Uint32)
	require.Equal(t, 4, rw.junk)
}
