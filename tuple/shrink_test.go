package tuple

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alex-hoshin/libfptu/layout"
)

func TestShrink_NoOpWhenNoJunk(t *testing.T) {
	rw := newArena(t, 256, 4)
	require.NoError(t, rw.InsertUint32(0, 1))
	tailBefore := rw.tail
	rw.Shrink()
	require.Equal(t, tailBefore, rw.tail)
}

func TestShrink_ReclaimsErasedPayloadSpace(t *testing.T) {
	rw := newArena(t, 256, 4)
	require.NoError(t, rw.InsertUint32(0, 1))
	require.NoError(t, rw.InsertUint32(1, 2))
	require.NoError(t, rw.InsertUint32(2, 3))

	require.Equal(t, 1, rw.Erase(1, layout.Uint32))
	tailBefore := rw.tail
	rw.Shrink()
	require.Less(t, rw.tail, tailBefore)
	require.Equal(t, 0, rw.junk)

	require.Equal(t, 2, rw.FieldCount())
	f, ok := rw.Lookup(0, layout.Uint32)
	require.True(t, ok)
	v, _ := f.Uint32()
	require.Equal(t, uint32(1), v)

	f, ok = rw.Lookup(2, layout.Uint32)
	require.True(t, ok)
	v, _ = f.Uint32()
	require.Equal(t, uint32(3), v)
}

func TestShrink_NeverMovesPivot(t *testing.T) {
	rw := newArena(t, 256, 8)
	require.NoError(t, rw.InsertUint32(0, 1))
	require.NoError(t, rw.InsertUint32(1, 2))
	require.Equal(t, 1, rw.Erase(0, layout.Uint32))

	pivotBefore := rw.pivot
	rw.Shrink()
	require.Equal(t, pivotBefore, rw.pivot, "pivot must stay fixed even after compaction")
}

func TestShrink_IsIdempotent(t *testing.T) {
	rw := newArena(t, 256, 4)
	require.NoError(t, rw.InsertUint32(0, 1))
	require.NoError(t, rw.InsertUint32(1, 2))
	require.Equal(t, 1, rw.Erase(0, layout.Uint32))

	rw.Shrink()
	tailAfterFirst := rw.tail
	rw.Shrink()
	require.Equal(t, tailAfterFirst, rw.tail)
}

func TestShrink_PreservesVarlenValues(t *testing.T) {
	rw := newArena(t, 256, 8)
	require.NoError(t, rw.InsertCstr(0, "alpha"))
	require.NoError(t, rw.InsertCstr(1, "beta"))
	require.NoError(t, rw.InsertCstr(2, "gamma"))
	require.Equal(t, 1, rw.Erase(1, layout.Cstr))

	rw.Shrink()

	f, ok := rw.Lookup(0, layout.Cstr)
	require.True(t, ok)
	s, _ := f.Cstr()
	require.Equal(t, "alpha", s)

	f, ok = rw.Lookup(2, layout.Cstr)
	require.True(t, ok)
	s, _ = f.Cstr()
	require.Equal(t, "gamma", s)

	_, ok = rw.Lookup(1, layout.Cstr)
	require.False(t, ok)
}

func TestShrink_RefillsVacatedDescriptorSlotsWithDead(t *testing.T) {
	rw := newArena(t, 256, 8)
	require.NoError(t, rw.InsertUint32(0, 1))
	require.NoError(t, rw.InsertUint32(1, 2))
	require.Equal(t, 1, rw.Erase(0, layout.Uint32))

	rw.Shrink()

	for i := rw.nextFree; i < rw.pivot; i++ {
		require.False(t, rw.descriptor(i).IsLive())
	}
}
