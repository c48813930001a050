package tuple

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alex-hoshin/libfptu/layout"
)

func TestTakeNoShrink_PreservesJunkInImage(t *testing.T) {
	rw := newArena(t, 256, 4)
	require.NoError(t, rw.InsertUint32(0, 1))
	require.NoError(t, rw.InsertUint32(1, 2))
	require.Equal(t, 1, rw.Erase(0, layout.Uint32))

	ro := rw.TakeNoShrink()
	require.Nil(t, ro.Check())
	require.Equal(t, 1, ro.FieldCount())

	f, ok := ro.Lookup(1, layout.Uint32)
	require.True(t, ok)
	v, _ := f.Uint32()
	require.Equal(t, uint32(2), v)
}

func TestTakeNoShrink_ItemCountIsPivotMinusHead(t *testing.T) {
	rw := newArena(t, 256, 6)
	require.NoError(t, rw.InsertUint32(0, 1))

	ro := rw.TakeNoShrink()
	vl, ok := ro.header()
	require.True(t, ok)
	require.Equal(t, 6, vl.ItemCount(), "item count reflects the full reserved descriptor band, not just live fields")
}

func TestTake_ShrinksFirst(t *testing.T) {
	rw := newArena(t, 256, 8)
	require.NoError(t, rw.InsertUint32(0, 1))
	require.NoError(t, rw.InsertUint32(1, 2))
	require.Equal(t, 1, rw.Erase(0, layout.Uint32))

	ro := rw.Take()
	require.Nil(t, ro.Check())
	require.Equal(t, 1, ro.FieldCount())
}

// TestTake_BinaryStability covers spec.md §8 V8: two independently built
// arenas that receive the same operation sequence, including an erase and
// an explicit shrink, produce byte-identical Take images.
func TestTake_BinaryStability(t *testing.T) {
	build := func() RO {
		rw := newArena(t, 256, 6)
		require.NoError(t, rw.InsertUint16(0, 11))
		require.NoError(t, rw.InsertCstr(1, "stability"))
		require.NoError(t, rw.InsertUint32(2, 0xCAFEBABE))
		require.Equal(t, 1, rw.Erase(1, layout.Cstr))
		require.NoError(t, rw.InsertInt64(3, -123456789))
		rw.Shrink()
		return rw.Take()
	}

	a := build()
	b := build()
	require.Equal(t, []byte(a), []byte(b))
}

func TestRoundTrip_InsertTakeLookup(t *testing.T) {
	rw := newArena(t, 512, 4)
	require.NoError(t, rw.InsertUint16(0, 11))
	require.NoError(t, rw.InsertCstr(1, "round trip"))
	require.NoError(t, rw.InsertOpaque(2, []byte{9, 8, 7}))

	ro := rw.Take()
	require.Nil(t, ro.Check())

	f, ok := ro.Lookup(0, layout.Uint16)
	require.True(t, ok)
	v, _ := f.Uint16()
	require.Equal(t, uint16(11), v)

	f, ok = ro.Lookup(1, layout.Cstr)
	require.True(t, ok)
	s, _ := f.Cstr()
	require.Equal(t, "round trip", s)

	f, ok = ro.Lookup(2, layout.Opaque)
	require.True(t, ok)
	blob, _ := f.Opaque()
	require.Equal(t, []byte{9, 8, 7}, blob)
}
