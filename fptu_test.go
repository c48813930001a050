package fptu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alex-hoshin/libfptu/layout"
)

func TestNew_ProducesUsableArena(t *testing.T) {
	rw, err := New(8, 256)
	require.NoError(t, err)

	require.NoError(t, rw.InsertUint32(0, 7))
	f, ok := rw.Lookup(0, layout.Uint32)
	require.True(t, ok)
	v, _ := f.Uint32()
	require.Equal(t, uint32(7), v)
}

func TestOpen_WrapsCallerRegion(t *testing.T) {
	region := make([]byte, 1024)
	rw, err := Open(region, 4)
	require.NoError(t, err)

	require.NoError(t, rw.InsertCstr(0, "caller-owned"))
	image := rw.Take()
	require.Nil(t, image.Check())
}

func TestView_WrapsFrozenBytes(t *testing.T) {
	rw, err := New(4, 256)
	require.NoError(t, err)
	require.NoError(t, rw.InsertUint16(0, 99))
	image := rw.Take()

	viewed := View([]byte(image))
	f, ok := viewed.Lookup(0, layout.Uint16)
	require.True(t, ok)
	v, _ := f.Uint16()
	require.Equal(t, uint16(99), v)
}
