package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarlen_EncodeDecodeRoundTrip(t *testing.T) {
	v := Varlen{Brutto: 12, Aux: 7}
	got := DecodeVarlen(v.Encode())
	require.Equal(t, v, got)
}

func TestVarlen_TotalUnits(t *testing.T) {
	v := Varlen{Brutto: 5}
	require.Equal(t, 6, v.TotalUnits())
}

func TestVarlen_OpaqueBytes(t *testing.T) {
	v := Varlen{Aux: 123}
	require.Equal(t, 123, v.OpaqueBytes())
}

func TestVarlen_ItemCountAndOrdered(t *testing.T) {
	v := Varlen{Aux: NewTupleItemsAux(10)}
	require.Equal(t, 10, v.ItemCount())
	require.False(t, v.Ordered())

	ordered := Varlen{Aux: NewTupleItemsAux(10) | LxMask}
	require.Equal(t, 10, ordered.ItemCount())
	require.True(t, ordered.Ordered())
}

func TestNewTupleItemsAux_ClearsOrderedBit(t *testing.T) {
	aux := NewTupleItemsAux(0xFFFF)
	require.Equal(t, LtMask, aux, "aux must never set the ordered bit")
}
