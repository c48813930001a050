package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestType_String(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{Null, "null"},
		{Uint16, "uint16"},
		{Int32, "int32"},
		{Uint32, "uint32"},
		{Int64, "int64"},
		{Uint64, "uint64"},
		{Fp32, "fp32"},
		{Fp64, "fp64"},
		{Bin96, "bin96"},
		{Bin128, "bin128"},
		{Bin160, "bin160"},
		{Bin192, "bin192"},
		{Bin256, "bin256"},
		{Cstr, "cstr"},
		{Opaque, "opaque"},
		{String, "string"},
		{Nested, "nested"},
		{Farray, "farray"},
		{Type(0xFF), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.typ.String())
		})
	}
}

func TestType_IsFixed(t *testing.T) {
	for typ := Null; typ < Cstr; typ++ {
		require.Truef(t, typ.IsFixed(), "%s should be fixed", typ)
	}
	for _, typ := range []Type{Cstr, Opaque, String, Nested, Farray} {
		require.Falsef(t, typ.IsFixed(), "%s should not be fixed", typ)
	}
}

func TestType_IsInline(t *testing.T) {
	require.True(t, Uint16.IsInline())
	for _, typ := range []Type{Null, Int32, Uint32, Int64, Uint64, Fp32, Fp64, Cstr, Opaque, Nested} {
		require.Falsef(t, typ.IsInline(), "%s should not be inline", typ)
	}
}

func TestType_IsValid(t *testing.T) {
	require.True(t, Null.IsValid())
	require.True(t, Nested.IsValid())
	require.False(t, Farray.IsValid(), "farray is enumerated but reserved/unimplemented")
	require.False(t, Type(0xFF).IsValid())
}

func TestFixedUnits_And_FixedBytes(t *testing.T) {
	require.Equal(t, 0, FixedUnits(Uint16))
	require.Equal(t, 1, FixedUnits(Int32))
	require.Equal(t, 2, FixedUnits(Int64))
	require.Equal(t, 8, FixedUnits(Bin256))
	require.Equal(t, 0, FixedUnits(Cstr), "variable-length types have no fixed unit size")

	require.Equal(t, 2, FixedBytes(Uint16))
	require.Equal(t, 4, FixedBytes(Int32))
	require.Equal(t, 32, FixedBytes(Bin256))
}

func TestMask_And_MatchesMask(t *testing.T) {
	mask := Mask(Uint32, Int32, Fp64)
	require.True(t, MatchesMask(Uint32, mask))
	require.True(t, MatchesMask(Int32, mask))
	require.True(t, MatchesMask(Fp64, mask))
	require.False(t, MatchesMask(Uint16, mask))
	require.False(t, MatchesMask(Cstr, mask))
}

func TestPack_UnpackRoundTrip(t *testing.T) {
	for _, col := range []uint16{0, 1, 100, MaxColumn} {
		for _, typ := range []Type{Null, Uint16, Int32, Cstr, Nested} {
			ct := Pack(col, typ)
			require.Equal(t, col, UnpackColumn(ct))
			require.Equal(t, typ, UnpackType(ct))
		}
	}
}

func TestDead_IsUnreachableFromPack(t *testing.T) {
	for _, col := range []uint16{0, 1, MaxColumn} {
		for typ := Type(0); typ < typeCount; typ++ {
			require.NotEqual(t, Dead, Pack(col, typ))
		}
	}
	require.True(t, IsDead(Dead))
}
