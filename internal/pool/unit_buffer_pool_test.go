package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet_ReturnsZeroLengthWithRequestedCapacity(t *testing.T) {
	buf := Get(100)
	require.Equal(t, 0, len(buf.U))
	require.GreaterOrEqual(t, cap(buf.U), 100)
	Put(buf)
}

func TestGetPut_Reuse(t *testing.T) {
	buf := Get(10)
	buf.U = append(buf.U, 1, 2, 3)
	Put(buf)

	reused := Get(10)
	require.Equal(t, 0, len(reused.U))
	Put(reused)
}

func TestPut_DiscardsOversizedBuffers(t *testing.T) {
	buf := Get(UnitBufferMaxThreshold + 1)
	require.Greater(t, cap(buf.U), UnitBufferMaxThreshold)
	// Put must not panic even though it discards rather than pools this one.
	require.NotPanics(t, func() { Put(buf) })
}
