package integrity

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/alex-hoshin/libfptu/errs"
)

func TestChecksum_MatchesXxhash(t *testing.T) {
	image := []byte("a frozen tuple image")
	require.Equal(t, xxhash.Sum64(image), Checksum(image))
}

func TestChecksum_Deterministic(t *testing.T) {
	image := []byte("repeat me")
	require.Equal(t, Checksum(image), Checksum(image))
}

func TestVerify(t *testing.T) {
	image := []byte("payload")
	sum := Checksum(image)

	require.True(t, Verify(image, sum))
	require.False(t, Verify(image, sum+1))
	require.False(t, Verify([]byte("different payload"), sum))
}

func TestVerifyErr(t *testing.T) {
	image := []byte("payload")
	sum := Checksum(image)

	require.NoError(t, VerifyErr(image, sum))

	err := VerifyErr(image, sum+1)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}
