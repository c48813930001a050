package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescriptorOverflow_IsNoSpace(t *testing.T) {
	require.ErrorIs(t, ErrDescriptorOverflow, ErrNoSpace)
}

func TestPayloadOverflow_IsNoSpace(t *testing.T) {
	require.ErrorIs(t, ErrPayloadOverflow, ErrNoSpace)
}

func TestSentinels_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNoSpace, ErrNoField, ErrInvalidArgument, ErrColumnRange,
		ErrTypeRange, ErrOrderedUnsupported, ErrCorrupt, ErrTruncated,
		ErrChecksumMismatch, ErrUnsupportedCompression,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.Falsef(t, errors.Is(a, b), "%v should not be %v", a, b)
		}
	}
}
