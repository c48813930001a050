// Package errs collects the sentinel errors returned by the tuple,
// container, integrity and compress packages.
//
// Every exported error is a plain package-level value so callers can compare
// with errors.Is, including against errors wrapped with additional context
// via fmt.Errorf("...: %w", errs.ErrX).
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSpace is returned when a mutating operation would overflow the
	// arena's descriptor band or payload heap (ENOSPACE).
	ErrNoSpace = errors.New("fptu: not enough space in arena")

	// ErrNoField is returned when an Update call finds no matching live
	// descriptor (ENOFIELD). Erase reports a miss as a zero count and
	// Lookup as a false result, not as this error.
	ErrNoField = errors.New("fptu: no matching field")

	// ErrInvalidArgument covers malformed calls: an empty, unaligned or
	// oversized region, a reserved column count that does not fit, or a
	// variable-length value too long to encode (EINVAL). An out-of-range
	// column is reported with ErrColumnRange instead.
	ErrInvalidArgument = errors.New("fptu: invalid argument")

	// ErrDescriptorOverflow is a finer-grained ENOSPACE diagnostic: the
	// descriptor band [head, pivot) is full. It satisfies
	// errors.Is(err, ErrNoSpace).
	ErrDescriptorOverflow = fmt.Errorf("fptu: descriptor band is full: %w", ErrNoSpace)

	// ErrPayloadOverflow is a finer-grained ENOSPACE diagnostic: the
	// payload heap [pivot, tail) would exceed end. It satisfies
	// errors.Is(err, ErrNoSpace).
	ErrPayloadOverflow = fmt.Errorf("fptu: payload heap is full: %w", ErrNoSpace)

	// ErrColumnRange is returned when a column tag exceeds max_cols.
	ErrColumnRange = errors.New("fptu: column tag out of range")

	// ErrTypeRange is returned when a type tag is outside the enumerated
	// taxonomy or collides with the dead sentinel.
	ErrTypeRange = errors.New("fptu: type tag out of range")

	// ErrOrderedUnsupported is returned by RO.Check for an image whose
	// header has the lx_mask (ordered tuple) bit set. The ordered codepath
	// is reserved but unimplemented.
	ErrOrderedUnsupported = errors.New("fptu: ordered tuples are not supported")

	// ErrCorrupt wraps a structural validation failure reported by Check.
	// The human-readable diagnostic is available via CheckResult.
	ErrCorrupt = errors.New("fptu: tuple failed validation")

	// ErrTruncated is returned by container.Reader when the stream ends
	// before a complete header, record or checksum has been read. (RO.Check
	// reports a length mismatch as ErrCorrupt.)
	ErrTruncated = errors.New("fptu: truncated image")

	// ErrChecksumMismatch is returned by integrity.VerifyErr when a digest
	// does not match the supplied image.
	ErrChecksumMismatch = errors.New("fptu: checksum mismatch")

	// ErrUnsupportedCompression is returned by compress.CreateCodec for an
	// unrecognized compress.Type.
	ErrUnsupportedCompression = errors.New("fptu: unsupported compression type")
)
