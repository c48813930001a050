// Package integrity provides an out-of-band digest for a frozen tuple or
// container image. The checksum is never embedded in the wire format
// itself — callers who need tamper detection store it alongside the image
// (a container trailer, a database column, a file's extended attributes)
// and verify it after reading the bytes back.
package integrity

import (
	"github.com/cespare/xxhash/v2"

	"github.com/alex-hoshin/libfptu/errs"
)

// Checksum returns the xxHash64 digest of image.
func Checksum(image []byte) uint64 {
	return xxhash.Sum64(image)
}

// Verify reports whether image's checksum matches want.
func Verify(image []byte, want uint64) bool {
	return Checksum(image) == want
}

// VerifyErr is Verify expressed as an error return, for call sites that
// want to propagate a sentinel via errors.Is(err, errs.ErrChecksumMismatch)
// rather than branch on a bool.
func VerifyErr(image []byte, want uint64) error {
	if !Verify(image, want) {
		return errs.ErrChecksumMismatch
	}
	return nil
}
