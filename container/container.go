// Package container provides a simple multi-tuple archive format: a
// sequence of frozen tuple images written to an io.Writer, each optionally
// compressed and checksummed, and read back one at a time from an
// io.Reader.
//
// This is not a file format with its own CLI or path/flag surface — it is a
// stream codec, the same kind of concern compress.Codec already covers for
// a single payload, extended to a sequence of tuple.RO images. A typical
// caller owns the actual file or network connection and hands container.Writer
// its io.Writer.
//
// # Wire layout
//
// A container begins with an 8-byte stream header:
//
//	bytes 0-3: magic "FPTU"
//	byte  4:   format version (1)
//	byte  5:   compress.Type used for every record
//	byte  6:   1 if every record carries a trailing 8-byte xxHash64
//	           checksum of its uncompressed bytes, 0 otherwise
//	byte  7:   reserved, must be 0
//
// followed by zero or more records:
//
//	uint32 originalLen   (little-endian, uncompressed tuple.RO byte length)
//	uint32 compressedLen (little-endian, byte length of what follows)
//	compressedLen bytes of (possibly compressed) tuple image
//	[8 bytes xxHash64 of the uncompressed image, if the header flag is set]
package container

import "errors"

const (
	magic          = "FPTU"
	formatVersion  = 1
	streamHeaderSize = 8
)

// ErrBadMagic is returned by NewReader when the stream does not begin with
// the container magic bytes.
var ErrBadMagic = errors.New("container: not a tuple container stream (bad magic)")

// ErrUnsupportedVersion is returned by NewReader for a stream header
// claiming a format version this package doesn't know how to read.
var ErrUnsupportedVersion = errors.New("container: unsupported container format version")
