package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/alex-hoshin/libfptu/compress"
	"github.com/alex-hoshin/libfptu/errs"
	"github.com/alex-hoshin/libfptu/integrity"
)

// Reader reads back records written by Writer. It is self-describing: the
// compression algorithm and checksum flag are recovered from the stream
// header, so callers never need to pass matching configuration.
type Reader struct {
	r             io.Reader
	compType      compress.Type
	codec         compress.Codec
	withChecksums bool
}

// NewReader reads and validates the stream header from r and returns a
// Reader ready to yield records via Next.
func NewReader(r io.Reader) (*Reader, error) {
	var header [streamHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("container: %w", errs.ErrTruncated)
		}
		return nil, fmt.Errorf("container: reading stream header: %w", err)
	}
	if string(header[0:4]) != magic {
		return nil, ErrBadMagic
	}
	if header[4] != formatVersion {
		return nil, ErrUnsupportedVersion
	}

	compType := compress.Type(header[5])
	codec, err := compress.CreateCodec(compType)
	if err != nil {
		return nil, fmt.Errorf("container: stream header names %w", err)
	}

	return &Reader{
		r:             r,
		compType:      compType,
		codec:         codec,
		withChecksums: header[6] != 0,
	}, nil
}

// CompressionType reports the algorithm applied to every record in this
// stream.
func (rd *Reader) CompressionType() compress.Type {
	return rd.compType
}

// Next reads and decompresses the next record, returning io.EOF once the
// stream is exhausted. When the stream was written WithChecksums(true), Next
// also verifies the record's checksum and returns errs.ErrChecksumMismatch
// on failure.
func (rd *Reader) Next() ([]byte, error) {
	var lengths [8]byte
	if _, err := io.ReadFull(rd.r, lengths[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("container: reading record header: %w", errs.ErrTruncated)
	}
	originalLen := binary.LittleEndian.Uint32(lengths[0:4])
	compressedLen := binary.LittleEndian.Uint32(lengths[4:8])

	compressed := make([]byte, compressedLen)
	if _, err := io.ReadFull(rd.r, compressed); err != nil {
		return nil, fmt.Errorf("container: reading record body: %w", errs.ErrTruncated)
	}

	image, err := rd.codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("container: decompressing record: %w", err)
	}
	if uint32(len(image)) != originalLen {
		return nil, fmt.Errorf("container: record length mismatch: %w", errs.ErrCorrupt)
	}

	if rd.withChecksums {
		var sum [8]byte
		if _, err := io.ReadFull(rd.r, sum[:]); err != nil {
			return nil, fmt.Errorf("container: reading record checksum: %w", errs.ErrTruncated)
		}
		want := binary.LittleEndian.Uint64(sum[:])
		if err := integrity.VerifyErr(image, want); err != nil {
			return nil, fmt.Errorf("container: %w", err)
		}
	}

	return image, nil
}

// All reads every remaining record into a slice. Intended for small
// containers and tests; streaming callers should use Next directly.
func (rd *Reader) All() ([][]byte, error) {
	var out [][]byte
	for {
		image, err := rd.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, image)
	}
}
