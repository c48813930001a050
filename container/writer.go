package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/alex-hoshin/libfptu/compress"
	"github.com/alex-hoshin/libfptu/integrity"
	"github.com/alex-hoshin/libfptu/internal/options"
)

// Writer appends frozen tuple images to an underlying io.Writer as a single
// self-describing stream. The stream header is written lazily, on the
// first call to Write or Close, so a Writer that never writes a record
// still produces a bare header once it is closed.
type Writer struct {
	w             io.Writer
	compType      compress.Type
	codec         compress.Codec
	withChecksums bool

	headerWritten bool
}

// WithCompression selects the compression algorithm applied to every
// record. The default is compress.None.
func WithCompression(t compress.Type) options.Option[*Writer] {
	return options.New(func(wr *Writer) error {
		codec, err := compress.CreateCodec(t)
		if err != nil {
			return err
		}
		wr.compType = t
		wr.codec = codec
		return nil
	})
}

// WithChecksums enables a trailing xxHash64 checksum of each record's
// uncompressed bytes. Disabled by default.
func WithChecksums(enabled bool) options.Option[*Writer] {
	return options.NoError(func(wr *Writer) {
		wr.withChecksums = enabled
	})
}

// NewWriter returns a Writer that appends records to w.
func NewWriter(w io.Writer, opts ...options.Option[*Writer]) (*Writer, error) {
	wr := &Writer{
		w:        w,
		compType: compress.None,
	}
	if err := options.Apply(wr, opts...); err != nil {
		return nil, err
	}
	if wr.codec == nil {
		codec, err := compress.CreateCodec(compress.None)
		if err != nil {
			return nil, err
		}
		wr.codec = codec
	}
	return wr, nil
}

func (wr *Writer) writeHeader() error {
	if wr.headerWritten {
		return nil
	}
	var header [streamHeaderSize]byte
	copy(header[0:4], magic)
	header[4] = formatVersion
	header[5] = byte(wr.compType)
	if wr.withChecksums {
		header[6] = 1
	}
	if _, err := wr.w.Write(header[:]); err != nil {
		return fmt.Errorf("container: writing stream header: %w", err)
	}
	wr.headerWritten = true
	return nil
}

// Write appends one frozen tuple image as a new record. image is typically
// the byte slice backing a tuple.RO, but Write accepts any byte slice so a
// container can also carry raw opaque blobs.
func (wr *Writer) Write(image []byte) error {
	if err := wr.writeHeader(); err != nil {
		return err
	}

	compressed, err := wr.codec.Compress(image)
	if err != nil {
		return fmt.Errorf("container: compressing record: %w", err)
	}

	var lengths [8]byte
	binary.LittleEndian.PutUint32(lengths[0:4], uint32(len(image)))
	binary.LittleEndian.PutUint32(lengths[4:8], uint32(len(compressed)))
	if _, err := wr.w.Write(lengths[:]); err != nil {
		return fmt.Errorf("container: writing record header: %w", err)
	}
	if _, err := wr.w.Write(compressed); err != nil {
		return fmt.Errorf("container: writing record body: %w", err)
	}

	if wr.withChecksums {
		var sum [8]byte
		binary.LittleEndian.PutUint64(sum[:], integrity.Checksum(image))
		if _, err := wr.w.Write(sum[:]); err != nil {
			return fmt.Errorf("container: writing record checksum: %w", err)
		}
	}
	return nil
}

// Close flushes the stream header if no record has been written yet, so an
// empty container is still a valid, parseable stream. It does not close the
// underlying io.Writer.
func (wr *Writer) Close() error {
	return wr.writeHeader()
}
