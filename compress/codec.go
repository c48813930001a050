// Package compress provides compression codecs for frozen tuple and
// container images.
//
// Compression here sits above the wire format, never inside it: a frozen RO
// image is a valid, self-describing byte sequence on its own, and
// compress.Codec is what the container package uses to shrink one before
// writing it to a stream. Four algorithms are supported, trading
// compression ratio against speed:
//
//   - None: no-op, useful as a baseline or when the payload is already
//     compressed (e.g. an opaque field holding pre-compressed data).
//   - Zstd: best ratio, moderate speed; good for archival.
//   - S2: balanced ratio and speed; good for streaming ingestion.
//   - LZ4: fastest decompression; good for read-heavy workloads.
package compress

import (
	"fmt"

	"github.com/alex-hoshin/libfptu/errs"
)

// Type identifies a compression algorithm.
type Type uint8

const (
	None Type = iota
	Zstd
	S2
	LZ4
)

// String returns the canonical name of a compression type.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses a byte slice.
//
// Memory management: the returned slice is owned by the caller and the input
// slice is never modified. The compressing codecs return a newly allocated
// slice; NoOpCodec returns the input slice itself.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the built-in Codec for t.
func CreateCodec(t Type) (Codec, error) {
	switch t {
	case None:
		return NewNoOpCodec(), nil
	case Zstd:
		return NewZstdCodec(), nil
	case S2:
		return NewS2Codec(), nil
	case LZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("compress: %w: %d", errs.ErrUnsupportedCompression, t)
	}
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCodec(),
	Zstd: NewZstdCodec(),
	S2:   NewS2Codec(),
	LZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in, shared Codec instance for t.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}
	return nil, fmt.Errorf("compress: unsupported compression type: %d", t)
}
