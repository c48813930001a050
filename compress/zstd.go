package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec compresses with Zstandard, favoring compression ratio over
// speed. Good for archival and for tuples or containers that will be read
// far less often than they're written.
//
// This is the pure-Go klauspost/compress/zstd implementation rather than a
// cgo binding: it keeps the module cgo-free, at a moderate throughput cost
// relative to the C reference encoder (see DESIGN.md).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns a ZstdCodec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// zstdDecoderPool pools zstd decoders: the library is explicitly designed
// for decoder reuse, operating without allocation after warmup.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd decoder: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for the same reason.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd encoder: %v", err))
		}
		return encoder
	},
}

// Compress compresses data with Zstandard, using a pooled encoder.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstandard-compressed data, using a pooled
// decoder. The decoder remains safe to reuse even after a failed call.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd decompression failed: %w", err)
	}
	return decompressed, nil
}
