package compress

import "github.com/klauspost/compress/s2"

// S2Codec compresses with S2, a Snappy-compatible algorithm tuned for
// throughput over ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec returns an S2Codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress compresses data with S2.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2-compressed data.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Decode(nil, data)
}
